package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Suggest      key.Binding
	CheckAnother key.Binding
	Reveal       key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Suggest: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "suggest password"),
		),
		CheckAnother: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "check another"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "show/hide"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp only lists the actions whose buttons are currently visible.
func (k keyMap) ShortHelp(suggest, checkAnother bool) []key.Binding {
	bindings := []key.Binding{k.Reveal}
	if suggest {
		bindings = append(bindings, k.Suggest)
	}
	if checkAnother {
		bindings = append(bindings, k.CheckAnother)
	}
	return append(bindings, k.Quit)
}

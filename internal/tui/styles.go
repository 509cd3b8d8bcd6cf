package tui

import (
	"github.com/alvinbaena/pwd-advisor/pkg/advisor"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the palette the advisor colors are mapped to.
type Theme struct {
	Danger     lipgloss.Color
	Warning    lipgloss.Color
	Success    lipgloss.Color
	Muted      lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Primary    lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Danger:     lipgloss.Color("#ef4444"),
		Warning:    lipgloss.Color("#eab308"),
		Success:    lipgloss.Color("#22c55e"),
		Muted:      lipgloss.Color("#737373"),
		Foreground: lipgloss.Color("#fafafa"),
		Border:     lipgloss.Color("#404040"),
		Primary:    lipgloss.Color("#7c3aed"),
	}
}

type Styles struct {
	theme Theme

	Title      lipgloss.Style
	Panel      lipgloss.Style
	Criterion  lipgloss.Style
	Suggestion lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
	Spinner    lipgloss.Style
}

func NewStyles(theme Theme) Styles {
	return Styles{
		theme: theme,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			MarginBottom(1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			MarginTop(1),
		Criterion: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Suggestion: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(theme.Danger).
			MarginTop(1),
		Help: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),
		Spinner: lipgloss.NewStyle().
			Foreground(theme.Primary),
	}
}

// Color resolves an advisor color token to the theme palette.
func (s Styles) Color(c advisor.Color) lipgloss.Color {
	switch c {
	case advisor.Green:
		return s.theme.Success
	case advisor.Yellow:
		return s.theme.Warning
	case advisor.Red:
		return s.theme.Danger
	}
	return s.theme.Foreground
}

func (s Styles) Text(c advisor.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(s.Color(c))
}

func (s Styles) Badge(c advisor.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(s.Color(c)).
		Padding(0, 1)
}

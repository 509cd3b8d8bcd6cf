// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"

	"github.com/alvinbaena/pwd-advisor/internal/feedback"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea front end of the feedback controller. The bubbletea event loop is
// the single thread that owns the state; requests run as commands and come back as
// completion events.
type Model struct {
	ctx        context.Context
	dispatcher *feedback.Dispatcher
	state      feedback.State

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  Styles
	width   int
}

func NewModel(ctx context.Context, dispatcher *feedback.Dispatcher, policy feedback.Policy) Model {
	styles := NewStyles(DefaultTheme())

	input := textinput.New()
	input.Prompt = "Password: "
	input.Placeholder = "start typing"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Width = 40
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return Model{
		ctx:        ctx,
		dispatcher: dispatcher,
		state:      feedback.NewState(policy),
		input:      input,
		spinner:    s,
		help:       help.New(),
		keys:       defaultKeyMap(),
		styles:     styles,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case feedback.Event:
		next, cmd := m.apply(msg)
		return next, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.state.View()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Suggest):
		if !view.SuggestButtonVisible {
			return m, nil
		}
		next, cmd := m.apply(feedback.SuggestRequested{})
		return next, cmd

	case key.Matches(msg, m.keys.CheckAnother):
		if !view.CheckAnotherVisible {
			return m, nil
		}
		next, cmd := m.apply(feedback.CheckAnotherRequested{})
		return next, cmd

	case key.Matches(msg, m.keys.Reveal):
		next, cmd := m.apply(feedback.RevealToggled{})
		return next, cmd
	}

	before := m.input.Value()
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, inputCmd
	}

	next, cmd := m.apply(feedback.PasswordChanged{Password: m.input.Value()})
	return next, tea.Batch(inputCmd, cmd)
}

// apply reduces the event and turns the resulting effects into commands.
func (m Model) apply(ev feedback.Event) (Model, tea.Cmd) {
	if m.state.Stale(ev) {
		return m, nil
	}

	next, effects := feedback.Reduce(m.state, ev)
	m.dispatcher.Advance(next.Seq)
	m.state = next

	// Suggestions and resets rewrite the input from the state side.
	if m.input.Value() != next.Input {
		m.input.SetValue(next.Input)
		m.input.CursorEnd()
	}
	if next.Revealed {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}

	cmds := make([]tea.Cmd, 0, len(effects))
	for _, eff := range effects {
		cmds = append(cmds, m.runEffect(eff))
	}

	return m, tea.Batch(cmds...)
}

func (m Model) runEffect(eff feedback.Effect) tea.Cmd {
	ctx, dispatcher := m.ctx, m.dispatcher
	return func() tea.Msg {
		return dispatcher.Run(ctx, eff)
	}
}

// State exposes the current feedback state, mostly for tests and the final summary.
func (m Model) State() feedback.State {
	return m.state
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, dispatcher *feedback.Dispatcher, policy feedback.Policy) error {
	p := tea.NewProgram(NewModel(ctx, dispatcher, policy), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

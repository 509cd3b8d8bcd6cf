package tui

import (
	"strings"

	"github.com/alvinbaena/pwd-advisor/internal/feedback"
	"github.com/alvinbaena/pwd-advisor/pkg/advisor"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 30

func (m Model) View() string {
	v := m.state.View()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Password Strength Advisor"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	if v.Pending {
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")

	if v.Error != "" {
		b.WriteString(m.styles.Error.Render(v.Error))
		b.WriteString("\n")
	}

	if v.FeedbackVisible {
		b.WriteString(m.styles.Panel.Render(m.feedbackPanel(v)))
		b.WriteString("\n")
	}

	if v.SuggestionVisible {
		b.WriteString(m.styles.Suggestion.Render(v.Suggestion))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help.ShortHelpView(m.keys.ShortHelp(v.SuggestButtonVisible, v.CheckAnotherVisible))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) feedbackPanel(v feedback.View) string {
	lines := make([]string, 0, len(v.Criteria)+3)
	for _, c := range v.Criteria {
		lines = append(lines, m.styles.Criterion.Render(c.Text))
	}

	crack := lipgloss.JoinHorizontal(lipgloss.Center,
		"Time to crack: ",
		v.CrackingTime,
		" ",
		m.styles.Badge(v.Risk.Color()).Render(v.Risk.String()),
	)
	lines = append(lines, "", crack)
	lines = append(lines, m.styles.Text(v.Strength.TextColor).Render(v.Strength.Label))
	lines = append(lines, m.strengthBar(v.BarWidth, v.Strength.BarColor))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) strengthBar(width int, color advisor.Color) string {
	bar := progress.New(
		progress.WithSolidFill(string(m.styles.Color(color))),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)
	return bar.ViewAs(float64(width) / 100)
}

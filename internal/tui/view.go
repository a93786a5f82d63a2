package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// View renders the calculator form and, once calculated, the premium
// result box.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Vehicle Premium Calculator"))
	b.WriteString("\n")

	for i, input := range m.inputs {
		label := FieldLabelStyle
		if i == m.focus {
			label = FocusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString(m.renderResult())
	}

	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderResult() string {
	r := m.result

	var lines []string
	lines = append(lines,
		fmt.Sprintf("Base Premium:      $%s", r.BasePremium.StringFixed(2)),
		fmt.Sprintf("Adjusted Premium:  $%s", r.AdjustedPremium.StringFixed(2)),
	)
	if r.DiscountAmount.GreaterThan(decimal.Zero) {
		lines = append(lines,
			fmt.Sprintf("No-Claims Discount: -$%s", r.DiscountAmount.StringFixed(2)))
	}
	lines = append(lines,
		"Final Premium:     "+ResultValueStyle.Render("$"+r.FinalPremium.StringFixed(2)),
		fmt.Sprintf("Policy Excess:     $%s", r.ExcessAmount.StringFixed(2)),
	)
	if len(r.Breakdown.Notes) > 0 {
		lines = append(lines,
			SubtitleStyle.Render("Rules: "+strings.Join(r.Breakdown.Notes, ", ")))
	}
	if s := m.schedule; s != nil {
		lines = append(lines,
			fmt.Sprintf("%s: %d x $%s (total $%s)",
				s.Frequency, s.Installments,
				s.PerInstallment.StringFixed(2), s.TotalPayable.StringFixed(2)))
	}

	return ResultBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		StatusKeyStyle.Render("tab") + " next field",
		StatusKeyStyle.Render("enter") + " calculate",
		StatusKeyStyle.Render("esc") + " quit",
	}
	return "\n" + StatusBarStyle.Render(strings.Join(shortcuts, "  •  "))
}

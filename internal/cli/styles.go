// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#5F87FF")
	// PassColor marks reservations whose email evidence agrees.
	PassColor = lipgloss.Color("#4ECDC4")
	// WarningColor marks partial agreement.
	WarningColor = lipgloss.Color("#FFE66D")
	// FailColor marks reservations contradicted by the email evidence.
	FailColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginBottom(1)

	// PassStyle formats passing verdicts.
	PassStyle = lipgloss.NewStyle().
			Foreground(PassColor)

	// WarningStyle formats warning verdicts.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// FailStyle formats failing verdicts.
	FailStyle = lipgloss.NewStyle().
			Foreground(FailColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// RenderVerdict colors a verdict for terminal display.
func RenderVerdict(v model.Verdict) string {
	switch v {
	case model.VerdictPass:
		return PassStyle.Render(string(v))
	case model.VerdictWarning:
		return WarningStyle.Render(string(v))
	case model.VerdictFail:
		return FailStyle.Render(string(v))
	default:
		return SubtleStyle.Render(string(v))
	}
}

// RenderMatch formats a match percentage, or a placeholder when no email
// evidence was found.
func RenderMatch(pct model.Field[float64]) string {
	if !pct.Known {
		return SubtleStyle.Render("-")
	}
	return fmt.Sprintf("%.0f%%", pct.Value)
}

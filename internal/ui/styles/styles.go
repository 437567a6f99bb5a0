// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
)

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // Hints, help text, footers
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"} // Description/body text

	// Command tokens and the prompt marker
	AccentColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Clearance colors, most restricted first
	TierBlackColor        = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"}
	TierRestrictedColor   = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"}
	TierConfidentialColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"}
	TierInternalColor     = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"}

	// Selection indicator style (used for ">" prefix in suggestion lists)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)

	CommandStyle     = lipgloss.NewStyle().Foreground(AccentColor)
	PromptStyle      = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	MutedStyle       = lipgloss.NewStyle().Foreground(TextMutedColor)
	DescriptionStyle = lipgloss.NewStyle().Foreground(TextDescriptionColor)
	HeaderStyle      = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	SuccessStyle     = lipgloss.NewStyle().Foreground(StatusSuccessColor).Italic(true)
	WarningStyle     = lipgloss.NewStyle().Foreground(StatusWarningColor)
	ErrorStyle       = lipgloss.NewStyle().Foreground(StatusErrorColor)
)

// TierColor returns the color for a clearance label. Labels outside the
// known set use the muted text color.
func TierColor(t domaincmd.Tier) lipgloss.TerminalColor {
	switch t {
	case domaincmd.TierBlack:
		return TierBlackColor
	case domaincmd.TierRestricted:
		return TierRestrictedColor
	case domaincmd.TierConfidential:
		return TierConfidentialColor
	case domaincmd.TierInternal:
		return TierInternalColor
	default:
		return TextMutedColor
	}
}

// TierStyle renders a clearance label in its tier color.
func TierStyle(t domaincmd.Tier) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(TierColor(t))
	if t == domaincmd.TierBlack {
		style = style.Bold(true)
	}
	return style
}

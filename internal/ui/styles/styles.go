// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pagesmith/internal/blocks"
)

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#CCCCCC"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#BBBBBB"} // Block ids, field keys
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#696969"} // Hints, help text
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"}

	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#696969"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// Canvas
	BlockSelectedColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#54A0FF"}
	BlockDropTargetColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"}
	BlockClipboardColor  = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}

	// Block categories
	CategoryLayoutColor   = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	CategoryContentColor  = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"}
	CategoryMediaColor    = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"}
	CategoryPersonalColor = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}
	CategoryBusinessColor = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}

	// Form colors
	FormTextInputBorderColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	FormTextInputFocusedBorderColor = lipgloss.AdaptiveColor{Light: "#000", Dark: "#FFF"}
	FormTextInputLabelColor         = lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#8C8C8C"}
	FormTextInputFocusedLabelColor  = lipgloss.AdaptiveColor{Light: "#000", Dark: "#FFF"}

	// Undo preview diff colors
	DiffAdditionColor = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}
	DiffDeletionColor = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#8C8C8C"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)
)

// CategoryColor returns the accent colour of a block category.
func CategoryColor(c blocks.Category) lipgloss.TerminalColor {
	switch c {
	case blocks.CategoryLayout:
		return CategoryLayoutColor
	case blocks.CategoryContent:
		return CategoryContentColor
	case blocks.CategoryMedia:
		return CategoryMediaColor
	case blocks.CategoryPersonal:
		return CategoryPersonalColor
	case blocks.CategoryBusiness:
		return CategoryBusinessColor
	default:
		return TextSecondaryColor
	}
}

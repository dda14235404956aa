package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette (identical to lazyadmin)
var (
	DraculaBackground = lipgloss.AdaptiveColor{Light: "0", Dark: "0"}
	DraculaForeground = lipgloss.AdaptiveColor{Light: "255", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaOrange     = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	DraculaBlue       = lipgloss.AdaptiveColor{Light: "12", Dark: "12"}

	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Italic(true)

	// Stats bar styles
	StatValueStyle = lipgloss.NewStyle().
			Bold(true)
	StatLabelStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)

	// Category tab styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(DraculaBackground).
			Background(DraculaPurple).
			Bold(true).
			Padding(0, 1)
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Padding(0, 1)

	// Search and sort line
	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(DraculaPink)
	SortStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan)
	CompareActiveStyle = lipgloss.NewStyle().
				Foreground(DraculaGreen).
				Bold(true)
	CompareIdleStyle = lipgloss.NewStyle().
				Foreground(DraculaComment)

	// Card styles
	CardNameStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan)
	CardNameActiveStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	CardDeveloperStyle = lipgloss.NewStyle().
				Foreground(DraculaPurple)
	CardPriceStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen)
	CardBodyStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
	CardDimStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	BadgeStyle = lipgloss.NewStyle().
			Foreground(DraculaBackground).
			Background(DraculaGreen).
			Bold(true).
			Padding(0, 1)
	SelectedMarkStyle = lipgloss.NewStyle().
				Foreground(DraculaGreen).
				Bold(true)
	CursorStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)

	// Comparison modal styles
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaPurple).
			Padding(0, 1)
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(DraculaComment).
			Padding(0, 1)
	ColumnFocusedStyle = ColumnStyle.
				BorderForeground(DraculaPink)
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	NoticeStyle = lipgloss.NewStyle().
			Foreground(DraculaOrange)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed)

	// Help
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
)

// statColor returns the accent colour of a category in the stats bar.
func statColor(label string) lipgloss.TerminalColor {
	switch label {
	case "Multimodal":
		return DraculaOrange
	case "Image":
		return DraculaPink
	case "Video":
		return DraculaBlue
	case "Audio":
		return DraculaPurple
	default:
		return DraculaForeground
	}
}

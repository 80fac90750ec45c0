package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Panels
var (
	sidebarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorDivider)

	mainPaneStyle = lipgloss.NewStyle().
			Padding(0, 2)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	panelTitleDimStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Bold(true)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(2, 4)
)

// Roster
var (
	friendNameStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	friendCursorStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true)

	friendSelectedStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	avatarStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	balanceOwesStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	balanceOwedStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	balanceEvenStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)
)

// Forms
var (
	formTitleStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	formLabelActiveStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)

	formDisabledStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorBg).
			Background(colorYellow).
			Bold(true).
			Padding(0, 1)

	choiceActiveStyle = lipgloss.NewStyle().
				Foreground(colorBg).
				Background(colorBlue).
				Padding(0, 1)

	choiceStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Padding(0, 1)
)

// History
var (
	historyTimeStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)

	historyDimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorBgSurface).
				Bold(true).
				Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// balanceStyle picks the color for a friend's standing.
func balanceStyle(balance int64) lipgloss.Style {
	switch {
	case balance < 0:
		return balanceOwesStyle
	case balance > 0:
		return balanceOwedStyle
	default:
		return balanceEvenStyle
	}
}

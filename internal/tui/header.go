package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/splitr/internal/ledger"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	SPLITR  |  3 friends  |  owed ₹20  |  you owe ₹7
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("SPLITR")
	sep := headerSepStyle.Render(" │ ")

	var owed, owe int64
	friends := m.session.Friends()
	for _, f := range friends {
		switch f.Standing() {
		case ledger.StandingOwed:
			owed += f.Balance
		case ledger.StandingOwes:
			owe -= f.Balance
		}
	}

	parts := []string{
		brand,
		sep, headerMetaStyle.Render(fmt.Sprintf("%d friends", len(friends))),
		sep, balanceOwedStyle.Render(fmt.Sprintf("owed %s%d", m.currency, owed)),
		sep, balanceOwesStyle.Render(fmt.Sprintf("you owe %s%d", m.currency, owe)),
	}

	return headerBarStyle.Width(m.width).Render(strings.Join(parts, ""))
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left, right string

	if m.statusMsg != "" {
		if m.err != nil {
			left = statusErrorStyle.Render(m.statusMsg)
		} else {
			left = statusStyle.Render(m.statusMsg)
		}
	}

	switch m.session.Phase() {
	case ledger.PhaseAddingFriend:
		right = renderHints([]hint{
			{"tab", "field"},
			{"enter", "add"},
			{"^j/^k", "roster"},
			{"^s", "select"},
			{"esc", "close"},
		})
	case ledger.PhaseSplittingBill:
		right = renderHints([]hint{
			{"tab", "field"},
			{"←→", "payer"},
			{"enter", "split"},
			{"esc", "close"},
		})
	default:
		right = renderHints([]hint{
			{"↑↓", "navigate"},
			{"enter", "select"},
			{"a", "add friend"},
			{"h", "history"},
			{"q", "quit"},
		})
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}

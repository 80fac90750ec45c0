package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/splitr/internal/ledger"
)

// renderRoster renders the friend list with balances.
func renderRoster(m *Model, width int) string {
	friends := m.session.Friends()

	title := panelTitleStyle.Render("Friends")
	if m.session.Phase() != ledger.PhaseIdle {
		title = panelTitleDimStyle.Render("Friends")
	}

	if len(friends) == 0 {
		return title + "\n\n" + emptyStateStyle.Render("No friends yet.\nPress a to add one.")
	}

	lines := []string{title, ""}

	// Each friend takes three lines: name, avatar, balance.
	maxVisible := (m.height - 10) / 3
	if maxVisible < 3 {
		maxVisible = 3
	}
	cursor := clamp(m.cursor, 0, len(friends)-1)
	start := 0
	if cursor >= maxVisible {
		start = cursor - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(friends) {
		end = len(friends)
	}

	sel := m.session.Mode().Selection()
	for i := start; i < end; i++ {
		f := friends[i]
		lines = append(lines, renderFriend(f, i == cursor && m.session.Phase() == ledger.PhaseIdle,
			sel.Is(f.ID), m.currency, width)...)
	}

	if end < len(friends) {
		lines = append(lines, avatarStyle.Render(fmt.Sprintf("  … %d more", len(friends)-end)))
	}

	return strings.Join(lines, "\n")
}

func renderFriend(f ledger.Friend, atCursor, selected bool, currency string, width int) []string {
	action := "Select"
	nameStyle := friendNameStyle
	if selected {
		action = "Close"
		nameStyle = friendSelectedStyle
	}

	marker := "  "
	if atCursor {
		marker = "▸ "
	}

	name := marker + truncate(f.Name, width-len(action)-6)
	gap := width - len([]rune(name)) - len(action) - 2
	if gap < 1 {
		gap = 1
	}
	head := name + strings.Repeat(" ", gap) + "[" + action + "]"
	if atCursor {
		head = friendCursorStyle.Render(head)
	} else {
		head = nameStyle.Render(head)
	}

	return []string{
		head,
		"  " + avatarStyle.Render(truncate(f.Image, width-2)),
		"  " + balanceStyle(f.Balance).Render(f.Summary(currency)),
	}
}

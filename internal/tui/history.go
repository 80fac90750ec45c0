package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/splitr/pkg/timeutil"
)

// renderHistory lists the splits journaled this session, newest first.
func renderHistory(m *Model, width int) string {
	title := panelTitleStyle.Render("History")
	if len(m.history) == 0 {
		return title + "\n\n" + emptyStateStyle.Render("No bills split yet.")
	}
	title += historyDimStyle.Render(fmt.Sprintf("  %d bills", len(m.history)))

	lines := []string{title, ""}

	maxVisible := m.height - 6
	if maxVisible < 3 {
		maxVisible = 3
	}
	for i, sp := range m.history {
		if i >= maxVisible {
			lines = append(lines, historyDimStyle.Render(
				fmt.Sprintf("… %d older", len(m.history)-maxVisible)))
			break
		}

		who := "you paid"
		if sp.Payer == "friend" {
			who = truncate(sp.FriendName, 16) + " paid"
		}
		delta := fmt.Sprintf("%+d", sp.Delta)

		line := fmt.Sprintf("%s  %s  %s%d, %s  %s",
			historyTimeStyle.Render(timeutil.FormatTimestamp(sp.CreatedAt)),
			friendNameStyle.Render(truncate(sp.FriendName, 16)),
			m.currency, sp.Total, who,
			balanceStyle(sp.Delta).Render(delta))
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

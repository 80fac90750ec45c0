// Package report builds balance summaries from the roster and the session
// journal.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/splitr/internal/database"
	"github.com/Mr-Dark-debug/splitr/internal/ledger"
)

// Reporter combines roster balances with journal statistics.
type Reporter struct {
	store    database.Store
	currency string
}

// NewReporter creates a reporter backed by the given journal.
func NewReporter(store database.Store, currency string) *Reporter {
	return &Reporter{store: store, currency: currency}
}

// FriendLine is one row of the report.
type FriendLine struct {
	FriendID    string `json:"friend_id"`
	Name        string `json:"name"`
	Balance     int64  `json:"balance"`
	Standing    string `json:"standing"`
	Summary     string `json:"summary"`
	SplitCount  int    `json:"split_count"`
	TotalBilled int64  `json:"total_billed"`
}

// BalanceReport is the full summary.
type BalanceReport struct {
	GeneratedAt  string       `json:"generated_at"`
	Currency     string       `json:"currency"`
	Friends      []FriendLine `json:"friends"`
	OwedToYou    int64        `json:"owed_to_you"`
	YouOwe       int64        `json:"you_owe"`
	Net          int64        `json:"net"`
	SplitCount   int          `json:"split_count"`
	LargestDebts []string     `json:"largest_debts,omitempty"`
	Warnings     []string     `json:"warnings,omitempty"`
}

// Build assembles the report for friends, in roster order. A journal
// failure for one friend becomes a warning instead of aborting the report.
func (r *Reporter) Build(friends []ledger.Friend) *BalanceReport {
	rep := &BalanceReport{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Currency:    r.currency,
		Friends:     make([]FriendLine, 0, len(friends)),
	}

	for _, f := range friends {
		line := FriendLine{
			FriendID: f.ID,
			Name:     f.Name,
			Balance:  f.Balance,
			Standing: f.Standing().String(),
			Summary:  f.Summary(r.currency),
		}

		stats, err := r.store.GetFriendStats(f.ID)
		if err != nil {
			rep.Warnings = append(rep.Warnings,
				fmt.Sprintf("Journal stats unavailable for %s: %v", f.Name, err))
		} else {
			line.SplitCount = stats.SplitCount
			line.TotalBilled = stats.TotalBilled
			rep.SplitCount += stats.SplitCount
		}

		switch f.Standing() {
		case ledger.StandingOwed:
			rep.OwedToYou += f.Balance
		case ledger.StandingOwes:
			rep.YouOwe += -f.Balance
		}
		rep.Friends = append(rep.Friends, line)
	}
	rep.Net = rep.OwedToYou - rep.YouOwe
	rep.LargestDebts = largestDebts(friends, r.currency, 3)

	return rep
}

// largestDebts lists up to n friends the user owes the most to.
func largestDebts(friends []ledger.Friend, currency string, n int) []string {
	var owes []ledger.Friend
	for _, f := range friends {
		if f.Standing() == ledger.StandingOwes {
			owes = append(owes, f)
		}
	}
	sort.SliceStable(owes, func(i, j int) bool { return owes[i].Balance < owes[j].Balance })
	if len(owes) > n {
		owes = owes[:n]
	}

	out := make([]string, 0, len(owes))
	for _, f := range owes {
		out = append(out, f.Summary(currency))
	}
	return out
}

// FormatReport generates a human-readable markdown report.
func FormatReport(rep *BalanceReport) string {
	var b strings.Builder

	b.WriteString("# splitr Balance Report\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", rep.GeneratedAt))

	b.WriteString("## Friends\n\n")
	if len(rep.Friends) == 0 {
		b.WriteString("No friends yet.\n\n")
	} else {
		b.WriteString("| Friend | Balance | Bills | Billed | Status |\n")
		b.WriteString("|--------|---------|-------|--------|--------|\n")
		for _, l := range rep.Friends {
			b.WriteString(fmt.Sprintf("| %s | %s | %d | %s%d | %s |\n",
				l.Name, signed(rep.Currency, l.Balance), l.SplitCount,
				rep.Currency, l.TotalBilled, l.Summary))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Totals\n\n")
	b.WriteString(fmt.Sprintf("- **Owed to you:** %s%d\n", rep.Currency, rep.OwedToYou))
	b.WriteString(fmt.Sprintf("- **You owe:** %s%d\n", rep.Currency, rep.YouOwe))
	b.WriteString(fmt.Sprintf("- **Net:** %s\n", signed(rep.Currency, rep.Net)))
	b.WriteString(fmt.Sprintf("- **Bills split:** %d\n\n", rep.SplitCount))

	if len(rep.LargestDebts) > 0 {
		b.WriteString("## Settle First\n\n")
		for _, d := range rep.LargestDebts {
			b.WriteString(fmt.Sprintf("- %s\n", d))
		}
		b.WriteString("\n")
	}

	if len(rep.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range rep.Warnings {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	return b.String()
}

func signed(currency string, v int64) string {
	if v < 0 {
		return fmt.Sprintf("-%s%d", currency, -v)
	}
	return fmt.Sprintf("%s%d", currency, v)
}

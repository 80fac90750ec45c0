// Package ledger holds the friend/balance model for splitr and the rules
// that update it.
//
// Every type here is a value. Operations return a new snapshot instead of
// mutating the receiver, so a Session captured before an action still
// reads the same after it.
package ledger

import (
	"fmt"
	"strings"
	"unicode"
)

// Friend is a single entry on the roster.
//
// Balance is signed: positive means the friend owes the user, negative
// means the user owes the friend, zero means settled.
type Friend struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Image   string `json:"image"`
	Balance int64  `json:"balance"`
}

// Standing classifies a balance from the user's point of view.
type Standing int

const (
	StandingEven Standing = iota
	StandingOwed          // friend owes the user
	StandingOwes          // user owes the friend
)

func (s Standing) String() string {
	switch s {
	case StandingOwed:
		return "owed"
	case StandingOwes:
		return "owes"
	default:
		return "even"
	}
}

// Standing reports which way the friend's balance points.
func (f Friend) Standing() Standing {
	switch {
	case f.Balance > 0:
		return StandingOwed
	case f.Balance < 0:
		return StandingOwes
	default:
		return StandingEven
	}
}

// Summary renders the balance as a sentence, e.g. "You owe Clark ₹7".
func (f Friend) Summary(currency string) string {
	switch f.Standing() {
	case StandingOwes:
		return fmt.Sprintf("You owe %s %s%d", f.Name, currency, -f.Balance)
	case StandingOwed:
		return fmt.Sprintf("%s owes you %s%d", f.Name, currency, f.Balance)
	default:
		return fmt.Sprintf("You and %s are even.", f.Name)
	}
}

// NameKey folds a display name into a lookup key: lowercased with all
// whitespace removed. It is only a lookup aid; it is not unique and is
// never used as a friend's identity.
func NameKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

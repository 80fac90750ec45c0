package ledger

import (
	"fmt"
	"strings"
)

// Payer names who covered the bill at the till.
type Payer int

const (
	PayerUser Payer = iota
	PayerFriend
)

func (p Payer) String() string {
	if p == PayerFriend {
		return "friend"
	}
	return "user"
}

// ParsePayer accepts "user" (or "you") and "friend".
func ParsePayer(s string) (Payer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user", "you", "me":
		return PayerUser, nil
	case "friend":
		return PayerFriend, nil
	default:
		return PayerUser, fmt.Errorf("unknown payer %q: want user or friend", s)
	}
}

// Bill is a transient split-bill submission.
type Bill struct {
	Total      int64 `json:"total"`
	PaidByUser int64 `json:"paid_by_user"`
	Payer      Payer `json:"payer"`
}

// PaidByFriend is the friend's share of the bill. It is not clamped and
// goes negative when the user's expense exceeds the total.
func (b Bill) PaidByFriend() int64 {
	return b.Total - b.PaidByUser
}

// Ready reports whether the bill may be submitted: both the total and the
// user's expense must be non-zero.
func (b Bill) Ready() bool {
	return b.Total != 0 && b.PaidByUser != 0
}

// Delta is the change applied to the friend's balance.
func (b Bill) Delta() int64 {
	return ComputeDelta(b.Total, b.PaidByUser, b.Payer)
}

// ComputeDelta turns a split into a signed balance change for the friend.
// When the user pays, the friend now owes their share (total - paidByUser).
// When the friend pays, the user owes what their own share was, so the
// friend's balance drops by paidByUser.
func ComputeDelta(total, paidByUser int64, payer Payer) int64 {
	if payer == PayerFriend {
		return -paidByUser
	}
	return total - paidByUser
}

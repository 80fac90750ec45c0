package database

import (
	"fmt"

	"github.com/Mr-Dark-debug/splitr/internal/ledger"
)

// RecordEvent writes a session event into the journal. A split also
// refreshes the friend row first, so it never depends on an earlier
// friend write having landed.
func RecordEvent(store Store, ev ledger.Event, at int64) error {
	friend := &FriendRecord{
		FriendID:  ev.Friend.ID,
		Name:      ev.Friend.Name,
		Image:     ev.Friend.Image,
		Balance:   ev.Friend.Balance,
		CreatedAt: at,
	}

	switch ev.Kind {
	case ledger.EventFriendAdded:
		return store.RecordFriend(friend)

	case ledger.EventBillSplit:
		if err := store.RecordFriend(friend); err != nil {
			return err
		}
		_, err := store.RecordSplit(&SplitRecord{
			FriendID:     ev.Friend.ID,
			Total:        ev.Bill.Total,
			PaidByUser:   ev.Bill.PaidByUser,
			Payer:        ev.Bill.Payer.String(),
			Delta:        ev.Delta,
			BalanceAfter: ev.BalanceAfter,
			CreatedAt:    at,
		})
		return err

	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
}

// RecordRoster records every friend, e.g. the seed roster at startup.
func RecordRoster(store Store, friends []ledger.Friend, at int64) error {
	for _, f := range friends {
		if err := RecordEvent(store, ledger.Event{Kind: ledger.EventFriendAdded, Friend: f}, at); err != nil {
			return err
		}
	}
	return nil
}

package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/Mr-Dark-debug/splitr/internal/database"
	"github.com/Mr-Dark-debug/splitr/internal/ledger"
)

func TestBuildTotals(t *testing.T) {
	store, err := database.NewDBService(database.MemoryPath)
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer store.Close()

	friends := ledger.SeedFriends()
	for _, f := range friends {
		if err := store.RecordFriend(&database.FriendRecord{FriendID: f.ID, Name: f.Name, Image: f.Image, Balance: f.Balance, CreatedAt: 1}); err != nil {
			t.Fatalf("RecordFriend failed: %v", err)
		}
	}
	if _, err := store.RecordSplit(&database.SplitRecord{
		FriendID: "118836", Total: 50, PaidByUser: 20, Payer: "user", Delta: 30, BalanceAfter: 23, CreatedAt: 2,
	}); err != nil {
		t.Fatalf("RecordSplit failed: %v", err)
	}

	rep := NewReporter(store, "₹").Build(friends)

	if rep.OwedToYou != 20 {
		t.Errorf("expected owed to you 20, got %d", rep.OwedToYou)
	}
	if rep.YouOwe != 7 {
		t.Errorf("expected you owe 7, got %d", rep.YouOwe)
	}
	if rep.Net != 13 {
		t.Errorf("expected net 13, got %d", rep.Net)
	}
	if rep.SplitCount != 1 || rep.Friends[0].SplitCount != 1 || rep.Friends[0].TotalBilled != 50 {
		t.Errorf("unexpected split stats: %+v", rep.Friends[0])
	}
	if len(rep.LargestDebts) != 1 || rep.LargestDebts[0] != "You owe Clark ₹7" {
		t.Errorf("unexpected largest debts %v", rep.LargestDebts)
	}

	md := FormatReport(rep)
	for _, want := range []string{"| Clark | -₹7 |", "**Net:** ₹13", "Sarah owes you ₹20", "## Settle First"} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q:\n%s", want, md)
		}
	}
}

type failingStore struct{ database.Store }

func (failingStore) GetFriendStats(string) (*database.FriendStats, error) {
	return nil, errors.New("journal closed")
}

func TestBuildWarnsOnStoreFailure(t *testing.T) {
	rep := NewReporter(failingStore{}, "$").Build([]ledger.Friend{{ID: "x", Name: "Xia", Balance: 4}})

	if len(rep.Warnings) != 1 || !strings.Contains(rep.Warnings[0], "Xia") {
		t.Errorf("expected one warning naming Xia, got %v", rep.Warnings)
	}
	if rep.OwedToYou != 4 {
		t.Errorf("balances should still be totalled, got %d", rep.OwedToYou)
	}
}

func TestFormatReportEmpty(t *testing.T) {
	md := FormatReport(&BalanceReport{Currency: "₹"})
	if !strings.Contains(md, "No friends yet.") {
		t.Errorf("expected empty roster note:\n%s", md)
	}
}

package ledger

import (
	"fmt"
	"testing"
)

func TestRegistryAddKeepsOrderAndZeroBalance(t *testing.T) {
	var r Registry
	for i := 0; i < 5; i++ {
		r = r.Add(Friend{ID: fmt.Sprintf("id-%d", i), Name: fmt.Sprintf("friend %d", i)})
	}

	if r.Len() != 5 {
		t.Fatalf("expected 5 friends, got %d", r.Len())
	}
	for i, f := range r.Friends() {
		if f.ID != fmt.Sprintf("id-%d", i) {
			t.Errorf("friend %d: expected id-%d, got %s", i, i, f.ID)
		}
		if f.Balance != 0 {
			t.Errorf("friend %s: expected zero balance, got %d", f.ID, f.Balance)
		}
	}
}

func TestRegistryAdjustBalanceTouchesOnlyTarget(t *testing.T) {
	r := NewRegistry(SeedFriends()...)
	before := r.Friends()

	after := r.AdjustBalance("933372", 15)

	for i, f := range after.Friends() {
		want := before[i].Balance
		if f.ID == "933372" {
			want += 15
		}
		if f.Balance != want {
			t.Errorf("%s: expected balance %d, got %d", f.Name, want, f.Balance)
		}
	}
}

func TestRegistryAdjustBalanceUnknownID(t *testing.T) {
	r := NewRegistry(SeedFriends()...)
	after := r.AdjustBalance("nobody", 100)

	for i, f := range after.Friends() {
		if f != r.Friends()[i] {
			t.Errorf("expected %+v unchanged, got %+v", r.Friends()[i], f)
		}
	}
}

func TestRegistrySnapshotsDoNotAlias(t *testing.T) {
	r1 := NewRegistry(Friend{ID: "a", Name: "A"})
	r2 := r1.Add(Friend{ID: "b", Name: "B"})
	r3 := r2.AdjustBalance("a", 9)

	if got, _ := r1.Lookup("a"); got.Balance != 0 {
		t.Errorf("r1 mutated: balance %d", got.Balance)
	}
	if got, _ := r2.Lookup("a"); got.Balance != 0 {
		t.Errorf("r2 mutated: balance %d", got.Balance)
	}
	if got, _ := r3.Lookup("a"); got.Balance != 9 {
		t.Errorf("r3: expected balance 9, got %d", got.Balance)
	}
	if r1.Len() != 1 {
		t.Errorf("r1 grew to %d", r1.Len())
	}

	friends := r3.Friends()
	friends[0].Balance = 1000
	if got, _ := r3.Lookup("a"); got.Balance != 9 {
		t.Errorf("Friends() leaked internal storage: balance %d", got.Balance)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		friend Friend
		want   string
	}{
		{Friend{Name: "Clark", Balance: -7}, "You owe Clark ₹7"},
		{Friend{Name: "Sarah", Balance: 20}, "Sarah owes you ₹20"},
		{Friend{Name: "Anthony"}, "You and Anthony are even."},
	}
	for _, tt := range tests {
		if got := tt.friend.Summary("₹"); got != tt.want {
			t.Errorf("Summary(%+v) = %q, want %q", tt.friend, got, tt.want)
		}
	}
}

func TestNameKey(t *testing.T) {
	if got := NameKey("  Mary Jane\tWatson "); got != "maryjanewatson" {
		t.Errorf("NameKey = %q", got)
	}
}

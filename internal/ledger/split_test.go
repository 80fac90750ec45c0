package ledger

import "testing"

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		paidByUser int64
		payer      Payer
		want       int64
	}{
		{"user pays", 100, 30, PayerUser, 70},
		{"friend pays", 100, 30, PayerFriend, -30},
		{"user overpays share", 50, 80, PayerUser, -30},
		{"user covers everything", 40, 40, PayerUser, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeDelta(tt.total, tt.paidByUser, tt.payer); got != tt.want {
				t.Errorf("ComputeDelta(%d, %d, %s) = %d, want %d",
					tt.total, tt.paidByUser, tt.payer, got, tt.want)
			}
		})
	}
}

func TestDeltaAppliedToBalance(t *testing.T) {
	r := NewRegistry(Friend{ID: "clark", Name: "Clark", Balance: -7})
	r = r.AdjustBalance("clark", ComputeDelta(100, 30, PayerUser))

	got, _ := r.Lookup("clark")
	if got.Balance != 63 {
		t.Errorf("expected balance 63, got %d", got.Balance)
	}
}

func TestBillReady(t *testing.T) {
	tests := []struct {
		bill Bill
		want bool
	}{
		{Bill{Total: 10, PaidByUser: 5}, true},
		{Bill{Total: 0, PaidByUser: 5}, false},
		{Bill{Total: 10, PaidByUser: 0}, false},
	}
	for _, tt := range tests {
		if got := tt.bill.Ready(); got != tt.want {
			t.Errorf("%+v.Ready() = %v, want %v", tt.bill, got, tt.want)
		}
	}
}

func TestParsePayer(t *testing.T) {
	for in, want := range map[string]Payer{"user": PayerUser, "You": PayerUser, " friend ": PayerFriend} {
		got, err := ParsePayer(in)
		if err != nil {
			t.Fatalf("ParsePayer(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePayer(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParsePayer("bank"); err == nil {
		t.Error("expected error for unknown payer")
	}
}

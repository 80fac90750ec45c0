package database

import (
	"testing"
	"time"
)

func newTestStore(t *testing.T) *DBService {
	t.Helper()
	svc, err := NewDBService(MemoryPath)
	if err != nil {
		t.Fatalf("NewDBService(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func recordFriend(t *testing.T, svc *DBService, id, name string, balance int64) {
	t.Helper()
	err := svc.RecordFriend(&FriendRecord{
		FriendID:  id,
		Name:      name,
		Image:     "https://i.pravatar.cc/48?u=" + id,
		Balance:   balance,
		CreatedAt: time.Now().UnixNano(),
	})
	if err != nil {
		t.Fatalf("RecordFriend(%s) failed: %v", id, err)
	}
}

// TestNewDBService verifies that the journal initializes with the
// embedded schema.
func TestNewDBService(t *testing.T) {
	newTestStore(t)
}

// TestRecordSplitAndQuery verifies split insertion, ordering and the
// friend name join.
func TestRecordSplitAndQuery(t *testing.T) {
	svc := newTestStore(t)
	recordFriend(t, svc, "118836", "Clark", -7)

	now := time.Now().UnixNano()
	splits := []*SplitRecord{
		{FriendID: "118836", Total: 50, PaidByUser: 20, Payer: "user", Delta: 30, BalanceAfter: 23, CreatedAt: now},
		{FriendID: "118836", Total: 10, PaidByUser: 4, Payer: "friend", Delta: -4, BalanceAfter: 19, CreatedAt: now + 1000},
	}
	for _, sp := range splits {
		id, err := svc.RecordSplit(sp)
		if err != nil {
			t.Fatalf("RecordSplit failed: %v", err)
		}
		if id == 0 || sp.SplitID != id {
			t.Errorf("expected split id to be assigned, got %d / %d", id, sp.SplitID)
		}
	}

	got, err := svc.QuerySplits(SplitFilter{Limit: 10})
	if err != nil {
		t.Fatalf("QuerySplits failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 splits, got %d", len(got))
	}
	if got[0].Delta != -4 || got[1].Delta != 30 {
		t.Errorf("expected newest first, got deltas %d, %d", got[0].Delta, got[1].Delta)
	}
	if got[0].FriendName != "Clark" {
		t.Errorf("expected friend name Clark, got %q", got[0].FriendName)
	}
}

func TestQuerySplitsFilterAndLimit(t *testing.T) {
	svc := newTestStore(t)
	recordFriend(t, svc, "a", "Ann", 0)
	recordFriend(t, svc, "b", "Ben", 0)

	now := time.Now().UnixNano()
	for i, id := range []string{"a", "b", "a", "a"} {
		_, err := svc.RecordSplit(&SplitRecord{
			FriendID: id, Total: 10, PaidByUser: 5, Payer: "user",
			Delta: 5, BalanceAfter: 5, CreatedAt: now + int64(i),
		})
		if err != nil {
			t.Fatalf("RecordSplit failed: %v", err)
		}
	}

	friend := "a"
	got, err := svc.QuerySplits(SplitFilter{FriendID: &friend})
	if err != nil {
		t.Fatalf("QuerySplits failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 splits for a, got %d", len(got))
	}

	got, err = svc.QuerySplits(SplitFilter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("QuerySplits failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 splits with limit, got %d", len(got))
	}
}

func TestRecordSplitUnknownFriend(t *testing.T) {
	svc := newTestStore(t)
	_, err := svc.RecordSplit(&SplitRecord{
		FriendID: "ghost", Total: 1, PaidByUser: 1, Payer: "user", CreatedAt: 1,
	})
	if err == nil {
		t.Fatal("expected foreign key violation for unknown friend")
	}
}

func TestRecordSplitRejectsBadPayer(t *testing.T) {
	svc := newTestStore(t)
	recordFriend(t, svc, "a", "Ann", 0)
	_, err := svc.RecordSplit(&SplitRecord{
		FriendID: "a", Total: 1, PaidByUser: 1, Payer: "bank", CreatedAt: 1,
	})
	if err == nil {
		t.Fatal("expected check constraint violation for payer")
	}
}

// TestGetFriendStats verifies aggregation over recorded splits.
func TestGetFriendStats(t *testing.T) {
	svc := newTestStore(t)
	recordFriend(t, svc, "933372", "Sarah", 20)

	for _, sp := range []*SplitRecord{
		{FriendID: "933372", Total: 100, PaidByUser: 30, Payer: "user", Delta: 70, BalanceAfter: 90, CreatedAt: 1},
		{FriendID: "933372", Total: 100, PaidByUser: 30, Payer: "friend", Delta: -30, BalanceAfter: 60, CreatedAt: 2},
	} {
		if _, err := svc.RecordSplit(sp); err != nil {
			t.Fatalf("RecordSplit failed: %v", err)
		}
	}

	stats, err := svc.GetFriendStats("933372")
	if err != nil {
		t.Fatalf("GetFriendStats failed: %v", err)
	}
	if stats.SplitCount != 2 {
		t.Errorf("expected 2 splits, got %d", stats.SplitCount)
	}
	if stats.TotalBilled != 200 {
		t.Errorf("expected total billed 200, got %d", stats.TotalBilled)
	}
	if stats.TotalPaidByYou != 60 {
		t.Errorf("expected paid by you 60, got %d", stats.TotalPaidByYou)
	}
	if stats.NetDelta != 40 {
		t.Errorf("expected net delta 40, got %d", stats.NetDelta)
	}

	empty, err := svc.GetFriendStats("nobody")
	if err != nil {
		t.Fatalf("GetFriendStats(nobody) failed: %v", err)
	}
	if empty.SplitCount != 0 || empty.NetDelta != 0 {
		t.Errorf("expected zero stats, got %+v", empty)
	}
}

func TestRecordFriendUpsert(t *testing.T) {
	svc := newTestStore(t)
	recordFriend(t, svc, "a", "Ann", 0)
	recordFriend(t, svc, "a", "Annie", 12)

	if _, err := svc.RecordSplit(&SplitRecord{
		FriendID: "a", Total: 2, PaidByUser: 1, Payer: "user", Delta: 1, BalanceAfter: 13, CreatedAt: 1,
	}); err != nil {
		t.Fatalf("RecordSplit failed: %v", err)
	}
	got, err := svc.QuerySplits(SplitFilter{})
	if err != nil {
		t.Fatalf("QuerySplits failed: %v", err)
	}
	if len(got) != 1 || got[0].FriendName != "Annie" {
		t.Errorf("expected refreshed name Annie, got %+v", got)
	}
}

package domain

import "testing"

func TestResolvePicksTransactionBySpentState(t *testing.T) {
	t.Parallel()

	detail := &OutputDetail{
		Amount:             "100",
		TransactionID:      "0xcreated",
		TransactionIDSpent: "0xspent",
	}

	created := Resolve(RawOutputRef{OutputID: "o1"}, detail)
	if !created.Resolved || created.TransactionID != "0xcreated" || created.Amount != "100" {
		t.Fatalf("unexpected unspent resolution: %+v", created)
	}

	spent := Resolve(RawOutputRef{OutputID: "o1", IsSpent: true}, detail)
	if spent.TransactionID != "0xspent" {
		t.Fatalf("expected spending transaction, got %s", spent.TransactionID)
	}
}

func TestResolveWithoutDetail(t *testing.T) {
	t.Parallel()

	out := Resolve(RawOutputRef{OutputID: "o1", MilestoneTimestamp: 10}, nil)
	if out.Resolved || out.TransactionID != "" || out.Amount != "" {
		t.Fatalf("expected unresolved output, got %+v", out)
	}
	if out.OutputID != "o1" || out.MilestoneTimestamp != 10 {
		t.Fatalf("expected ref to be kept, got %+v", out)
	}
}

func TestTokenInfoBaseUnit(t *testing.T) {
	t.Parallel()

	if got := (TokenInfo{Unit: "SMR", Subunit: "glow"}).BaseUnit(); got != "glow" {
		t.Fatalf("expected glow, got %s", got)
	}
	if got := (TokenInfo{Unit: "SMR"}).BaseUnit(); got != "SMR" {
		t.Fatalf("expected SMR, got %s", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	if got := FormatTimestamp(GenesisTimestamp); got != GenesisLabel {
		t.Fatalf("expected genesis label, got %q", got)
	}

	if got := FormatTimestamp(1696377600); got != "2023-10-04 00:00:00" {
		t.Fatalf("unexpected date %q", got)
	}

	if _, ok := (TransactionRecord{}).Time(); ok {
		t.Fatal("expected genesis record to have no time")
	}
}

package domain

// GenesisTimestamp marks outputs created before the ledger's era start.
// It is never a real point in time and must not be rendered as 1970-01-01.
const GenesisTimestamp uint32 = 0

// RawOutputRef is a ledger update for an address as reported by the output source.
type RawOutputRef struct {
	OutputID           string
	IsSpent            bool
	MilestoneTimestamp uint32
}

// IsGenesis reports whether the output originates from the genesis snapshot.
func (r RawOutputRef) IsGenesis() bool {
	return r.MilestoneTimestamp == GenesisTimestamp
}

// LedgerUpdate is a RawOutputRef together with the index of the milestone that booked it.
type LedgerUpdate struct {
	RawOutputRef

	MilestoneIndex uint32
}

// OutputDetail is the part of an output body and metadata the history engine needs.
type OutputDetail struct {
	Amount                   string
	TransactionID            string
	TransactionIDSpent       string
	MilestoneTimestampBooked uint32
}

// ResolvedOutput is a RawOutputRef enriched with its detail.
// Resolved is false when the detail lookup failed; Amount and TransactionID stay empty then.
type ResolvedOutput struct {
	RawOutputRef

	Resolved      bool
	Amount        string
	TransactionID string
}

// Resolve attaches detail to ref. The transaction id is the spending
// transaction for a spent output and the creating transaction otherwise.
func Resolve(ref RawOutputRef, detail *OutputDetail) ResolvedOutput {
	out := ResolvedOutput{RawOutputRef: ref}
	if detail == nil {
		return out
	}

	out.Resolved = true
	out.Amount = detail.Amount
	if ref.IsSpent {
		out.TransactionID = detail.TransactionIDSpent
	} else {
		out.TransactionID = detail.TransactionID
	}

	return out
}

// TransactionGroup holds the outputs produced or consumed by one transaction.
type TransactionGroup struct {
	TransactionID string
	Outputs       []ResolvedOutput
}

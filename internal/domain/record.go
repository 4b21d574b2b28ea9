package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenesisLabel is rendered instead of a date for records with no real timestamp.
const GenesisLabel = "Genesis"

// DateLayout is the layout used for record dates (UTC).
const DateLayout = "2006-01-02 15:04:05"

// TransactionRecord is one row of an address history.
type TransactionRecord struct {
	TransactionID          string
	Timestamp              uint32
	IsGenesisByDate        bool
	IsSpent                bool
	BalanceChange          decimal.Decimal
	DateFormatted          string
	BalanceChangeFormatted string
	Outputs                []ResolvedOutput
}

// Time returns the record timestamp as a time.Time. ok is false for genesis timestamps.
func (r TransactionRecord) Time() (t time.Time, ok bool) {
	if r.Timestamp == GenesisTimestamp {
		return time.Time{}, false
	}
	return time.Unix(int64(r.Timestamp), 0).UTC(), true
}

// FormatTimestamp renders a milestone timestamp, never falling back to the unix epoch.
func FormatTimestamp(ts uint32) string {
	if ts == GenesisTimestamp {
		return GenesisLabel
	}
	return time.Unix(int64(ts), 0).UTC().Format(DateLayout)
}

package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"slices"
	"time"

	"github.com/iho/ledgerexplorer/internal/domain"
)

// CSVHeader is the header row of the exported history.
var CSVHeader = []string{"Timestamp", "TransactionId", "Balance changes"}

// AssembleRecords builds one record per transaction group, ordered by ascending timestamp.
// Groups sharing a timestamp keep their relative order. Output ids whose amount could not be
// parsed are returned as rejected.
func AssembleRecords(groups []domain.TransactionGroup, token domain.TokenInfo, decimalPlaces uint8) (records []domain.TransactionRecord, rejected []string) {
	records = make([]domain.TransactionRecord, 0, len(groups))

	for _, group := range groups {
		change, bad := BalanceChange(group.Outputs)
		rejected = append(rejected, bad...)

		timestamp := GroupTimestamp(group.Outputs)
		isSpent := IsSpentBalance(change)

		sign := "+"
		if isSpent {
			sign = "-"
		}
		formatted := sign + domain.FormatAmount(change.Abs(), token, domain.FormatOptions{
			DecimalPlaces:    decimalPlaces,
			TrailingDecimals: true,
		})

		records = append(records, domain.TransactionRecord{
			TransactionID:          group.TransactionID,
			Timestamp:              timestamp,
			IsGenesisByDate:        hasGenesisOutput(group.Outputs),
			IsSpent:                isSpent,
			BalanceChange:          change,
			DateFormatted:          domain.FormatTimestamp(timestamp),
			BalanceChangeFormatted: formatted,
			Outputs:                slices.Clone(group.Outputs),
		})
	}

	slices.SortStableFunc(records, func(a, b domain.TransactionRecord) int {
		switch {
		case a.Timestamp < b.Timestamp:
			return -1
		case a.Timestamp > b.Timestamp:
			return 1
		default:
			return 0
		}
	})

	return records, rejected
}

// FilterAfter keeps the records whose timestamp is strictly after cutoff.
// Genesis records have no date and never pass a cutoff.
func FilterAfter(records []domain.TransactionRecord, cutoff time.Time) []domain.TransactionRecord {
	kept := make([]domain.TransactionRecord, 0, len(records))

	for _, record := range records {
		at, ok := record.Time()
		if ok && at.After(cutoff) {
			kept = append(kept, record)
		}
	}

	return kept
}

// skippedAfter counts the skipped outputs that fall in the period FilterAfter keeps:
// ungrouped outputs booked after cutoff and rejected outputs of the kept records.
func skippedAfter(kept []domain.TransactionRecord, ungrouped []domain.ResolvedOutput, rejected []string, cutoff time.Time) int {
	skipped := 0
	for _, out := range ungrouped {
		if !out.IsGenesis() && time.Unix(int64(out.MilestoneTimestamp), 0).After(cutoff) {
			skipped++
		}
	}

	pending := make(map[string]int, len(rejected))
	for _, outputID := range rejected {
		pending[outputID]++
	}
	for _, record := range kept {
		for _, out := range record.Outputs {
			if pending[out.OutputID] > 0 {
				pending[out.OutputID]--
				skipped++
			}
		}
	}

	return skipped
}

// RenderCSV renders records as the history CSV document.
func RenderCSV(records []domain.TransactionRecord) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, record := range records {
		row := []string{record.DateFormatted, record.TransactionID, record.BalanceChangeFormatted}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row for %s: %w", record.TransactionID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.String(), nil
}

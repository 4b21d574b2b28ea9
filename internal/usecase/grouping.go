package usecase

import (
	"github.com/iho/ledgerexplorer/internal/domain"
)

// GroupByTransaction partitions outputs by the transaction that created or spent them.
//
// Outputs without a transaction id are not grouped; they are returned as skipped. Groups keep
// the order in which their transaction was first seen, and outputs keep their input order
// inside a group.
func GroupByTransaction(outputs []domain.ResolvedOutput) (groups []domain.TransactionGroup, skipped []domain.ResolvedOutput) {
	index := make(map[string]int)

	for _, out := range outputs {
		if out.TransactionID == "" {
			skipped = append(skipped, out)
			continue
		}

		i, ok := index[out.TransactionID]
		if !ok {
			i = len(groups)
			index[out.TransactionID] = i
			groups = append(groups, domain.TransactionGroup{TransactionID: out.TransactionID})
		}
		groups[i].Outputs = append(groups[i].Outputs, out)
	}

	return groups, skipped
}

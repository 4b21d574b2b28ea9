package usecase

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerexplorer/internal/domain"
)

var errInvalidAmount = errors.New("amount is not a non-negative integer")

// BalanceChange sums the signed amounts of a transaction's outputs: spent outputs decrease the
// balance, deposited outputs increase it. Outputs whose amount is missing or unparsable
// contribute nothing; their ids are returned as rejected.
func BalanceChange(outputs []domain.ResolvedOutput) (total decimal.Decimal, rejected []string) {
	total = decimal.Zero

	for _, out := range outputs {
		amount, err := parseAmount(out.Amount)
		if err != nil {
			rejected = append(rejected, out.OutputID)
			continue
		}

		if out.IsSpent {
			total = total.Sub(amount)
		} else {
			total = total.Add(amount)
		}
	}

	return total, rejected
}

// IsSpentBalance classifies a balance change. A net-zero transaction counts as spent.
func IsSpentBalance(change decimal.Decimal) bool {
	return change.LessThanOrEqual(decimal.Zero)
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", errInvalidAmount)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", errInvalidAmount, err)
	}

	if !amount.IsInteger() || amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", errInvalidAmount, raw)
	}

	return amount, nil
}

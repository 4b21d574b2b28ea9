package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/ledgerexplorer/internal/domain"
	"github.com/iho/ledgerexplorer/internal/usecase"
)

// TokenResponse represents network token conventions in API responses.
type TokenResponse struct {
	Decimals uint8  `json:"decimals"`
	Unit     string `json:"unit"`
	Subunit  string `json:"subunit,omitempty"`
}

// TokenFromDomain converts domain token info to response.
func TokenFromDomain(t domain.TokenInfo) TokenResponse {
	return TokenResponse{
		Decimals: t.Decimals,
		Unit:     t.Unit,
		Subunit:  t.Subunit,
	}
}

// OutputResponse represents a resolved output in API responses.
type OutputResponse struct {
	OutputID           string `json:"output_id"`
	IsSpent            bool   `json:"is_spent"`
	MilestoneTimestamp uint32 `json:"milestone_timestamp"`
	Amount             string `json:"amount"`
}

// TransactionRecordResponse represents a history record in API responses.
type TransactionRecordResponse struct {
	TransactionID          string           `json:"transaction_id"`
	Timestamp              uint32           `json:"timestamp"`
	Date                   string           `json:"date"`
	IsGenesisByDate        bool             `json:"is_genesis_by_date"`
	IsSpent                bool             `json:"is_spent"`
	BalanceChange          decimal.Decimal  `json:"balance_change"`
	BalanceChangeFormatted string           `json:"balance_change_formatted"`
	Outputs                []OutputResponse `json:"outputs"`
}

// RecordFromDomain converts a domain record to response.
func RecordFromDomain(r domain.TransactionRecord) TransactionRecordResponse {
	outputs := make([]OutputResponse, len(r.Outputs))
	for i, o := range r.Outputs {
		outputs[i] = OutputResponse{
			OutputID:           o.OutputID,
			IsSpent:            o.IsSpent,
			MilestoneTimestamp: o.MilestoneTimestamp,
			Amount:             o.Amount,
		}
	}

	return TransactionRecordResponse{
		TransactionID:          r.TransactionID,
		Timestamp:              r.Timestamp,
		Date:                   r.DateFormatted,
		IsGenesisByDate:        r.IsGenesisByDate,
		IsSpent:                r.IsSpent,
		BalanceChange:          r.BalanceChange,
		BalanceChangeFormatted: r.BalanceChangeFormatted,
		Outputs:                outputs,
	}
}

// HistoryResponse represents an address history in API responses.
type HistoryResponse struct {
	ExportID       string                      `json:"export_id"`
	Network        string                      `json:"network"`
	Address        string                      `json:"address"`
	Token          TokenResponse               `json:"token"`
	TotalOutputs   int                         `json:"total_outputs"`
	SkippedOutputs int                         `json:"skipped_outputs"`
	Records        []TransactionRecordResponse `json:"records"`
}

// HistoryFromUseCase converts a use case history to response.
func HistoryFromUseCase(h *usecase.History) *HistoryResponse {
	records := make([]TransactionRecordResponse, len(h.Records))
	for i, r := range h.Records {
		records[i] = RecordFromDomain(r)
	}

	return &HistoryResponse{
		ExportID:       h.ExportID,
		Network:        h.Network,
		Address:        h.Address,
		Token:          TokenFromDomain(h.Token),
		TotalOutputs:   h.TotalOutputs,
		SkippedOutputs: h.SkippedOutputs,
		Records:        records,
	}
}

// NetworkResponse represents a network in API responses.
type NetworkResponse struct {
	Name                  string        `json:"name"`
	Label                 string        `json:"label"`
	Protocol              string        `json:"protocol"`
	Token                 TokenResponse `json:"token"`
	SupportsHistoryExport bool          `json:"supports_history_export"`
}

// NetworksFromDomain converts domain networks to responses.
func NetworksFromDomain(networks []domain.Network) []NetworkResponse {
	result := make([]NetworkResponse, len(networks))
	for i, n := range networks {
		result[i] = NetworkResponse{
			Name:                  n.Name,
			Label:                 n.Label,
			Protocol:              n.Protocol,
			Token:                 TokenFromDomain(n.Token),
			SupportsHistoryExport: n.SupportsHistoryExport,
		}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

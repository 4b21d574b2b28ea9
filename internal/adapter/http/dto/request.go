package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/iho/ledgerexplorer/internal/usecase"
)

// TargetDateLayout is the accepted layout of target dates.
const TargetDateLayout = "2006-01-02"

// HistoryRequest represents the options of a history view or download.
type HistoryRequest struct {
	// TargetDate keeps only transactions after this day, YYYY-MM-DD or RFC 3339.
	TargetDate    string `json:"target_date,omitempty"`
	DecimalPlaces *uint8 `json:"decimal_places,omitempty"`
	Since         uint32 `json:"since,omitempty"`
}

// HistoryRequestFromQuery reads history options from URL query parameters.
func HistoryRequestFromQuery(q url.Values) (HistoryRequest, error) {
	req := HistoryRequest{TargetDate: q.Get("target_date")}

	if v := q.Get("decimal_places"); v != "" {
		places, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return req, fmt.Errorf("invalid decimal_places %q", v)
		}
		p := uint8(places)
		req.DecimalPlaces = &p
	}

	if v := q.Get("since"); v != "" {
		since, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return req, fmt.Errorf("invalid since %q", v)
		}
		req.Since = uint32(since)
	}

	return req, nil
}

// ToUseCaseInput converts to use case input.
func (r *HistoryRequest) ToUseCaseInput(network, address string) (usecase.GetHistoryInput, error) {
	input := usecase.GetHistoryInput{
		Network:       network,
		Address:       address,
		Since:         r.Since,
		DecimalPlaces: r.DecimalPlaces,
	}

	if r.TargetDate != "" {
		target, err := parseTargetDate(r.TargetDate)
		if err != nil {
			return input, err
		}
		input.TargetDate = &target
	}

	return input, nil
}

func parseTargetDate(value string) (time.Time, error) {
	if t, err := time.Parse(TargetDateLayout, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid target_date %q: want %s or RFC 3339", value, TargetDateLayout)
}

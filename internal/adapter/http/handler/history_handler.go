package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/ledgerexplorer/internal/adapter/http/dto"
	"github.com/iho/ledgerexplorer/internal/domain"
	"github.com/iho/ledgerexplorer/internal/usecase"
)

// Response headers set on history responses.
const (
	HeaderExportID       = "X-Export-ID"
	HeaderSkippedOutputs = "X-Skipped-Outputs"
)

// HistoryService defines the behavior needed by HistoryHandler.
type HistoryService interface {
	GetHistory(ctx context.Context, input usecase.GetHistoryInput) (*usecase.History, error)
	ExportHistory(ctx context.Context, input usecase.GetHistoryInput) (*usecase.ExportResult, error)
}

// NetworkLister lists the networks served by this instance.
type NetworkLister interface {
	Networks() []domain.Network
}

// HistoryHandler handles address history HTTP requests.
type HistoryHandler struct {
	historyUC HistoryService
	networks  NetworkLister
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyUC HistoryService, networks NetworkLister) *HistoryHandler {
	return &HistoryHandler{historyUC: historyUC, networks: networks}
}

// ListNetworks returns the networks served by this instance.
func (h *HistoryHandler) ListNetworks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NetworksFromDomain(h.networks.Networks()))
}

// Get returns the reconciled history of an address as JSON.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := dto.HistoryRequestFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	input, ok := historyInput(w, r, req)
	if !ok {
		return
	}

	history, err := h.historyUC.GetHistory(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build history", err.Error())
		return
	}

	w.Header().Set(HeaderExportID, history.ExportID)
	w.Header().Set(HeaderSkippedOutputs, strconv.Itoa(history.SkippedOutputs))
	writeJSON(w, http.StatusOK, dto.HistoryFromUseCase(history))
}

// Download returns the history of an address as a zipped CSV file.
func (h *HistoryHandler) Download(w http.ResponseWriter, r *http.Request) {
	var req dto.HistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, ok := historyInput(w, r, req)
	if !ok {
		return
	}

	result, err := h.historyUC.ExportHistory(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to export history", err.Error())
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.Header().Set(HeaderExportID, result.ExportID)
	w.Header().Set(HeaderSkippedOutputs, strconv.Itoa(result.SkippedOutputs))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Content)
}

func historyInput(w http.ResponseWriter, r *http.Request, req dto.HistoryRequest) (usecase.GetHistoryInput, bool) {
	network := chi.URLParam(r, "network")
	address := chi.URLParam(r, "address")
	if network == "" || address == "" {
		writeError(w, http.StatusBadRequest, "missing network or address", "")
		return usecase.GetHistoryInput{}, false
	}

	input, err := req.ToUseCaseInput(network, address)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid history options", err.Error())
		return usecase.GetHistoryInput{}, false
	}

	return input, true
}

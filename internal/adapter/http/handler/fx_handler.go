package handler

import (
	"context"
	"net/http"

	"github.com/iho/ladrillo/internal/adapter/http/dto"
	"github.com/iho/ladrillo/internal/domain"
)

// FxRatesService defines the behavior needed by FxRatesHandler.
type FxRatesService interface {
	CurrentSnapshot(ctx context.Context) (*domain.FxRatesSnapshot, error)
}

// FxRatesHandler handles FX rate HTTP requests.
type FxRatesHandler struct {
	ratesUC FxRatesService
}

// NewFxRatesHandler creates a new FxRatesHandler.
func NewFxRatesHandler(ratesUC FxRatesService) *FxRatesHandler {
	return &FxRatesHandler{ratesUC: ratesUC}
}

// Get returns the current rates snapshot.
func (h *FxRatesHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.ratesUC.CurrentSnapshot(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "rates unavailable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FxRatesFromDomain(snap))
}

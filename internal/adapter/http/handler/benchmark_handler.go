package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/ladrillo/internal/adapter/http/dto"
	"github.com/iho/ladrillo/internal/domain"
)

// BenchmarkService defines the behavior needed by BenchmarkHandler.
type BenchmarkService interface {
	ListBenchmarks(ctx context.Context) ([]domain.BenchmarkIndex, error)
	GetBenchmark(ctx context.Context, id string) (domain.BenchmarkIndex, error)
}

// BenchmarkHandler handles benchmark catalog HTTP requests.
type BenchmarkHandler struct {
	benchmarkUC BenchmarkService
}

// NewBenchmarkHandler creates a new BenchmarkHandler.
func NewBenchmarkHandler(benchmarkUC BenchmarkService) *BenchmarkHandler {
	return &BenchmarkHandler{benchmarkUC: benchmarkUC}
}

// List lists the benchmark catalog.
func (h *BenchmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	benchmarks, err := h.benchmarkUC.ListBenchmarks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list benchmarks", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BenchmarksFromDomain(benchmarks))
}

// Get retrieves a catalog entry by ID.
func (h *BenchmarkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing benchmark ID", "")
		return
	}

	benchmark, err := h.benchmarkUC.GetBenchmark(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get benchmark", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BenchmarkFromDomain(benchmark))
}

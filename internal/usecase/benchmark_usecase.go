package usecase

import (
	"context"

	"github.com/iho/ladrillo/internal/domain"
)

// BenchmarkUseCase exposes the static benchmark catalog.
type BenchmarkUseCase struct{}

// NewBenchmarkUseCase creates a new BenchmarkUseCase.
func NewBenchmarkUseCase() *BenchmarkUseCase {
	return &BenchmarkUseCase{}
}

// ListBenchmarks returns the full catalog.
func (uc *BenchmarkUseCase) ListBenchmarks(ctx context.Context) ([]domain.BenchmarkIndex, error) {
	return domain.Benchmarks(), nil
}

// GetBenchmark looks up one catalog entry.
func (uc *BenchmarkUseCase) GetBenchmark(ctx context.Context, id string) (domain.BenchmarkIndex, error) {
	b, ok := domain.BenchmarkByID(id)
	if !ok {
		return domain.BenchmarkIndex{}, domain.ErrBenchmarkNotFound
	}

	return b, nil
}

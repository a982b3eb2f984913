package usecase

import (
	"context"
	"time"

	"github.com/iho/ladrillo/internal/domain"
)

// SummaryUseCase ties transactions, settings and the benchmark catalog
// into the portfolio summary.
type SummaryUseCase struct {
	transactions TransactionRepository
	settings     SettingsRepository
	clock        func() time.Time
}

// NewSummaryUseCase creates a new SummaryUseCase. A nil clock defaults to
// time.Now.
func NewSummaryUseCase(transactions TransactionRepository, settings SettingsRepository, clock func() time.Time) *SummaryUseCase {
	if clock == nil {
		clock = time.Now
	}

	return &SummaryUseCase{
		transactions: transactions,
		settings:     settings,
		clock:        clock,
	}
}

// Summary is the portfolio state at one instant: per-kind aggregates plus
// the benchmark comparison for the selected index.
type Summary struct {
	Contributions domain.PortfolioTotals
	Withdrawals   domain.PortfolioTotals
	Benchmark     domain.BenchmarkIndex
	Projection    domain.Projection
	AsOf          time.Time
}

// Summarize computes the summary as of now. The projection uses the rate
// cached in settings; the catalog entry rides along for display.
func (uc *SummaryUseCase) Summarize(ctx context.Context) (*Summary, error) {
	txs, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	benchmark, ok := domain.BenchmarkByID(settings.SelectedBenchmark)
	if !ok {
		benchmark = domain.BenchmarkIndex{ID: settings.SelectedBenchmark}
	}

	asOf := uc.clock().UTC()

	return &Summary{
		Contributions: domain.Aggregate(txs, domain.KindContribution),
		Withdrawals:   domain.Aggregate(txs, domain.KindWithdrawal),
		Benchmark:     benchmark,
		Projection:    domain.Project(txs, settings.BenchmarkRate, asOf),
		AsOf:          asOf,
	}, nil
}

package usecase_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ladrillo/internal/domain"
	"github.com/iho/ladrillo/internal/usecase"
	"github.com/iho/ladrillo/internal/usecase/mocks"
)

func TestSummaryUseCase_Summarize(t *testing.T) {
	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	usdContribution := &domain.Transaction{
		ID:       "1",
		Date:     asOf.AddDate(-1, 0, 0),
		Kind:     domain.KindContribution,
		Currency: domain.CurrencyUSD,
		Amount:   decimal.NewFromInt(1000),
	}
	arsContribution := &domain.Transaction{
		ID:         "2",
		Date:       asOf.AddDate(-1, 0, 0),
		Kind:       domain.KindContribution,
		Currency:   domain.CurrencyARS,
		Amount:     decimal.NewFromInt(120000),
		FxRateKind: domain.RateBlue,
		FxRate:     decimal.NullDecimal{Decimal: decimal.NewFromInt(1200), Valid: true},
	}
	arsContribution.Derive()
	withdrawal := &domain.Transaction{
		ID:       "3",
		Date:     asOf.AddDate(0, -1, 0),
		Kind:     domain.KindWithdrawal,
		Currency: domain.CurrencyUSD,
		Amount:   decimal.NewFromInt(200),
	}

	repo := mocks.NewMockTransactionRepository()
	for _, tx := range []*domain.Transaction{usdContribution, arsContribution, withdrawal} {
		if err := repo.Create(context.Background(), tx); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	uc := usecase.NewSummaryUseCase(repo, mocks.NewMockSettingsRepository(), fixedClock(asOf))

	summary, err := uc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.Contributions.TotalUSD.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected contribution totalUSD 1000, got %s", summary.Contributions.TotalUSD)
	}
	if !summary.Contributions.TotalUsdEquivalent.Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("expected contribution equivalent 1100, got %s", summary.Contributions.TotalUsdEquivalent)
	}
	if !summary.Withdrawals.TotalUSD.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected withdrawal totalUSD 200, got %s", summary.Withdrawals.TotalUSD)
	}

	if summary.Benchmark.ID != "sp500" {
		t.Fatalf("expected default benchmark, got %q", summary.Benchmark.ID)
	}
	if !summary.AsOf.Equal(asOf) {
		t.Fatalf("expected asOf %v, got %v", asOf, summary.AsOf)
	}

	// 1100 invested one year back at 10%: roughly 1210 hypothetical.
	if math.Abs(summary.Projection.InvestedUSD-1100) > 1e-9 {
		t.Fatalf("expected invested 1100, got %f", summary.Projection.InvestedUSD)
	}
	if math.Abs(summary.Projection.HypotheticalUSD-1210) > 0.01 {
		t.Fatalf("expected hypothetical ~1210, got %f", summary.Projection.HypotheticalUSD)
	}
	if math.Abs(summary.Projection.DifferencePercent-10) > 0.01 {
		t.Fatalf("expected difference ~10%%, got %f", summary.Projection.DifferencePercent)
	}
}

func TestSummaryUseCase_EmptyPortfolio(t *testing.T) {
	uc := usecase.NewSummaryUseCase(mocks.NewMockTransactionRepository(), mocks.NewMockSettingsRepository(), nil)

	summary, err := uc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Contributions.CountUSD != 0 || summary.Contributions.CountARS != 0 {
		t.Fatalf("expected empty totals, got %+v", summary.Contributions)
	}
	if summary.Projection.DifferencePercent != 0 {
		t.Fatalf("expected zero percent with nothing invested, got %f", summary.Projection.DifferencePercent)
	}
}

func TestSummaryUseCase_UnknownBenchmarkStillProjects(t *testing.T) {
	settings := mocks.NewMockSettingsRepository()
	if _, err := settings.Update(context.Background(), func(domain.Settings) domain.Settings {
		return domain.Settings{SelectedBenchmark: "delisted", BenchmarkRate: 5}
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	uc := usecase.NewSummaryUseCase(mocks.NewMockTransactionRepository(), settings, nil)

	summary, err := uc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The cached rate drives the projection even when the catalog entry
	// is gone; the id is still reported.
	if summary.Benchmark.ID != "delisted" {
		t.Fatalf("expected benchmark id passed through, got %q", summary.Benchmark.ID)
	}
}

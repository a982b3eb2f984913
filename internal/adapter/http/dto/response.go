package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ladrillo/internal/domain"
	"github.com/iho/ladrillo/internal/usecase"
)

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID            string           `json:"id"`
	Date          string           `json:"date"`
	Kind          string           `json:"kind"`
	Currency      string           `json:"currency"`
	Amount        decimal.Decimal  `json:"amount"`
	Note          string           `json:"note,omitempty"`
	FxRateKind    string           `json:"fx_rate_kind,omitempty"`
	FxRate        *decimal.Decimal `json:"fx_rate,omitempty"`
	UsdEquivalent *decimal.Decimal `json:"usd_equivalent,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	resp := &TransactionResponse{
		ID:         t.ID,
		Date:       t.Date.Format(domain.DateLayout),
		Kind:       string(t.Kind),
		Currency:   string(t.Currency),
		Amount:     t.Amount,
		Note:       t.Note,
		FxRateKind: string(t.FxRateKind),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	if t.FxRate.Valid {
		rate := t.FxRate.Decimal
		resp.FxRate = &rate
	}
	if t.UsdEquivalent.Valid {
		eq := t.UsdEquivalent.Decimal
		resp.UsdEquivalent = &eq
	}

	return resp
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse wraps a transaction list.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int                    `json:"total"`
}

// FxRatesResponse represents the current rates snapshot.
type FxRatesResponse struct {
	Blue           decimal.Decimal `json:"blue"`
	Official       decimal.Decimal `json:"official"`
	StockExchange  decimal.Decimal `json:"stock_exchange"`
	CashSettlement decimal.Decimal `json:"cash_settlement"`
	Card           decimal.Decimal `json:"card"`
	Wholesale      decimal.Decimal `json:"wholesale"`
	FetchedAt      time.Time       `json:"fetched_at"`
}

// FxRatesFromDomain converts a snapshot to a response.
func FxRatesFromDomain(s *domain.FxRatesSnapshot) *FxRatesResponse {
	return &FxRatesResponse{
		Blue:           s.Blue,
		Official:       s.Official,
		StockExchange:  s.StockExchange,
		CashSettlement: s.CashSettlement,
		Card:           s.Card,
		Wholesale:      s.Wholesale,
		FetchedAt:      s.FetchedAt,
	}
}

// BenchmarkResponse represents a catalog entry.
type BenchmarkResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	HistoricalRate float64 `json:"historical_rate"`
	Category       string  `json:"category"`
}

// BenchmarkFromDomain converts a catalog entry to a response.
func BenchmarkFromDomain(b domain.BenchmarkIndex) BenchmarkResponse {
	return BenchmarkResponse{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		HistoricalRate: b.HistoricalRate,
		Category:       string(b.Category),
	}
}

// BenchmarksFromDomain converts catalog entries to responses.
func BenchmarksFromDomain(benchmarks []domain.BenchmarkIndex) []BenchmarkResponse {
	result := make([]BenchmarkResponse, len(benchmarks))
	for i, b := range benchmarks {
		result[i] = BenchmarkFromDomain(b)
	}
	return result
}

// SettingsResponse represents settings in API responses.
type SettingsResponse struct {
	SelectedBenchmark string  `json:"selected_benchmark"`
	BenchmarkRate     float64 `json:"benchmark_rate"`
}

// SettingsFromDomain converts settings to a response.
func SettingsFromDomain(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		SelectedBenchmark: s.SelectedBenchmark,
		BenchmarkRate:     s.BenchmarkRate,
	}
}

// TotalsResponse represents per-kind portfolio totals.
type TotalsResponse struct {
	TotalUSD           decimal.Decimal `json:"total_usd"`
	TotalARS           decimal.Decimal `json:"total_ars"`
	TotalUsdEquivalent decimal.Decimal `json:"total_usd_equivalent"`
	CountUSD           int             `json:"count_usd"`
	CountARS           int             `json:"count_ars"`
}

// ProjectionResponse represents the benchmark comparison.
type ProjectionResponse struct {
	InvestedUSD       float64 `json:"invested_usd"`
	HypotheticalUSD   float64 `json:"hypothetical_usd"`
	DifferenceUSD     float64 `json:"difference_usd"`
	DifferencePercent float64 `json:"difference_percent"`
}

// SummaryResponse represents the portfolio summary.
type SummaryResponse struct {
	Contributions TotalsResponse     `json:"contributions"`
	Withdrawals   TotalsResponse     `json:"withdrawals"`
	Benchmark     BenchmarkResponse  `json:"benchmark"`
	Projection    ProjectionResponse `json:"projection"`
	AsOf          time.Time          `json:"as_of"`
}

// SummaryFromUseCase converts a summary to a response.
func SummaryFromUseCase(s *usecase.Summary) *SummaryResponse {
	return &SummaryResponse{
		Contributions: totalsFromDomain(s.Contributions),
		Withdrawals:   totalsFromDomain(s.Withdrawals),
		Benchmark:     BenchmarkFromDomain(s.Benchmark),
		Projection: ProjectionResponse{
			InvestedUSD:       s.Projection.InvestedUSD,
			HypotheticalUSD:   s.Projection.HypotheticalUSD,
			DifferenceUSD:     s.Projection.DifferenceUSD,
			DifferencePercent: s.Projection.DifferencePercent,
		},
		AsOf: s.AsOf,
	}
}

func totalsFromDomain(t domain.PortfolioTotals) TotalsResponse {
	return TotalsResponse{
		TotalUSD:           t.TotalUSD,
		TotalARS:           t.TotalARS,
		TotalUsdEquivalent: t.TotalUsdEquivalent,
		CountUSD:           t.CountUSD,
		CountARS:           t.CountARS,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

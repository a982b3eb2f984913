package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/ladrillo/internal/domain"
	"github.com/iho/ladrillo/internal/usecase"
)

// TransactionRequest represents a request to create or replace a
// transaction. There is deliberately no usd_equivalent field: the server
// always rederives it.
type TransactionRequest struct {
	Date       string           `json:"date"`
	Kind       string           `json:"kind"`
	Currency   string           `json:"currency"`
	Amount     decimal.Decimal  `json:"amount"`
	Note       string           `json:"note,omitempty"`
	FxRateKind string           `json:"fx_rate_kind,omitempty"`
	FxRate     *decimal.Decimal `json:"fx_rate,omitempty"` // manual override only
}

// ToUseCaseInput converts to use case input.
func (r *TransactionRequest) ToUseCaseInput() usecase.TransactionInput {
	input := usecase.TransactionInput{
		Date:       r.Date,
		Kind:       domain.TransactionKind(r.Kind),
		Currency:   domain.Currency(r.Currency),
		Amount:     r.Amount,
		Note:       r.Note,
		FxRateKind: domain.RateKind(r.FxRateKind),
	}
	if r.FxRate != nil {
		input.ManualRate = decimal.NullDecimal{Decimal: *r.FxRate, Valid: true}
	}

	return input
}

// UpdateSettingsRequest represents a partial settings update. Omitted
// fields are left untouched.
type UpdateSettingsRequest struct {
	SelectedBenchmark *string  `json:"selected_benchmark,omitempty"`
	BenchmarkRate     *float64 `json:"benchmark_rate,omitempty"`
}

// ToPatch converts to a domain patch.
func (r *UpdateSettingsRequest) ToPatch() domain.SettingsPatch {
	return domain.SettingsPatch{
		SelectedBenchmark: r.SelectedBenchmark,
		BenchmarkRate:     r.BenchmarkRate,
	}
}

package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	for _, bad := range []string{"15/03/2024", "2024-3-15", "2024-03-15T10:00:00Z", "not-a-date", ""} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", bad, err)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.RequireFromString("0.01")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero, got %v", err)
	}
	if err := ValidateAmount(decimal.NewFromInt(-5)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative, got %v", err)
	}
}

func TestValidateEnums(t *testing.T) {
	if err := ValidateKind(KindContribution); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateKind("DEPOSIT"); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}

	if err := ValidateCurrency(CurrencyARS); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateCurrency("EUR"); !errors.Is(err, ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}

	if err := ValidateRateKind(""); err != nil {
		t.Fatalf("empty rate kind should be allowed, got %v", err)
	}
	if err := ValidateRateKind(RateManual); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateRateKind("CRYPTO"); !errors.Is(err, ErrInvalidRateKind) {
		t.Fatalf("expected ErrInvalidRateKind, got %v", err)
	}
}

func TestValidateBenchmarkRate(t *testing.T) {
	for _, ok := range []float64{0, 10.5, 100} {
		if err := ValidateBenchmarkRate(ok); err != nil {
			t.Fatalf("unexpected error for %f: %v", ok, err)
		}
	}
	for _, bad := range []float64{-0.1, 100.1} {
		if err := ValidateBenchmarkRate(bad); !errors.Is(err, ErrInvalidBenchmarkRate) {
			t.Fatalf("expected ErrInvalidBenchmarkRate for %f, got %v", bad, err)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	valid := func() *Transaction {
		return &Transaction{
			Date:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Kind:     KindContribution,
			Currency: CurrencyUSD,
			Amount:   decimal.NewFromInt(100),
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Transaction)
		want   error
	}{
		{"bad kind", func(tx *Transaction) { tx.Kind = "SPEND" }, ErrInvalidKind},
		{"bad currency", func(tx *Transaction) { tx.Currency = "BRL" }, ErrInvalidCurrency},
		{"zero amount", func(tx *Transaction) { tx.Amount = decimal.Zero }, ErrInvalidAmount},
		{"bad rate kind", func(tx *Transaction) { tx.FxRateKind = "CRYPTO" }, ErrInvalidRateKind},
		{"long note", func(tx *Transaction) { tx.Note = strings.Repeat("x", MaxNoteLength+1) }, ErrNoteTooLong},
		{"zero date", func(tx *Transaction) { tx.Date = time.Time{} }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid()
			tt.mutate(tx)
			if err := tx.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

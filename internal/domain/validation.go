package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidDate          = errors.New("date must be a YYYY-MM-DD calendar day")
	ErrInvalidKind          = errors.New("unknown transaction kind")
	ErrInvalidCurrency      = errors.New("unknown currency")
	ErrInvalidRateKind      = errors.New("unknown fx rate kind")
	ErrInvalidBenchmarkRate = errors.New("benchmark rate must be between 0 and 100")
	ErrNoteTooLong          = errors.New("note exceeds maximum length")
)

const (
	// DateLayout is the wire format for transaction dates. Calendar day
	// only, no time component.
	DateLayout = "2006-01-02"

	MaxNoteLength = 500
)

// ParseDate parses a YYYY-MM-DD calendar day into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return t, nil
}

// ValidateAmount rejects zero and negative amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// ValidateKind checks the transaction kind.
func ValidateKind(kind TransactionKind) error {
	switch kind {
	case KindContribution, KindWithdrawal:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
}

// ValidateCurrency checks the currency code.
func ValidateCurrency(currency Currency) error {
	switch currency {
	case CurrencyUSD, CurrencyARS:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
}

// ValidateRateKind checks a rate kind. The empty kind is allowed; it means
// no rate was requested.
func ValidateRateKind(kind RateKind) error {
	switch kind {
	case "", RateBlue, RateOfficial, RateStockExchange, RateCashSettlement, RateCard, RateWholesale, RateManual:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrInvalidRateKind, kind)
}

// ValidateBenchmarkRate bounds the annual percentage rate.
func ValidateBenchmarkRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return ErrInvalidBenchmarkRate
	}

	return nil
}

// ValidateNote bounds free-text note length.
func ValidateNote(note string) error {
	if len(note) > MaxNoteLength {
		return fmt.Errorf("%w: %d characters, max %d", ErrNoteTooLong, len(note), MaxNoteLength)
	}

	return nil
}

// Validate checks the transaction's boundary invariants. The pure
// computations assume these hold.
func (t *Transaction) Validate() error {
	if err := ValidateKind(t.Kind); err != nil {
		return err
	}
	if err := ValidateCurrency(t.Currency); err != nil {
		return err
	}
	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}
	if err := ValidateRateKind(t.FxRateKind); err != nil {
		return err
	}
	if err := ValidateNote(t.Note); err != nil {
		return err
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}

	return nil
}

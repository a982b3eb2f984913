package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a movement of invested capital.
type TransactionKind string

const (
	KindContribution TransactionKind = "CONTRIBUTION"
	KindWithdrawal   TransactionKind = "WITHDRAWAL"
)

// Currency is the denomination of a transaction amount.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyARS Currency = "ARS"
)

// Transaction represents a single contribution to or withdrawal from the
// investment. ARS entries carry the FX rate frozen at the moment they were
// recorded; UsdEquivalent is derived from that rate and never supplied by
// clients.
type Transaction struct {
	ID            string
	Date          time.Time // calendar day, UTC midnight
	Kind          TransactionKind
	Currency      Currency
	Amount        decimal.Decimal
	Note          string
	FxRateKind    RateKind            // which quote was frozen, ARS only
	FxRate        decimal.NullDecimal // rate at creation time
	UsdEquivalent decimal.NullDecimal // Amount / FxRate, derived
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UsdEquivalent converts an ARS amount into USD at the given rate.
// USD amounts need no conversion. An ARS amount without a usable rate
// resolves to "unknown" rather than an error; downstream totals count it
// as zero USD while still counting the ARS amount.
func UsdEquivalent(amount decimal.Decimal, currency Currency, fxRate decimal.NullDecimal) decimal.NullDecimal {
	if currency != CurrencyARS {
		return decimal.NullDecimal{}
	}
	if !fxRate.Valid || !fxRate.Decimal.IsPositive() {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: amount.Div(fxRate.Decimal), Valid: true}
}

// Derive recomputes UsdEquivalent from the authoritative
// currency/amount/rate triple. Called on every create and replace.
func (t *Transaction) Derive() {
	t.UsdEquivalent = UsdEquivalent(t.Amount, t.Currency, t.FxRate)
}

// usdAmount is the transaction's USD-denominated value: the raw amount for
// USD entries, the frozen equivalent for ARS entries, zero when unknown.
func (t *Transaction) usdAmount() decimal.Decimal {
	if t.Currency == CurrencyUSD {
		return t.Amount
	}
	if t.UsdEquivalent.Valid {
		return t.UsdEquivalent.Decimal
	}

	return decimal.Zero
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateKind identifies one of the tracked ARS/USD exchange rates.
type RateKind string

const (
	RateBlue           RateKind = "BLUE"
	RateOfficial       RateKind = "OFFICIAL"
	RateStockExchange  RateKind = "STOCK_EXCHANGE"  // MEP
	RateCashSettlement RateKind = "CASH_SETTLEMENT" // CCL
	RateCard           RateKind = "CARD"
	RateWholesale      RateKind = "WHOLESALE"
	RateManual         RateKind = "MANUAL"
)

// FxRatesSnapshot is a point-in-time capture of all tracked rates.
// A fresh snapshot supersedes an old one, never merges with it.
type FxRatesSnapshot struct {
	Blue           decimal.Decimal
	Official       decimal.Decimal
	StockExchange  decimal.Decimal
	CashSettlement decimal.Decimal
	Card           decimal.Decimal
	Wholesale      decimal.Decimal
	FetchedAt      time.Time

	// Fallback marks hardcoded approximate rates served while the
	// provider is unreachable. Fallback snapshots are never cached.
	Fallback bool
}

// ResolveRate maps a rate kind to a concrete value. MANUAL returns the
// caller-supplied override verbatim; every other kind reads exactly one
// snapshot field, with no fallback chains between kinds. A nil snapshot or
// a non-positive value resolves to nothing.
func ResolveRate(kind RateKind, snapshot *FxRatesSnapshot, manualOverride decimal.NullDecimal) decimal.NullDecimal {
	if kind == RateManual {
		if !manualOverride.Valid || !manualOverride.Decimal.IsPositive() {
			return decimal.NullDecimal{}
		}

		return manualOverride
	}

	if snapshot == nil {
		return decimal.NullDecimal{}
	}

	var rate decimal.Decimal
	switch kind {
	case RateBlue:
		rate = snapshot.Blue
	case RateOfficial:
		rate = snapshot.Official
	case RateStockExchange:
		rate = snapshot.StockExchange
	case RateCashSettlement:
		rate = snapshot.CashSettlement
	case RateCard:
		rate = snapshot.Card
	case RateWholesale:
		rate = snapshot.Wholesale
	default:
		return decimal.NullDecimal{}
	}

	if !rate.IsPositive() {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: rate, Valid: true}
}

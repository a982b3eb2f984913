package domain

import "github.com/shopspring/decimal"

// PortfolioTotals are the per-currency sums for one transaction kind.
// TotalUsdEquivalent counts USD amounts at face value and ARS amounts at
// their frozen equivalent; ARS entries with no usable rate contribute zero
// USD but still show up in TotalARS and CountARS.
type PortfolioTotals struct {
	TotalUSD           decimal.Decimal
	TotalARS           decimal.Decimal
	TotalUsdEquivalent decimal.Decimal
	CountUSD           int
	CountARS           int
}

// Aggregate reduces the transactions of the given kind into totals.
// Pure sum, order-independent; an empty input yields all zeros.
func Aggregate(transactions []*Transaction, kind TransactionKind) PortfolioTotals {
	totals := PortfolioTotals{
		TotalUSD:           decimal.Zero,
		TotalARS:           decimal.Zero,
		TotalUsdEquivalent: decimal.Zero,
	}

	for _, tx := range transactions {
		if tx.Kind != kind {
			continue
		}

		switch tx.Currency {
		case CurrencyUSD:
			totals.TotalUSD = totals.TotalUSD.Add(tx.Amount)
			totals.TotalUsdEquivalent = totals.TotalUsdEquivalent.Add(tx.Amount)
			totals.CountUSD++
		case CurrencyARS:
			totals.TotalARS = totals.TotalARS.Add(tx.Amount)
			if tx.UsdEquivalent.Valid {
				totals.TotalUsdEquivalent = totals.TotalUsdEquivalent.Add(tx.UsdEquivalent.Decimal)
			}
			totals.CountARS++
		}
	}

	return totals
}

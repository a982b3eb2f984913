package domain

import (
	"math"
	"time"
)

// daysPerYear matches the rate tables this compares against; deliberately
// not leap-adjusted.
const daysPerYear = 365

// Projection compares the capital actually contributed against its
// hypothetical compounded value had it tracked a benchmark index. The
// figures are estimates and are never persisted.
type Projection struct {
	InvestedUSD       float64
	HypotheticalUSD   float64
	DifferenceUSD     float64
	DifferencePercent float64
}

// Project compounds every contribution from its date to asOf at the given
// annual percentage rate. Future-dated contributions get a negative
// exponent and compound below their invested value; they are not
// special-cased.
func Project(transactions []*Transaction, annualRatePercent float64, asOf time.Time) Projection {
	growth := 1 + annualRatePercent/100

	var invested, hypothetical float64
	for _, tx := range transactions {
		if tx.Kind != KindContribution {
			continue
		}

		usd := tx.usdAmount().InexactFloat64()
		years := float64(daysBetween(tx.Date, asOf)) / daysPerYear

		invested += usd
		hypothetical += usd * math.Pow(growth, years)
	}

	p := Projection{
		InvestedUSD:     invested,
		HypotheticalUSD: hypothetical,
		DifferenceUSD:   hypothetical - invested,
	}
	if invested > 0 {
		p.DifferencePercent = p.DifferenceUSD / invested * 100
	}

	return p
}

// daysBetween counts whole days from date to asOf, negative when date is
// in the future.
func daysBetween(date, asOf time.Time) int {
	return int(math.Floor(asOf.Sub(date).Hours() / 24))
}

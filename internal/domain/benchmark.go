package domain

// BenchmarkCategory groups benchmark indices for display.
type BenchmarkCategory string

const (
	CategoryEquity     BenchmarkCategory = "equity"
	CategoryRealEstate BenchmarkCategory = "real_estate"
	CategoryMixed      BenchmarkCategory = "mixed"
)

// BenchmarkIndex is a market index with a historical annual return rate,
// used as the hypothetical comparison yardstick. Immutable reference data.
type BenchmarkIndex struct {
	ID             string
	Name           string
	Description    string
	HistoricalRate float64 // annual percentage, e.g. 10.5 means 10.5%/year
	Category       BenchmarkCategory
}

var benchmarkCatalog = []BenchmarkIndex{
	{ID: "sp500", Name: "S&P 500", Description: "500 largest US companies", HistoricalRate: 10, Category: CategoryEquity},
	{ID: "nasdaq100", Name: "Nasdaq 100", Description: "100 largest US tech companies", HistoricalRate: 12, Category: CategoryEquity},
	{ID: "dowjones", Name: "Dow Jones", Description: "30 US blue-chip companies", HistoricalRate: 8, Category: CategoryEquity},
	{ID: "russell2000", Name: "Russell 2000", Description: "2,000 US small-cap companies", HistoricalRate: 9, Category: CategoryEquity},
	{ID: "msci_real_estate", Name: "MSCI US Real Estate", Description: "US real-estate investment trusts", HistoricalRate: 7, Category: CategoryRealEstate},
	{ID: "ftse_nareit", Name: "FTSE NAREIT", Description: "US REIT index", HistoricalRate: 7.5, Category: CategoryRealEstate},
	{ID: "msci_world", Name: "MSCI World", Description: "Global developed markets", HistoricalRate: 8.5, Category: CategoryEquity},
	{ID: "msci_emerging", Name: "MSCI Emerging Markets", Description: "Emerging markets (China, Brazil, India)", HistoricalRate: 9.5, Category: CategoryEquity},
}

// Benchmarks returns the full catalog.
func Benchmarks() []BenchmarkIndex {
	out := make([]BenchmarkIndex, len(benchmarkCatalog))
	copy(out, benchmarkCatalog)

	return out
}

// BenchmarkByID looks up a catalog entry.
func BenchmarkByID(id string) (BenchmarkIndex, bool) {
	for _, b := range benchmarkCatalog {
		if b.ID == id {
			return b, true
		}
	}

	return BenchmarkIndex{}, false
}

// BenchmarksByCategory filters the catalog by category.
func BenchmarksByCategory(category BenchmarkCategory) []BenchmarkIndex {
	var out []BenchmarkIndex
	for _, b := range benchmarkCatalog {
		if b.Category == category {
			out = append(out, b)
		}
	}

	return out
}

package domain

import "testing"

func TestBenchmarkByID(t *testing.T) {
	b, ok := BenchmarkByID("sp500")
	if !ok {
		t.Fatal("expected sp500 in catalog")
	}
	if b.Name != "S&P 500" || b.HistoricalRate != 10 || b.Category != CategoryEquity {
		t.Fatalf("unexpected sp500 entry: %+v", b)
	}

	if _, ok := BenchmarkByID("bitcoin"); ok {
		t.Fatal("expected unknown id to miss")
	}
}

func TestBenchmarksByCategory(t *testing.T) {
	realEstate := BenchmarksByCategory(CategoryRealEstate)
	if len(realEstate) != 2 {
		t.Fatalf("expected 2 real-estate benchmarks, got %d", len(realEstate))
	}
	for _, b := range realEstate {
		if b.Category != CategoryRealEstate {
			t.Fatalf("wrong category in filter result: %+v", b)
		}
	}
}

func TestBenchmarksReturnsCopy(t *testing.T) {
	first := Benchmarks()
	first[0].HistoricalRate = 99

	if b, _ := BenchmarkByID(first[0].ID); b.HistoricalRate == 99 {
		t.Fatal("catalog must not be mutable through Benchmarks()")
	}
}

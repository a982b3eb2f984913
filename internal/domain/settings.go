package domain

// Settings holds the user's benchmark selection. Singleton per
// installation.
type Settings struct {
	SelectedBenchmark string
	BenchmarkRate     float64 // annual percentage cached from the catalog
}

// DefaultSettings is the state before the user ever saved anything.
func DefaultSettings() Settings {
	return Settings{
		SelectedBenchmark: "sp500",
		BenchmarkRate:     10,
	}
}

// SettingsPatch is a partial update. Nil fields are left untouched.
type SettingsPatch struct {
	SelectedBenchmark *string
	BenchmarkRate     *float64
}

// Merge applies a patch over the current settings. Precedence: a patched
// field always wins over the stored value. When only the benchmark changes,
// the rate is refreshed from the catalog entry so the pair cannot drift
// apart.
func (s Settings) Merge(p SettingsPatch) Settings {
	out := s

	if p.SelectedBenchmark != nil {
		out.SelectedBenchmark = *p.SelectedBenchmark
		if b, ok := BenchmarkByID(*p.SelectedBenchmark); ok && p.BenchmarkRate == nil {
			out.BenchmarkRate = b.HistoricalRate
		}
	}

	if p.BenchmarkRate != nil {
		out.BenchmarkRate = *p.BenchmarkRate
	}

	return out
}

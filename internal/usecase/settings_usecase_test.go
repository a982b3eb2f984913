package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/ladrillo/internal/domain"
	"github.com/iho/ladrillo/internal/usecase"
	"github.com/iho/ladrillo/internal/usecase/mocks"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestSettingsUseCase_GetDefaults(t *testing.T) {
	uc := usecase.NewSettingsUseCase(mocks.NewMockSettingsRepository())

	settings, err := uc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != domain.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestSettingsUseCase_UpdateSettings(t *testing.T) {
	tests := []struct {
		name      string
		patch     domain.SettingsPatch
		expectErr error
		expected  domain.Settings
	}{
		{
			name:     "select benchmark pulls catalog rate",
			patch:    domain.SettingsPatch{SelectedBenchmark: strPtr("nasdaq100")},
			expected: domain.Settings{SelectedBenchmark: "nasdaq100", BenchmarkRate: 12},
		},
		{
			name:     "explicit rate wins",
			patch:    domain.SettingsPatch{SelectedBenchmark: strPtr("sp500"), BenchmarkRate: f64Ptr(9.25)},
			expected: domain.Settings{SelectedBenchmark: "sp500", BenchmarkRate: 9.25},
		},
		{
			name:      "unknown benchmark rejected",
			patch:     domain.SettingsPatch{SelectedBenchmark: strPtr("dogecoin")},
			expectErr: domain.ErrBenchmarkNotFound,
		},
		{
			name:      "out-of-range rate rejected",
			patch:     domain.SettingsPatch{BenchmarkRate: f64Ptr(150)},
			expectErr: domain.ErrInvalidBenchmarkRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockSettingsRepository()
			uc := usecase.NewSettingsUseCase(repo)

			got, err := uc.UpdateSettings(context.Background(), tt.patch)

			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected %v, got %v", tt.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Fatalf("expected %+v, got %+v", tt.expected, got)
			}

			// The repository must hold the merged value as well.
			stored, _ := repo.Get(context.Background())
			if stored != tt.expected {
				t.Fatalf("expected persisted %+v, got %+v", tt.expected, stored)
			}
		})
	}
}

func TestSettingsUseCase_UpdateGoesThroughRetrier(t *testing.T) {
	retryer := &retryOnceRetryer{}

	failures := 1
	repo := mocks.NewMockSettingsRepository()
	repo.UpdateFunc = func(ctx context.Context, apply func(domain.Settings) domain.Settings) (domain.Settings, error) {
		if failures > 0 {
			failures--
			return domain.Settings{}, errors.New("deadlock detected")
		}
		return apply(domain.DefaultSettings()), nil
	}

	uc := usecase.NewSettingsUseCase(repo).WithRetrier(retryer)

	got, err := uc.UpdateSettings(context.Background(), domain.SettingsPatch{SelectedBenchmark: strPtr("nasdaq100")})
	if err != nil {
		t.Fatalf("expected transient update failure to be absorbed, got %v", err)
	}
	if retryer.calls != 1 {
		t.Fatalf("expected update to go through the retrier, got %d calls", retryer.calls)
	}
	if got.SelectedBenchmark != "nasdaq100" || got.BenchmarkRate != 12 {
		t.Fatalf("expected merged settings from the retried attempt, got %+v", got)
	}
}

func TestSettingsUseCase_InvalidPatchDoesNotTouchRepo(t *testing.T) {
	repo := mocks.NewMockSettingsRepository()
	called := false
	repo.UpdateFunc = func(ctx context.Context, apply func(domain.Settings) domain.Settings) (domain.Settings, error) {
		called = true
		return domain.Settings{}, nil
	}

	uc := usecase.NewSettingsUseCase(repo)
	if _, err := uc.UpdateSettings(context.Background(), domain.SettingsPatch{BenchmarkRate: f64Ptr(-1)}); err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Fatal("repository must not be touched on invalid patch")
	}
}

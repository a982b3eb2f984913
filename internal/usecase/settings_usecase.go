package usecase

import (
	"context"

	"github.com/iho/ladrillo/internal/domain"
)

// SettingsUseCase handles the settings singleton.
type SettingsUseCase struct {
	repo  SettingsRepository
	retry Retryer
}

// NewSettingsUseCase creates a new SettingsUseCase.
func NewSettingsUseCase(repo SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// WithRetrier wraps the settings upsert with transient-failure retries.
func (uc *SettingsUseCase) WithRetrier(r Retryer) *SettingsUseCase {
	uc.retry = r
	return uc
}

// GetSettings returns the current settings.
func (uc *SettingsUseCase) GetSettings(ctx context.Context) (domain.Settings, error) {
	return uc.repo.Get(ctx)
}

// UpdateSettings applies a partial update with Merge precedence: a patched
// field wins, and a benchmark-only patch pulls the catalog rate along.
func (uc *SettingsUseCase) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	if patch.SelectedBenchmark != nil {
		if _, ok := domain.BenchmarkByID(*patch.SelectedBenchmark); !ok {
			return domain.Settings{}, domain.ErrBenchmarkNotFound
		}
	}
	if patch.BenchmarkRate != nil {
		if err := domain.ValidateBenchmarkRate(*patch.BenchmarkRate); err != nil {
			return domain.Settings{}, err
		}
	}

	if uc.retry == nil {
		return uc.repo.Update(ctx, func(current domain.Settings) domain.Settings {
			return current.Merge(patch)
		})
	}

	var updated domain.Settings
	err := uc.retry.Retry(ctx, func() error {
		var err error
		updated, err = uc.repo.Update(ctx, func(current domain.Settings) domain.Settings {
			return current.Merge(patch)
		})
		return err
	})

	return updated, err
}

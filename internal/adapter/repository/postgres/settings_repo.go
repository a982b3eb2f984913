package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ladrillo/internal/domain"
	"github.com/iho/ladrillo/internal/infrastructure/metrics"
)

// settingsRowID pins the singleton settings row.
const settingsRowID = 1

// SettingsRepository implements usecase.SettingsRepository on a
// single-row table. A missing row reads as the defaults.
type SettingsRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewSettingsRepository creates a new SettingsRepository. A nil metrics
// value disables instrumentation.
func NewSettingsRepository(pool *pgxpool.Pool, m *metrics.Metrics) *SettingsRepository {
	return &SettingsRepository{pool: pool, metrics: m}
}

func (r *SettingsRepository) observe(operation string, err error) {
	if r.metrics == nil {
		return
	}

	r.metrics.DBQueries.WithLabelValues(operation, "settings").Inc()
	if err != nil {
		r.metrics.DBErrors.WithLabelValues(operation).Inc()
	}
}

// Get returns the stored settings, or the defaults when none were
// saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	var s domain.Settings

	err := r.pool.QueryRow(ctx, `
		SELECT selected_benchmark, benchmark_rate
		FROM settings
		WHERE id = $1`, settingsRowID).Scan(&s.SelectedBenchmark, &s.BenchmarkRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.observe("get", nil)
			return domain.DefaultSettings(), nil
		}

		r.observe("get", err)
		return domain.Settings{}, err
	}
	r.observe("get", nil)

	return s, nil
}

// Update applies a transformation to the stored settings atomically.
// The row is locked for the duration so concurrent patches serialize.
func (r *SettingsRepository) Update(ctx context.Context, apply func(domain.Settings) domain.Settings) (domain.Settings, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	defer tx.Rollback(ctx)

	current := domain.DefaultSettings()
	err = tx.QueryRow(ctx, `
		SELECT selected_benchmark, benchmark_rate
		FROM settings
		WHERE id = $1
		FOR UPDATE`, settingsRowID).Scan(&current.SelectedBenchmark, &current.BenchmarkRate)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return domain.Settings{}, err
	}

	next := apply(current)

	_, err = tx.Exec(ctx, `
		INSERT INTO settings (id, selected_benchmark, benchmark_rate, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE
		SET selected_benchmark = EXCLUDED.selected_benchmark,
			benchmark_rate = EXCLUDED.benchmark_rate,
			updated_at = now()`,
		settingsRowID, next.SelectedBenchmark, next.BenchmarkRate)
	if err != nil {
		return domain.Settings{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		r.observe("update", err)
		return domain.Settings{}, err
	}
	r.observe("update", nil)
	if r.metrics != nil {
		r.metrics.SettingsUpdates.Inc()
	}

	return next, nil
}

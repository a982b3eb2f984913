package usecase

import (
	"context"
	"time"

	"github.com/iho/ladrillo/internal/domain"
)

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	Replace(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Transaction, error)
}

// SettingsRepository defines data access for the settings singleton.
// Update runs apply over the current value atomically and persists the
// result.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, apply func(domain.Settings) domain.Settings) (domain.Settings, error)
}

// RateProvider fetches a fresh FX snapshot from the external source.
type RateProvider interface {
	Fetch(ctx context.Context) (*domain.FxRatesSnapshot, error)
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retryer retries an operation on transient failures.
type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
}

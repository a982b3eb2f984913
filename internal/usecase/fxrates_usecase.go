package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ladrillo/internal/domain"
)

const (
	snapshotCacheKey = "fx:snapshot"

	// staleRetention keeps an expired snapshot around as a degraded
	// fallback when the provider is down.
	staleRetention = 24 * time.Hour
)

// FxRatesUseCase owns the snapshot freshness policy: a cached snapshot
// younger than the TTL is served as-is, otherwise the provider is asked for
// a fresh one, and a stale cached snapshot beats no snapshot at all.
type FxRatesUseCase struct {
	provider RateProvider
	cache    Cache
	ttl      time.Duration
	clock    func() time.Time
}

// NewFxRatesUseCase creates a new FxRatesUseCase. A nil clock defaults to
// time.Now; a nil cache disables caching.
func NewFxRatesUseCase(provider RateProvider, cache Cache, ttl time.Duration, clock func() time.Time) *FxRatesUseCase {
	if clock == nil {
		clock = time.Now
	}

	return &FxRatesUseCase{
		provider: provider,
		cache:    cache,
		ttl:      ttl,
		clock:    clock,
	}
}

// cachedSnapshot is the cache wire form of a snapshot.
type cachedSnapshot struct {
	Blue           decimal.Decimal `json:"blue"`
	Official       decimal.Decimal `json:"official"`
	StockExchange  decimal.Decimal `json:"stock_exchange"`
	CashSettlement decimal.Decimal `json:"cash_settlement"`
	Card           decimal.Decimal `json:"card"`
	Wholesale      decimal.Decimal `json:"wholesale"`
	FetchedAt      time.Time       `json:"fetched_at"`
}

// CurrentSnapshot returns the freshest snapshot available. It returns
// domain.ErrRatesUnavailable only when the provider fails and no cached
// snapshot exists.
func (uc *FxRatesUseCase) CurrentSnapshot(ctx context.Context) (*domain.FxRatesSnapshot, error) {
	cached := uc.cached(ctx)
	if cached != nil && uc.clock().Sub(cached.FetchedAt) < uc.ttl {
		return cached, nil
	}

	snap, err := uc.provider.Fetch(ctx)
	if err != nil {
		if cached != nil {
			return cached, nil
		}

		return nil, domain.ErrRatesUnavailable
	}

	// Fallback rates are never cached; the next request re-probes the
	// provider so its recovery is picked up immediately.
	if !snap.Fallback {
		uc.store(ctx, snap)
	}

	return snap, nil
}

func (uc *FxRatesUseCase) cached(ctx context.Context) *domain.FxRatesSnapshot {
	if uc.cache == nil {
		return nil
	}

	buf, err := uc.cache.Get(ctx, snapshotCacheKey)
	if err != nil {
		return nil
	}

	var cs cachedSnapshot
	if err := json.Unmarshal(buf, &cs); err != nil {
		return nil
	}

	return &domain.FxRatesSnapshot{
		Blue:           cs.Blue,
		Official:       cs.Official,
		StockExchange:  cs.StockExchange,
		CashSettlement: cs.CashSettlement,
		Card:           cs.Card,
		Wholesale:      cs.Wholesale,
		FetchedAt:      cs.FetchedAt,
	}
}

func (uc *FxRatesUseCase) store(ctx context.Context, snap *domain.FxRatesSnapshot) {
	if uc.cache == nil {
		return
	}

	buf, err := json.Marshal(cachedSnapshot{
		Blue:           snap.Blue,
		Official:       snap.Official,
		StockExchange:  snap.StockExchange,
		CashSettlement: snap.CashSettlement,
		Card:           snap.Card,
		Wholesale:      snap.Wholesale,
		FetchedAt:      snap.FetchedAt,
	})
	if err != nil {
		return
	}

	// Set failures are counted by the cache adapter; the snapshot is
	// still served from the provider result.
	_ = uc.cache.Set(ctx, snapshotCacheKey, buf, staleRetention)
}

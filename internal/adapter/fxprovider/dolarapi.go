package fxprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/ladrillo/internal/domain"
	"github.com/iho/ladrillo/internal/infrastructure/metrics"
)

const dolaresPath = "/v1/dolares"

// fallbackRates approximate each quote family. They keep conversions
// working when the API is unreachable and no cached snapshot exists.
var fallbackRates = map[string]int64{
	"blue":            1200,
	"oficial":         1000,
	"bolsa":           1150,
	"contadoconliqui": 1180,
	"tarjeta":         1400,
	"mayorista":       980,
}

// DolarAPIProvider fetches ARS/USD quotes from dolarapi.com.
type DolarAPIProvider struct {
	client          *http.Client
	baseURL         string
	fallbackEnabled bool
	metrics         *metrics.Metrics
	maxElapsed      time.Duration
}

// NewDolarAPIProvider creates a new DolarAPIProvider. A nil metrics
// value disables instrumentation.
func NewDolarAPIProvider(baseURL string, timeout time.Duration, fallbackEnabled bool, m *metrics.Metrics) *DolarAPIProvider {
	return &DolarAPIProvider{
		client:          &http.Client{Timeout: timeout},
		baseURL:         baseURL,
		fallbackEnabled: fallbackEnabled,
		metrics:         m,
		maxElapsed:      5 * time.Second,
	}
}

// quote is the dolarapi.com wire format for one quote family.
type quote struct {
	Casa   string          `json:"casa"`
	Compra decimal.Decimal `json:"compra"`
	Venta  decimal.Decimal `json:"venta"`
}

// Fetch retrieves the current snapshot. Transient failures are retried
// with exponential backoff; when every attempt fails and the fallback is
// enabled, hardcoded approximate rates are served instead of an error.
func (p *DolarAPIProvider) Fetch(ctx context.Context) (*domain.FxRatesSnapshot, error) {
	var quotes []quote

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = p.maxElapsed

	err := backoff.Retry(func() error {
		var attemptErr error
		quotes, attemptErr = p.fetchQuotes(ctx)
		return attemptErr
	}, backoff.WithContext(b, ctx))
	if err != nil {
		if p.metrics != nil {
			p.metrics.FxFetchErrors.Inc()
		}
		if !p.fallbackEnabled {
			return nil, fmt.Errorf("fetch dolarapi quotes: %w", err)
		}

		log.Warn().Err(err).Msg("dolarapi unreachable, serving fallback rates")
		p.observeFetch("fallback")
		return fallbackSnapshot(), nil
	}

	p.observeFetch("provider")
	return snapshotFromQuotes(quotes), nil
}

func (p *DolarAPIProvider) observeFetch(source string) {
	if p.metrics != nil {
		p.metrics.FxFetches.WithLabelValues(source).Inc()
	}
}

func (p *DolarAPIProvider) fetchQuotes(ctx context.Context) ([]quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+dolaresPath, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dolarapi returned status %d", resp.StatusCode)
	}

	var quotes []quote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, err
	}

	return quotes, nil
}

// snapshotFromQuotes maps dolarapi quote families onto the snapshot.
// The sell price is what a buyer of dollars actually pays.
func snapshotFromQuotes(quotes []quote) *domain.FxRatesSnapshot {
	snap := &domain.FxRatesSnapshot{FetchedAt: time.Now().UTC()}

	for _, q := range quotes {
		switch q.Casa {
		case "blue":
			snap.Blue = q.Venta
		case "oficial":
			snap.Official = q.Venta
		case "bolsa":
			snap.StockExchange = q.Venta
		case "contadoconliqui":
			snap.CashSettlement = q.Venta
		case "tarjeta":
			snap.Card = q.Venta
		case "mayorista":
			snap.Wholesale = q.Venta
		}
	}

	return snap
}

func fallbackSnapshot() *domain.FxRatesSnapshot {
	return &domain.FxRatesSnapshot{
		Blue:           decimal.NewFromInt(fallbackRates["blue"]),
		Official:       decimal.NewFromInt(fallbackRates["oficial"]),
		StockExchange:  decimal.NewFromInt(fallbackRates["bolsa"]),
		CashSettlement: decimal.NewFromInt(fallbackRates["contadoconliqui"]),
		Card:           decimal.NewFromInt(fallbackRates["tarjeta"]),
		Wholesale:      decimal.NewFromInt(fallbackRates["mayorista"]),
		FetchedAt:      time.Now().UTC(),
		Fallback:       true,
	}
}

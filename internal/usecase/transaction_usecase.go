package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ladrillo/internal/domain"
)

// SnapshotService supplies the current FX snapshot for freezing rates into
// new records.
type SnapshotService interface {
	CurrentSnapshot(ctx context.Context) (*domain.FxRatesSnapshot, error)
}

// TransactionUseCase handles transaction business logic.
type TransactionUseCase struct {
	repo  TransactionRepository
	rates SnapshotService
	idGen IDGenerator
	clock func() time.Time
	retry Retryer
}

// NewTransactionUseCase creates a new TransactionUseCase. A nil clock
// defaults to time.Now.
func NewTransactionUseCase(repo TransactionRepository, rates SnapshotService, idGen IDGenerator, clock func() time.Time) *TransactionUseCase {
	if clock == nil {
		clock = time.Now
	}

	return &TransactionUseCase{
		repo:  repo,
		rates: rates,
		idGen: idGen,
		clock: clock,
	}
}

// WithRetrier wraps repository writes with transient-failure retries.
func (uc *TransactionUseCase) WithRetrier(r Retryer) *TransactionUseCase {
	uc.retry = r
	return uc
}

func (uc *TransactionUseCase) withRetry(ctx context.Context, op func() error) error {
	if uc.retry == nil {
		return op()
	}

	return uc.retry.Retry(ctx, op)
}

// TransactionInput represents input for creating or replacing a
// transaction. It never carries a USD equivalent; that value is always
// rederived server-side.
type TransactionInput struct {
	Date       string
	Kind       domain.TransactionKind
	Currency   domain.Currency
	Amount     decimal.Decimal
	Note       string
	FxRateKind domain.RateKind
	ManualRate decimal.NullDecimal // only read when FxRateKind is MANUAL
}

// CreateTransaction records a new movement. For ARS entries with a rate
// kind, the current snapshot rate is resolved and frozen into the record;
// when the provider is unavailable the entry is stored without a rate and
// the USD equivalent stays unknown.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input TransactionInput) (*domain.Transaction, error) {
	now := uc.clock().UTC()

	tx, err := uc.build(ctx, input)
	if err != nil {
		return nil, err
	}
	tx.ID = uc.idGen.Generate()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := uc.withRetry(ctx, func() error { return uc.repo.Create(ctx, tx) }); err != nil {
		return nil, err
	}

	return tx, nil
}

// ReplaceTransaction replaces an existing transaction wholesale. The same
// identifier is kept; every other field, the frozen rate and the derived
// equivalent included, is rebuilt from the input.
func (uc *TransactionUseCase) ReplaceTransaction(ctx context.Context, id string, input TransactionInput) (*domain.Transaction, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := uc.build(ctx, input)
	if err != nil {
		return nil, err
	}
	tx.ID = existing.ID
	tx.CreatedAt = existing.CreatedAt
	tx.UpdatedAt = uc.clock().UTC()

	if err := uc.withRetry(ctx, func() error { return uc.repo.Replace(ctx, tx) }); err != nil {
		return nil, err
	}

	return tx, nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.repo.GetByID(ctx, id)
}

// ListTransactions lists all transactions, newest date first.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	return uc.repo.List(ctx)
}

// DeleteTransaction removes a transaction.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, id string) error {
	return uc.withRetry(ctx, func() error { return uc.repo.Delete(ctx, id) })
}

// build validates the input and assembles a transaction with its rate
// frozen and the USD equivalent derived.
func (uc *TransactionUseCase) build(ctx context.Context, input TransactionInput) (*domain.Transaction, error) {
	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		Date:       date,
		Kind:       input.Kind,
		Currency:   input.Currency,
		Amount:     input.Amount,
		Note:       input.Note,
		FxRateKind: input.FxRateKind,
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if tx.Currency == domain.CurrencyARS && tx.FxRateKind != "" {
		tx.FxRate = domain.ResolveRate(tx.FxRateKind, uc.snapshot(ctx, tx.FxRateKind), input.ManualRate)
	}
	tx.Derive()

	return tx, nil
}

// snapshot fetches the current snapshot for non-manual kinds. Provider
// unavailability is tolerated: the resolver degrades to "no rate".
func (uc *TransactionUseCase) snapshot(ctx context.Context, kind domain.RateKind) *domain.FxRatesSnapshot {
	if kind == domain.RateManual {
		return nil
	}

	snap, err := uc.rates.CurrentSnapshot(ctx)
	if err != nil {
		return nil
	}

	return snap
}

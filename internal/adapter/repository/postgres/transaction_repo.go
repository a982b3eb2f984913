package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/ladrillo/internal/domain"
	"github.com/iho/ladrillo/internal/infrastructure/metrics"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewTransactionRepository creates a new TransactionRepository. A nil
// metrics value disables instrumentation.
func NewTransactionRepository(pool *pgxpool.Pool, m *metrics.Metrics) *TransactionRepository {
	return &TransactionRepository{pool: pool, metrics: m}
}

func (r *TransactionRepository) observe(operation string, err error) {
	if r.metrics == nil {
		return
	}

	r.metrics.DBQueries.WithLabelValues(operation, "transactions").Inc()
	if err != nil {
		r.metrics.DBErrors.WithLabelValues(operation).Inc()
	}
}

const transactionColumns = `id, tx_date, kind, currency, amount, note, fx_rate_kind, fx_rate, usd_equivalent, created_at, updated_at`

// Create inserts a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		tx.ID,
		timeToPgDate(tx.Date),
		string(tx.Kind),
		string(tx.Currency),
		decimalToNumeric(tx.Amount),
		tx.Note,
		string(tx.FxRateKind),
		nullDecimalToNumeric(tx.FxRate),
		nullDecimalToNumeric(tx.UsdEquivalent),
		timeToPgTimestamptz(tx.CreatedAt),
		timeToPgTimestamptz(tx.UpdatedAt),
	)
	r.observe("create", err)

	if err == nil && r.metrics != nil {
		r.metrics.TransactionsCreated.WithLabelValues(string(tx.Kind), string(tx.Currency)).Inc()
		if usd, ok := usdValue(tx); ok {
			r.metrics.TransactionAmountUSD.Observe(usd)
		}
	}

	return err
}

// usdValue reports the transaction value in USD for the amount
// histogram, when known.
func usdValue(tx *domain.Transaction) (float64, bool) {
	if tx.Currency == domain.CurrencyUSD {
		return tx.Amount.InexactFloat64(), true
	}
	if tx.UsdEquivalent.Valid {
		return tx.UsdEquivalent.Decimal.InexactFloat64(), true
	}

	return 0, false
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = $1`, id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.observe("get", nil)
			return nil, domain.ErrTransactionNotFound
		}

		r.observe("get", err)
		return nil, err
	}
	r.observe("get", nil)

	return tx, nil
}

// Replace overwrites an existing transaction row.
func (r *TransactionRepository) Replace(ctx context.Context, tx *domain.Transaction) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE transactions
		SET tx_date = $2, kind = $3, currency = $4, amount = $5, note = $6,
			fx_rate_kind = $7, fx_rate = $8, usd_equivalent = $9, updated_at = $10
		WHERE id = $1`,
		tx.ID,
		timeToPgDate(tx.Date),
		string(tx.Kind),
		string(tx.Currency),
		decimalToNumeric(tx.Amount),
		tx.Note,
		string(tx.FxRateKind),
		nullDecimalToNumeric(tx.FxRate),
		nullDecimalToNumeric(tx.UsdEquivalent),
		timeToPgTimestamptz(tx.UpdatedAt),
	)
	r.observe("replace", err)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	if r.metrics != nil {
		r.metrics.TransactionsReplaced.Inc()
	}

	return nil
}

// Delete removes a transaction.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	r.observe("delete", err)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	if r.metrics != nil {
		r.metrics.TransactionsDeleted.Inc()
	}

	return nil
}

// List returns all transactions, newest date first. Ties on date fall
// back to the ULID, which sorts by creation time.
func (r *TransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		ORDER BY tx_date DESC, id DESC`)
	r.observe("list", err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx            domain.Transaction
		kind          string
		currency      string
		rateKind      string
		date          pgtype.Date
		amount        pgtype.Numeric
		fxRate        pgtype.Numeric
		usdEquivalent pgtype.Numeric
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)

	if err := row.Scan(&tx.ID, &date, &kind, &currency, &amount, &tx.Note,
		&rateKind, &fxRate, &usdEquivalent, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	tx.Date = date.Time.UTC()
	tx.Kind = domain.TransactionKind(kind)
	tx.Currency = domain.Currency(currency)
	tx.Amount = numericToDecimal(amount)
	tx.FxRateKind = domain.RateKind(rateKind)
	tx.FxRate = numericToNullDecimal(fxRate)
	tx.UsdEquivalent = numericToNullDecimal(usdEquivalent)
	tx.CreatedAt = createdAt.Time
	tx.UpdatedAt = updatedAt.Time

	return &tx, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func nullDecimalToNumeric(d decimal.NullDecimal) pgtype.Numeric {
	if !d.Valid {
		return pgtype.Numeric{}
	}

	return decimalToNumeric(d.Decimal)
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func numericToNullDecimal(n pgtype.Numeric) decimal.NullDecimal {
	if !n.Valid {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: numericToDecimal(n), Valid: true}
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timeToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

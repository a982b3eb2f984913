package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/ladrillo/internal/adapter/http/dto"
	"github.com/iho/ladrillo/internal/domain"
	"github.com/iho/ladrillo/internal/usecase"
)

type transactionServiceStub struct {
	createFn  func(ctx context.Context, input usecase.TransactionInput) (*domain.Transaction, error)
	getFn     func(ctx context.Context, id string) (*domain.Transaction, error)
	listFn    func(ctx context.Context) ([]*domain.Transaction, error)
	replaceFn func(ctx context.Context, id string, input usecase.TransactionInput) (*domain.Transaction, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *transactionServiceStub) CreateTransaction(ctx context.Context, input usecase.TransactionInput) (*domain.Transaction, error) {
	return s.createFn(ctx, input)
}

func (s *transactionServiceStub) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.getFn(ctx, id)
}

func (s *transactionServiceStub) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	return s.listFn(ctx)
}

func (s *transactionServiceStub) ReplaceTransaction(ctx context.Context, id string, input usecase.TransactionInput) (*domain.Transaction, error) {
	return s.replaceFn(ctx, id, input)
}

func (s *transactionServiceStub) DeleteTransaction(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	stored := &domain.Transaction{
		ID:       "tx-1",
		Kind:     domain.KindContribution,
		Currency: domain.CurrencyARS,
		Amount:   decimal.NewFromInt(120000),
	}

	var captured usecase.TransactionInput
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.TransactionInput) (*domain.Transaction, error) {
			captured = input
			return stored, nil
		},
	})

	body, _ := json.Marshal(dto.TransactionRequest{
		Date:       "2025-01-10",
		Kind:       "CONTRIBUTION",
		Currency:   "ARS",
		Amount:     decimal.NewFromInt(120000),
		FxRateKind: "BLUE",
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Kind != domain.KindContribution || captured.FxRateKind != domain.RateBlue {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
	if captured.ManualRate.Valid {
		t.Fatalf("expected no manual rate without fx_rate field, got %+v", captured.ManualRate)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "tx-1" {
		t.Fatalf("expected transaction ID tx-1, got %s", resp.ID)
	}
}

func TestTransactionHandler_Create_ManualRatePassedThrough(t *testing.T) {
	var captured usecase.TransactionInput
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.TransactionInput) (*domain.Transaction, error) {
			captured = input
			return &domain.Transaction{ID: "tx-1"}, nil
		},
	})

	rate := decimal.NewFromFloat(1234.5)
	body, _ := json.Marshal(dto.TransactionRequest{
		Date:       "2025-01-10",
		Kind:       "CONTRIBUTION",
		Currency:   "ARS",
		Amount:     decimal.NewFromInt(100),
		FxRateKind: "MANUAL",
		FxRate:     &rate,
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !captured.ManualRate.Valid || !captured.ManualRate.Decimal.Equal(rate) {
		t.Fatalf("expected manual rate 1234.5, got %+v", captured.ManualRate)
	}
}

func TestTransactionHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.TransactionInput) (*domain.Transaction, error) {
			t.Fatal("CreateTransaction should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_ValidationError(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.TransactionInput) (*domain.Transaction, error) {
			return nil, domain.ErrInvalidAmount
		},
	})

	body, _ := json.Marshal(dto.TransactionRequest{Date: "2025-01-10", Kind: "CONTRIBUTION", Currency: "USD"})
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for validation error, got %d", rec.Code)
	}
}

func TestTransactionHandler_Get(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Transaction, error) {
			if id != "tx-1" {
				t.Fatalf("expected id tx-1, got %s", id)
			}
			return &domain.Transaction{ID: "tx-1"}, nil
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/transactions/tx-1", nil), "id", "tx-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTransactionHandler_Get_NotFound(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Transaction, error) {
			return nil, domain.ErrTransactionNotFound
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/transactions/tx-1", nil), "id", "tx-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_List(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context) ([]*domain.Transaction, error) {
			return []*domain.Transaction{{ID: "tx-1"}, {ID: "tx-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || len(resp.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %+v", resp)
	}
}

func TestTransactionHandler_Update(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		replaceFn: func(ctx context.Context, id string, input usecase.TransactionInput) (*domain.Transaction, error) {
			if id != "tx-1" {
				t.Fatalf("expected id tx-1, got %s", id)
			}
			return &domain.Transaction{ID: id}, nil
		},
	})

	body, _ := json.Marshal(dto.TransactionRequest{
		Date:     "2025-01-10",
		Kind:     "WITHDRAWAL",
		Currency: "USD",
		Amount:   decimal.NewFromInt(50),
	})
	req := setChiURLParam(httptest.NewRequest(http.MethodPut, "/transactions/tx-1", bytes.NewReader(body)), "id", "tx-1")
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestTransactionHandler_Delete(t *testing.T) {
	deleted := ""
	handler := NewTransactionHandler(&transactionServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodDelete, "/transactions/tx-1", nil), "id", "tx-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "tx-1" {
		t.Fatalf("expected delete of tx-1, got %q", deleted)
	}
}

func TestTransactionHandler_Delete_NotFound(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrTransactionNotFound
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodDelete, "/transactions/tx-1", nil), "id", "tx-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_List_ServiceError(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context) ([]*domain.Transaction, error) {
			return nil, errors.New("db error")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

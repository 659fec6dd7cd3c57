package handlers

import (
	"errors"
	"net/http"
	"testing"

	"assistencia_tecnica/internal/adapter/http/handlers/mocks"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newTransactionRouter(uc usecase.ITransactionUseCase) *gin.Engine {
	h := NewTransactionHandler(uc)
	r := gin.New()
	r.POST("/v1/transactions", h.CreateTransaction)
	r.PUT("/v1/transactions/:id", h.UpdateTransaction)
	r.PATCH("/v1/transactions/:id/pay", h.MarkPaid)
	r.DELETE("/v1/transactions/:id", h.DeleteTransaction)
	r.GET("/v1/transactions/:id", h.GetTransaction)
	r.GET("/v1/transactions", h.ListTransactions)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITransactionUseCase(ctrl)

		w := performRequest(newTransactionRouter(uc), http.MethodPost, "/v1/transactions", `{"type":"saida","category":"despesa","amount":-5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITransactionUseCase(ctrl)
		uc.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, usecase.ErrInvalidTransactionCategory)

		w := performRequest(newTransactionRouter(uc), http.MethodPost, "/v1/transactions", `{"type":"saida","category":"festa","amount":5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITransactionUseCase(ctrl)
		uc.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(entities.Transaction{
			ID:       "tx-1",
			Type:     entities.TransactionTypeSaida,
			Category: entities.TransactionCategoryDespesa,
			Amount:   decimal.NewFromInt(80),
			Status:   entities.TransactionStatusPago,
		}, nil)

		w := performRequest(newTransactionRouter(uc), http.MethodPost, "/v1/transactions", `{"type":"saida","category":"despesa","description":"Aluguel","amount":80}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_MarkPaid(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITransactionUseCase(ctrl)
		uc.EXPECT().MarkPaid(gomock.Any(), "tx-9").Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		w := performRequest(newTransactionRouter(uc), http.MethodPatch, "/v1/transactions/tx-9/pay", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITransactionUseCase(ctrl)
		uc.EXPECT().MarkPaid(gomock.Any(), "tx-1").Return(entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusPago}, nil)

		w := performRequest(newTransactionRouter(uc), http.MethodPatch, "/v1/transactions/tx-1/pay", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("filter is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITransactionUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), usecase.TransactionFilter{View: usecase.TransactionViewPending}).Return([]entities.Transaction{}, nil)

		w := performRequest(newTransactionRouter(uc), http.MethodGet, "/v1/transactions?view=pending", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("invalid view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITransactionUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidTransactionView)

		w := performRequest(newTransactionRouter(uc), http.MethodGet, "/v1/transactions?view=yearly", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITransactionUseCase(ctrl)
		uc.EXPECT().DeleteTransaction(gomock.Any(), "tx-1").Return(errors.New("boom"))

		w := performRequest(newTransactionRouter(uc), http.MethodDelete, "/v1/transactions/tx-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

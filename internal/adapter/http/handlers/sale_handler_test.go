package handlers

import (
	"net/http"
	"testing"

	"assistencia_tecnica/internal/adapter/http/handlers/mocks"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newSaleRouter(uc usecase.ISaleUseCase) *gin.Engine {
	h := NewSaleHandler(uc)
	r := gin.New()
	r.POST("/v1/sales", h.CreateSale)
	r.PUT("/v1/sales/:id", h.UpdateSale)
	r.DELETE("/v1/sales/:id", h.DeleteSale)
	r.GET("/v1/sales/:id", h.GetSale)
	r.GET("/v1/sales", h.ListSales)
	return r
}

func TestSaleHandler_CreateSale(t *testing.T) {
	t.Run("zero price is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISaleUseCase(ctrl)

		w := performRequest(newSaleRouter(uc), http.MethodPost, "/v1/sales", `{"device":"iPhone","condition":"Novo","sale_price":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stock item is a part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISaleUseCase(ctrl)
		uc.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return(entities.Sale{}, usecase.ErrStockItemNotDevice)

		w := performRequest(newSaleRouter(uc), http.MethodPost, "/v1/sales", `{"stock_item_id":"st-9","sale_price":100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISaleUseCase(ctrl)
		uc.EXPECT().CreateSale(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.SaleInput) (entities.Sale, error) {
			if !in.SalePrice.Equal(decimal.NewFromInt(1800)) || in.Condition != entities.SaleConditionSeminovo {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.Sale{ID: "sale-1", Device: in.Device, SalePrice: in.SalePrice, Quantity: 1}, nil
		})

		w := performRequest(newSaleRouter(uc), http.MethodPost, "/v1/sales", `{"device":"iPhone 12","condition":"Seminovo","purchase_price":1200,"sale_price":1800}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestSaleHandler_GetAndDelete(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISaleUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Sale{}, usecase.ErrSaleNotFound)

		w := performRequest(newSaleRouter(uc), http.MethodGet, "/v1/sales/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISaleUseCase(ctrl)
		uc.EXPECT().DeleteSale(gomock.Any(), "sale-1").Return(nil)

		w := performRequest(newSaleRouter(uc), http.MethodDelete, "/v1/sales/sale-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISaleUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), "iphone").Return([]entities.Sale{{ID: "sale-1"}}, nil)

		w := performRequest(newSaleRouter(uc), http.MethodGet, "/v1/sales?q=iphone", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

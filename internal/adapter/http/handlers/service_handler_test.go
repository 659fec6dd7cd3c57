package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"assistencia_tecnica/internal/adapter/http/handlers/mocks"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const validServiceBody = `{"customer_name":"Maria","customer_phone":"11999990000","device":"iPhone 11","problem":"Tela quebrada","value":150,"delivery_date":"2025-07-01","used_parts":[{"stock_item_id":"st-1","quantity":1}]}`

func newServiceRouter(uc usecase.IServiceUseCase) *gin.Engine {
	h := NewServiceHandler(uc)
	r := gin.New()
	r.POST("/v1/services", h.CreateService)
	r.PUT("/v1/services/:id", h.UpdateService)
	r.PATCH("/v1/services/:id/status", h.UpdateStatus)
	r.DELETE("/v1/services/:id", h.DeleteService)
	r.GET("/v1/services/:id", h.GetService)
	r.GET("/v1/services", h.ListServices)
	return r
}

func TestServiceHandler_CreateService(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)

		w := performRequest(newServiceRouter(uc), http.MethodPost, "/v1/services", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank customer is rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)

		body := `{"customer_name":"   ","customer_phone":"1","device":"x","problem":"y","delivery_date":"2025-07-01"}`
		w := performRequest(newServiceRouter(uc), http.MethodPost, "/v1/services", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid delivery date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)

		body := `{"customer_name":"Maria","customer_phone":"1","device":"x","problem":"y","delivery_date":"01/07/2025"}`
		w := performRequest(newServiceRouter(uc), http.MethodPost, "/v1/services", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var got map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["code"] != "INVALID_DELIVERY_DATE" {
			t.Fatalf("unexpected code %q", got["code"])
		}
	})

	t.Run("not enough parts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().CreateService(gomock.Any(), gomock.Any()).Return(entities.Service{}, usecase.ErrInsufficientPartsStock)

		w := performRequest(newServiceRouter(uc), http.MethodPost, "/v1/services", validServiceBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)

		uc.EXPECT().CreateService(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.ServiceInput) (entities.Service, error) {
			if !in.DeliveryDate.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected delivery date %s", in.DeliveryDate)
			}
			if len(in.Parts) != 1 || in.Parts[0].StockItemID != "st-1" {
				t.Fatalf("unexpected parts %+v", in.Parts)
			}
			return entities.Service{
				ID:           "svc-1",
				Number:       7,
				CustomerName: in.CustomerName,
				Value:        decimal.NewFromInt(350),
				Status:       entities.ServiceStatusEmAndamento,
			}, nil
		})

		w := performRequest(newServiceRouter(uc), http.MethodPost, "/v1/services", validServiceBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if got["id"] != "svc-1" || got["status"] != "Em andamento" {
			t.Fatalf("unexpected response: %v", got)
		}
	})
}

func TestServiceHandler_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatus("Sumido")).Return(entities.Service{}, usecase.ErrInvalidServiceStatus)

		w := performRequest(newServiceRouter(uc), http.MethodPatch, "/v1/services/svc-1/status", `{"status":"Sumido"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusPronto).Return(entities.Service{ID: "svc-1", Status: entities.ServiceStatusPronto}, nil)

		w := performRequest(newServiceRouter(uc), http.MethodPatch, "/v1/services/svc-1/status", `{"status":"Pronto"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceHandler_GetDeleteList(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Service{}, usecase.ErrServiceNotFound)

		w := performRequest(newServiceRouter(uc), http.MethodGet, "/v1/services/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().DeleteService(gomock.Any(), "svc-1").Return(nil)

		w := performRequest(newServiceRouter(uc), http.MethodDelete, "/v1/services/svc-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("list passes query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), "maria").Return([]entities.Service{{ID: "svc-1"}, {ID: "svc-2"}}, nil)

		w := performRequest(newServiceRouter(uc), http.MethodGet, "/v1/services?q=maria", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 2 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("dynamo is down"))

		w := performRequest(newServiceRouter(uc), http.MethodGet, "/v1/services", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var got map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["code"] != "INTERNAL_ERROR" || got["message"] == "dynamo is down" {
			t.Fatalf("unexpected body %v", got)
		}
	})
}

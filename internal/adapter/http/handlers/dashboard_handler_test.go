package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"assistencia_tecnica/internal/adapter/http/handlers/mocks"
	"assistencia_tecnica/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Summary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().Summary(gomock.Any()).Return(entities.DashboardSummary{
			TotalRevenue:    decimal.NewFromInt(1500),
			PendingServices: 2,
			LowStock:        1,
		}, nil)

		r := gin.New()
		r.GET("/v1/dashboard", NewDashboardHandler(uc).Summary)

		w := performRequest(r, http.MethodGet, "/v1/dashboard", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if got["total_revenue"] != 1500.0 {
			t.Fatalf("unexpected total revenue %v", got["total_revenue"])
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().Summary(gomock.Any()).Return(entities.DashboardSummary{}, errors.New("scan failed"))

		r := gin.New()
		r.GET("/v1/dashboard", NewDashboardHandler(uc).Summary)

		w := performRequest(r, http.MethodGet, "/v1/dashboard", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

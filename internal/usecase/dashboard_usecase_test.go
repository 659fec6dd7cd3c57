package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	mock_interfaces "assistencia_tecnica/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDashboardUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
	saleRepo := mock_interfaces.NewMockISaleRepository(ctrl)
	stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
	txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
	uc := NewDashboardUseCase(serviceRepo, saleRepo, stockRepo, txRepo)

	services := []entities.Service{
		{ID: "s1", Value: d("300"), Status: entities.ServiceStatusEntregue, CreatedAt: time.Unix(1, 0)},
		{ID: "s2", Value: d("150"), Status: entities.ServiceStatusPronto, CreatedAt: time.Unix(2, 0)},
		{ID: "s3", Value: d("50"), Status: entities.ServiceStatusEmAndamento, CreatedAt: time.Unix(3, 0)},
		{ID: "s4", Value: d("100"), Status: entities.ServiceStatusEntregue, CreatedAt: time.Unix(4, 0)},
		{ID: "s5", Value: d("10"), Status: entities.ServiceStatusAguardandoPeca, CreatedAt: time.Unix(5, 0)},
	}
	sales := []entities.Sale{
		{ID: "v1", SalePrice: d("400"), Profit: d("100"), CreatedAt: time.Unix(1, 0)},
		{ID: "v2", SalePrice: d("200"), Profit: d("50"), CreatedAt: time.Unix(2, 0)},
	}
	items := []entities.StockItem{
		{ID: "i1", Quantity: 0, MinQuantity: 1, PurchasePrice: d("10"), SalePrice: d("20")},
		{ID: "i2", Quantity: 2, MinQuantity: 2, PurchasePrice: d("30"), SalePrice: d("50")},
		{ID: "i3", Quantity: 10, MinQuantity: 1, PurchasePrice: d("5"), SalePrice: d("8")},
	}
	txs := []entities.Transaction{
		{Type: entities.TransactionTypeEntrada, Status: entities.TransactionStatusPago, Amount: d("1000")},
		{Type: entities.TransactionTypeEntrada, Status: entities.TransactionStatusPendente, Amount: d("210")},
		{Type: entities.TransactionTypeSaida, Status: entities.TransactionStatusPago, Amount: d("250")},
		{Type: entities.TransactionTypeSaida, Status: entities.TransactionStatusPendente, Amount: d("999")},
	}

	serviceRepo.EXPECT().List(gomock.Any()).Return(services, nil)
	saleRepo.EXPECT().List(gomock.Any()).Return(sales, nil)
	stockRepo.EXPECT().List(gomock.Any()).Return(items, nil)
	txRepo.EXPECT().List(gomock.Any()).Return(txs, nil)

	sum, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"service revenue", sum.ServiceRevenue, "400"},
		{"pending amount", sum.PendingAmount, "210"},
		{"sales revenue", sum.SalesRevenue, "600"},
		{"total revenue", sum.TotalRevenue, "1000"},
		{"service share", sum.ServiceRevenueShare, "40"},
		{"sales share", sum.SalesRevenueShare, "60"},
		{"total profit", sum.TotalProfit, "150"},
		{"average ticket", sum.AverageTicket, "300"},
		{"average margin", sum.AverageMargin, "25"},
		{"gross stock value", sum.GrossStockValue, "110"},
		{"potential profit", sum.PotentialStockProfit, "70"},
		{"income", sum.Income, "1000"},
		{"expenses", sum.Expenses, "250"},
		{"pending income", sum.PendingIncome, "210"},
		{"net", sum.NetBalance, "750"},
	}
	for _, c := range checks {
		if !c.got.Equal(d(c.want)) {
			t.Errorf("%s: expected %s, got %s", c.name, c.want, c.got)
		}
	}

	if sum.PendingServices != 3 || sum.TotalServices != 5 || sum.TotalSales != 2 {
		t.Fatalf("unexpected counts: %+v", sum)
	}
	if sum.LowStock != 2 || sum.OutOfStock != 1 || sum.TotalStockItems != 12 || sum.StockTypes != 3 {
		t.Fatalf("unexpected stock counts: low=%d out=%d total=%d types=%d", sum.LowStock, sum.OutOfStock, sum.TotalStockItems, sum.StockTypes)
	}
	if len(sum.RecentServices) != 4 || sum.RecentServices[0].ID != "s5" || sum.RecentServices[3].ID != "s2" {
		t.Fatalf("unexpected recent services: %+v", sum.RecentServices)
	}
	if len(sum.RecentSales) != 2 || sum.RecentSales[0].ID != "v2" {
		t.Fatalf("unexpected recent sales: %+v", sum.RecentSales)
	}
	if services[0].ID != "s1" {
		t.Fatalf("input slice must not be reordered")
	}
}

func TestDashboardUseCase_Summary_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
	saleRepo := mock_interfaces.NewMockISaleRepository(ctrl)
	stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
	txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
	uc := NewDashboardUseCase(serviceRepo, saleRepo, stockRepo, txRepo)

	serviceRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
	saleRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
	stockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
	txRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

	sum, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sum.ServiceRevenueShare.IsZero() || !sum.AverageTicket.IsZero() || !sum.AverageMargin.IsZero() {
		t.Fatalf("expected zero ratios without data: %+v", sum)
	}
}

func TestDashboardUseCase_Summary_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
	uc := NewDashboardUseCase(serviceRepo, nil, nil, nil)

	serviceRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

	if _, err := uc.Summary(context.Background()); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

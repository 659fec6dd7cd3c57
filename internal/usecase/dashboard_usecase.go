package usecase

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/domain/money"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const recentLimit = 4

type IDashboardUseCase interface {
	Summary(ctx context.Context) (entities.DashboardSummary, error)
}

type DashboardUseCase struct {
	serviceRepo interfaces.IServiceRepository
	saleRepo    interfaces.ISaleRepository
	stockRepo   interfaces.IStockRepository
	txRepo      interfaces.ITransactionRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(serviceRepo interfaces.IServiceRepository, saleRepo interfaces.ISaleRepository, stockRepo interfaces.IStockRepository, txRepo interfaces.ITransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{serviceRepo: serviceRepo, saleRepo: saleRepo, stockRepo: stockRepo, txRepo: txRepo}
}

// Summary loads every list once and aggregates them.
func (u *DashboardUseCase) Summary(ctx context.Context) (entities.DashboardSummary, error) {
	services, err := u.serviceRepo.List(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	sales, err := u.saleRepo.List(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	items, err := u.stockRepo.List(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	txs, err := u.txRepo.List(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}

	var sum entities.DashboardSummary
	summarizeServices(&sum, services)
	summarizeSales(&sum, sales)
	summarizeStock(&sum, items)
	summarizeTransactions(&sum, txs)

	sum.TotalRevenue = sum.ServiceRevenue.Add(sum.SalesRevenue)
	sum.ServiceRevenueShare = money.Share(sum.ServiceRevenue, sum.TotalRevenue)
	sum.SalesRevenueShare = money.Share(sum.SalesRevenue, sum.TotalRevenue)
	return sum, nil
}

func summarizeServices(sum *entities.DashboardSummary, services []entities.Service) {
	sum.TotalServices = len(services)
	for _, s := range services {
		if s.IsDelivered() {
			sum.ServiceRevenue = sum.ServiceRevenue.Add(s.Value)
			continue
		}
		sum.PendingAmount = sum.PendingAmount.Add(s.Value)
		sum.PendingServices++
	}

	recent := append([]entities.Service(nil), services...)
	sortServicesNewestFirst(recent)
	sum.RecentServices = recent[:min(recentLimit, len(recent))]
}

func summarizeSales(sum *entities.DashboardSummary, sales []entities.Sale) {
	sum.TotalSales = len(sales)
	for _, s := range sales {
		sum.SalesRevenue = sum.SalesRevenue.Add(s.SalePrice)
		sum.TotalProfit = sum.TotalProfit.Add(s.Profit)
	}
	sum.AverageTicket = money.Ratio(sum.SalesRevenue, decimal.NewFromInt(int64(len(sales))))
	sum.AverageMargin = money.Share(sum.TotalProfit, sum.SalesRevenue)

	recent := append([]entities.Sale(nil), sales...)
	sortSalesNewestFirst(recent)
	sum.RecentSales = recent[:min(recentLimit, len(recent))]
}

func summarizeStock(sum *entities.DashboardSummary, items []entities.StockItem) {
	sum.StockTypes = len(items)
	for _, it := range items {
		if it.IsLowStock() {
			sum.LowStock++
		}
		if it.IsOutOfStock() {
			sum.OutOfStock++
		}
		sum.TotalStockItems += it.Quantity

		qty := decimal.NewFromInt(int64(it.Quantity))
		sum.GrossStockValue = sum.GrossStockValue.Add(qty.Mul(it.PurchasePrice))
		sum.PotentialStockProfit = sum.PotentialStockProfit.Add(qty.Mul(it.SalePrice.Sub(it.PurchasePrice)))
	}
}

func summarizeTransactions(sum *entities.DashboardSummary, txs []entities.Transaction) {
	for _, t := range txs {
		switch {
		case t.IsIncome():
			sum.Income = sum.Income.Add(t.Amount)
		case t.IsExpense():
			sum.Expenses = sum.Expenses.Add(t.Amount)
		case t.IsPendingIncome():
			sum.PendingIncome = sum.PendingIncome.Add(t.Amount)
		}
	}
	sum.NetBalance = sum.Income.Sub(sum.Expenses)
}

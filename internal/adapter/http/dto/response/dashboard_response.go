package response

import "assistencia_tecnica/internal/domain/entities"

type DashboardResponse struct {
	ServiceRevenue       float64           `json:"service_revenue"`
	SalesRevenue         float64           `json:"sales_revenue"`
	TotalRevenue         float64           `json:"total_revenue"`
	ServiceRevenueShare  float64           `json:"service_revenue_share"`
	SalesRevenueShare    float64           `json:"sales_revenue_share"`
	PendingAmount        float64           `json:"pending_amount"`
	PendingServices      int               `json:"pending_services"`
	TotalServices        int               `json:"total_services"`
	TotalSales           int               `json:"total_sales"`
	TotalProfit          float64           `json:"total_profit"`
	AverageTicket        float64           `json:"average_ticket"`
	AverageMargin        float64           `json:"average_margin"`
	LowStock             int               `json:"low_stock"`
	OutOfStock           int               `json:"out_of_stock"`
	TotalStockItems      int               `json:"total_stock_items"`
	StockTypes           int               `json:"stock_types"`
	GrossStockValue      float64           `json:"gross_stock_value"`
	PotentialStockProfit float64           `json:"potential_stock_profit"`
	Income               float64           `json:"income"`
	Expenses             float64           `json:"expenses"`
	PendingIncome        float64           `json:"pending_income"`
	NetBalance           float64           `json:"net_balance"`
	RecentServices       []ServiceResponse `json:"recent_services"`
	RecentSales          []SaleResponse    `json:"recent_sales"`
}

func FromDashboard(d entities.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		ServiceRevenue:       d.ServiceRevenue.InexactFloat64(),
		SalesRevenue:         d.SalesRevenue.InexactFloat64(),
		TotalRevenue:         d.TotalRevenue.InexactFloat64(),
		ServiceRevenueShare:  d.ServiceRevenueShare.InexactFloat64(),
		SalesRevenueShare:    d.SalesRevenueShare.InexactFloat64(),
		PendingAmount:        d.PendingAmount.InexactFloat64(),
		PendingServices:      d.PendingServices,
		TotalServices:        d.TotalServices,
		TotalSales:           d.TotalSales,
		TotalProfit:          d.TotalProfit.InexactFloat64(),
		AverageTicket:        d.AverageTicket.InexactFloat64(),
		AverageMargin:        d.AverageMargin.InexactFloat64(),
		LowStock:             d.LowStock,
		OutOfStock:           d.OutOfStock,
		TotalStockItems:      d.TotalStockItems,
		StockTypes:           d.StockTypes,
		GrossStockValue:      d.GrossStockValue.InexactFloat64(),
		PotentialStockProfit: d.PotentialStockProfit.InexactFloat64(),
		Income:               d.Income.InexactFloat64(),
		Expenses:             d.Expenses.InexactFloat64(),
		PendingIncome:        d.PendingIncome.InexactFloat64(),
		NetBalance:           d.NetBalance.InexactFloat64(),
		RecentServices:       FromServices(d.RecentServices),
		RecentSales:          FromSales(d.RecentSales),
	}
}

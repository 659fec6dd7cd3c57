package entities

import "github.com/shopspring/decimal"

// DashboardSummary aggregates services, sales, stock and transactions.
type DashboardSummary struct {
	ServiceRevenue       decimal.Decimal `json:"service_revenue"`
	SalesRevenue         decimal.Decimal `json:"sales_revenue"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	ServiceRevenueShare  decimal.Decimal `json:"service_revenue_share"`
	SalesRevenueShare    decimal.Decimal `json:"sales_revenue_share"`
	PendingAmount        decimal.Decimal `json:"pending_amount"`
	PendingServices      int             `json:"pending_services"`
	TotalServices        int             `json:"total_services"`
	TotalSales           int             `json:"total_sales"`
	TotalProfit          decimal.Decimal `json:"total_profit"`
	AverageTicket        decimal.Decimal `json:"average_ticket"`
	AverageMargin        decimal.Decimal `json:"average_margin"`
	LowStock             int             `json:"low_stock"`
	OutOfStock           int             `json:"out_of_stock"`
	TotalStockItems      int             `json:"total_stock_items"`
	StockTypes           int             `json:"stock_types"`
	GrossStockValue      decimal.Decimal `json:"gross_stock_value"`
	PotentialStockProfit decimal.Decimal `json:"potential_stock_profit"`
	Income               decimal.Decimal `json:"income"`
	Expenses             decimal.Decimal `json:"expenses"`
	PendingIncome        decimal.Decimal `json:"pending_income"`
	NetBalance           decimal.Decimal `json:"net_balance"`
	RecentServices       []Service       `json:"recent_services"`
	RecentSales          []Sale          `json:"recent_sales"`
}

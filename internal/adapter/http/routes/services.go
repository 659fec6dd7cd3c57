package routes

import (
	"assistencia_tecnica/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices     = "/services"
	PathStock        = "/stock"
	PathSales        = "/sales"
	PathTransactions = "/transactions"
	PathDashboard    = "/dashboard"
	PathPDV          = "/pdv"
)

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler, documentHandler *handlers.DocumentHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.POST("", serviceHandler.CreateService)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
		services.PATCH("/:id/status", serviceHandler.UpdateStatus)

		// Ordem de serviço para impressão.
		services.GET("/:id/print", documentHandler.PrintServiceOrder)
		services.GET("/:id/pdf", documentHandler.ServiceOrderPDF)
	}
}

func addStockRoutes(rg *gin.RouterGroup, stockHandler *handlers.StockHandler) {
	stock := rg.Group(PathStock)
	{
		stock.GET("", stockHandler.ListItems)
		stock.POST("", stockHandler.CreateItem)
		stock.GET("/:id", stockHandler.GetItem)
		stock.PUT("/:id", stockHandler.UpdateItem)
		stock.DELETE("/:id", stockHandler.DeleteItem)
		stock.GET("/:id/movements", stockHandler.ListMovements)
		stock.POST("/:id/movements", stockHandler.MoveStock)
	}
}

func addSaleRoutes(rg *gin.RouterGroup, saleHandler *handlers.SaleHandler, documentHandler *handlers.DocumentHandler) {
	sales := rg.Group(PathSales)
	{
		sales.GET("", saleHandler.ListSales)
		sales.POST("", saleHandler.CreateSale)
		sales.GET("/:id", saleHandler.GetSale)
		sales.PUT("/:id", saleHandler.UpdateSale)
		sales.DELETE("/:id", saleHandler.DeleteSale)
		sales.GET("/:id/receipt", documentHandler.PrintSaleReceipt)
	}
}

func addTransactionRoutes(rg *gin.RouterGroup, transactionHandler *handlers.TransactionHandler) {
	transactions := rg.Group(PathTransactions)
	{
		transactions.GET("", transactionHandler.ListTransactions)
		transactions.POST("", transactionHandler.CreateTransaction)
		transactions.GET("/:id", transactionHandler.GetTransaction)
		transactions.PUT("/:id", transactionHandler.UpdateTransaction)
		transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
		transactions.PATCH("/:id/pay", transactionHandler.MarkPaid)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	rg.GET(PathDashboard, dashboardHandler.Summary)
}

func addPDVRoutes(rg *gin.RouterGroup, pdvHandler *handlers.PDVHandler, documentHandler *handlers.DocumentHandler) {
	pdv := rg.Group(PathPDV)
	{
		pdv.GET("/products", pdvHandler.SearchProducts)
		pdv.GET("/today", pdvHandler.TodaySales)

		carts := pdv.Group("/carts/:cart_id")
		carts.GET("", pdvHandler.GetCart)
		carts.DELETE("", pdvHandler.ClearCart)
		carts.POST("/items", pdvHandler.AddItem)
		carts.PATCH("/items/:stock_item_id", pdvHandler.UpdateItemQuantity)
		carts.DELETE("/items/:stock_item_id", pdvHandler.RemoveItem)
		carts.PUT("/discount", pdvHandler.SetDiscount)
		carts.POST("/checkout", pdvHandler.Checkout)

		pdv.GET("/checkouts/:checkout_id", pdvHandler.GetReceipt)
		pdv.GET("/checkouts/:checkout_id/receipt", documentHandler.PrintCheckoutReceipt)
	}
}

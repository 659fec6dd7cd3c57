package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "assistencia_tecnica/docs"
	"assistencia_tecnica/internal/adapter/http/handlers"
	"assistencia_tecnica/internal/infrastructure/logger"
	"assistencia_tecnica/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router mounts under /v1.
type Handlers struct {
	Service     *handlers.ServiceHandler
	Stock       *handlers.StockHandler
	Sale        *handlers.SaleHandler
	Transaction *handlers.TransactionHandler
	Dashboard   *handlers.DashboardHandler
	PDV         *handlers.PDVHandler
	Document    *handlers.DocumentHandler
}

// NewRouter builds the gin engine with middlewares, docs and the API routes.
func NewRouter(log *zap.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(logger.RequestID())
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRoutes(v1, h.Service, h.Document)
	addStockRoutes(v1, h.Stock)
	addSaleRoutes(v1, h.Sale, h.Document)
	addTransactionRoutes(v1, h.Transaction)
	addDashboardRoutes(v1, h.Dashboard)
	addPDVRoutes(v1, h.PDV, h.Document)

	return router
}

// Run serves handler on port until ctx is cancelled, then drains in-flight
// requests.
func Run(ctx context.Context, handler http.Handler, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"assistencia_tecnica/internal/adapter/http/dto/request"
	"assistencia_tecnica/internal/adapter/http/handlers"
	"assistencia_tecnica/internal/adapter/http/routes"
	"assistencia_tecnica/internal/adapter/persistence/cartstore"
	"assistencia_tecnica/internal/adapter/persistence/repository"
	"assistencia_tecnica/internal/infrastructure/config"
	"assistencia_tecnica/internal/infrastructure/database"
	"assistencia_tecnica/internal/infrastructure/documents"
	"assistencia_tecnica/internal/infrastructure/logger"
	"assistencia_tecnica/internal/infrastructure/metrics"
	"assistencia_tecnica/internal/infrastructure/payments"
	"assistencia_tecnica/internal/infrastructure/printing"
	"assistencia_tecnica/internal/infrastructure/storage"
	"assistencia_tecnica/internal/usecase"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Assistência Técnica API
// @version         1.0
// @description     Ordens de serviço, vendas, estoque, caixa e PDV de uma assistência técnica de celulares.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("Failed to load configuration", zap.Error(err))
	}

	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return err
	}

	ddb := database.ConnectDynamoDB(awsCfg, cfg.AWS.DynamoDBEndpoint)
	if cfg.App.AutoCreateTables {
		if err := database.EnsureTables(ctx, ddb, repository.Schemas(cfg.Tables)...); err != nil {
			return err
		}
	}

	serviceRepo := repository.NewServiceDynamoRepository(ddb, cfg.Tables.Services, cfg.Tables.Counters)
	saleRepo := repository.NewSaleDynamoRepository(ddb, cfg.Tables.Sales)
	stockRepo := repository.NewStockDynamoRepository(ddb, cfg.Tables.Stock, cfg.Tables.StockMovements)
	txRepo := repository.NewTransactionDynamoRepository(ddb, cfg.Tables.Transactions)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.Tables.Payments)

	var carts interfaces.ICartStore
	if cfg.Redis.Enabled {
		client, err := cartstore.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		carts = cartstore.NewRedisCartStore(client, cfg.Redis.CartTTL)
		log.Info("PDV carts stored in redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		carts = cartstore.NewMemoryCartStore(cfg.Redis.CartTTL)
		log.Info("PDV carts stored in memory")
	}

	var gateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken); err != nil {
		log.Warn("Mercado Pago gateway not configured", zap.Error(err), zap.Bool("mock", cfg.Payments.Mock))
	} else {
		gateway = mp
	}

	templates, err := documents.NewTemplates(cfg.Company, cfg.App.Location())
	if err != nil {
		return err
	}

	var renderer interfaces.IPDFRenderer
	if cfg.Documents.PDFEnabled {
		chrome := printing.NewChromedpRenderer(cfg.Documents)
		defer chrome.Close()
		renderer = chrome
	}

	var archive interfaces.IDocumentStorage
	if cfg.Documents.Bucket != "" {
		s3Storage, err := storage.NewS3DocumentStorage(awsCfg, cfg.AWS.S3Endpoint, cfg.Documents.Bucket)
		if err != nil {
			return err
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			return err
		}
		archive = s3Storage
	}

	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, stockRepo, txRepo)
	stockUseCase := usecase.NewStockUseCase(stockRepo)
	saleUseCase := usecase.NewSaleUseCase(saleRepo, stockRepo, txRepo)
	transactionUseCase := usecase.NewTransactionUseCase(txRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(serviceRepo, saleRepo, stockRepo, txRepo)
	pdvUseCase := usecase.NewPDVUseCase(stockRepo, saleRepo, txRepo, paymentRepo, carts, gateway, usecase.PaymentSettings{
		Mock:            cfg.Payments.Mock,
		AccessToken:     cfg.Payments.AccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	}, cfg.App.Location())
	documentUseCase := usecase.NewDocumentUseCase(serviceRepo, saleRepo, templates, renderer, archive)

	metrics.Register()
	if err := request.RegisterValidators(); err != nil {
		return err
	}

	router := routes.NewRouter(log, routes.Handlers{
		Service:     handlers.NewServiceHandler(serviceUseCase),
		Stock:       handlers.NewStockHandler(stockUseCase),
		Sale:        handlers.NewSaleHandler(saleUseCase),
		Transaction: handlers.NewTransactionHandler(transactionUseCase),
		Dashboard:   handlers.NewDashboardHandler(dashboardUseCase),
		PDV:         handlers.NewPDVHandler(pdvUseCase),
		Document:    handlers.NewDocumentHandler(documentUseCase),
	})

	return routes.Run(ctx, router, cfg.App.Port)
}

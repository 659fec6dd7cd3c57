// Command seed fills the tables with demo data through the use cases, so
// stock levels and ledger entries stay consistent with what the API does.
package main

import (
	"context"
	"os"
	"time"

	"assistencia_tecnica/internal/adapter/persistence/repository"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/infrastructure/config"
	"assistencia_tecnica/internal/infrastructure/database"
	"assistencia_tecnica/internal/infrastructure/logger"
	"assistencia_tecnica/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type counts struct {
	Parts    int
	Devices  int
	Services int
	Sales    int
	Expenses int
}

func main() {
	var c counts
	seed := pflag.Uint64("seed", 0, "random seed, 0 picks a random one")
	pflag.IntVar(&c.Parts, "parts", 30, "parts and accessories to create")
	pflag.IntVar(&c.Devices, "devices", 8, "devices to create")
	pflag.IntVar(&c.Services, "services", 25, "service orders to create")
	pflag.IntVar(&c.Sales, "sales", 10, "device sales to create")
	pflag.IntVar(&c.Expenses, "expenses", 6, "expenses to create")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("Failed to load configuration", zap.Error(err))
	}
	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, newGenerator(*seed), c); err != nil {
		log.Error("Seed failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, g *generator, c counts) error {
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	ddb := database.ConnectDynamoDB(awsCfg, cfg.AWS.DynamoDBEndpoint)
	if err := database.EnsureTables(ctx, ddb, repository.Schemas(cfg.Tables)...); err != nil {
		return err
	}

	serviceRepo := repository.NewServiceDynamoRepository(ddb, cfg.Tables.Services, cfg.Tables.Counters)
	saleRepo := repository.NewSaleDynamoRepository(ddb, cfg.Tables.Sales)
	stockRepo := repository.NewStockDynamoRepository(ddb, cfg.Tables.Stock, cfg.Tables.StockMovements)
	txRepo := repository.NewTransactionDynamoRepository(ddb, cfg.Tables.Transactions)

	return seed(ctx, g, c,
		usecase.NewStockUseCase(stockRepo),
		usecase.NewServiceUseCase(serviceRepo, stockRepo, txRepo),
		usecase.NewSaleUseCase(saleRepo, stockRepo, txRepo),
		usecase.NewTransactionUseCase(txRepo),
	)
}

func seed(
	ctx context.Context,
	g *generator,
	c counts,
	stock usecase.IStockUseCase,
	services usecase.IServiceUseCase,
	sales usecase.ISaleUseCase,
	transactions usecase.ITransactionUseCase,
) error {
	log := zap.L()

	parts := make([]entities.StockItem, 0, c.Parts)
	for range c.Parts {
		item, err := stock.CreateItem(ctx, g.part())
		if err != nil {
			return err
		}
		parts = append(parts, item)
	}

	devices := make([]entities.StockItem, 0, c.Devices)
	for range c.Devices {
		item, err := stock.CreateItem(ctx, g.device())
		if err != nil {
			return err
		}
		devices = append(devices, item)
	}
	log.Info("Stock seeded", zap.Int("parts", len(parts)), zap.Int("devices", len(devices)))

	now := time.Now()
	for range c.Services {
		svc, err := services.CreateService(ctx, g.service(parts, now))
		if err != nil {
			return err
		}
		for _, p := range svc.UsedParts {
			consume(parts, p.StockItemID, p.Quantity)
		}
		if status := g.status(); status != svc.Status {
			if _, err := services.UpdateStatus(ctx, svc.ID, status); err != nil {
				return err
			}
		}
	}
	log.Info("Service orders seeded", zap.Int("count", c.Services))

	for range c.Sales {
		sale, err := sales.CreateSale(ctx, g.sale(devices))
		if err != nil {
			return err
		}
		if sale.StockItemID != "" {
			consume(devices, sale.StockItemID, sale.Quantity)
		}
	}
	log.Info("Sales seeded", zap.Int("count", c.Sales))

	for range c.Expenses {
		if _, err := transactions.CreateTransaction(ctx, g.expense()); err != nil {
			return err
		}
	}
	log.Info("Expenses seeded", zap.Int("count", c.Expenses))
	return nil
}

// consume mirrors a stock decrement done by a use case on the local copy.
func consume(items []entities.StockItem, id string, quantity int) {
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity -= quantity
			return
		}
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/infrastructure/metrics"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrSaleNotFound         = errors.New("sale not found")
	ErrInvalidSaleID        = errors.New("invalid sale id")
	ErrInvalidSaleDevice    = errors.New("invalid sale device")
	ErrInvalidSaleCondition = errors.New("invalid sale condition")
	ErrInvalidSalePrice     = errors.New("invalid sale price")
	ErrStockItemNotDevice   = errors.New("stock item is not a device")
)

const reasonSale = "Venda"

// SaleInput registers a sale. With StockItemID set the device data comes
// from stock; otherwise Brand and Model describe an externally sourced device.
type SaleInput struct {
	StockItemID   string
	Device        string
	Brand         string
	Model         string
	Storage       string
	Condition     entities.SaleCondition
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	CustomerName  string
	Notes         string
}

// ISaleUseCase exposes device sale operations.
type ISaleUseCase interface {
	CreateSale(ctx context.Context, in SaleInput) (entities.Sale, error)
	UpdateSale(ctx context.Context, id string, in SaleInput) (entities.Sale, error)
	DeleteSale(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	List(ctx context.Context, query string) ([]entities.Sale, error)
}

type SaleUseCase struct {
	repo      interfaces.ISaleRepository
	stockRepo interfaces.IStockRepository
	txRepo    interfaces.ITransactionRepository
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(repo interfaces.ISaleRepository, stockRepo interfaces.IStockRepository, txRepo interfaces.ITransactionRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, stockRepo: stockRepo, txRepo: txRepo}
}

func (u *SaleUseCase) CreateSale(ctx context.Context, in SaleInput) (entities.Sale, error) {
	in = normalizeSaleInput(in)
	if !in.SalePrice.IsPositive() {
		return entities.Sale{}, ErrInvalidSalePrice
	}

	now := time.Now().UTC()
	sale := entities.Sale{
		ID:           uuid.NewString(),
		Storage:      in.Storage,
		Quantity:     1,
		UnitPrice:    in.SalePrice,
		SalePrice:    in.SalePrice,
		CustomerName: in.CustomerName,
		Notes:        in.Notes,
		CreatedAt:    now,
	}

	var item entities.StockItem
	origin := "external"
	if in.StockItemID != "" {
		var err error
		item, err = u.stockRepo.GetByID(ctx, in.StockItemID)
		if err != nil {
			return entities.Sale{}, err
		}
		if item.ID == "" {
			return entities.Sale{}, ErrStockItemNotFound
		}
		if item.Category != entities.StockCategoryAparelho {
			return entities.Sale{}, ErrStockItemNotDevice
		}
		if item.Quantity <= 0 {
			return entities.Sale{}, ErrInsufficientStock
		}
		sale.Device = item.Name
		sale.Brand = item.Brand
		sale.Model = item.Model
		sale.Condition = item.State.SaleCondition()
		sale.PurchasePrice = item.PurchasePrice
		sale.StockItemID = item.ID
		origin = "stock"
	} else {
		if in.Brand == "" || in.Model == "" {
			return entities.Sale{}, ErrInvalidSaleDevice
		}
		if !in.Condition.IsValid() {
			return entities.Sale{}, ErrInvalidSaleCondition
		}
		if in.PurchasePrice.IsNegative() {
			return entities.Sale{}, ErrInvalidSalePrice
		}
		sale.Device = in.Brand + " " + in.Model
		sale.Brand = in.Brand
		sale.Model = in.Model
		sale.Condition = in.Condition
		sale.PurchasePrice = in.PurchasePrice
	}
	sale.Profit = sale.SalePrice.Sub(sale.PurchasePrice)

	// The device leaves stock before the sale is recorded, so a lost race
	// writes nothing.
	var changes []stockChange
	if item.ID != "" {
		changes = []stockChange{{item: item, newQty: item.Quantity - 1}}
	}
	applied, err := applyStockChanges(ctx, u.stockRepo, changes, reasonSale)
	if err != nil {
		return entities.Sale{}, err
	}

	created, err := u.repo.Create(ctx, sale)
	if err != nil {
		revertStockChanges(ctx, u.stockRepo, changes, applied, reasonSale)
		return entities.Sale{}, err
	}

	tx := entities.Transaction{
		ID:           uuid.NewString(),
		Type:         entities.TransactionTypeEntrada,
		Category:     entities.TransactionCategoryVenda,
		Description:  fmt.Sprintf("Venda %s", created.Device),
		Amount:       created.SalePrice,
		Status:       entities.TransactionStatusPago,
		CustomerName: created.CustomerName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := u.txRepo.Create(ctx, tx); err != nil {
		zap.L().Error("sale created without its transaction", zap.String("sale_id", created.ID), zap.Error(err))
		return entities.Sale{}, err
	}

	metrics.SalesRegistered.WithLabelValues(origin).Inc()
	zap.L().Info("sale registered",
		zap.String("sale_id", created.ID),
		zap.String("origin", origin),
		zap.String("sale_price", created.SalePrice.StringFixed(2)))
	return created, nil
}

// UpdateSale edits the descriptive fields and prices. The stock link and the
// quantity never change here.
func (u *SaleUseCase) UpdateSale(ctx context.Context, id string, in SaleInput) (entities.Sale, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	in = normalizeSaleInput(in)
	if !in.SalePrice.IsPositive() || in.PurchasePrice.IsNegative() {
		return entities.Sale{}, ErrInvalidSalePrice
	}
	if !in.Condition.IsValid() {
		return entities.Sale{}, ErrInvalidSaleCondition
	}

	device := in.Device
	if device == "" {
		device = strings.TrimSpace(in.Brand + " " + in.Model)
	}
	if device == "" {
		return entities.Sale{}, ErrInvalidSaleDevice
	}

	qty := max(current.Quantity, 1)
	current.Device = device
	current.Brand = in.Brand
	current.Model = in.Model
	current.Storage = in.Storage
	current.Condition = in.Condition
	current.PurchasePrice = in.PurchasePrice
	current.SalePrice = in.SalePrice
	current.UnitPrice = in.SalePrice.Div(decimal.NewFromInt(int64(qty))).Round(2)
	current.Profit = in.SalePrice.Sub(in.PurchasePrice)
	current.CustomerName = in.CustomerName
	current.Notes = in.Notes

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Sale{}, err
	}
	if updated.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return updated, nil
}

func (u *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, s.ID)
}

func (u *SaleUseCase) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

func (u *SaleUseCase) List(ctx context.Context, query string) ([]entities.Sale, error) {
	sales, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Sale, 0, len(sales))
	for _, s := range sales {
		if matchesQuery(query, s.Device, s.Brand, s.Model, s.Storage, string(s.Condition), s.CustomerName, s.Notes) {
			out = append(out, s)
		}
	}
	sortSalesNewestFirst(out)
	return out, nil
}

func sortSalesNewestFirst(sales []entities.Sale) {
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].CreatedAt.After(sales[j].CreatedAt)
	})
}

func normalizeSaleInput(in SaleInput) SaleInput {
	in.StockItemID = strings.TrimSpace(in.StockItemID)
	in.Device = strings.TrimSpace(in.Device)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.Storage = strings.TrimSpace(in.Storage)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}

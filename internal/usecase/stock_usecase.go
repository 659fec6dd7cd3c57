package usecase

import (
	"context"
	"errors"
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
	ErrStockItemNotFound     = errors.New("stock item not found")
	ErrInvalidStockItemID    = errors.New("invalid stock item id")
	ErrInvalidStockName      = errors.New("invalid stock item name")
	ErrInvalidStockCategory  = errors.New("invalid stock category")
	ErrInvalidStockState     = errors.New("invalid stock state")
	ErrInvalidStockQuantity  = errors.New("invalid stock quantity")
	ErrInvalidStockPrice     = errors.New("invalid stock price")
	ErrInvalidMovementType   = errors.New("invalid movement type")
	ErrStockCodeAlreadyInUse = errors.New("stock code already in use")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrStockConflict         = errors.New("stock changed concurrently")
)

const reasonRegistrationAdjustment = "Ajuste de cadastro"

// StockKind narrows a stock listing to the lookups used by the forms.
type StockKind string

const (
	StockKindAll     StockKind = ""
	StockKindParts   StockKind = "parts"
	StockKindDevices StockKind = "devices"
)

type StockItemInput struct {
	Name          string
	Code          string
	Category      entities.StockCategory
	State         entities.StockState
	Brand         string
	Model         string
	Quantity      int
	MinQuantity   int
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Supplier      string
	Location      string
	Notes         string
}

type StockFilter struct {
	Query    string
	Category string
	Kind     StockKind
}

// IStockUseCase exposes inventory operations.
type IStockUseCase interface {
	CreateItem(ctx context.Context, in StockItemInput) (entities.StockItem, error)
	UpdateItem(ctx context.Context, id string, in StockItemInput) (entities.StockItem, error)
	DeleteItem(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.StockItem, error)
	List(ctx context.Context, filter StockFilter) ([]entities.StockItem, error)
	MoveStock(ctx context.Context, id string, movementType entities.MovementType, quantity int, reason string) (entities.StockItem, error)
	ListMovements(ctx context.Context, id string) ([]entities.StockMovement, error)
}

type StockUseCase struct {
	repo interfaces.IStockRepository
}

var _ IStockUseCase = (*StockUseCase)(nil)

func NewStockUseCase(repo interfaces.IStockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

func (u *StockUseCase) CreateItem(ctx context.Context, in StockItemInput) (entities.StockItem, error) {
	in = normalizeStockInput(in)
	if err := validateStockInput(in); err != nil {
		return entities.StockItem{}, err
	}
	if err := u.ensureCodeAvailable(ctx, in.Code, ""); err != nil {
		return entities.StockItem{}, err
	}

	now := time.Now().UTC()
	item := stockItemFromInput(in)
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		return entities.StockItem{}, err
	}
	zap.L().Info("stock item created",
		zap.String("stock_item_id", created.ID),
		zap.String("category", string(created.Category)),
		zap.Int("quantity", created.Quantity))
	return created, nil
}

// UpdateItem rewrites the item. A changed quantity is recorded as a movement
// before the remaining fields are saved.
func (u *StockUseCase) UpdateItem(ctx context.Context, id string, in StockItemInput) (entities.StockItem, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.StockItem{}, err
	}
	in = normalizeStockInput(in)
	if err := validateStockInput(in); err != nil {
		return entities.StockItem{}, err
	}
	if err := u.ensureCodeAvailable(ctx, in.Code, current.ID); err != nil {
		return entities.StockItem{}, err
	}

	if in.Quantity != current.Quantity {
		if current, err = applyStockChange(ctx, u.repo, current, in.Quantity, reasonRegistrationAdjustment); err != nil {
			return entities.StockItem{}, err
		}
	}

	item := stockItemFromInput(in)
	item.ID = current.ID
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, item)
	if err != nil {
		return entities.StockItem{}, err
	}
	if updated.ID == "" {
		// Either the item is gone or its quantity moved underneath us.
		still, err := u.repo.GetByID(ctx, current.ID)
		if err != nil {
			return entities.StockItem{}, err
		}
		if still.ID == "" {
			return entities.StockItem{}, ErrStockItemNotFound
		}
		zap.L().Warn("stock edit lost a concurrent movement",
			zap.String("stock_item_id", current.ID),
			zap.Int("expected_quantity", item.Quantity),
			zap.Int("stored_quantity", still.Quantity))
		return entities.StockItem{}, ErrStockConflict
	}
	return updated, nil
}

// DeleteItem removes the movement history first, then the item.
func (u *StockUseCase) DeleteItem(ctx context.Context, id string) error {
	item, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.DeleteMovements(ctx, item.ID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, item.ID)
}

func (u *StockUseCase) GetByID(ctx context.Context, id string) (entities.StockItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.StockItem{}, ErrInvalidStockItemID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.StockItem{}, err
	}
	if item.ID == "" {
		return entities.StockItem{}, ErrStockItemNotFound
	}
	return item, nil
}

// List returns items ordered by name.
func (u *StockUseCase) List(ctx context.Context, filter StockFilter) ([]entities.StockItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(filter.Category)
	out := make([]entities.StockItem, 0, len(items))
	for _, it := range items {
		if category != "" && category != "all" && string(it.Category) != category {
			continue
		}
		switch filter.Kind {
		case StockKindParts:
			if !it.IsPart() {
				continue
			}
		case StockKindDevices:
			if !it.IsSellableDevice() {
				continue
			}
		}
		if !matchesQuery(filter.Query, it.Name, it.Code, it.Brand, it.Model, it.Supplier, it.Category.Label()) {
			continue
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return foldText(out[i].Name) < foldText(out[j].Name)
	})
	return out, nil
}

// MoveStock applies a manual movement. Removals never take the quantity
// below zero.
func (u *StockUseCase) MoveStock(ctx context.Context, id string, movementType entities.MovementType, quantity int, reason string) (entities.StockItem, error) {
	if !movementType.IsValid() {
		return entities.StockItem{}, ErrInvalidMovementType
	}
	if quantity < 0 {
		return entities.StockItem{}, ErrInvalidStockQuantity
	}

	item, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.StockItem{}, err
	}

	newQty := item.Quantity + quantity
	if movementType == entities.MovementTypeRemove {
		newQty = max(0, item.Quantity-quantity)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "Movimentação manual"
	}
	return applyStockChange(ctx, u.repo, item, newQty, reason)
}

func (u *StockUseCase) ListMovements(ctx context.Context, id string) ([]entities.StockMovement, error) {
	item, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movements, err := u.repo.ListMovements(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].CreatedAt.After(movements[j].CreatedAt)
	})
	return movements, nil
}

func (u *StockUseCase) ensureCodeAvailable(ctx context.Context, code, selfID string) error {
	if code == "" {
		return nil
	}
	existing, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if existing.ID != "" && existing.ID != selfID {
		return ErrStockCodeAlreadyInUse
	}
	return nil
}

// applyStockChange moves item to newQty and records why. It is shared by
// every flow that touches inventory.
func applyStockChange(ctx context.Context, repo interfaces.IStockRepository, item entities.StockItem, newQty int, reason string) (entities.StockItem, error) {
	mv := entities.NewStockMovement(uuid.NewString(), item, newQty, reason, time.Now().UTC())
	updated, err := repo.ApplyMovement(ctx, mv)
	if err != nil {
		return entities.StockItem{}, err
	}
	if updated.ID == "" {
		zap.L().Warn("stock movement lost a concurrent update",
			zap.String("stock_item_id", item.ID),
			zap.Int("expected_quantity", item.Quantity))
		return entities.StockItem{}, ErrStockConflict
	}

	metrics.StockMovements.WithLabelValues(metrics.Direction(mv.Delta)).Inc()
	zap.L().Info("stock movement applied",
		zap.String("stock_item_id", item.ID),
		zap.Int("delta", mv.Delta),
		zap.Int("new_quantity", mv.NewQuantity),
		zap.String("reason", reason))
	return updated, nil
}

type stockChange struct {
	item   entities.StockItem
	newQty int
}

// applyStockChanges applies every change in order. If one fails, the ones
// already applied are reverted before the error is returned.
func applyStockChanges(ctx context.Context, repo interfaces.IStockRepository, changes []stockChange, reason string) ([]entities.StockItem, error) {
	applied := make([]entities.StockItem, 0, len(changes))
	for _, c := range changes {
		updated, err := applyStockChange(ctx, repo, c.item, c.newQty, reason)
		if err != nil {
			revertStockChanges(ctx, repo, changes[:len(applied)], applied, reason)
			return nil, err
		}
		applied = append(applied, updated)
	}
	return applied, nil
}

// revertStockChanges gives back what applyStockChanges took, newest first.
// Failures are logged; the caller reports its own error.
func revertStockChanges(ctx context.Context, repo interfaces.IStockRepository, changes []stockChange, applied []entities.StockItem, reason string) {
	ctx = context.WithoutCancel(ctx)
	for i := len(applied) - 1; i >= 0; i-- {
		delta := changes[i].newQty - changes[i].item.Quantity
		if _, err := applyStockChange(ctx, repo, applied[i], applied[i].Quantity-delta, "Estorno: "+reason); err != nil {
			zap.L().Error("failed reverting stock movement",
				zap.String("stock_item_id", applied[i].ID),
				zap.Int("delta", -delta),
				zap.Error(err))
		}
	}
}

func normalizeStockInput(in StockItemInput) StockItemInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.TrimSpace(in.Code)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.Supplier = strings.TrimSpace(in.Supplier)
	in.Location = strings.TrimSpace(in.Location)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}

func validateStockInput(in StockItemInput) error {
	switch {
	case in.Name == "":
		return ErrInvalidStockName
	case !in.Category.IsValid():
		return ErrInvalidStockCategory
	case !in.State.IsValid():
		return ErrInvalidStockState
	case in.Quantity < 0, in.MinQuantity < 0:
		return ErrInvalidStockQuantity
	case in.PurchasePrice.IsNegative(), in.SalePrice.IsNegative():
		return ErrInvalidStockPrice
	}
	return nil
}

func stockItemFromInput(in StockItemInput) entities.StockItem {
	return entities.StockItem{
		Name:          in.Name,
		Code:          in.Code,
		Category:      in.Category,
		State:         in.State,
		Brand:         in.Brand,
		Model:         in.Model,
		Quantity:      in.Quantity,
		MinQuantity:   in.MinQuantity,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Supplier:      in.Supplier,
		Location:      in.Location,
		Notes:         in.Notes,
	}
}

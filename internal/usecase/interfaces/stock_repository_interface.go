package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

// IStockRepository abstracts DynamoDB persistence for stock items and their
// movements.
//
// ApplyMovement writes the new quantity and the movement atomically, and only
// if the stored quantity still equals movement.PreviousQuantity. A lost race returns
// a zero StockItem. Update is guarded the same way by item.Quantity and also
// returns a zero StockItem when the row is missing.
type IStockRepository interface {
	Create(ctx context.Context, item entities.StockItem) (entities.StockItem, error)
	GetByID(ctx context.Context, id string) (entities.StockItem, error)
	GetByCode(ctx context.Context, code string) (entities.StockItem, error)
	List(ctx context.Context) ([]entities.StockItem, error)
	Update(ctx context.Context, item entities.StockItem) (entities.StockItem, error)
	Delete(ctx context.Context, id string) error
	ApplyMovement(ctx context.Context, movement entities.StockMovement) (entities.StockItem, error)
	ListMovements(ctx context.Context, stockItemID string) ([]entities.StockMovement, error)
	DeleteMovements(ctx context.Context, stockItemID string) error
}

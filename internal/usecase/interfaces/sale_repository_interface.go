package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

// ISaleRepository abstracts DynamoDB persistence for sales.
type ISaleRepository interface {
	Create(ctx context.Context, s entities.Sale) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	List(ctx context.Context) ([]entities.Sale, error)
	ListByCheckoutID(ctx context.Context, checkoutID string) ([]entities.Sale, error)
	Update(ctx context.Context, s entities.Sale) (entities.Sale, error)
	Delete(ctx context.Context, id string) error
}

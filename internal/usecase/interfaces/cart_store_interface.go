package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

// ICartStore keeps PDV carts between requests. Get returns an empty cart
// carrying the requested id when nothing is stored.
type ICartStore interface {
	Get(ctx context.Context, cartID string) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) error
	Delete(ctx context.Context, cartID string) error
}

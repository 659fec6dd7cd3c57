package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

// IPaymentRepository keeps the provider payloads of PDV charges for
// traceability.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByCheckoutID(ctx context.Context, checkoutID string) ([]entities.Payment, error)
}

package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for service orders.
//
// Not-found lookups and conditional failures return a zero Service (empty ID).
type IServiceRepository interface {
	NextNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	UpdateStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}

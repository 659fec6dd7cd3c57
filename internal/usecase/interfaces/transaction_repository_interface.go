package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for ledger entries.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	List(ctx context.Context) ([]entities.Transaction, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.Transaction, error)
	Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status entities.TransactionStatus) (entities.Transaction, error)
	Delete(ctx context.Context, id string) error
}

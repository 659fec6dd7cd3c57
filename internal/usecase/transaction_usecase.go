package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound        = errors.New("transaction not found")
	ErrInvalidTransactionID       = errors.New("invalid transaction id")
	ErrInvalidTransactionType     = errors.New("invalid transaction type")
	ErrInvalidTransactionCategory = errors.New("invalid transaction category")
	ErrInvalidTransactionStatus   = errors.New("invalid transaction status")
	ErrInvalidTransactionAmount   = errors.New("invalid transaction amount")
	ErrInvalidTransactionView     = errors.New("invalid transaction view")
)

// TransactionView names the ledger tabs.
type TransactionView string

const (
	TransactionViewAll      TransactionView = ""
	TransactionViewIncome   TransactionView = "income"
	TransactionViewExpenses TransactionView = "expenses"
	TransactionViewPending  TransactionView = "pending"
)

type TransactionInput struct {
	Type         entities.TransactionType
	Category     entities.TransactionCategory
	Description  string
	Amount       decimal.Decimal
	CustomerName string
}

type TransactionFilter struct {
	Type   entities.TransactionType
	Status entities.TransactionStatus
	View   TransactionView
}

// ITransactionUseCase exposes ledger operations.
type ITransactionUseCase interface {
	CreateTransaction(ctx context.Context, in TransactionInput) (entities.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, in TransactionInput) (entities.Transaction, error)
	MarkPaid(ctx context.Context, id string) (entities.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]entities.Transaction, error)
}

type TransactionUseCase struct {
	repo interfaces.ITransactionRepository
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// CreateTransaction records a manual, already settled entry.
func (u *TransactionUseCase) CreateTransaction(ctx context.Context, in TransactionInput) (entities.Transaction, error) {
	in, err := prepareTransactionInput(in)
	if err != nil {
		return entities.Transaction{}, err
	}

	now := time.Now().UTC()
	t := entities.Transaction{
		ID:           uuid.NewString(),
		Type:         in.Type,
		Category:     in.Category,
		Description:  in.Description,
		Amount:       in.Amount,
		Status:       entities.TransactionStatusPago,
		CustomerName: in.CustomerName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, t)
}

func (u *TransactionUseCase) UpdateTransaction(ctx context.Context, id string, in TransactionInput) (entities.Transaction, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	in, err = prepareTransactionInput(in)
	if err != nil {
		return entities.Transaction{}, err
	}

	current.Type = in.Type
	current.Category = in.Category
	current.Description = in.Description
	current.Amount = in.Amount
	current.CustomerName = in.CustomerName
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Transaction{}, err
	}
	if updated.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return updated, nil
}

func (u *TransactionUseCase) MarkPaid(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.TransactionStatusPago)
	if err != nil {
		return entities.Transaction{}, err
	}
	if updated.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return updated, nil
}

func (u *TransactionUseCase) DeleteTransaction(ctx context.Context, id string) error {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, t.ID)
}

func (u *TransactionUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

// List returns entries newest first.
func (u *TransactionUseCase) List(ctx context.Context, filter TransactionFilter) ([]entities.Transaction, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, ErrInvalidTransactionType
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidTransactionStatus
	}
	var keep func(entities.Transaction) bool
	switch filter.View {
	case TransactionViewAll:
		keep = func(entities.Transaction) bool { return true }
	case TransactionViewIncome:
		keep = entities.Transaction.IsIncome
	case TransactionViewExpenses:
		keep = entities.Transaction.IsExpense
	case TransactionViewPending:
		keep = entities.Transaction.IsPendingIncome
	default:
		return nil, ErrInvalidTransactionView
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Transaction, 0, len(all))
	for _, t := range all {
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if !keep(t) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// prepareTransactionInput validates in and fills the default description
// with the category label.
func prepareTransactionInput(in TransactionInput) (TransactionInput, error) {
	in.Description = strings.TrimSpace(in.Description)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	switch {
	case !in.Type.IsValid():
		return in, ErrInvalidTransactionType
	case !in.Category.IsValid():
		return in, ErrInvalidTransactionCategory
	case !in.Amount.IsPositive():
		return in, ErrInvalidTransactionAmount
	}
	if in.Description == "" {
		in.Description = in.Category.Label()
	}
	return in, nil
}

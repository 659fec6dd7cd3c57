package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
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
	ErrServiceNotFound        = errors.New("service not found")
	ErrInvalidServiceID       = errors.New("invalid service id")
	ErrInvalidCustomer        = errors.New("invalid customer data")
	ErrInvalidDevice          = errors.New("invalid device")
	ErrInvalidProblem         = errors.New("invalid problem description")
	ErrInvalidServiceValue    = errors.New("invalid service value")
	ErrInvalidDeliveryDate    = errors.New("invalid delivery date")
	ErrInvalidServiceStatus   = errors.New("invalid service status")
	ErrInvalidPart            = errors.New("invalid part")
	ErrPartNotFound           = errors.New("part not found in stock")
	ErrInsufficientPartsStock = errors.New("insufficient stock for part")
)

type PartInput struct {
	StockItemID string
	Quantity    int
}

type ServiceInput struct {
	CustomerName  string
	CustomerPhone string
	Device        string
	Problem       string
	Value         decimal.Decimal
	DeliveryDate  time.Time
	Notes         string
	Parts         []PartInput
}

// IServiceUseCase exposes service order (OS) operations.
//
// Opening an order also opens its pending income and consumes the parts from
// stock; delivering it settles that income.
type IServiceUseCase interface {
	CreateService(ctx context.Context, in ServiceInput) (entities.Service, error)
	UpdateService(ctx context.Context, id string, in ServiceInput) (entities.Service, error)
	UpdateStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, query string) ([]entities.Service, error)
}

type ServiceUseCase struct {
	repo      interfaces.IServiceRepository
	stockRepo interfaces.IStockRepository
	txRepo    interfaces.ITransactionRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, stockRepo interfaces.IStockRepository, txRepo interfaces.ITransactionRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, stockRepo: stockRepo, txRepo: txRepo}
}

func (u *ServiceUseCase) CreateService(ctx context.Context, in ServiceInput) (entities.Service, error) {
	in = normalizeServiceInput(in)
	if err := validateServiceInput(in); err != nil {
		return entities.Service{}, err
	}

	parts, err := mergeParts(in.Parts)
	if err != nil {
		return entities.Service{}, err
	}

	// All parts are checked before anything is written.
	changes := make([]stockChange, 0, len(parts))
	for i, p := range parts {
		item, err := u.stockRepo.GetByID(ctx, p.StockItemID)
		if err != nil {
			return entities.Service{}, err
		}
		if item.ID == "" {
			return entities.Service{}, ErrPartNotFound
		}
		if item.Quantity < p.Quantity {
			return entities.Service{}, fmt.Errorf("%w: %s (disponível: %d, solicitado: %d)", ErrInsufficientPartsStock, item.Name, item.Quantity, p.Quantity)
		}
		parts[i].Name = item.Name
		parts[i].UnitPrice = item.SalePrice
		changes = append(changes, stockChange{item: item, newQty: item.Quantity - p.Quantity})
	}

	number, err := u.repo.NextNumber(ctx)
	if err != nil {
		return entities.Service{}, err
	}

	reason := fmt.Sprintf("Usado em serviço #%d", number)
	applied, err := applyStockChanges(ctx, u.stockRepo, changes, reason)
	if err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:            uuid.NewString(),
		Number:        number,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Device:        in.Device,
		Problem:       in.Problem,
		Status:        entities.ServiceStatusEmAndamento,
		DeliveryDate:  in.DeliveryDate,
		Notes:         in.Notes,
		UsedParts:     parts,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.Value = in.Value.Add(s.PartsTotal())

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		revertStockChanges(ctx, u.stockRepo, changes, applied, reason)
		return entities.Service{}, err
	}

	tx := entities.Transaction{
		ID:           uuid.NewString(),
		Type:         entities.TransactionTypeEntrada,
		Category:     entities.TransactionCategoryServico,
		Description:  fmt.Sprintf("%s - %s", created.Problem, created.Device),
		Amount:       created.Value,
		Status:       entities.TransactionStatusPendente,
		CustomerName: created.CustomerName,
		ServiceID:    created.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := u.txRepo.Create(ctx, tx); err != nil {
		zap.L().Error("service created without its pending transaction",
			zap.String("service_id", created.ID), zap.Error(err))
		return entities.Service{}, err
	}

	metrics.ServiceOrdersCreated.Inc()
	zap.L().Info("service order created",
		zap.String("service_id", created.ID),
		zap.Int64("number", created.Number),
		zap.String("value", created.Value.StringFixed(2)),
		zap.Int("parts", len(parts)))
	return created, nil
}

// UpdateService edits the descriptive fields and value. Parts already
// consumed are kept as they are.
func (u *ServiceUseCase) UpdateService(ctx context.Context, id string, in ServiceInput) (entities.Service, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	in = normalizeServiceInput(in)
	in.Parts = nil
	if err := validateServiceInput(in); err != nil {
		return entities.Service{}, err
	}

	current.CustomerName = in.CustomerName
	current.CustomerPhone = in.CustomerPhone
	current.Device = in.Device
	current.Problem = in.Problem
	current.Value = in.Value
	current.DeliveryDate = in.DeliveryDate
	current.Notes = in.Notes
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

// UpdateStatus changes the status. Delivering the service settles its
// pending income.
func (u *ServiceUseCase) UpdateStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if !status.IsValid() {
		return entities.Service{}, ErrInvalidServiceStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	if updated.IsDelivered() {
		if err := u.settleServiceTransaction(ctx, updated); err != nil {
			return entities.Service{}, err
		}
	}
	return updated, nil
}

// settleServiceTransaction marks the pending income of s as paid. Entries
// written before the service link existed are matched by customer and amount.
func (u *ServiceUseCase) settleServiceTransaction(ctx context.Context, s entities.Service) error {
	linked, err := u.txRepo.ListByServiceID(ctx, s.ID)
	if err != nil {
		return err
	}

	candidates := linked
	if len(candidates) == 0 {
		all, err := u.txRepo.List(ctx)
		if err != nil {
			return err
		}
		for _, t := range all {
			if t.ServiceID == "" && t.CustomerName == s.CustomerName && t.Amount.Equal(s.Value) {
				candidates = append(candidates, t)
			}
		}
	}

	for _, t := range candidates {
		if t.Status != entities.TransactionStatusPendente {
			continue
		}
		if _, err := u.txRepo.UpdateStatus(ctx, t.ID, entities.TransactionStatusPago); err != nil {
			return err
		}
		zap.L().Info("service transaction settled",
			zap.String("service_id", s.ID),
			zap.String("transaction_id", t.ID))
		return nil
	}

	zap.L().Warn("no pending transaction found for delivered service", zap.String("service_id", s.ID))
	return nil
}

func (u *ServiceUseCase) DeleteService(ctx context.Context, id string) error {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, s.ID)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// List returns services newest first, filtered by a free-text query.
func (u *ServiceUseCase) List(ctx context.Context, query string) ([]entities.Service, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Service, 0, len(services))
	for _, s := range services {
		if matchesQuery(query, s.CustomerName, s.CustomerPhone, s.Device, s.Problem, string(s.Status), s.Notes, strconv.FormatInt(s.Number, 10)) {
			out = append(out, s)
		}
	}
	sortServicesNewestFirst(out)
	return out, nil
}

func sortServicesNewestFirst(services []entities.Service) {
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].CreatedAt.After(services[j].CreatedAt)
	})
}

// mergeParts folds repeated stock items into one line, keeping the order
// in which each item first appears.
func mergeParts(in []PartInput) ([]entities.UsedPart, error) {
	parts := make([]entities.UsedPart, 0, len(in))
	index := make(map[string]int, len(in))
	for _, p := range in {
		id := strings.TrimSpace(p.StockItemID)
		if id == "" || p.Quantity <= 0 {
			return nil, ErrInvalidPart
		}
		if i, ok := index[id]; ok {
			parts[i].Quantity += p.Quantity
			continue
		}
		index[id] = len(parts)
		parts = append(parts, entities.UsedPart{StockItemID: id, Quantity: p.Quantity})
	}
	return parts, nil
}

func normalizeServiceInput(in ServiceInput) ServiceInput {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.Device = strings.TrimSpace(in.Device)
	in.Problem = strings.TrimSpace(in.Problem)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}

func validateServiceInput(in ServiceInput) error {
	switch {
	case in.CustomerName == "", in.CustomerPhone == "":
		return ErrInvalidCustomer
	case in.Device == "":
		return ErrInvalidDevice
	case in.Problem == "":
		return ErrInvalidProblem
	case !in.Value.IsPositive():
		return ErrInvalidServiceValue
	case in.DeliveryDate.IsZero():
		return ErrInvalidDeliveryDate
	}
	return nil
}

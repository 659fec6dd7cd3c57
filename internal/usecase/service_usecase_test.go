package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	mock_interfaces "assistencia_tecnica/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validServiceInput() ServiceInput {
	return ServiceInput{
		CustomerName:  " Maria Souza ",
		CustomerPhone: "(27) 98888-7777",
		Device:        "Galaxy A52",
		Problem:       "Troca de tela",
		Value:         decimal.NewFromInt(150),
		DeliveryDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestServiceUseCase_CreateService_Validations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ServiceInput)
		want   error
	}{
		{name: "missing customer", mutate: func(in *ServiceInput) { in.CustomerName = " " }, want: ErrInvalidCustomer},
		{name: "missing phone", mutate: func(in *ServiceInput) { in.CustomerPhone = "" }, want: ErrInvalidCustomer},
		{name: "missing device", mutate: func(in *ServiceInput) { in.Device = "" }, want: ErrInvalidDevice},
		{name: "missing problem", mutate: func(in *ServiceInput) { in.Problem = "" }, want: ErrInvalidProblem},
		{name: "zero value", mutate: func(in *ServiceInput) { in.Value = decimal.Zero }, want: ErrInvalidServiceValue},
		{name: "missing delivery date", mutate: func(in *ServiceInput) { in.DeliveryDate = time.Time{} }, want: ErrInvalidDeliveryDate},
		{name: "part without quantity", mutate: func(in *ServiceInput) { in.Parts = []PartInput{{StockItemID: "st-1"}} }, want: ErrInvalidPart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewServiceUseCase(nil, nil, nil)
			in := validServiceInput()
			tc.mutate(&in)
			_, err := uc.CreateService(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestServiceUseCase_CreateService(t *testing.T) {
	t.Run("part not in stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewServiceUseCase(repo, stockRepo, txRepo)

		stockRepo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.StockItem{}, nil)

		in := validServiceInput()
		in.Parts = []PartInput{{StockItemID: "st-1", Quantity: 1}}
		_, err := uc.CreateService(context.Background(), in)
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("insufficient part stock writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewServiceUseCase(repo, stockRepo, txRepo)

		stockRepo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.StockItem{ID: "st-1", Name: "Tela", Quantity: 1}, nil)

		in := validServiceInput()
		in.Parts = []PartInput{{StockItemID: "st-1", Quantity: 2}}
		_, err := uc.CreateService(context.Background(), in)
		if !errors.Is(err, ErrInsufficientPartsStock) {
			t.Fatalf("expected ErrInsufficientPartsStock, got %v", err)
		}
	})

	t.Run("repeated part is checked against its summed quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewServiceUseCase(repo, stockRepo, txRepo)

		stockRepo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.StockItem{ID: "st-1", Name: "Tela", Quantity: 5}, nil)
		repo.EXPECT().NextNumber(gomock.Any()).Times(0)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		in := validServiceInput()
		in.Parts = []PartInput{{StockItemID: "st-1", Quantity: 3}, {StockItemID: " st-1 ", Quantity: 3}}
		_, err := uc.CreateService(context.Background(), in)
		if !errors.Is(err, ErrInsufficientPartsStock) {
			t.Fatalf("expected ErrInsufficientPartsStock, got %v", err)
		}
	})

	t.Run("repeated part becomes one line and one movement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewServiceUseCase(repo, stockRepo, txRepo)

		stockRepo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.StockItem{ID: "st-1", Name: "Tela", Quantity: 5, SalePrice: decimal.NewFromInt(10)}, nil)
		repo.EXPECT().NextNumber(gomock.Any()).Return(int64(7), nil)
		stockRepo.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mv entities.StockMovement) (entities.StockItem, error) {
				if mv.StockItemID != "st-1" || mv.PreviousQuantity != 5 || mv.NewQuantity != 3 {
					t.Fatalf("unexpected movement: %+v", mv)
				}
				return entities.StockItem{ID: "st-1", Quantity: 3}, nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if len(s.UsedParts) != 1 || s.UsedParts[0].Quantity != 2 {
					t.Fatalf("expected one line with quantity 2, got %+v", s.UsedParts)
				}
				if !s.Value.Equal(decimal.NewFromInt(170)) {
					t.Fatalf("expected value 170, got %s", s.Value)
				}
				return s, nil
			},
		)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil },
		)

		in := validServiceInput()
		in.Parts = []PartInput{{StockItemID: "st-1", Quantity: 1}, {StockItemID: "st-1", Quantity: 1}}
		if _, err := uc.CreateService(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost stock race creates no order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewServiceUseCase(repo, stockRepo, txRepo)

		stockRepo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.StockItem{ID: "st-1", Name: "Tela", Quantity: 5}, nil)
		stockRepo.EXPECT().GetByID(gomock.Any(), "st-2").Return(entities.StockItem{ID: "st-2", Name: "Bateria", Quantity: 2}, nil)
		repo.EXPECT().NextNumber(gomock.Any()).Return(int64(8), nil)
		stockRepo.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mv entities.StockMovement) (entities.StockItem, error) {
				switch {
				case mv.StockItemID == "st-2":
					return entities.StockItem{}, nil
				case mv.NewQuantity == 5 && mv.Reason != "Estorno: Usado em serviço #8":
					t.Fatalf("unexpected revert reason %q", mv.Reason)
				}
				return entities.StockItem{ID: mv.StockItemID, Quantity: mv.NewQuantity}, nil
			},
		).Times(3)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		in := validServiceInput()
		in.Parts = []PartInput{{StockItemID: "st-1", Quantity: 1}, {StockItemID: "st-2", Quantity: 1}}
		_, err := uc.CreateService(context.Background(), in)
		if !errors.Is(err, ErrStockConflict) {
			t.Fatalf("expected ErrStockConflict, got %v", err)
		}
	})

	t.Run("success with parts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewServiceUseCase(repo, stockRepo, txRepo)

		screen := entities.StockItem{ID: "st-1", Name: "Tela A52", Quantity: 3, SalePrice: decimal.RequireFromString("80.50")}
		battery := entities.StockItem{ID: "st-2", Name: "Bateria A52", Quantity: 1, SalePrice: decimal.NewFromInt(60)}

		stockRepo.EXPECT().GetByID(gomock.Any(), "st-1").Return(screen, nil)
		stockRepo.EXPECT().GetByID(gomock.Any(), "st-2").Return(battery, nil)
		repo.EXPECT().NextNumber(gomock.Any()).Return(int64(42), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				// 150 + 2 x 80.50 + 60
				if !s.Value.Equal(decimal.NewFromInt(371)) {
					t.Fatalf("expected value 371, got %s", s.Value)
				}
				if s.Number != 42 || s.Status != entities.ServiceStatusEmAndamento || s.CustomerName != "Maria Souza" {
					t.Fatalf("unexpected service: %+v", s)
				}
				if len(s.UsedParts) != 2 {
					t.Fatalf("expected 2 parts, got %d", len(s.UsedParts))
				}
				return s, nil
			},
		)
		txRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Transaction{})).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.Type != entities.TransactionTypeEntrada || tx.Category != entities.TransactionCategoryServico || tx.Status != entities.TransactionStatusPendente {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				if tx.Description != "Troca de tela - Galaxy A52" || tx.ServiceID == "" {
					t.Fatalf("unexpected description/link: %+v", tx)
				}
				return tx, nil
			},
		)
		stockRepo.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mv entities.StockMovement) (entities.StockItem, error) {
				if mv.Reason != "Usado em serviço #42" {
					t.Fatalf("unexpected reason %q", mv.Reason)
				}
				switch mv.StockItemID {
				case "st-1":
					if mv.NewQuantity != 1 {
						t.Fatalf("expected st-1 at 1, got %d", mv.NewQuantity)
					}
				case "st-2":
					if mv.NewQuantity != 0 {
						t.Fatalf("expected st-2 at 0, got %d", mv.NewQuantity)
					}
				}
				return entities.StockItem{ID: mv.StockItemID, Quantity: mv.NewQuantity}, nil
			},
		).Times(2)

		in := validServiceInput()
		in.Parts = []PartInput{{StockItemID: "st-1", Quantity: 2}, {StockItemID: "st-2", Quantity: 1}}
		res, err := uc.CreateService(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestServiceUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "svc-1", "Cancelado")
		if !errors.Is(err, ErrInvalidServiceStatus) {
			t.Fatalf("expected ErrInvalidServiceStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusPronto).Return(entities.Service{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "svc-1", entities.ServiceStatusPronto)
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("non delivery status leaves transactions alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, txRepo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusAguardandoPeca).
			Return(entities.Service{ID: "svc-1", Status: entities.ServiceStatusAguardandoPeca}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "svc-1", entities.ServiceStatusAguardandoPeca); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delivery settles linked transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, txRepo)

		delivered := entities.Service{ID: "svc-1", Status: entities.ServiceStatusEntregue, CustomerName: "Ana", Value: decimal.NewFromInt(200)}
		repo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusEntregue).Return(delivered, nil)
		txRepo.EXPECT().ListByServiceID(gomock.Any(), "svc-1").Return([]entities.Transaction{
			{ID: "tx-paid", ServiceID: "svc-1", Status: entities.TransactionStatusPago},
			{ID: "tx-1", ServiceID: "svc-1", Status: entities.TransactionStatusPendente},
		}, nil)
		txRepo.EXPECT().UpdateStatus(gomock.Any(), "tx-1", entities.TransactionStatusPago).Return(entities.Transaction{ID: "tx-1"}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "svc-1", entities.ServiceStatusEntregue); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delivery falls back to customer and amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, txRepo)

		delivered := entities.Service{ID: "svc-1", Status: entities.ServiceStatusEntregue, CustomerName: "Ana", Value: decimal.NewFromInt(200)}
		repo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusEntregue).Return(delivered, nil)
		txRepo.EXPECT().ListByServiceID(gomock.Any(), "svc-1").Return(nil, nil)
		txRepo.EXPECT().List(gomock.Any()).Return([]entities.Transaction{
			{ID: "tx-other", CustomerName: "Bruno", Amount: decimal.NewFromInt(200), Status: entities.TransactionStatusPendente},
			{ID: "tx-legacy", CustomerName: "Ana", Amount: decimal.RequireFromString("200.00"), Status: entities.TransactionStatusPendente},
		}, nil)
		txRepo.EXPECT().UpdateStatus(gomock.Any(), "tx-legacy", entities.TransactionStatusPago).Return(entities.Transaction{ID: "tx-legacy"}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "svc-1", entities.ServiceStatusEntregue); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_UpdateAndList(t *testing.T) {
	t.Run("update keeps parts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil)

		current := entities.Service{ID: "svc-1", Number: 7, UsedParts: []entities.UsedPart{{StockItemID: "st-1", Quantity: 1}}}
		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if len(s.UsedParts) != 1 || s.Number != 7 || s.Device != "Galaxy A52" {
					t.Fatalf("unexpected update: %+v", s)
				}
				return s, nil
			},
		)

		in := validServiceInput()
		in.Parts = []PartInput{{StockItemID: "ignored", Quantity: 9}}
		if _, err := uc.UpdateService(context.Background(), "svc-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("list filters and orders newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Service{
			{ID: "old", CustomerName: "João", Device: "iPhone", CreatedAt: time.Unix(10, 0)},
			{ID: "new", CustomerName: "Joana", Device: "Moto G", CreatedAt: time.Unix(20, 0)},
			{ID: "other", CustomerName: "Pedro", Device: "Redmi", CreatedAt: time.Unix(30, 0)},
		}, nil)

		res, err := uc.List(context.Background(), "jo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "new" || res[1].ID != "old" {
			t.Fatalf("unexpected list: %+v", res)
		}
	})
}

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

func validStockInput() StockItemInput {
	return StockItemInput{
		Name:          " Tela iPhone 11 ",
		Code:          "TL-IP11",
		Category:      entities.StockCategoryTela,
		State:         entities.StockStateNovo,
		Quantity:      5,
		MinQuantity:   2,
		PurchasePrice: decimal.NewFromInt(120),
		SalePrice:     decimal.NewFromInt(250),
	}
}

func TestStockUseCase_CreateItem(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*StockItemInput)
		want   error
	}{
		{name: "blank name", mutate: func(in *StockItemInput) { in.Name = "  " }, want: ErrInvalidStockName},
		{name: "bad category", mutate: func(in *StockItemInput) { in.Category = "x" }, want: ErrInvalidStockCategory},
		{name: "bad state", mutate: func(in *StockItemInput) { in.State = "seminovo" }, want: ErrInvalidStockState},
		{name: "negative quantity", mutate: func(in *StockItemInput) { in.Quantity = -1 }, want: ErrInvalidStockQuantity},
		{name: "negative min quantity", mutate: func(in *StockItemInput) { in.MinQuantity = -1 }, want: ErrInvalidStockQuantity},
		{name: "negative price", mutate: func(in *StockItemInput) { in.SalePrice = decimal.NewFromInt(-1) }, want: ErrInvalidStockPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewStockUseCase(nil)
			in := validStockInput()
			tc.mutate(&in)
			_, err := uc.CreateItem(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("duplicated code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewStockUseCase(repo)

		repo.EXPECT().GetByCode(gomock.Any(), "TL-IP11").Return(entities.StockItem{ID: "other"}, nil)

		_, err := uc.CreateItem(context.Background(), validStockInput())
		if !errors.Is(err, ErrStockCodeAlreadyInUse) {
			t.Fatalf("expected ErrStockCodeAlreadyInUse, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewStockUseCase(repo)

		repo.EXPECT().GetByCode(gomock.Any(), "TL-IP11").Return(entities.StockItem{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.StockItem{})).DoAndReturn(
			func(_ context.Context, it entities.StockItem) (entities.StockItem, error) {
				if it.ID == "" || it.Name != "Tela iPhone 11" || it.Quantity != 5 {
					t.Fatalf("unexpected item: %+v", it)
				}
				if it.CreatedAt.IsZero() || it.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return it, nil
			},
		)

		res, err := uc.CreateItem(context.Background(), validStockInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestStockUseCase_UpdateItem(t *testing.T) {
	t.Run("quantity change records a movement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewStockUseCase(repo)

		current := entities.StockItem{ID: "st-1", Name: "Tela", Code: "TL-IP11", Quantity: 2, CreatedAt: time.Unix(100, 0)}
		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(current, nil)
		repo.EXPECT().GetByCode(gomock.Any(), "TL-IP11").Return(current, nil)
		repo.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mv entities.StockMovement) (entities.StockItem, error) {
				if mv.PreviousQuantity != 2 || mv.NewQuantity != 5 || mv.Delta != 3 || mv.Reason != reasonRegistrationAdjustment {
					t.Fatalf("unexpected movement: %+v", mv)
				}
				current.Quantity = 5
				return current, nil
			},
		)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.StockItem) (entities.StockItem, error) {
				if !it.CreatedAt.Equal(time.Unix(100, 0)) {
					t.Fatalf("created_at must be kept")
				}
				return it, nil
			},
		)

		res, err := uc.UpdateItem(context.Background(), "st-1", validStockInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", res.Quantity)
		}
	})

	t.Run("conditional update lost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewStockUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.StockItem{ID: "st-1", Quantity: 2}, nil)
		repo.EXPECT().GetByCode(gomock.Any(), "TL-IP11").Return(entities.StockItem{}, nil)
		repo.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).Return(entities.StockItem{}, nil)

		_, err := uc.UpdateItem(context.Background(), "st-1", validStockInput())
		if !errors.Is(err, ErrStockConflict) {
			t.Fatalf("expected ErrStockConflict, got %v", err)
		}
	})

	t.Run("edit racing a movement is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewStockUseCase(repo)

		in := validStockInput()
		current := entities.StockItem{ID: "st-1", Name: "Tela", Code: "TL-IP11", Quantity: in.Quantity}
		repo.EXPECT().GetByCode(gomock.Any(), "TL-IP11").Return(current, nil)
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(current, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, it entities.StockItem) (entities.StockItem, error) {
					if it.Quantity != in.Quantity {
						t.Fatalf("update must carry the quantity it expects, got %d", it.Quantity)
					}
					return entities.StockItem{}, nil
				},
			),
			repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.StockItem{ID: "st-1", Quantity: in.Quantity - 1}, nil),
		)

		_, err := uc.UpdateItem(context.Background(), "st-1", in)
		if !errors.Is(err, ErrStockConflict) {
			t.Fatalf("expected ErrStockConflict, got %v", err)
		}
	})

	t.Run("item deleted during edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewStockUseCase(repo)

		in := validStockInput()
		current := entities.StockItem{ID: "st-1", Code: "TL-IP11", Quantity: in.Quantity}
		repo.EXPECT().GetByCode(gomock.Any(), "TL-IP11").Return(current, nil)
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(current, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.StockItem{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.StockItem{}, nil),
		)

		_, err := uc.UpdateItem(context.Background(), "st-1", in)
		if !errors.Is(err, ErrStockItemNotFound) {
			t.Fatalf("expected ErrStockItemNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewStockUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.StockItem{}, nil)

		_, err := uc.UpdateItem(context.Background(), "st-1", validStockInput())
		if !errors.Is(err, ErrStockItemNotFound) {
			t.Fatalf("expected ErrStockItemNotFound, got %v", err)
		}
	})
}

func TestStockUseCase_MoveStock(t *testing.T) {
	cases := []struct {
		name     string
		mt       entities.MovementType
		quantity int
		reason   string
		wantQty  int
		wantWhy  string
	}{
		{name: "add", mt: entities.MovementTypeAdd, quantity: 3, reason: "Compra", wantQty: 7, wantWhy: "Compra"},
		{name: "remove", mt: entities.MovementTypeRemove, quantity: 2, wantQty: 2, wantWhy: "Movimentação manual"},
		{name: "remove clamps at zero", mt: entities.MovementTypeRemove, quantity: 10, wantQty: 0, wantWhy: "Movimentação manual"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIStockRepository(ctrl)
			uc := NewStockUseCase(repo)

			repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.StockItem{ID: "st-1", Quantity: 4}, nil)
			repo.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, mv entities.StockMovement) (entities.StockItem, error) {
					if mv.NewQuantity != tc.wantQty || mv.Reason != tc.wantWhy || mv.PreviousQuantity != 4 {
						t.Fatalf("unexpected movement: %+v", mv)
					}
					return entities.StockItem{ID: "st-1", Quantity: mv.NewQuantity}, nil
				},
			)

			res, err := uc.MoveStock(context.Background(), "st-1", tc.mt, tc.quantity, tc.reason)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Quantity != tc.wantQty {
				t.Fatalf("expected %d, got %d", tc.wantQty, res.Quantity)
			}
		})
	}

	t.Run("invalid type", func(t *testing.T) {
		uc := NewStockUseCase(nil)
		_, err := uc.MoveStock(context.Background(), "st-1", "swap", 1, "")
		if !errors.Is(err, ErrInvalidMovementType) {
			t.Fatalf("expected ErrInvalidMovementType, got %v", err)
		}
	})
}

func TestStockUseCase_ListAndDelete(t *testing.T) {
	items := []entities.StockItem{
		{ID: "3", Name: "Película", Category: entities.StockCategoryPelicula, Quantity: 10},
		{ID: "1", Name: "Bateria Moto G", Category: entities.StockCategoryBateria, Quantity: 1},
		{ID: "2", Name: "Aparelho Galaxy A10", Category: entities.StockCategoryAparelho, Quantity: 1},
		{ID: "4", Name: "Aparelho iPhone 8", Category: entities.StockCategoryAparelho, Quantity: 0},
	}

	t.Run("parts only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewStockUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(items, nil)

		res, err := uc.List(context.Background(), StockFilter{Kind: StockKindParts})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "1" || res[1].ID != "3" {
			t.Fatalf("unexpected parts: %+v", res)
		}
	})

	t.Run("sellable devices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewStockUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(items, nil)

		res, err := uc.List(context.Background(), StockFilter{Kind: StockKindDevices})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "2" {
			t.Fatalf("unexpected devices: %+v", res)
		}
	})

	t.Run("query ignores accents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewStockUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(items, nil)

		res, err := uc.List(context.Background(), StockFilter{Query: "pelicula"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "3" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("delete removes movements first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewStockUseCase(repo)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.StockItem{ID: "st-1"}, nil),
			repo.EXPECT().DeleteMovements(gomock.Any(), "st-1").Return(nil),
			repo.EXPECT().Delete(gomock.Any(), "st-1").Return(nil),
		)

		if err := uc.DeleteItem(context.Background(), "st-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

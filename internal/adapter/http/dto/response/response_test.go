package response

import (
	"testing"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromService(t *testing.T) {
	now := time.Now().UTC()
	s := entities.Service{
		ID:     "svc-1",
		Number: 7,
		Value:  decimal.RequireFromString("250"),
		Status: entities.ServiceStatusPronto,
		UsedParts: []entities.UsedPart{
			{StockItemID: "st-1", Name: "Bateria", Quantity: 2, UnitPrice: decimal.RequireFromString("45.5")},
		},
		CreatedAt: now,
	}

	res := FromService(s)
	if res.ID != "svc-1" || res.Number != 7 || res.Status != "Pronto" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Value != 250 || res.PartsTotal != 91 {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if res.DeliveryDate != nil {
		t.Fatalf("zero delivery date should be omitted")
	}
	if len(res.UsedParts) != 1 || res.UsedParts[0].Total != 91 {
		t.Fatalf("unexpected parts: %+v", res.UsedParts)
	}
}

func TestFromStockItem_Flags(t *testing.T) {
	res := FromStockItem(entities.StockItem{
		ID:          "st-1",
		Category:    entities.StockCategoryPelicula,
		State:       entities.StockStateUsado,
		Quantity:    0,
		MinQuantity: 2,
	})
	if !res.LowStock || !res.OutOfStock {
		t.Fatalf("expected low and out of stock: %+v", res)
	}
	if res.CategoryLabel != "Película" || res.StateLabel != "Semi novo" {
		t.Fatalf("unexpected labels: %+v", res)
	}
}

func TestFromSale_PaymentLabel(t *testing.T) {
	res := FromSale(entities.Sale{ID: "s-1", Notes: "PDV - pix - Desconto: 0%"})
	if res.PaymentLabel != "PIX" || res.PaymentMethod != "" {
		t.Fatalf("unexpected payment fields: %+v", res)
	}
}

func TestFromCart(t *testing.T) {
	c := entities.Cart{
		ID: "caixa-1",
		Items: []entities.CartItem{
			{StockItemID: "a", UnitPrice: decimal.RequireFromString("10"), Quantity: 3},
			{StockItemID: "b", UnitPrice: decimal.RequireFromString("5"), Quantity: 1},
		},
		DiscountPercent: decimal.RequireFromString("10"),
	}

	res := FromCart(c)
	if res.ItemCount != 4 {
		t.Fatalf("expected 4 units, got %d", res.ItemCount)
	}
	if res.Subtotal != 35 || res.DiscountAmount != 3.5 || res.Total != 31.5 {
		t.Fatalf("unexpected totals: %+v", res)
	}
}

func TestFromCheckout(t *testing.T) {
	r := usecase.CheckoutResult{
		CheckoutID:  "co-1",
		Sales:       []entities.Sale{{ID: "s-1"}},
		Transaction: entities.Transaction{ID: "tx-1", Type: entities.TransactionTypeEntrada},
		Receipt:     entities.Receipt{Reference: "co-1", Total: decimal.RequireFromString("90")},
	}

	res := FromCheckout(r)
	if res.Payment != nil {
		t.Fatalf("payment should be omitted")
	}
	if res.Transaction.TypeLabel != "Entrada" || res.Receipt.Total != 90 {
		t.Fatalf("unexpected mapping: %+v", res)
	}

	r.Payment = &entities.Payment{ID: "mp-1", Status: entities.PaymentStatusAprovado, Amount: decimal.RequireFromString("90")}
	res = FromCheckout(r)
	if res.Payment == nil || res.Payment.ID != "mp-1" || res.Payment.Status != "aprovado" {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}
}

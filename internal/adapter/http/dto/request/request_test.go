package request

import (
	"encoding/json"
	"testing"
	"time"

	"assistencia_tecnica/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %s", got)
	}

	if _, err := ParseDate("2025-06-30T10:00:00-03:00"); err != nil {
		t.Fatalf("rfc3339 should parse: %v", err)
	}
	if got, err := ParseDate("  "); err != nil || !got.IsZero() {
		t.Fatalf("blank should be zero, got %s %v", got, err)
	}
	if _, err := ParseDate("30/06/2025"); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestServiceRequest_ToInput(t *testing.T) {
	r := ServiceRequest{
		CustomerName: "Maria",
		Device:       "iPhone",
		Value:        150.555,
		DeliveryDate: "2025-07-01",
		UsedParts:    []UsedPartRequest{{StockItemID: "st-1", Quantity: 2}},
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.Value.Equal(decimal.RequireFromString("150.56")) {
		t.Fatalf("value should be rounded to cents, got %s", in.Value)
	}
	if len(in.Parts) != 1 || in.Parts[0].Quantity != 2 {
		t.Fatalf("unexpected parts: %+v", in.Parts)
	}

	r.DeliveryDate = "amanhã"
	if _, err := r.ToInput(); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestCheckoutRequest_ToInput(t *testing.T) {
	in := CheckoutRequest{PaymentMethod: " pix ", ProviderPayload: json.RawMessage("null")}.ToInput()
	if in.PaymentMethod != entities.PaymentMethodPix {
		t.Fatalf("unexpected method %q", in.PaymentMethod)
	}
	if in.ProviderPayload != nil {
		t.Fatalf("null payload should be dropped")
	}

	in = CheckoutRequest{PaymentMethod: "cartao", ProviderPayload: json.RawMessage(`{"token":"x"}`)}.ToInput()
	if string(in.ProviderPayload) != `{"token":"x"}` {
		t.Fatalf("payload should be kept, got %s", in.ProviderPayload)
	}
}

func TestAddCartItemRequest_IsEmpty(t *testing.T) {
	if !(AddCartItemRequest{StockItemID: " "}).IsEmpty() {
		t.Fatalf("blank request should be empty")
	}
	if (AddCartItemRequest{Code: "789"}).IsEmpty() {
		t.Fatalf("code alone is enough")
	}
}

func TestStockItemRequest_ToInput(t *testing.T) {
	in := StockItemRequest{Name: "Tela", Category: "tela", State: "novo", SalePrice: 99.9}.ToInput()
	if in.Category != entities.StockCategoryTela || in.State != entities.StockStateNovo {
		t.Fatalf("unexpected input: %+v", in)
	}
	if !in.SalePrice.Equal(decimal.RequireFromString("99.9")) {
		t.Fatalf("unexpected sale price %s", in.SalePrice)
	}
}

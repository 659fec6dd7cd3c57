package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSale_PaymentLabel(t *testing.T) {
	cases := []struct {
		name string
		sale Sale
		want string
	}{
		{name: "explicit method", sale: Sale{PaymentMethod: PaymentMethodPix}, want: "PIX"},
		{name: "empty notes", sale: Sale{}, want: "N/A"},
		{name: "legacy cash notes", sale: Sale{Notes: "PDV - dinheiro - Desconto: 0%"}, want: "Dinheiro"},
		{name: "legacy card notes", sale: Sale{Notes: "PDV - cartao - Desconto: 5%"}, want: "Cartão"},
		{name: "legacy transfer notes", sale: Sale{Notes: "PDV - transferencia - Desconto: 0%"}, want: "Transferência"},
		{name: "other notes", sale: Sale{Notes: "cliente antigo"}, want: "Outros"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sale.PaymentLabel(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNewReceiptFromSales(t *testing.T) {
	now := time.Now().UTC()
	sales := []Sale{
		{Device: "Capa iPhone", Quantity: 2, UnitPrice: decimal.NewFromInt(10), SalePrice: decimal.NewFromInt(18), DiscountPercent: decimal.NewFromInt(10), CustomerName: "Ana", PaymentMethod: PaymentMethodDinheiro, CreatedAt: now},
		{Device: "Cabo USB-C", Quantity: 1, UnitPrice: decimal.NewFromInt(5), SalePrice: decimal.RequireFromString("4.5"), DiscountPercent: decimal.NewFromInt(10), CustomerName: "Ana", PaymentMethod: PaymentMethodDinheiro, CreatedAt: now},
	}

	r := NewReceiptFromSales("chk-1", sales)
	if r.Reference != "chk-1" || r.CustomerName != "Ana" || r.PaymentMethod != "Dinheiro" {
		t.Fatalf("unexpected receipt header: %+v", r)
	}
	if len(r.Items) != 2 || r.Items[0].TotalPrice.String() != "20" {
		t.Fatalf("unexpected items: %+v", r.Items)
	}
	if r.Subtotal.String() != "25" || r.Total.String() != "22.5" || r.DiscountAmount.String() != "2.5" {
		t.Fatalf("unexpected totals: subtotal=%s total=%s discount=%s", r.Subtotal, r.Total, r.DiscountAmount)
	}
}

func TestNewReceiptFromSales_LegacySale(t *testing.T) {
	r := NewReceiptFromSales("s-1", []Sale{{Device: "iPhone 11", SalePrice: decimal.NewFromInt(1500)}})
	if len(r.Items) != 1 || r.Items[0].Quantity != 1 || !r.Items[0].UnitPrice.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("unexpected items: %+v", r.Items)
	}
	if !r.DiscountAmount.IsZero() || !r.Total.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("unexpected totals: %+v", r)
	}
}

package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCart_Totals(t *testing.T) {
	c := Cart{
		Items: []CartItem{
			{StockItemID: "a", UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
			{StockItemID: "b", UnitPrice: decimal.RequireFromString("5.55"), Quantity: 1},
		},
		DiscountPercent: decimal.NewFromInt(10),
	}

	if got := c.Subtotal().String(); got != "25.55" {
		t.Fatalf("expected subtotal 25.55, got %s", got)
	}
	if got := c.DiscountAmount().String(); got != "2.56" {
		t.Fatalf("expected discount 2.56, got %s", got)
	}
	if got := c.Total().String(); got != "22.99" {
		t.Fatalf("expected total 22.99, got %s", got)
	}

	lines := c.LineTotals()
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l)
	}
	if !sum.Equal(c.Total()) {
		t.Fatalf("line totals %v do not add up to %s", lines, c.Total())
	}
	if lines[0].String() != "18" {
		t.Fatalf("expected first line 18, got %s", lines[0])
	}
	if c.IndexOf("b") != 1 || c.IndexOf("z") != -1 {
		t.Fatalf("unexpected IndexOf results")
	}
}

func TestCart_Empty(t *testing.T) {
	c := Cart{}
	if !c.IsEmpty() || !c.Total().IsZero() || len(c.LineTotals()) != 0 {
		t.Fatalf("expected empty cart with zero total")
	}
}

func TestCart_DiscountRoundsHalfUpToCents(t *testing.T) {
	c := Cart{
		Items: []CartItem{
			{StockItemID: "a", UnitPrice: decimal.RequireFromString("0.05"), Quantity: 1},
			{StockItemID: "b", UnitPrice: decimal.RequireFromString("0.05"), Quantity: 1},
		},
		DiscountPercent: decimal.NewFromInt(50),
	}

	if got := c.DiscountAmount().String(); got != "0.05" {
		t.Fatalf("expected discount 0.05, got %s", got)
	}
	lines := c.LineTotals()
	// 0.05 - round(0.025) on the first line, the remainder on the last.
	if lines[0].String() != "0.02" || lines[1].String() != "0.03" {
		t.Fatalf("unexpected line totals %v", lines)
	}
}

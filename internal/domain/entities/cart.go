package entities

import (
	"time"

	"assistencia_tecnica/internal/domain/money"

	"github.com/shopspring/decimal"
)

// CartItem is a stock item placed in a PDV cart. MaxQuantity is the stock
// quantity seen when the item was last added.
type CartItem struct {
	StockItemID   string          `json:"stock_item_id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	State         StockState      `json:"state"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Quantity      int             `json:"quantity"`
	MaxQuantity   int             `json:"max_quantity"`
}

func (i CartItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the PDV cart of one register session.
type Cart struct {
	ID              string          `json:"id"`
	Items           []CartItem      `json:"items"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	CustomerName    string          `json:"customer_name"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// IndexOf returns the position of the stock item in the cart, or -1.
func (c Cart) IndexOf(stockItemID string) int {
	for i, it := range c.Items {
		if it.StockItemID == stockItemID {
			return i
		}
	}
	return -1
}

func (c Cart) Subtotal() decimal.Decimal {
	lines := make([]decimal.Decimal, len(c.Items))
	for i, it := range c.Items {
		lines[i] = it.Total()
	}
	return money.Sum(lines...)
}

func (c Cart) DiscountAmount() decimal.Decimal {
	return money.PercentOf(c.Subtotal(), c.DiscountPercent)
}

func (c Cart) Total() decimal.Decimal {
	return c.Subtotal().Sub(c.DiscountAmount())
}

// LineTotals spreads the discount over the lines. The last line takes the
// rounding remainder so the lines always add up to Total.
func (c Cart) LineTotals() []decimal.Decimal {
	out := make([]decimal.Decimal, len(c.Items))
	if len(c.Items) == 0 {
		return out
	}
	allocated := decimal.Zero
	for i, it := range c.Items[:len(c.Items)-1] {
		line := it.Total()
		net := line.Sub(money.PercentOf(line, c.DiscountPercent))
		out[i] = net
		allocated = allocated.Add(net)
	}
	out[len(c.Items)-1] = c.Total().Sub(allocated)
	return out
}

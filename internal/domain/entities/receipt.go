package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceiptItem struct {
	Quantity   int             `json:"quantity"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Receipt is the printable summary of a sale or a PDV checkout.
type Receipt struct {
	Reference       string          `json:"reference"`
	Date            time.Time       `json:"date"`
	CustomerName    string          `json:"customer_name"`
	PaymentMethod   string          `json:"payment_method"`
	Items           []ReceiptItem   `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	Total           decimal.Decimal `json:"total"`
}

// NewReceiptFromSales rebuilds a receipt from persisted sales. All sales are
// expected to share customer, payment and discount, as a checkout does.
func NewReceiptFromSales(reference string, sales []Sale) Receipt {
	r := Receipt{
		Reference:       reference,
		Items:           make([]ReceiptItem, 0, len(sales)),
		Subtotal:        decimal.Zero,
		DiscountPercent: decimal.Zero,
		DiscountAmount:  decimal.Zero,
		Total:           decimal.Zero,
	}
	if len(sales) == 0 {
		return r
	}

	first := sales[0]
	r.Date = first.CreatedAt
	r.CustomerName = first.CustomerName
	r.PaymentMethod = first.PaymentLabel()
	r.DiscountPercent = first.DiscountPercent

	for _, s := range sales {
		qty := s.Quantity
		if qty <= 0 {
			qty = 1
		}
		unit := s.UnitPrice
		if unit.IsZero() {
			unit = s.SalePrice
		}
		line := s.LineSubtotal()
		r.Items = append(r.Items, ReceiptItem{
			Quantity:   qty,
			Name:       s.Device,
			UnitPrice:  unit,
			TotalPrice: line,
		})
		r.Subtotal = r.Subtotal.Add(line)
		r.Total = r.Total.Add(s.SalePrice)
	}
	r.DiscountAmount = r.Subtotal.Sub(r.Total)
	return r
}

package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type SaleCondition string

const (
	SaleConditionNovo     SaleCondition = "Novo"
	SaleConditionSeminovo SaleCondition = "Seminovo"
	SaleConditionUsado    SaleCondition = "Usado"
)

func (c SaleCondition) IsValid() bool {
	switch c {
	case SaleConditionNovo, SaleConditionSeminovo, SaleConditionUsado:
		return true
	}
	return false
}

// PaymentMethod is how a PDV checkout was paid.
type PaymentMethod string

const (
	PaymentMethodDinheiro      PaymentMethod = "dinheiro"
	PaymentMethodCartao        PaymentMethod = "cartao"
	PaymentMethodPix           PaymentMethod = "pix"
	PaymentMethodTransferencia PaymentMethod = "transferencia"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodDinheiro, PaymentMethodCartao, PaymentMethodPix, PaymentMethodTransferencia:
		return true
	}
	return false
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodDinheiro:
		return "Dinheiro"
	case PaymentMethodCartao:
		return "Cartão"
	case PaymentMethodPix:
		return "PIX"
	case PaymentMethodTransferencia:
		return "Transferência"
	case "":
		return "N/A"
	}
	return "Outros"
}

// Sale is a device or product sold, either from stock or sourced externally.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (checkout_id-index): checkout_id, only set on PDV sales
//
// SalePrice is the amount actually charged for the line (discount applied),
// PurchasePrice the cost of the whole line.
type Sale struct {
	ID              string          `json:"id"`
	Device          string          `json:"device"`
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	Storage         string          `json:"storage"`
	Condition       SaleCondition   `json:"condition"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	Profit          decimal.Decimal `json:"profit"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	CustomerName    string          `json:"customer_name"`
	Notes           string          `json:"notes"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	StockItemID     string          `json:"stock_item_id"`
	CheckoutID      string          `json:"checkout_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (s Sale) IsFromStock() bool {
	return s.StockItemID != ""
}

func (s Sale) IsFromCheckout() bool {
	return s.CheckoutID != ""
}

// PaymentLabel prefers the recorded method and falls back to the
// "PDV - <method> - ..." notes written by older checkouts.
func (s Sale) PaymentLabel() string {
	if s.PaymentMethod != "" {
		return s.PaymentMethod.Label()
	}
	notes := strings.ToLower(strings.TrimSpace(s.Notes))
	if notes == "" {
		return "N/A"
	}
	for _, m := range []PaymentMethod{PaymentMethodDinheiro, PaymentMethodCartao, PaymentMethodPix, PaymentMethodTransferencia} {
		if strings.Contains(notes, string(m)) {
			return m.Label()
		}
	}
	return "Outros"
}

// LineSubtotal is the undiscounted line amount.
func (s Sale) LineSubtotal() decimal.Decimal {
	qty := s.Quantity
	if qty <= 0 {
		qty = 1
	}
	if s.UnitPrice.IsZero() {
		return s.SalePrice
	}
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

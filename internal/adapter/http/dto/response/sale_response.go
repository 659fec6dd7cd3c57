package response

import (
	"time"

	"assistencia_tecnica/internal/domain/entities"
)

type SaleResponse struct {
	ID              string    `json:"id"`
	Device          string    `json:"device"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	Storage         string    `json:"storage"`
	Condition       string    `json:"condition"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	PurchasePrice   float64   `json:"purchase_price"`
	SalePrice       float64   `json:"sale_price"`
	Profit          float64   `json:"profit"`
	DiscountPercent float64   `json:"discount_percent"`
	CustomerName    string    `json:"customer_name"`
	Notes           string    `json:"notes"`
	PaymentMethod   string    `json:"payment_method,omitempty"`
	PaymentLabel    string    `json:"payment_label"`
	StockItemID     string    `json:"stock_item_id,omitempty"`
	CheckoutID      string    `json:"checkout_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:              s.ID,
		Device:          s.Device,
		Brand:           s.Brand,
		Model:           s.Model,
		Storage:         s.Storage,
		Condition:       string(s.Condition),
		Quantity:        s.Quantity,
		UnitPrice:       s.UnitPrice.InexactFloat64(),
		PurchasePrice:   s.PurchasePrice.InexactFloat64(),
		SalePrice:       s.SalePrice.InexactFloat64(),
		Profit:          s.Profit.InexactFloat64(),
		DiscountPercent: s.DiscountPercent.InexactFloat64(),
		CustomerName:    s.CustomerName,
		Notes:           s.Notes,
		PaymentMethod:   string(s.PaymentMethod),
		PaymentLabel:    s.PaymentLabel(),
		StockItemID:     s.StockItemID,
		CheckoutID:      s.CheckoutID,
		CreatedAt:       s.CreatedAt,
	}
}

func FromSales(list []entities.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSale(s))
	}
	return out
}

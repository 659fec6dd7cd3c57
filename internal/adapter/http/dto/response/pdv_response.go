package response

import (
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase"
)

type CartItemResponse struct {
	StockItemID string  `json:"stock_item_id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	State       string  `json:"state"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	MaxQuantity int     `json:"max_quantity"`
	Total       float64 `json:"total"`
}

type CartResponse struct {
	ID              string             `json:"id"`
	Items           []CartItemResponse `json:"items"`
	ItemCount       int                `json:"item_count"`
	Subtotal        float64            `json:"subtotal"`
	DiscountPercent float64            `json:"discount_percent"`
	DiscountAmount  float64            `json:"discount_amount"`
	Total           float64            `json:"total"`
}

func FromCart(c entities.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	count := 0
	for _, it := range c.Items {
		count += it.Quantity
		items = append(items, CartItemResponse{
			StockItemID: it.StockItemID,
			Name:        it.Name,
			Code:        it.Code,
			Brand:       it.Brand,
			Model:       it.Model,
			State:       string(it.State),
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			Quantity:    it.Quantity,
			MaxQuantity: it.MaxQuantity,
			Total:       it.Total().InexactFloat64(),
		})
	}
	return CartResponse{
		ID:              c.ID,
		Items:           items,
		ItemCount:       count,
		Subtotal:        c.Subtotal().InexactFloat64(),
		DiscountPercent: c.DiscountPercent.InexactFloat64(),
		DiscountAmount:  c.DiscountAmount().InexactFloat64(),
		Total:           c.Total().InexactFloat64(),
	}
}

type ReceiptItemResponse struct {
	Quantity   int     `json:"quantity"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type ReceiptResponse struct {
	Reference       string                `json:"reference"`
	Date            time.Time             `json:"date"`
	CustomerName    string                `json:"customer_name"`
	PaymentMethod   string                `json:"payment_method"`
	Items           []ReceiptItemResponse `json:"items"`
	Subtotal        float64               `json:"subtotal"`
	DiscountPercent float64               `json:"discount_percent"`
	DiscountAmount  float64               `json:"discount_amount"`
	Total           float64               `json:"total"`
}

func FromReceipt(r entities.Receipt) ReceiptResponse {
	items := make([]ReceiptItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, ReceiptItemResponse{
			Quantity:   it.Quantity,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice.InexactFloat64(),
			TotalPrice: it.TotalPrice.InexactFloat64(),
		})
	}
	return ReceiptResponse{
		Reference:       r.Reference,
		Date:            r.Date,
		CustomerName:    r.CustomerName,
		PaymentMethod:   r.PaymentMethod,
		Items:           items,
		Subtotal:        r.Subtotal.InexactFloat64(),
		DiscountPercent: r.DiscountPercent.InexactFloat64(),
		DiscountAmount:  r.DiscountAmount.InexactFloat64(),
		Total:           r.Total.InexactFloat64(),
	}
}

type PaymentResponse struct {
	ID             string    `json:"id"`
	Method         string    `json:"method"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status"`
	ProviderStatus string    `json:"provider_status"`
	Date           time.Time `json:"date"`
}

type CheckoutResponse struct {
	CheckoutID  string              `json:"checkout_id"`
	Sales       []SaleResponse      `json:"sales"`
	Transaction TransactionResponse `json:"transaction"`
	Payment     *PaymentResponse    `json:"payment,omitempty"`
	Receipt     ReceiptResponse     `json:"receipt"`
}

func FromCheckout(r usecase.CheckoutResult) CheckoutResponse {
	out := CheckoutResponse{
		CheckoutID:  r.CheckoutID,
		Sales:       FromSales(r.Sales),
		Transaction: FromTransaction(r.Transaction),
		Receipt:     FromReceipt(r.Receipt),
	}
	if r.Payment != nil {
		out.Payment = &PaymentResponse{
			ID:             r.Payment.ID,
			Method:         string(r.Payment.Method),
			Amount:         r.Payment.Amount.InexactFloat64(),
			Status:         string(r.Payment.Status),
			ProviderStatus: r.Payment.ProviderStatus,
			Date:           r.Payment.Date,
		}
	}
	return out
}

type TodaySalesResponse struct {
	Sales []SaleResponse `json:"sales"`
	Total float64        `json:"total"`
	Count int            `json:"count"`
}

func FromTodaySales(t usecase.TodaySales) TodaySalesResponse {
	return TodaySalesResponse{
		Sales: FromSales(t.Sales),
		Total: t.Total.InexactFloat64(),
		Count: t.Count,
	}
}

package request

import (
	"encoding/json"
	"strings"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase"
)

// AddCartItemRequest adds one unit of a stock item, found by id or by code
// (barcode scanner input).
type AddCartItemRequest struct {
	StockItemID string `json:"stock_item_id"`
	Code        string `json:"code"`
}

func (r AddCartItemRequest) IsEmpty() bool {
	return strings.TrimSpace(r.StockItemID) == "" && strings.TrimSpace(r.Code) == ""
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartDiscountRequest struct {
	Percent float64 `json:"percent" binding:"gte=0,lte=100"`
}

// CheckoutRequest finishes a PDV sale. provider_payload is the Mercado Pago
// payment body, only used for cartao and pix.
type CheckoutRequest struct {
	CustomerName    string          `json:"customer_name"`
	PaymentMethod   string          `json:"payment_method" binding:"required" example:"dinheiro"`
	ProviderPayload json.RawMessage `json:"provider_payload" swaggertype:"object"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	payload := r.ProviderPayload
	if trimmed := strings.TrimSpace(string(payload)); trimmed == "" || trimmed == "null" {
		payload = nil
	}
	return usecase.CheckoutInput{
		CustomerName:    r.CustomerName,
		PaymentMethod:   entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod)),
		ProviderPayload: payload,
	}
}

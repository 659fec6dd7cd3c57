package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// Payment is the provider-side record of a PDV card or pix charge.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI (checkout_id-index): checkout_id
//
// ProviderPayloadRaw keeps the Mercado Pago response as returned.
type Payment struct {
	ID                 string          `json:"id"`
	CheckoutID         string          `json:"checkout_id"`
	Method             PaymentMethod   `json:"method"`
	Amount             decimal.Decimal `json:"amount"`
	Status             PaymentStatus   `json:"status"`
	ProviderStatus     string          `json:"provider_status"`
	Date               time.Time       `json:"date"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any  `json:"provider_payload,omitempty"`
}

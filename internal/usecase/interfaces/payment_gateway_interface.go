package interfaces

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PaymentCharge is one card or pix charge for a PDV checkout. Payload is the
// provider request built by the client (token, payment_method_id, payer).
type PaymentCharge struct {
	CheckoutID string
	Amount     decimal.Decimal
	Payload    json.RawMessage
}

// PaymentChargeResult keeps the provider's answer verbatim in Response.
type PaymentChargeResult struct {
	ProviderPaymentID string
	ProviderStatus    string
	Response          json.RawMessage
}

type IPaymentGateway interface {
	Charge(ctx context.Context, charge PaymentCharge) (PaymentChargeResult, error)
}

package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrGatewayNotReady    = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges PDV card and pix checkouts through the
// Mercado Pago payments API.
type MercadoPagoGateway struct {
	client  payment.Client
	sandbox bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	g := &MercadoPagoGateway{
		client:  payment.NewClient(cfg),
		sandbox: strings.HasPrefix(accessToken, "TEST-"),
	}
	zap.L().Info("mercado pago client initialized", zap.Bool("sandbox", g.sandbox))
	return g, nil
}

// Charge creates the payment. The amount and the checkout reference always
// come from the checkout, never from the client payload.
func (g *MercadoPagoGateway) Charge(ctx context.Context, charge interfaces.PaymentCharge) (interfaces.PaymentChargeResult, error) {
	if g == nil || g.client == nil {
		return interfaces.PaymentChargeResult{}, ErrGatewayNotReady
	}
	log := zap.L().With(
		zap.String("checkout_id", charge.CheckoutID),
		zap.Bool("sandbox", g.sandbox))

	req, err := buildRequest(charge)
	if err != nil {
		log.Warn("mercado pago payload rejected", zap.Error(err))
		return interfaces.PaymentChargeResult{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Warn("mercado pago charge failed", zap.Error(err))
		return interfaces.PaymentChargeResult{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentChargeResult{}, err
	}
	out := interfaces.PaymentChargeResult{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		ProviderStatus:    resp.Status,
		Response:          raw,
	}
	log.Info("mercado pago charge created",
		zap.String("provider_payment_id", out.ProviderPaymentID),
		zap.String("provider_status", out.ProviderStatus))
	return out, nil
}

func buildRequest(charge interfaces.PaymentCharge) (payment.Request, error) {
	var req payment.Request
	if err := json.Unmarshal(charge.Payload, &req); err != nil {
		return payment.Request{}, err
	}
	req.TransactionAmount = charge.Amount.InexactFloat64()
	if req.ExternalReference == "" {
		req.ExternalReference = charge.CheckoutID
	}
	return req, nil
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidProviderPayload         = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentNotApproved             = errors.New("payment not approved")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const providerStatusApproved = "approved"

// PaymentSettings controls how PDV charges reach Mercado Pago. In mock mode
// no request leaves the process and every charge is approved.
type PaymentSettings struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (s PaymentSettings) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(s.AccessToken), "TEST-")
}

// wantsCharge reports whether a checkout goes through the payment provider.
func (u *PDVUseCase) wantsCharge(method entities.PaymentMethod, payload json.RawMessage) bool {
	if method != entities.PaymentMethodCartao && method != entities.PaymentMethodPix {
		return false
	}
	return len(payload) > 0 || u.payments.Mock
}

// charge sends the card or pix charge for a checkout. The returned payment is
// not persisted yet.
func (u *PDVUseCase) charge(ctx context.Context, checkoutID string, method entities.PaymentMethod, amount decimal.Decimal, payload json.RawMessage) (entities.Payment, error) {
	mock := u.payments.Mock
	log := zap.L().With(zap.String("checkout_id", checkoutID), zap.Bool("mock", mock))

	if len(payload) == 0 || !json.Valid(payload) {
		if !mock {
			log.Warn("invalid provider payload", zap.Int("payload_len", len(payload)))
			return entities.Payment{}, ErrInvalidProviderPayload
		}
		payload = json.RawMessage("{}")
	}
	if !mock && u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if !mock {
			if !hasNonEmptyString(reqMap, "payment_method_id") {
				log.Warn("missing payment_method_id")
				return entities.Payment{}, ErrInvalidProviderPayload
			}
			u.normalizeSandboxPayer(reqMap)
			u.ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				log.Warn("missing payer")
				return entities.Payment{}, ErrInvalidProviderPayload
			}
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = checkoutID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("PDV %s", checkoutID)
		}
		// The cart total is authoritative, whatever the client sent.
		reqMap["transaction_amount"] = amount.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	} else {
		log.Warn("provider payload is not an object", zap.Error(err))
	}

	var (
		providerID     string
		providerStatus string
		providerResp   json.RawMessage
		err            error
	)
	if mock {
		providerID, providerStatus, providerResp, err = mockCharge(payload, checkoutID, amount)
	} else {
		var res interfaces.PaymentChargeResult
		res, err = u.gateway.Charge(ctx, interfaces.PaymentCharge{CheckoutID: checkoutID, Amount: amount, Payload: payload})
		providerID, providerStatus, providerResp = res.ProviderPaymentID, res.ProviderStatus, res.Response
		err = mapGatewayError(err)
	}
	if err != nil {
		log.Error("payment gateway failed", zap.Error(err))
		return entities.Payment{}, err
	}
	if providerStatus != providerStatusApproved {
		log.Warn("payment not approved",
			zap.String("provider_payment_id", providerID),
			zap.String("provider_status", providerStatus))
		return entities.Payment{}, fmt.Errorf("%w: %s", ErrPaymentNotApproved, providerStatus)
	}

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response is not json", zap.Error(err))
	}

	log.Info("payment approved", zap.String("provider_payment_id", providerID))
	return entities.Payment{
		ID:                 providerID,
		CheckoutID:         checkoutID,
		Method:             method,
		Amount:             amount,
		Status:             entities.PaymentStatusAprovado,
		ProviderStatus:     providerStatus,
		Date:               u.now().UTC(),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}, nil
}

func mockCharge(payload json.RawMessage, checkoutID string, amount decimal.Decimal) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	resp["id"] = id
	resp["status"] = providerStatusApproved
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = checkoutID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount.InexactFloat64()
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, providerStatusApproved, b, nil
}

func mapGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`), strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`), strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PDVUseCase) ensurePayerDefaults(m map[string]any) {
	if v, ok := m["payer"]; !ok || v == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts payer.id or payer.email; fill the email only when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.payments.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.payments.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email.
func (u *PDVUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.payments.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.payments.TestPayerUserID)
	email := strings.TrimSpace(u.payments.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
}

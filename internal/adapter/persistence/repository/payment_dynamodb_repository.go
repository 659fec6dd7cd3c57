package repository

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	ID                 string         `dynamodbav:"id"`
	CheckoutID         string         `dynamodbav:"checkout_id"`
	Method             string         `dynamodbav:"method"`
	Amount             string         `dynamodbav:"amount"`
	Status             string         `dynamodbav:"status"`
	ProviderStatus     string         `dynamodbav:"provider_status"`
	Date               string         `dynamodbav:"date"`
	ProviderPayload    map[string]any `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string         `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists PDV charges in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: checkout_id-index (PK: checkout_id)
type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentItem(p)); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListByCheckoutID(ctx context.Context, checkoutID string) ([]entities.Payment, error) {
	items, err := queryIndex[paymentItem](ctx, r.ddb, r.tableName, attrCheckoutID, checkoutID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentItem(it))
	}
	return out, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		CheckoutID:         p.CheckoutID,
		Method:             string(p.Method),
		Amount:             formatDecimal(p.Amount),
		Status:             string(p.Status),
		ProviderStatus:     p.ProviderStatus,
		Date:               formatTime(p.Date),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	var raw []byte
	if it.ProviderPayloadRaw != "" {
		raw = []byte(it.ProviderPayloadRaw)
	}
	return entities.Payment{
		ID:                 it.ID,
		CheckoutID:         it.CheckoutID,
		Method:             entities.PaymentMethod(it.Method),
		Amount:             parseDecimal(it.Amount),
		Status:             entities.PaymentStatus(it.Status),
		ProviderStatus:     it.ProviderStatus,
		Date:               parseTime(it.Date),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: raw,
	}
}

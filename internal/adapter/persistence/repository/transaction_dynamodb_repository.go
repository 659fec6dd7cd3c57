package repository

import (
	"context"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransactionsTableName = "transactions"

type transactionItem struct {
	ID               string `dynamodbav:"id"`
	Type             string `dynamodbav:"type"`
	Category         string `dynamodbav:"category"`
	Description      string `dynamodbav:"description"`
	Amount           string `dynamodbav:"amount"`
	Status           string `dynamodbav:"status"`
	CustomerName     string `dynamodbav:"customer_name"`
	ServiceID        string `dynamodbav:"service_id,omitempty"`
	CheckoutID       string `dynamodbav:"checkout_id,omitempty"`
	PaymentReference string `dynamodbav:"payment_reference,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists ledger entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_id-index (PK: service_id)
type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client, tableName string) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toTransactionItem(t)); err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	var it transactionItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) List(ctx context.Context) ([]entities.Transaction, error) {
	items, err := scanAll[transactionItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return fromTransactionItems(items), nil
}

func (r *TransactionDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Transaction, error) {
	items, err := queryIndex[transactionItem](ctx, r.ddb, r.tableName, attrServiceID, serviceID)
	if err != nil {
		return nil, err
	}
	return fromTransactionItems(items), nil
}

func (r *TransactionDynamoRepository) Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toTransactionItem(t))
	if err != nil || !ok {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.TransactionStatus) (entities.Transaction, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Transaction{}, nil
		}
		return entities.Transaction{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Transaction{}, nil
	}
	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:               t.ID,
		Type:             string(t.Type),
		Category:         string(t.Category),
		Description:      t.Description,
		Amount:           formatDecimal(t.Amount),
		Status:           string(t.Status),
		CustomerName:     t.CustomerName,
		ServiceID:        t.ServiceID,
		CheckoutID:       t.CheckoutID,
		PaymentReference: t.PaymentReference,
		CreatedAt:        formatTime(t.CreatedAt),
		UpdatedAt:        formatTime(t.UpdatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	return entities.Transaction{
		ID:               it.ID,
		Type:             entities.TransactionType(it.Type),
		Category:         entities.TransactionCategory(it.Category),
		Description:      it.Description,
		Amount:           parseDecimal(it.Amount),
		Status:           entities.TransactionStatus(it.Status),
		CustomerName:     it.CustomerName,
		ServiceID:        it.ServiceID,
		CheckoutID:       it.CheckoutID,
		PaymentReference: it.PaymentReference,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

func fromTransactionItems(items []transactionItem) []entities.Transaction {
	out := make([]entities.Transaction, 0, len(items))
	for _, it := range items {
		out = append(out, fromTransactionItem(it))
	}
	return out
}

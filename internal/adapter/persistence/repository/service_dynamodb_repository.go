package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicesTableName = "services"
	defaultCountersTableName = "counters"
	serviceNumberCounter     = "service_number"
)

type usedPartItem struct {
	StockItemID string `dynamodbav:"stock_item_id"`
	Name        string `dynamodbav:"name"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type serviceItem struct {
	ID            string         `dynamodbav:"id"`
	Number        int64          `dynamodbav:"number"`
	CustomerName  string         `dynamodbav:"customer_name"`
	CustomerPhone string         `dynamodbav:"customer_phone"`
	Device        string         `dynamodbav:"device"`
	Problem       string         `dynamodbav:"problem"`
	Value         string         `dynamodbav:"value"`
	Status        string         `dynamodbav:"status"`
	DeliveryDate  string         `dynamodbav:"delivery_date,omitempty"`
	Notes         string         `dynamodbav:"notes"`
	UsedParts     []usedPartItem `dynamodbav:"used_parts"`
	CreatedAt     string         `dynamodbav:"created_at"`
	UpdatedAt     string         `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists service orders in DynamoDB.
//
// Table requirements:
//   - services: PK id (string)
//   - counters: PK name (string), holds the "service_number" sequence
type ServiceDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client, tableName, countersTable string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:           ddb,
		tableName:     tableOrDefault(tableName, defaultServicesTableName),
		countersTable: tableOrDefault(countersTable, defaultCountersTableName),
	}
}

// NextNumber atomically increments the service order sequence. The first
// call on an empty counters table returns 1.
func (r *ServiceDynamoRepository) NextNumber(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: serviceNumberCounter},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s returned no value", serviceNumberCounter)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toServiceItem(s)); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	var it serviceItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	items, err := scanAll[serviceItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceItem(it))
	}
	return out, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toServiceItem(s))
	if err != nil || !ok {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Service, error) {
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
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Service{}, nil
	}
	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toServiceItem(s entities.Service) serviceItem {
	parts := make([]usedPartItem, 0, len(s.UsedParts))
	for _, p := range s.UsedParts {
		parts = append(parts, usedPartItem{
			StockItemID: p.StockItemID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			UnitPrice:   formatDecimal(p.UnitPrice),
		})
	}
	return serviceItem{
		ID:            s.ID,
		Number:        s.Number,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		Device:        s.Device,
		Problem:       s.Problem,
		Value:         formatDecimal(s.Value),
		Status:        string(s.Status),
		DeliveryDate:  formatTime(s.DeliveryDate),
		Notes:         s.Notes,
		UsedParts:     parts,
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	parts := make([]entities.UsedPart, 0, len(it.UsedParts))
	for _, p := range it.UsedParts {
		parts = append(parts, entities.UsedPart{
			StockItemID: p.StockItemID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			UnitPrice:   parseDecimal(p.UnitPrice),
		})
	}
	return entities.Service{
		ID:            it.ID,
		Number:        it.Number,
		CustomerName:  it.CustomerName,
		CustomerPhone: it.CustomerPhone,
		Device:        it.Device,
		Problem:       it.Problem,
		Value:         parseDecimal(it.Value),
		Status:        entities.ServiceStatus(it.Status),
		DeliveryDate:  parseTime(it.DeliveryDate),
		Notes:         it.Notes,
		UsedParts:     parts,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

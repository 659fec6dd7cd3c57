package repository

import (
	"context"
	"errors"
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
	defaultStockTableName          = "stock"
	defaultStockMovementsTableName = "stock_movements"
	batchWriteLimit                = 25
)

type stockItemRow struct {
	ID string `dynamodbav:"id"`
	// GSI key, omitted when the item has no code.
	Code          string `dynamodbav:"code,omitempty"`
	Name          string `dynamodbav:"name"`
	Category      string `dynamodbav:"category"`
	State         string `dynamodbav:"state"`
	Brand         string `dynamodbav:"brand"`
	Model         string `dynamodbav:"model"`
	Quantity      int    `dynamodbav:"quantity"`
	MinQuantity   int    `dynamodbav:"min_quantity"`
	PurchasePrice string `dynamodbav:"purchase_price"`
	SalePrice     string `dynamodbav:"sale_price"`
	Supplier      string `dynamodbav:"supplier"`
	Location      string `dynamodbav:"location"`
	Notes         string `dynamodbav:"notes"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type stockMovementRow struct {
	ID               string `dynamodbav:"id"`
	StockItemID      string `dynamodbav:"stock_item_id"`
	Delta            int    `dynamodbav:"delta"`
	PreviousQuantity int    `dynamodbav:"previous_quantity"`
	NewQuantity      int    `dynamodbav:"new_quantity"`
	Reason           string `dynamodbav:"reason"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// StockDynamoRepository persists stock items and their movement history.
//
// Table requirements:
//   - stock: PK id (string), GSI code-index (PK: code)
//   - stock_movements: PK id (string), GSI stock_item_id-index (PK: stock_item_id)
type StockDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	movementsTable string
}

var _ interfaces.IStockRepository = (*StockDynamoRepository)(nil)

func NewStockDynamoRepository(ddb *dynamodb.Client, tableName, movementsTable string) *StockDynamoRepository {
	return &StockDynamoRepository{
		ddb:            ddb,
		tableName:      tableOrDefault(tableName, defaultStockTableName),
		movementsTable: tableOrDefault(movementsTable, defaultStockMovementsTableName),
	}
}

func (r *StockDynamoRepository) Create(ctx context.Context, item entities.StockItem) (entities.StockItem, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toStockItemRow(item)); err != nil {
		return entities.StockItem{}, err
	}
	return item, nil
}

func (r *StockDynamoRepository) GetByID(ctx context.Context, id string) (entities.StockItem, error) {
	var row stockItemRow
	found, err := getByID(ctx, r.ddb, r.tableName, id, &row)
	if err != nil || !found {
		return entities.StockItem{}, err
	}
	return fromStockItemRow(row), nil
}

// GetByCode returns the first item carrying code, or a zero StockItem.
func (r *StockDynamoRepository) GetByCode(ctx context.Context, code string) (entities.StockItem, error) {
	if code == "" {
		return entities.StockItem{}, nil
	}
	rows, err := queryIndex[stockItemRow](ctx, r.ddb, r.tableName, attrCode, code)
	if err != nil || len(rows) == 0 {
		return entities.StockItem{}, err
	}
	return fromStockItemRow(rows[0]), nil
}

func (r *StockDynamoRepository) List(ctx context.Context) ([]entities.StockItem, error) {
	rows, err := scanAll[stockItemRow](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.StockItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromStockItemRow(row))
	}
	return out, nil
}

// Update replaces the row only while its stored quantity still equals
// item.Quantity; quantities change through ApplyMovement.
func (r *StockDynamoRepository) Update(ctx context.Context, item entities.StockItem) (entities.StockItem, error) {
	in, err := stockUpdateInput(r.tableName, item)
	if err != nil {
		return entities.StockItem{}, err
	}
	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		if isConditionFailed(err) {
			return entities.StockItem{}, nil
		}
		return entities.StockItem{}, err
	}
	return item, nil
}

func stockUpdateInput(table string, item entities.StockItem) (*dynamodb.PutItemInput, error) {
	av, err := attributevalue.MarshalMap(toStockItemRow(item))
	if err != nil {
		return nil, err
	}
	return &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #quantity = :quantity"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#quantity": "quantity",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quantity": &types.AttributeValueMemberN{Value: strconv.Itoa(item.Quantity)},
		},
	}, nil
}

func (r *StockDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

// ApplyMovement sets the new quantity and records the movement in one
// transaction, guarded by the quantity the caller read.
func (r *StockDynamoRepository) ApplyMovement(ctx context.Context, movement entities.StockMovement) (entities.StockItem, error) {
	mv, err := attributevalue.MarshalMap(toStockMovementRow(movement))
	if err != nil {
		return entities.StockItem{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.tableName),
					Key:                 idKey(movement.StockItemID),
					ConditionExpression: aws.String("attribute_exists(#id) AND #quantity = :prev"),
					UpdateExpression:    aws.String("SET #quantity = :new, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#quantity":   "quantity",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":prev":       &types.AttributeValueMemberN{Value: strconv.Itoa(movement.PreviousQuantity)},
						":new":        &types.AttributeValueMemberN{Value: strconv.Itoa(movement.NewQuantity)},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.movementsTable),
					Item:                mv,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.StockItem{}, nil
		}
		return entities.StockItem{}, err
	}
	return r.GetByID(ctx, movement.StockItemID)
}

func (r *StockDynamoRepository) ListMovements(ctx context.Context, stockItemID string) ([]entities.StockMovement, error) {
	rows, err := queryIndex[stockMovementRow](ctx, r.ddb, r.movementsTable, attrStockItemID, stockItemID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.StockMovement, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromStockMovementRow(row))
	}
	return out, nil
}

func (r *StockDynamoRepository) DeleteMovements(ctx context.Context, stockItemID string) error {
	rows, err := queryIndex[stockMovementRow](ctx, r.ddb, r.movementsTable, attrStockItemID, stockItemID)
	if err != nil {
		return err
	}

	for start := 0; start < len(rows); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(rows))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, row := range rows[start:end] {
			reqs = append(reqs, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: idKey(row.ID)},
			})
		}

		pending := map[string][]types.WriteRequest{r.movementsTable: reqs}
		for len(pending) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func isTransactionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toStockItemRow(i entities.StockItem) stockItemRow {
	return stockItemRow{
		ID:            i.ID,
		Code:          i.Code,
		Name:          i.Name,
		Category:      string(i.Category),
		State:         string(i.State),
		Brand:         i.Brand,
		Model:         i.Model,
		Quantity:      i.Quantity,
		MinQuantity:   i.MinQuantity,
		PurchasePrice: formatDecimal(i.PurchasePrice),
		SalePrice:     formatDecimal(i.SalePrice),
		Supplier:      i.Supplier,
		Location:      i.Location,
		Notes:         i.Notes,
		CreatedAt:     formatTime(i.CreatedAt),
		UpdatedAt:     formatTime(i.UpdatedAt),
	}
}

func fromStockItemRow(row stockItemRow) entities.StockItem {
	return entities.StockItem{
		ID:            row.ID,
		Code:          row.Code,
		Name:          row.Name,
		Category:      entities.StockCategory(row.Category),
		State:         entities.StockState(row.State),
		Brand:         row.Brand,
		Model:         row.Model,
		Quantity:      row.Quantity,
		MinQuantity:   row.MinQuantity,
		PurchasePrice: parseDecimal(row.PurchasePrice),
		SalePrice:     parseDecimal(row.SalePrice),
		Supplier:      row.Supplier,
		Location:      row.Location,
		Notes:         row.Notes,
		CreatedAt:     parseTime(row.CreatedAt),
		UpdatedAt:     parseTime(row.UpdatedAt),
	}
}

func toStockMovementRow(m entities.StockMovement) stockMovementRow {
	return stockMovementRow{
		ID:               m.ID,
		StockItemID:      m.StockItemID,
		Delta:            m.Delta,
		PreviousQuantity: m.PreviousQuantity,
		NewQuantity:      m.NewQuantity,
		Reason:           m.Reason,
		CreatedAt:        formatTime(m.CreatedAt),
	}
}

func fromStockMovementRow(row stockMovementRow) entities.StockMovement {
	return entities.StockMovement{
		ID:               row.ID,
		StockItemID:      row.StockItemID,
		Delta:            row.Delta,
		PreviousQuantity: row.PreviousQuantity,
		NewQuantity:      row.NewQuantity,
		Reason:           row.Reason,
		CreatedAt:        parseTime(row.CreatedAt),
	}
}

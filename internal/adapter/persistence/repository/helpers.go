package repository

import (
	"context"
	"errors"
	"time"

	"assistencia_tecnica/internal/infrastructure/config"
	"assistencia_tecnica/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	attrCode        = "code"
	attrCheckoutID  = "checkout_id"
	attrStockItemID = "stock_item_id"
	attrServiceID   = "service_id"
)

// Schemas lists every table the repositories expect.
func Schemas(t config.TablesConfig) []database.TableSchema {
	return []database.TableSchema{
		{Name: tableOrDefault(t.Services, defaultServicesTableName), Key: "id"},
		{Name: tableOrDefault(t.Counters, defaultCountersTableName), Key: "name"},
		{Name: tableOrDefault(t.Sales, defaultSalesTableName), Key: "id", Indexes: []string{attrCheckoutID}},
		{Name: tableOrDefault(t.Stock, defaultStockTableName), Key: "id", Indexes: []string{attrCode}},
		{Name: tableOrDefault(t.StockMovements, defaultStockMovementsTableName), Key: "id", Indexes: []string{attrStockItemID}},
		{Name: tableOrDefault(t.Transactions, defaultTransactionsTableName), Key: "id", Indexes: []string{attrServiceID}},
		{Name: tableOrDefault(t.Payments, defaultPaymentsTableName), Key: "id", Indexes: []string{attrCheckoutID}},
	}
}

func tableOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// putNew writes item only when no row with the same id exists.
func putNew(ctx context.Context, ddb *dynamodb.Client, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// putExisting replaces a row that must already exist. It reports false when
// the row is gone.
func putExisting(ctx context.Context, ddb *dynamodb.Client, table string, item any) (bool, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// getByID loads one row into out and reports whether it exists.
func getByID(ctx context.Context, ddb *dynamodb.Client, table, id string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

func deleteByID(ctx context.Context, ddb *dynamodb.Client, table, id string) error {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       idKey(id),
	})
	return err
}

// scanAll reads the whole table. Tables here stay small (one shop).
func scanAll[T any](ctx context.Context, ddb *dynamodb.Client, table string) ([]T, error) {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})
	var out []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// queryIndex returns every row whose GSI attribute equals value.
func queryIndex[T any](ctx context.Context, ddb *dynamodb.Client, table, attr, value string) ([]T, error) {
	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(database.IndexName(attr)),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	var out []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatDecimal(d decimal.Decimal) string {
	return d.String()
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

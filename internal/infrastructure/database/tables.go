package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableSchema describes a table keyed by a single string attribute. Each
// index is a GSI on one string attribute, named "<attr>-index".
type TableSchema struct {
	Name    string
	Key     string
	Indexes []string
}

func IndexName(attr string) string {
	return attr + "-index"
}

// CreateTableInput builds the on-demand table definition for s.
func (s TableSchema) CreateTableInput() *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{{
		AttributeName: aws.String(s.Key),
		AttributeType: types.ScalarAttributeTypeS,
	}}
	gsis := make([]types.GlobalSecondaryIndex, 0, len(s.Indexes))
	for _, attr := range s.Indexes {
		attrs = append(attrs, types.AttributeDefinition{
			AttributeName: aws.String(attr),
			AttributeType: types.ScalarAttributeTypeS,
		})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(IndexName(attr)),
			KeySchema: []types.KeySchemaElement{{
				AttributeName: aws.String(attr),
				KeyType:       types.KeyTypeHash,
			}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	in := &dynamodb.CreateTableInput{
		TableName:            aws.String(s.Name),
		AttributeDefinitions: attrs,
		KeySchema: []types.KeySchemaElement{{
			AttributeName: aws.String(s.Key),
			KeyType:       types.KeyTypeHash,
		}},
		BillingMode: types.BillingModePayPerRequest,
	}
	if len(gsis) > 0 {
		in.GlobalSecondaryIndexes = gsis
	}
	return in
}

// EnsureTables creates the tables that do not exist yet and waits for them
// to become active.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, schemas ...TableSchema) error {
	for _, s := range schemas {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.Name)})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return fmt.Errorf("describe table %s: %w", s.Name, err)
		}

		if _, err := ddb.CreateTable(ctx, s.CreateTableInput()); err != nil {
			return fmt.Errorf("create table %s: %w", s.Name, err)
		}
		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.Name)}, time.Minute); err != nil {
			return fmt.Errorf("wait table %s: %w", s.Name, err)
		}
		zap.L().Info("dynamodb table created", zap.String("table", s.Name), zap.Strings("indexes", s.Indexes))
	}
	return nil
}

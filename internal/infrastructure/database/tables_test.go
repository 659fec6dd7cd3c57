package database

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSchema_CreateTableInput(t *testing.T) {
	in := TableSchema{Name: "sales", Key: "id", Indexes: []string{"checkout_id"}}.CreateTableInput()

	assert.Equal(t, "sales", aws.ToString(in.TableName))
	assert.Equal(t, types.BillingModePayPerRequest, in.BillingMode)
	require.Len(t, in.AttributeDefinitions, 2)
	require.Len(t, in.GlobalSecondaryIndexes, 1)
	assert.Equal(t, "checkout_id-index", aws.ToString(in.GlobalSecondaryIndexes[0].IndexName))
	assert.Equal(t, "checkout_id", aws.ToString(in.GlobalSecondaryIndexes[0].KeySchema[0].AttributeName))
}

func TestTableSchema_NoIndexes(t *testing.T) {
	in := TableSchema{Name: "counters", Key: "name"}.CreateTableInput()

	assert.Nil(t, in.GlobalSecondaryIndexes)
	assert.Equal(t, "name", aws.ToString(in.KeySchema[0].AttributeName))
}

package storage

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3DocumentStorage(t *testing.T) {
	_, err := NewS3DocumentStorage(aws.Config{Region: "us-east-1"}, "", "  ")
	assert.ErrorIs(t, err, ErrBucketRequired)

	s, err := NewS3DocumentStorage(aws.Config{Region: "us-east-1"}, "http://localstack:4566", "documentos")
	require.NoError(t, err)
	assert.Equal(t, "documentos", s.bucket)
	assert.True(t, s.client.Options().UsePathStyle)
	assert.Equal(t, "http://localstack:4566", aws.ToString(s.client.Options().BaseEndpoint))
}

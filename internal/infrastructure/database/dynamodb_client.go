package database

import (
	"context"
	"strings"

	appconfig "assistencia_tecnica/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewAWSConfig builds the shared AWS config for DynamoDB and S3 with static
// credentials, which DynamoDB Local and LocalStack accept.
func NewAWSConfig(ctx context.Context, c appconfig.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(creds),
	)
}

// ConnectDynamoDB creates the DynamoDB client. A non-empty endpoint points it
// at a local instance (e.g. http://dynamodb:8000).
func ConnectDynamoDB(awsCfg aws.Config, endpoint string) *dynamodb.Client {
	endpoint = strings.TrimSpace(endpoint)
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

package database

import (
	"context"
	"log"

	appconfig "catrental/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the service configuration.
// When DynamoDBEndpoint is set (DynamoDB Local in docker-compose) the client
// targets it and the tables are created if missing.
func ConnectDynamoDB(ctx context.Context, cfg *appconfig.Config) *dynamodb.Client {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})

	if cfg.DynamoDBEndpoint != "" {
		if err := EnsureTables(ctx, client, cfg.Tables); err != nil {
			log.Fatalf("failed to create local tables: %v", err)
		}
	}
	return client
}

func NewAWSConfig(ctx context.Context, cfg *appconfig.Config) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(creds),
	)
}

// Package store persists case records to DynamoDB.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/JustJay7/bpso-complaint-intake/internal/config"
)

// API is the subset of the DynamoDB client used by this package
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// ErrMissingCredentials is returned by NewClient when no access key is
// configured for a real AWS endpoint
var ErrMissingCredentials = errors.New("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are required")

// NewClient builds a DynamoDB client from the explicit credentials in cfg.
// A local endpoint without credentials gets placeholder ones, since
// emulators accept any key.
func NewClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	accessKey, secretKey := cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey
	if accessKey == "" || secretKey == "" {
		if cfg.DynamoDBEndpoint == "" {
			return nil, ErrMissingCredentials
		}
		accessKey, secretKey = "local", "local"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

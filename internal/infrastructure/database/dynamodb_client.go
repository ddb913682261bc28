package database

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoSettings selects between real AWS and a local endpoint such as
// amazon/dynamodb-local.
type DynamoSettings struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// DynamoSettingsFromEnv reads AWS_REGION, DYNAMODB_ENDPOINT,
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.
func DynamoSettingsFromEnv() DynamoSettings {
	return DynamoSettings{
		Region:    getenvDefault("AWS_REGION", "us-east-1"),
		Endpoint:  strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
}

// Local reports whether requests go to a non-AWS endpoint.
func (s DynamoSettings) Local() bool {
	return s.Endpoint != ""
}

// ConnectDynamoDB builds a client from the environment. Against a local
// endpoint static placeholder credentials are used when none are set; on AWS
// the default credential chain applies.
func ConnectDynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	settings := DynamoSettingsFromEnv()
	cfg, err := loadAWSConfig(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if settings.Local() {
			o.BaseEndpoint = aws.String(settings.Endpoint)
		}
	}), nil
}

func loadAWSConfig(ctx context.Context, s DynamoSettings) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(s.Region)}

	switch {
	case s.AccessKey != "" && s.SecretKey != "":
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.AccessKey, s.SecretKey, ""),
		))
	case s.Local():
		// dynamodb-local ignores credentials but the signer needs some.
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

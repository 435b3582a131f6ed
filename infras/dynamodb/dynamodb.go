package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"

	"lodgedesk/config"
)

// New builds a DynamoDB client from the three startup credentials: region,
// access key id, and secret access key. An endpoint override is honored for
// local development against dynamodb-local.
func New(config *config.Config) *dynamodb.Client {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.AWS.AccessKeyID,
		config.AWS.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithRegion(config.AWS.Region),
		awsConfig.WithCredentialsProvider(staticProvider),
	)

	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if config.AWS.DynamoDB.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.AWS.DynamoDB.Endpoint)
		}
	})

	log.Info().
		Str("region", config.AWS.Region).
		Str("table", config.AWS.DynamoDB.Table).
		Msg("DynamoDB client configured")

	return client
}

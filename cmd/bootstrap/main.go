package main

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsDynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"

	"lodgedesk/config"
	"lodgedesk/infras/dynamodb"
	"lodgedesk/shared/logger"
)

const tableWaitTimeout = 2 * time.Minute

// Creates the customer table when it does not exist yet. Safe to run on
// every deploy.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx := context.Background()
	client := dynamodb.New(cfg)
	table := cfg.AWS.DynamoDB.Table

	_, err := client.DescribeTable(ctx, &awsDynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})
	if err == nil {
		log.Info().Str("table", table).Msg("Table already exists, nothing to do.")

		return
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		log.Fatal().Err(err).Str("table", table).Msg("Failed to describe table")
	}

	log.Info().Str("table", table).Msg("Creating table.")

	_, err = client.CreateTable(ctx, &awsDynamodb.CreateTableInput{
		TableName:   aws.String(table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String("identity_card_number"),
				AttributeType: types.ScalarAttributeTypeS,
			},
		},
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String("identity_card_number"),
				KeyType:       types.KeyTypeHash,
			},
		},
	})
	if err != nil {
		log.Fatal().Err(err).Str("table", table).Msg("Failed to create table")
	}

	waiter := awsDynamodb.NewTableExistsWaiter(client)
	if err := waiter.Wait(ctx, &awsDynamodb.DescribeTableInput{
		TableName: aws.String(table),
	}, tableWaitTimeout); err != nil {
		log.Fatal().Err(err).Str("table", table).Msg("Table did not become active")
	}

	log.Info().Str("table", table).Msg("Table created.")
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"

	"lodgedesk/config"
	"lodgedesk/infras/otel"
	"lodgedesk/internal/domains/customer/model"
	"lodgedesk/shared/constant"
	"lodgedesk/shared/failure"
)

type Customer interface {
	FetchAll(ctx context.Context) ([]model.Customer, error)
	Insert(ctx context.Context, customer model.Customer) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	FetchConversation(ctx context.Context, id string) ([]model.ConversationTurn, error)
}

type repositoryImpl struct {
	db    *dynamodb.Client
	table string
	otel  otel.Otel
}

func New(db *dynamodb.Client, cfg *config.Config, otel otel.Otel) Customer {
	return &repositoryImpl{
		db:    db,
		table: cfg.AWS.DynamoDB.Table,
		otel:  otel,
	}
}

// FetchAll scans the whole table, following pagination until every record is
// read. Store order is preserved as returned by the scan.
func (repo *repositoryImpl) FetchAll(ctx context.Context) (customers []model.Customer, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".FetchAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelAttributeTable, repo.table)

	var lastKey map[string]types.AttributeValue

	for {
		out, scanErr := repo.db.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(repo.table),
			ExclusiveStartKey: lastKey,
		})
		if scanErr != nil {
			log.Error().Err(scanErr).Str("table", repo.table).Msg("failed to scan customers")

			err = failure.Unavailable(fmt.Errorf("scanning customers: %w", scanErr))

			return nil, err
		}

		page := make([]model.Customer, 0, len(out.Items))
		if err = attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			log.Error().Err(err).Str("table", repo.table).Msg("failed to unmarshal customers")

			return nil, fmt.Errorf("unmarshaling customers: %w", err)
		}

		customers = append(customers, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}

		lastKey = out.LastEvaluatedKey
	}

	return customers, nil
}

// Insert puts a new record, refusing to overwrite an existing identity card
// number.
func (repo *repositoryImpl) Insert(ctx context.Context, customer model.Customer) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelAttributeCustomerID, customer.IdentityCardNumber)

	item, err := attributevalue.MarshalMap(customer)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal customer")

		return fmt.Errorf("marshaling customer: %w", err)
	}

	_, err = repo.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(repo.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(identity_card_number)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return failure.Conflict(fmt.Sprintf("customer with identity card number %s already exists", customer.IdentityCardNumber)) //nolint:wrapcheck
		}

		log.Error().Err(err).Str("id", customer.IdentityCardNumber).Msg("failed to insert customer")

		return failure.Unavailable(fmt.Errorf("inserting customer: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// UpdateStatus sets booking_status and nothing else. Updating an absent id
// fails with a not-found error.
func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id, status string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelAttributeCustomerID, id)

	_, err = repo.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(repo.table),
		Key: map[string]types.AttributeValue{
			model.FieldIdentityCardNumber: &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET booking_status = :s"),
		ConditionExpression: aws.String("attribute_exists(identity_card_number)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: status},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return failure.NotFound(fmt.Sprintf("customer %s not found", id)) //nolint:wrapcheck
		}

		log.Error().Err(err).Str("id", id).Msg("failed to update booking status")

		return failure.Unavailable(fmt.Errorf("updating booking status: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// Delete removes a record by id. Deleting an absent id is a no-op success.
func (repo *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelAttributeCustomerID, id)

	_, err = repo.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(repo.table),
		Key: map[string]types.AttributeValue{
			model.FieldIdentityCardNumber: &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete customer")

		return failure.Unavailable(fmt.Errorf("deleting customer: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// FetchConversation projects only the conversation attribute of one record.
func (repo *repositoryImpl) FetchConversation(ctx context.Context, id string) (turns []model.ConversationTurn, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".FetchConversation")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelAttributeCustomerID, id)

	out, err := repo.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.table),
		Key: map[string]types.AttributeValue{
			model.FieldIdentityCardNumber: &types.AttributeValueMemberS{Value: id},
		},
		ProjectionExpression: aws.String(model.FieldConversation),
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to fetch conversation")

		return nil, failure.Unavailable(fmt.Errorf("fetching conversation: %w", err)) //nolint:wrapcheck
	}

	if out.Item == nil {
		return nil, failure.NotFound(fmt.Sprintf("customer %s not found", id)) //nolint:wrapcheck
	}

	attr, ok := out.Item[model.FieldConversation]
	if !ok {
		return nil, nil
	}

	if err = attributevalue.Unmarshal(attr, &turns); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to unmarshal conversation")

		return nil, fmt.Errorf("unmarshaling conversation: %w", err)
	}

	return turns, nil
}

package repository

import (
	"context"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type declineReasonItem struct {
	ID            string `dynamodbav:"id"`
	Reason        string `dynamodbav:"reason"`
	RequiresNotes bool   `dynamodbav:"requires_notes"`
	IsSystem      bool   `dynamodbav:"is_system"`
	SortOrder     int    `dynamodbav:"sort_order"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// DeclineReasonDynamoRepository persists DeclineReason entities in DynamoDB.
// The table is small and read in full.
type DeclineReasonDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IDeclineReasonRepository = (*DeclineReasonDynamoRepository)(nil)

func NewDeclineReasonDynamoRepository(ddb *dynamodb.Client, tableName string) *DeclineReasonDynamoRepository {
	return &DeclineReasonDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DeclineReasonDynamoRepository) List(ctx context.Context) ([]entities.DeclineReason, error) {
	var (
		reasons []entities.DeclineReason
		start   map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it declineReasonItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			createdAt, err := parseTime("created_at", it.CreatedAt)
			if err != nil {
				return nil, err
			}
			reasons = append(reasons, entities.DeclineReason{
				ID:            it.ID,
				Reason:        it.Reason,
				RequiresNotes: it.RequiresNotes,
				IsSystem:      it.IsSystem,
				SortOrder:     it.SortOrder,
				CreatedAt:     createdAt,
			})
		}
		if len(out.LastEvaluatedKey) == 0 {
			return reasons, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *DeclineReasonDynamoRepository) Create(ctx context.Context, reason entities.DeclineReason) (entities.DeclineReason, error) {
	av, err := attributevalue.MarshalMap(declineReasonItem{
		ID:            reason.ID,
		Reason:        reason.Reason,
		RequiresNotes: reason.RequiresNotes,
		IsSystem:      reason.IsSystem,
		SortOrder:     reason.SortOrder,
		CreatedAt:     formatTime(reason.CreatedAt),
	})
	if err != nil {
		return entities.DeclineReason{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DeclineReason{}, err
	}
	return reason, nil
}

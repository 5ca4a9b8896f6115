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

const paymentsHealthCheckIDIndex = "health_check_id-index"

type billingPaymentItem struct {
	ID            string                 `dynamodbav:"id"`
	HealthCheckID string                 `dynamodbav:"health_check_id"`
	Amount        string                 `dynamodbav:"amount"`
	Date          string                 `dynamodbav:"date"`
	Status        string                 `dynamodbav:"status"`
	MPPayload     map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw  string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BillingPaymentDynamoRepository persists BillingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: health_check_id-index (PK: health_check_id)
type BillingPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	av, err := attributevalue.MarshalMap(toBillingPaymentItem(p))
	if err != nil {
		return entities.BillingPayment{}, err
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
		return entities.BillingPayment{}, err
	}
	return p, nil
}

func (r *BillingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingPayment{}, nil
	}
	return decodeBillingPayment(out.Item)
}

func (r *BillingPaymentDynamoRepository) ListByHealthCheckID(ctx context.Context, healthCheckID string) ([]entities.BillingPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsHealthCheckIDIndex),
		KeyConditionExpression: aws.String("health_check_id = :hcid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hcid": &types.AttributeValueMemberS{Value: healthCheckID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BillingPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		p, err := decodeBillingPayment(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func toBillingPaymentItem(p entities.BillingPayment) billingPaymentItem {
	return billingPaymentItem{
		ID:            p.ID,
		HealthCheckID: p.HealthCheckID,
		Amount:        p.Amount.StringFixed(2),
		Date:          formatTime(p.Date),
		Status:        string(p.Status),
		MPPayload:     p.MPPayload,
		MPPayloadRaw:  string(p.MPPayloadRaw),
	}
}

func decodeBillingPayment(av map[string]types.AttributeValue) (entities.BillingPayment, error) {
	var it billingPaymentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.BillingPayment{}, err
	}
	amount, err := parseDecimal("amount", it.Amount)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	dt, err := parseTime("date", it.Date)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	return entities.BillingPayment{
		ID:            it.ID,
		HealthCheckID: it.HealthCheckID,
		Amount:        amount,
		Date:          dt,
		Status:        entities.PaymentStatus(it.Status),
		MPPayload:     it.MPPayload,
		MPPayloadRaw:  []byte(it.MPPayloadRaw),
	}, nil
}

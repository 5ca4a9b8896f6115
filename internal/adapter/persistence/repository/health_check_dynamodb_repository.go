package repository

import (
	"context"
	"time"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type healthCheckItem struct {
	ID                  string `dynamodbav:"id"`
	VehicleRegistration string `dynamodbav:"vehicle_registration"`
	CustomerName        string `dynamodbav:"customer_name,omitempty"`
	CustomerMobile      string `dynamodbav:"customer_mobile,omitempty"`
	CustomerEmail       string `dynamodbav:"customer_email,omitempty"`
	Status              string `dynamodbav:"status"`
	SentAt              string `dynamodbav:"sent_at,omitempty"`
	AuthorizedAt        string `dynamodbav:"authorized_at,omitempty"`
	AuthorizationMethod string `dynamodbav:"authorization_method,omitempty"`
	AuthorizationNotes  string `dynamodbav:"authorization_notes,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// HealthCheckDynamoRepository persists HealthCheck entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type HealthCheckDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IHealthCheckRepository = (*HealthCheckDynamoRepository)(nil)

func NewHealthCheckDynamoRepository(ddb *dynamodb.Client, tableName string) *HealthCheckDynamoRepository {
	return &HealthCheckDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *HealthCheckDynamoRepository) Create(ctx context.Context, hc entities.HealthCheck) (entities.HealthCheck, error) {
	av, err := attributevalue.MarshalMap(toHealthCheckItem(hc))
	if err != nil {
		return entities.HealthCheck{}, err
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
		return entities.HealthCheck{}, err
	}
	return hc, nil
}

func (r *HealthCheckDynamoRepository) GetByID(ctx context.Context, id string) (entities.HealthCheck, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.HealthCheck{}, err
	}
	if len(out.Item) == 0 {
		return entities.HealthCheck{}, nil
	}
	return decodeHealthCheck(out.Item)
}

func (r *HealthCheckDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.HealthCheckStatus) (entities.HealthCheck, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *HealthCheckDynamoRepository) MarkSent(ctx context.Context, id string, sentAt time.Time, customerMobile string) (entities.HealthCheck, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #sent_at = :sent_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.HealthCheckStatusSent)},
			":sent_at":    &types.AttributeValueMemberS{Value: formatTime(sentAt)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#sent_at":    "sent_at",
			"#updated_at": "updated_at",
		}
		if customerMobile != "" {
			expr += ", #customer_mobile = :customer_mobile"
			vals[":customer_mobile"] = &types.AttributeValueMemberS{Value: customerMobile}
			names["#customer_mobile"] = "customer_mobile"
		}
		return expr, vals, names
	})
}

func (r *HealthCheckDynamoRepository) MarkAuthorized(ctx context.Context, id string, status entities.HealthCheckStatus, at time.Time, method entities.AuthorizationMethod, notes string) (entities.HealthCheck, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #authorized_at = :authorized_at, #method = :method, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: string(status)},
			":authorized_at": &types.AttributeValueMemberS{Value: formatTime(at)},
			":method":        &types.AttributeValueMemberS{Value: string(method)},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":        "status",
			"#authorized_at": "authorized_at",
			"#method":        "authorization_method",
			"#updated_at":    "updated_at",
		}
		if notes != "" {
			expr += ", #notes = :notes"
			vals[":notes"] = &types.AttributeValueMemberS{Value: notes}
			names["#notes"] = "authorization_notes"
		} else {
			expr += " REMOVE #notes"
			names["#notes"] = "authorization_notes"
		}
		return expr, vals, names
	})
}

func (r *HealthCheckDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.HealthCheck, error) {
	updateExpr, values, names := build(formatTime(r.now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.HealthCheck{}, nil
		}
		return entities.HealthCheck{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.HealthCheck{}, nil
	}
	return decodeHealthCheck(out.Attributes)
}

func toHealthCheckItem(hc entities.HealthCheck) healthCheckItem {
	return healthCheckItem{
		ID:                  hc.ID,
		VehicleRegistration: hc.VehicleRegistration,
		CustomerName:        hc.CustomerName,
		CustomerMobile:      hc.CustomerMobile,
		CustomerEmail:       hc.CustomerEmail,
		Status:              string(hc.Status),
		SentAt:              formatTimePtr(hc.SentAt),
		AuthorizedAt:        formatTimePtr(hc.AuthorizedAt),
		AuthorizationMethod: string(hc.AuthorizationMethod),
		AuthorizationNotes:  hc.AuthorizationNotes,
		CreatedAt:           formatTime(hc.CreatedAt),
		UpdatedAt:           formatTime(hc.UpdatedAt),
	}
}

func decodeHealthCheck(av map[string]types.AttributeValue) (entities.HealthCheck, error) {
	var it healthCheckItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.HealthCheck{}, err
	}
	return fromHealthCheckItem(it)
}

// fromHealthCheckItem rejects rows whose status is outside the known set.
func fromHealthCheckItem(it healthCheckItem) (entities.HealthCheck, error) {
	status, err := entities.ParseHealthCheckStatus(it.Status)
	if err != nil {
		return entities.HealthCheck{}, err
	}
	hc := entities.HealthCheck{
		ID:                  it.ID,
		VehicleRegistration: it.VehicleRegistration,
		CustomerName:        it.CustomerName,
		CustomerMobile:      it.CustomerMobile,
		CustomerEmail:       it.CustomerEmail,
		Status:              status,
		AuthorizationMethod: entities.AuthorizationMethod(it.AuthorizationMethod),
		AuthorizationNotes:  it.AuthorizationNotes,
	}
	if hc.SentAt, err = parseTimePtr("sent_at", it.SentAt); err != nil {
		return entities.HealthCheck{}, err
	}
	if hc.AuthorizedAt, err = parseTimePtr("authorized_at", it.AuthorizedAt); err != nil {
		return entities.HealthCheck{}, err
	}
	if hc.CreatedAt, err = parseTime("created_at", it.CreatedAt); err != nil {
		return entities.HealthCheck{}, err
	}
	if hc.UpdatedAt, err = parseTime("updated_at", it.UpdatedAt); err != nil {
		return entities.HealthCheck{}, err
	}
	return hc, nil
}

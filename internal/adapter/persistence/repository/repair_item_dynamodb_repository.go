package repository

import (
	"context"
	"fmt"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	repairItemsHealthCheckIDIndex = "health_check_id-index"
	// maxTransactItems is the DynamoDB limit of actions per TransactWriteItems call.
	maxTransactItems = 100
)

type lineItemRecord struct {
	ID                string `dynamodbav:"id"`
	Kind              string `dynamodbav:"kind"`
	Description       string `dynamodbav:"description,omitempty"`
	Quantity          string `dynamodbav:"quantity"`
	UnitCostPrice     string `dynamodbav:"unit_cost_price,omitempty"`
	UnitSellPrice     string `dynamodbav:"unit_sell_price"`
	DiscountPercent   string `dynamodbav:"discount_percent,omitempty"`
	IsVATExempt       bool   `dynamodbav:"is_vat_exempt"`
	AllocationType    string `dynamodbav:"allocation_type,omitempty"`
	ChildRepairItemID string `dynamodbav:"child_repair_item_id,omitempty"`
}

type repairOptionRecord struct {
	ID            string           `dynamodbav:"id"`
	Name          string           `dynamodbav:"name"`
	Description   string           `dynamodbav:"description,omitempty"`
	IsRecommended bool             `dynamodbav:"is_recommended"`
	Labour        []lineItemRecord `dynamodbav:"labour"`
	Parts         []lineItemRecord `dynamodbav:"parts"`
	SortOrder     int              `dynamodbav:"sort_order"`
}

type checkResultRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	RAGStatus string `dynamodbav:"rag_status"`
	Notes     string `dynamodbav:"notes,omitempty"`
}

type repairItemItem struct {
	ID                 string `dynamodbav:"id"`
	HealthCheckID      string `dynamodbav:"health_check_id"`
	Name               string `dynamodbav:"name"`
	Description        string `dynamodbav:"description,omitempty"`
	IsGroup            bool   `dynamodbav:"is_group"`
	ParentRepairItemID string `dynamodbav:"parent_repair_item_id,omitempty"`
	SortOrder          int    `dynamodbav:"sort_order"`

	Options          []repairOptionRecord `dynamodbav:"options,omitempty"`
	SelectedOptionID string               `dynamodbav:"selected_option_id,omitempty"`
	Labour           []lineItemRecord     `dynamodbav:"labour"`
	Parts            []lineItemRecord     `dynamodbav:"parts"`

	PriceOverride       string `dynamodbav:"price_override,omitempty"`
	PriceOverrideReason string `dynamodbav:"price_override_reason,omitempty"`

	OutcomeStatus    string `dynamodbav:"outcome_status,omitempty"`
	OutcomeSetAt     string `dynamodbav:"outcome_set_at,omitempty"`
	OutcomeMethod    string `dynamodbav:"outcome_method,omitempty"`
	DeclinedReasonID string `dynamodbav:"declined_reason_id,omitempty"`
	DeclinedNotes    string `dynamodbav:"declined_notes,omitempty"`
	DeferredUntil    string `dynamodbav:"deferred_until,omitempty"`
	DeferredNotes    string `dynamodbav:"deferred_notes,omitempty"`

	NoLabourRequired bool   `dynamodbav:"no_labour_required"`
	NoPartsRequired  bool   `dynamodbav:"no_parts_required"`
	LabourStatus     string `dynamodbav:"labour_status"`
	PartsStatus      string `dynamodbav:"parts_status"`

	CheckResults []checkResultRecord `dynamodbav:"check_results"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RepairItemDynamoRepository persists RepairItem rows in DynamoDB. Line items,
// options and check results are nested in the row.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: health_check_id-index (PK: health_check_id)
type RepairItemDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IRepairItemRepository = (*RepairItemDynamoRepository)(nil)

func NewRepairItemDynamoRepository(ddb *dynamodb.Client, tableName string) *RepairItemDynamoRepository {
	return &RepairItemDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RepairItemDynamoRepository) Create(ctx context.Context, item entities.RepairItem) (entities.RepairItem, error) {
	av, err := attributevalue.MarshalMap(toRepairItemItem(item))
	if err != nil {
		return entities.RepairItem{}, err
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
		return entities.RepairItem{}, err
	}
	return item, nil
}

func (r *RepairItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.RepairItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairItem{}, nil
	}
	return decodeRepairItem(out.Item)
}

// ListByHealthCheckID returns the flat rows of a health check, following
// pagination until the index is exhausted.
func (r *RepairItemDynamoRepository) ListByHealthCheckID(ctx context.Context, healthCheckID string) ([]entities.RepairItem, error) {
	var (
		items []entities.RepairItem
		start map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(repairItemsHealthCheckIDIndex),
			KeyConditionExpression: aws.String("health_check_id = :hcid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":hcid": &types.AttributeValueMemberS{Value: healthCheckID},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			it, err := decodeRepairItem(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

// Save overwrites an existing row. A missing row yields a zero RepairItem.
func (r *RepairItemDynamoRepository) Save(ctx context.Context, item entities.RepairItem) (entities.RepairItem, error) {
	av, err := attributevalue.MarshalMap(toRepairItemItem(item))
	if err != nil {
		return entities.RepairItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.RepairItem{}, nil
		}
		return entities.RepairItem{}, err
	}
	return item, nil
}

// SaveAll writes the rows in transactions of at most maxTransactItems. Each
// transaction is atomic; a batch larger than one transaction is not.
func (r *RepairItemDynamoRepository) SaveAll(ctx context.Context, items []entities.RepairItem) error {
	for start := 0; start < len(items); start += maxTransactItems {
		end := start + maxTransactItems
		if end > len(items) {
			end = len(items)
		}

		writes := make([]types.TransactWriteItem, 0, end-start)
		for _, item := range items[start:end] {
			av, err := attributevalue.MarshalMap(toRepairItemItem(item))
			if err != nil {
				return err
			}
			writes = append(writes, types.TransactWriteItem{
				Put: &types.Put{TableName: aws.String(r.tableName), Item: av},
			})
		}

		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
			return fmt.Errorf("save repair items %d-%d: %w", start, end, err)
		}
	}
	return nil
}

func toLineItemRecords(lines []entities.LineItem) []lineItemRecord {
	out := make([]lineItemRecord, 0, len(lines))
	for _, l := range lines {
		rec := lineItemRecord{
			ID:                l.ID,
			Kind:              string(l.Kind),
			Description:       l.Description,
			Quantity:          l.Quantity.String(),
			UnitCostPrice:     formatNullDecimal(l.UnitCostPrice),
			UnitSellPrice:     l.UnitSellPrice.String(),
			IsVATExempt:       l.IsVATExempt,
			AllocationType:    string(l.AllocationType),
			ChildRepairItemID: l.ChildRepairItemID,
		}
		if !l.DiscountPercent.IsZero() {
			rec.DiscountPercent = l.DiscountPercent.String()
		}
		out = append(out, rec)
	}
	return out
}

func fromLineItemRecords(recs []lineItemRecord) ([]entities.LineItem, error) {
	out := make([]entities.LineItem, 0, len(recs))
	for _, rec := range recs {
		l := entities.LineItem{
			ID:                rec.ID,
			Kind:              entities.LineItemKind(rec.Kind),
			Description:       rec.Description,
			IsVATExempt:       rec.IsVATExempt,
			AllocationType:    entities.AllocationType(rec.AllocationType),
			ChildRepairItemID: rec.ChildRepairItemID,
		}
		var err error
		if l.Quantity, err = parseDecimal("quantity", rec.Quantity); err != nil {
			return nil, err
		}
		if l.UnitCostPrice, err = parseNullDecimal("unit_cost_price", rec.UnitCostPrice); err != nil {
			return nil, err
		}
		if l.UnitSellPrice, err = parseDecimal("unit_sell_price", rec.UnitSellPrice); err != nil {
			return nil, err
		}
		if l.DiscountPercent, err = parseDecimal("discount_percent", rec.DiscountPercent); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func toRepairItemItem(item entities.RepairItem) repairItemItem {
	it := repairItemItem{
		ID:                  item.ID,
		HealthCheckID:       item.HealthCheckID,
		Name:                item.Name,
		Description:         item.Description,
		IsGroup:             item.IsGroup,
		ParentRepairItemID:  item.ParentRepairItemID,
		SortOrder:           item.SortOrder,
		SelectedOptionID:    item.SelectedOptionID,
		Labour:              toLineItemRecords(item.Labour),
		Parts:               toLineItemRecords(item.Parts),
		PriceOverride:       formatNullDecimal(item.PriceOverride),
		PriceOverrideReason: item.PriceOverrideReason,
		OutcomeStatus:       string(item.OutcomeStatus),
		OutcomeSetAt:        formatTimePtr(item.OutcomeSetAt),
		OutcomeMethod:       string(item.OutcomeMethod),
		DeclinedReasonID:    item.DeclinedReasonID,
		DeclinedNotes:       item.DeclinedNotes,
		DeferredUntil:       formatTimePtr(item.DeferredUntil),
		DeferredNotes:       item.DeferredNotes,
		NoLabourRequired:    item.NoLabourRequired,
		NoPartsRequired:     item.NoPartsRequired,
		LabourStatus:        string(item.LabourStatus),
		PartsStatus:         string(item.PartsStatus),
		CheckResults:        make([]checkResultRecord, 0, len(item.CheckResults)),
		CreatedAt:           formatTime(item.CreatedAt),
		UpdatedAt:           formatTime(item.UpdatedAt),
	}
	for _, o := range item.Options {
		it.Options = append(it.Options, repairOptionRecord{
			ID:            o.ID,
			Name:          o.Name,
			Description:   o.Description,
			IsRecommended: o.IsRecommended,
			Labour:        toLineItemRecords(o.Labour),
			Parts:         toLineItemRecords(o.Parts),
			SortOrder:     o.SortOrder,
		})
	}
	for _, cr := range item.CheckResults {
		it.CheckResults = append(it.CheckResults, checkResultRecord{
			ID:        cr.ID,
			Name:      cr.Name,
			RAGStatus: string(cr.RAGStatus),
			Notes:     cr.Notes,
		})
	}
	return it
}

func decodeRepairItem(av map[string]types.AttributeValue) (entities.RepairItem, error) {
	var it repairItemItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.RepairItem{}, err
	}
	item, err := fromRepairItemItem(it)
	if err != nil {
		return entities.RepairItem{}, fmt.Errorf("repair item %s: %w", it.ID, err)
	}
	return item, nil
}

// fromRepairItemItem parses every stored enum and number; unknown values are errors.
func fromRepairItemItem(it repairItemItem) (entities.RepairItem, error) {
	item := entities.RepairItem{
		ID:                  it.ID,
		HealthCheckID:       it.HealthCheckID,
		Name:                it.Name,
		Description:         it.Description,
		IsGroup:             it.IsGroup,
		ParentRepairItemID:  it.ParentRepairItemID,
		SortOrder:           it.SortOrder,
		SelectedOptionID:    it.SelectedOptionID,
		PriceOverrideReason: it.PriceOverrideReason,
		OutcomeMethod:       entities.AuthorizationMethod(it.OutcomeMethod),
		DeclinedReasonID:    it.DeclinedReasonID,
		DeclinedNotes:       it.DeclinedNotes,
		DeferredNotes:       it.DeferredNotes,
		NoLabourRequired:    it.NoLabourRequired,
		NoPartsRequired:     it.NoPartsRequired,
	}

	var err error
	if item.OutcomeStatus, err = entities.ParseOutcomeStatus(it.OutcomeStatus); err != nil {
		return entities.RepairItem{}, err
	}
	if item.LabourStatus, err = entities.ParseWorkStatus(it.LabourStatus); err != nil {
		return entities.RepairItem{}, err
	}
	if item.PartsStatus, err = entities.ParseWorkStatus(it.PartsStatus); err != nil {
		return entities.RepairItem{}, err
	}
	if item.Labour, err = fromLineItemRecords(it.Labour); err != nil {
		return entities.RepairItem{}, err
	}
	if item.Parts, err = fromLineItemRecords(it.Parts); err != nil {
		return entities.RepairItem{}, err
	}
	if item.PriceOverride, err = parseNullDecimal("price_override", it.PriceOverride); err != nil {
		return entities.RepairItem{}, err
	}
	if item.OutcomeSetAt, err = parseTimePtr("outcome_set_at", it.OutcomeSetAt); err != nil {
		return entities.RepairItem{}, err
	}
	if item.DeferredUntil, err = parseTimePtr("deferred_until", it.DeferredUntil); err != nil {
		return entities.RepairItem{}, err
	}
	if item.CreatedAt, err = parseTime("created_at", it.CreatedAt); err != nil {
		return entities.RepairItem{}, err
	}
	if item.UpdatedAt, err = parseTime("updated_at", it.UpdatedAt); err != nil {
		return entities.RepairItem{}, err
	}

	for _, rec := range it.Options {
		opt := entities.RepairOption{
			ID:            rec.ID,
			Name:          rec.Name,
			Description:   rec.Description,
			IsRecommended: rec.IsRecommended,
			SortOrder:     rec.SortOrder,
		}
		if opt.Labour, err = fromLineItemRecords(rec.Labour); err != nil {
			return entities.RepairItem{}, err
		}
		if opt.Parts, err = fromLineItemRecords(rec.Parts); err != nil {
			return entities.RepairItem{}, err
		}
		item.Options = append(item.Options, opt)
	}

	item.CheckResults = make([]entities.CheckResult, 0, len(it.CheckResults))
	for _, rec := range it.CheckResults {
		rag := entities.RAGStatus(rec.RAGStatus)
		switch rag {
		case entities.RAGRed, entities.RAGAmber, entities.RAGGreen:
		default:
			return entities.RepairItem{}, entities.NewValidationError(it.ID, "rag_status", entities.ErrValidation, "unknown rag status "+rec.RAGStatus)
		}
		item.CheckResults = append(item.CheckResults, entities.CheckResult{
			ID:        rec.ID,
			Name:      rec.Name,
			RAGStatus: rag,
			Notes:     rec.Notes,
		})
	}
	return item, nil
}

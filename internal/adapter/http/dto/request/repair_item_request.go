package request

import (
	"vhc_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CheckResultRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	RAGStatus string `json:"rag_status" binding:"required,oneof=red amber green"`
	Notes     string `json:"notes"`
}

type CreateRepairItemRequest struct {
	Name             string               `json:"name" binding:"required"`
	Description      string               `json:"description"`
	SortOrder        int                  `json:"sort_order"`
	CheckResults     []CheckResultRequest `json:"check_results" binding:"dive"`
	NoLabourRequired bool                 `json:"no_labour_required"`
	NoPartsRequired  bool                 `json:"no_parts_required"`
}

func (r CreateRepairItemRequest) CheckResultEntities() []entities.CheckResult {
	out := make([]entities.CheckResult, 0, len(r.CheckResults))
	for _, cr := range r.CheckResults {
		out = append(out, entities.CheckResult{
			ID:        cr.ID,
			Name:      cr.Name,
			RAGStatus: entities.RAGStatus(cr.RAGStatus),
			Notes:     cr.Notes,
		})
	}
	return out
}

// LineItemRequest carries money and quantities as decimal strings.
// For labour, quantity is hours and unit_sell_price the hourly rate.
type LineItemRequest struct {
	Description       string  `json:"description"`
	Quantity          string  `json:"quantity" binding:"required,decimal"`
	UnitCostPrice     *string `json:"unit_cost_price" binding:"omitempty,decimal"`
	UnitSellPrice     string  `json:"unit_sell_price" binding:"required,decimal"`
	DiscountPercent   string  `json:"discount_percent" binding:"omitempty,decimal"`
	IsVATExempt       bool    `json:"is_vat_exempt"`
	AllocationType    string  `json:"allocation_type" binding:"omitempty,oneof=shared direct"`
	ChildRepairItemID string  `json:"child_repair_item_id"`
}

// ToLineItem converts the request into a line of the given kind. Range
// checks are left to the pricing rules.
func (r LineItemRequest) ToLineItem(kind entities.LineItemKind) (entities.LineItem, error) {
	l := entities.LineItem{
		Kind:              kind,
		Description:       r.Description,
		IsVATExempt:       r.IsVATExempt,
		AllocationType:    entities.AllocationType(r.AllocationType),
		ChildRepairItemID: r.ChildRepairItemID,
	}
	var err error
	if l.Quantity, err = parseDecimal(r.Quantity); err != nil {
		return entities.LineItem{}, err
	}
	if l.UnitSellPrice, err = parseDecimal(r.UnitSellPrice); err != nil {
		return entities.LineItem{}, err
	}
	if l.DiscountPercent, err = parseOptionalDecimal(r.DiscountPercent); err != nil {
		return entities.LineItem{}, err
	}
	if r.UnitCostPrice != nil {
		cost, err := parseDecimal(*r.UnitCostPrice)
		if err != nil {
			return entities.LineItem{}, err
		}
		l.UnitCostPrice = decimal.NewNullDecimal(cost)
	}
	return l, nil
}

type RepairOptionRequest struct {
	Name          string            `json:"name" binding:"required"`
	Description   string            `json:"description"`
	IsRecommended bool              `json:"is_recommended"`
	Labour        []LineItemRequest `json:"labour" binding:"dive"`
	Parts         []LineItemRequest `json:"parts" binding:"dive"`
}

func (r RepairOptionRequest) ToRepairOption() (entities.RepairOption, error) {
	opt := entities.RepairOption{
		Name:          r.Name,
		Description:   r.Description,
		IsRecommended: r.IsRecommended,
		Labour:        make([]entities.LineItem, 0, len(r.Labour)),
		Parts:         make([]entities.LineItem, 0, len(r.Parts)),
	}
	for _, lr := range r.Labour {
		l, err := lr.ToLineItem(entities.LineItemKindLabour)
		if err != nil {
			return entities.RepairOption{}, err
		}
		opt.Labour = append(opt.Labour, l)
	}
	for _, pr := range r.Parts {
		p, err := pr.ToLineItem(entities.LineItemKindPart)
		if err != nil {
			return entities.RepairOption{}, err
		}
		opt.Parts = append(opt.Parts, p)
	}
	return opt, nil
}

type SelectOptionRequest struct {
	OptionID string `json:"option_id" binding:"required"`
}

type PriceOverrideRequest struct {
	Amount string `json:"amount" binding:"required,decimal"`
	Reason string `json:"reason"`
}

func (r PriceOverrideRequest) AmountDecimal() (decimal.Decimal, error) {
	return parseDecimal(r.Amount)
}

// WorkStatusRequest is a partial update; omitted fields are left unchanged.
type WorkStatusRequest struct {
	LabourStatus     *string `json:"labour_status" binding:"omitempty,oneof=pending in_progress complete"`
	PartsStatus      *string `json:"parts_status" binding:"omitempty,oneof=pending in_progress complete"`
	NoLabourRequired *bool   `json:"no_labour_required"`
	NoPartsRequired  *bool   `json:"no_parts_required"`
}

type CreateGroupRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	RepairItemIDs []string `json:"repair_item_ids" binding:"required"`
}

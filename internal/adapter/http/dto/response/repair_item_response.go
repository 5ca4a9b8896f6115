package response

import (
	"time"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/domain/pricing"
)

type LineItemResponse struct {
	ID                string  `json:"id"`
	Kind              string  `json:"kind"`
	Description       string  `json:"description,omitempty"`
	Quantity          string  `json:"quantity"`
	UnitCostPrice     *string `json:"unit_cost_price"`
	UnitSellPrice     string  `json:"unit_sell_price"`
	DiscountPercent   string  `json:"discount_percent"`
	LineTotal         string  `json:"line_total"`
	IsVATExempt       bool    `json:"is_vat_exempt"`
	AllocationType    string  `json:"allocation_type,omitempty"`
	ChildRepairItemID string  `json:"child_repair_item_id,omitempty"`
}

func fromLineItems(lines []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineItemResponse{
			ID:                l.ID,
			Kind:              string(l.Kind),
			Description:       l.Description,
			Quantity:          l.Quantity.String(),
			UnitCostPrice:     nullMoney(l.UnitCostPrice),
			UnitSellPrice:     money(l.UnitSellPrice),
			DiscountPercent:   l.DiscountPercent.String(),
			LineTotal:         money(pricing.LineTotal(l)),
			IsVATExempt:       l.IsVATExempt,
			AllocationType:    string(l.AllocationType),
			ChildRepairItemID: l.ChildRepairItemID,
		})
	}
	return out
}

type RepairOptionResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	IsRecommended bool               `json:"is_recommended"`
	Labour        []LineItemResponse `json:"labour"`
	Parts         []LineItemResponse `json:"parts"`
}

type RepairItemResponse struct {
	ID                  string                 `json:"id"`
	HealthCheckID       string                 `json:"health_check_id"`
	Name                string                 `json:"name"`
	Description         string                 `json:"description,omitempty"`
	IsGroup             bool                   `json:"is_group"`
	ParentRepairItemID  string                 `json:"parent_repair_item_id,omitempty"`
	SortOrder           int                    `json:"sort_order"`
	Children            []RepairItemResponse   `json:"children,omitempty"`
	Options             []RepairOptionResponse `json:"options,omitempty"`
	SelectedOptionID    string                 `json:"selected_option_id,omitempty"`
	Labour              []LineItemResponse     `json:"labour"`
	Parts               []LineItemResponse     `json:"parts"`
	PriceOverride       *string                `json:"price_override"`
	PriceOverrideReason string                 `json:"price_override_reason,omitempty"`
	OutcomeStatus       string                 `json:"outcome_status,omitempty"`
	OutcomeSetAt        *time.Time             `json:"outcome_set_at,omitempty"`
	OutcomeMethod       string                 `json:"outcome_method,omitempty"`
	DeclinedReasonID    string                 `json:"declined_reason_id,omitempty"`
	DeclinedNotes       string                 `json:"declined_notes,omitempty"`
	DeferredUntil       string                 `json:"deferred_until,omitempty"`
	DeferredNotes       string                 `json:"deferred_notes,omitempty"`
	NoLabourRequired    bool                   `json:"no_labour_required"`
	NoPartsRequired     bool                   `json:"no_parts_required"`
	LabourStatus        string                 `json:"labour_status"`
	PartsStatus         string                 `json:"parts_status"`
	CheckResults        []entities.CheckResult `json:"check_results"`
	Warnings            []pricing.Warning      `json:"warnings,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

func FromRepairItem(item entities.RepairItem) RepairItemResponse {
	res := RepairItemResponse{
		ID:                  item.ID,
		HealthCheckID:       item.HealthCheckID,
		Name:                item.Name,
		Description:         item.Description,
		IsGroup:             item.IsGroup,
		ParentRepairItemID:  item.ParentRepairItemID,
		SortOrder:           item.SortOrder,
		SelectedOptionID:    item.SelectedOptionID,
		Labour:              fromLineItems(item.Labour),
		Parts:               fromLineItems(item.Parts),
		PriceOverride:       nullMoney(item.PriceOverride),
		PriceOverrideReason: item.PriceOverrideReason,
		OutcomeStatus:       string(item.OutcomeStatus),
		OutcomeSetAt:        item.OutcomeSetAt,
		OutcomeMethod:       string(item.OutcomeMethod),
		DeclinedReasonID:    item.DeclinedReasonID,
		DeclinedNotes:       item.DeclinedNotes,
		DeferredNotes:       item.DeferredNotes,
		NoLabourRequired:    item.NoLabourRequired,
		NoPartsRequired:     item.NoPartsRequired,
		LabourStatus:        string(item.LabourStatus),
		PartsStatus:         string(item.PartsStatus),
		CheckResults:        item.CheckResults,
		Warnings:            pricing.PricingWarnings(item),
		CreatedAt:           item.CreatedAt,
		UpdatedAt:           item.UpdatedAt,
	}
	if item.DeferredUntil != nil {
		res.DeferredUntil = item.DeferredUntil.Format(time.DateOnly)
	}
	if res.CheckResults == nil {
		res.CheckResults = []entities.CheckResult{}
	}
	for _, o := range item.SortedOptions() {
		res.Options = append(res.Options, RepairOptionResponse{
			ID:            o.ID,
			Name:          o.Name,
			Description:   o.Description,
			IsRecommended: o.IsRecommended,
			Labour:        fromLineItems(o.Labour),
			Parts:         fromLineItems(o.Parts),
		})
	}
	for _, c := range item.Children {
		res.Children = append(res.Children, FromRepairItem(c))
	}
	return res
}

func FromRepairItems(items []entities.RepairItem) []RepairItemResponse {
	out := make([]RepairItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromRepairItem(it))
	}
	return out
}

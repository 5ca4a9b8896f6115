package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/domain/pricing"
	"vhc_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRepairItemID   = errors.New("invalid repair_item_id")
	ErrInvalidRepairItemData = errors.New("invalid repair item data")
	ErrRepairItemNotFound    = errors.New("repair item not found")
	ErrRepairItemDeleted     = errors.New("repair item has been deleted")
	ErrLineItemNotFound      = errors.New("line item not found")
	ErrRepairOptionNotFound  = errors.New("repair option not found")
	ErrNotAGroup             = errors.New("repair item is not a group")
	// ErrMixedPricing keeps an item priced either from options or from its own lines.
	ErrMixedPricing = errors.New("repair item cannot mix options with direct line items")
)

type CreateRepairItemInput struct {
	Name             string
	Description      string
	SortOrder        int
	CheckResults     []entities.CheckResult
	NoLabourRequired bool
	NoPartsRequired  bool
}

type CreateGroupInput struct {
	Name        string
	Description string
	ItemIDs     []string
}

// WorkStatusInput updates only the fields that are set.
type WorkStatusInput struct {
	LabourStatus     *entities.WorkStatus
	PartsStatus      *entities.WorkStatus
	NoLabourRequired *bool
	NoPartsRequired  *bool
}

type IRepairItemUseCase interface {
	Create(ctx context.Context, healthCheckID string, in CreateRepairItemInput) (entities.RepairItem, error)
	ListByHealthCheck(ctx context.Context, healthCheckID string) ([]entities.RepairItem, error)
	AddLineItem(ctx context.Context, itemID string, line entities.LineItem) (entities.RepairItem, error)
	UpdateLineItem(ctx context.Context, itemID, lineID string, line entities.LineItem) (entities.RepairItem, error)
	RemoveLineItem(ctx context.Context, itemID, lineID string) (entities.RepairItem, error)
	AddOption(ctx context.Context, itemID string, opt entities.RepairOption) (entities.RepairItem, error)
	SelectOption(ctx context.Context, itemID, optionID string) (entities.RepairItem, error)
	SetPriceOverride(ctx context.Context, itemID string, amount decimal.Decimal, reason string) (entities.RepairItem, error)
	ClearPriceOverride(ctx context.Context, itemID string) (entities.RepairItem, error)
	UpdateWorkStatus(ctx context.Context, itemID string, in WorkStatusInput) (entities.RepairItem, error)
	Delete(ctx context.Context, itemID string) (entities.RepairItem, error)
	CreateGroup(ctx context.Context, healthCheckID string, in CreateGroupInput) (entities.RepairItem, error)
	Ungroup(ctx context.Context, groupID string) ([]entities.RepairItem, error)
}

type RepairItemUseCase struct {
	snapshots snapshotLoader
	repo      interfaces.IRepairItemRepository
	now       func() time.Time
}

var _ IRepairItemUseCase = (*RepairItemUseCase)(nil)

func NewRepairItemUseCase(healthChecks interfaces.IHealthCheckRepository, repo interfaces.IRepairItemRepository) *RepairItemUseCase {
	return &RepairItemUseCase{
		snapshots: snapshotLoader{healthChecks: healthChecks, repairItems: repo},
		repo:      repo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *RepairItemUseCase) Create(ctx context.Context, healthCheckID string, in CreateRepairItemInput) (entities.RepairItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.RepairItem{}, ErrInvalidRepairItemData
	}
	hc, err := u.snapshots.healthCheck(ctx, healthCheckID)
	if err != nil {
		return entities.RepairItem{}, err
	}

	checks := make([]entities.CheckResult, 0, len(in.CheckResults))
	for _, cr := range in.CheckResults {
		switch cr.RAGStatus {
		case entities.RAGRed, entities.RAGAmber, entities.RAGGreen:
		default:
			return entities.RepairItem{}, ErrInvalidRepairItemData
		}
		if cr.ID == "" {
			cr.ID = uuid.NewString()
		}
		checks = append(checks, cr)
	}

	now := u.now()
	item := entities.RepairItem{
		ID:               uuid.NewString(),
		HealthCheckID:    hc.ID,
		Name:             name,
		Description:      strings.TrimSpace(in.Description),
		SortOrder:        in.SortOrder,
		Labour:           []entities.LineItem{},
		Parts:            []entities.LineItem{},
		NoLabourRequired: in.NoLabourRequired,
		NoPartsRequired:  in.NoPartsRequired,
		LabourStatus:     entities.WorkStatusPending,
		PartsStatus:      entities.WorkStatusPending,
		CheckResults:     checks,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, item)
}

func (u *RepairItemUseCase) ListByHealthCheck(ctx context.Context, healthCheckID string) ([]entities.RepairItem, error) {
	_, items, err := u.snapshots.load(ctx, healthCheckID)
	return items, err
}

func (u *RepairItemUseCase) AddLineItem(ctx context.Context, itemID string, line entities.LineItem) (entities.RepairItem, error) {
	item, err := u.editable(ctx, itemID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	if len(item.Options) > 0 {
		return entities.RepairItem{}, ErrMixedPricing
	}

	line.ID = uuid.NewString()
	if err := u.validateLine(ctx, item, line); err != nil {
		return entities.RepairItem{}, err
	}

	if line.IsLabour() {
		item.Labour = append(item.Labour, line)
		if item.LabourStatus == entities.WorkStatusPending {
			item.LabourStatus = entities.WorkStatusInProgress
		}
	} else {
		item.Parts = append(item.Parts, line)
		if item.PartsStatus == entities.WorkStatusPending {
			item.PartsStatus = entities.WorkStatusInProgress
		}
	}
	return u.save(ctx, item)
}

func (u *RepairItemUseCase) UpdateLineItem(ctx context.Context, itemID, lineID string, line entities.LineItem) (entities.RepairItem, error) {
	item, err := u.editable(ctx, itemID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	existing, ok := item.FindLineItem(strings.TrimSpace(lineID))
	if !ok {
		return entities.RepairItem{}, ErrLineItemNotFound
	}

	line.ID = existing.ID
	line.Kind = existing.Kind
	if err := u.validateLine(ctx, item, line); err != nil {
		return entities.RepairItem{}, err
	}
	replace := func(lines []entities.LineItem) {
		for i := range lines {
			if lines[i].ID == line.ID {
				lines[i] = line
			}
		}
	}
	replace(item.Labour)
	replace(item.Parts)
	return u.save(ctx, item)
}

func (u *RepairItemUseCase) RemoveLineItem(ctx context.Context, itemID, lineID string) (entities.RepairItem, error) {
	item, err := u.editable(ctx, itemID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	lineID = strings.TrimSpace(lineID)
	if _, ok := item.FindLineItem(lineID); !ok {
		return entities.RepairItem{}, ErrLineItemNotFound
	}
	drop := func(lines []entities.LineItem) []entities.LineItem {
		out := lines[:0]
		for _, l := range lines {
			if l.ID != lineID {
				out = append(out, l)
			}
		}
		return out
	}
	item.Labour = drop(item.Labour)
	item.Parts = drop(item.Parts)
	return u.save(ctx, item)
}

func (u *RepairItemUseCase) AddOption(ctx context.Context, itemID string, opt entities.RepairOption) (entities.RepairItem, error) {
	item, err := u.editable(ctx, itemID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	if len(item.Labour) > 0 || len(item.Parts) > 0 {
		return entities.RepairItem{}, ErrMixedPricing
	}
	opt.Name = strings.TrimSpace(opt.Name)
	if opt.Name == "" {
		return entities.RepairItem{}, ErrInvalidRepairItemData
	}

	opt.ID = uuid.NewString()
	opt.SortOrder = len(item.Options)
	for i := range opt.Labour {
		opt.Labour[i].ID = uuid.NewString()
		opt.Labour[i].Kind = entities.LineItemKindLabour
	}
	for i := range opt.Parts {
		opt.Parts[i].ID = uuid.NewString()
		opt.Parts[i].Kind = entities.LineItemKindPart
	}
	if err := pricing.ValidateLineItems(item.ID, opt.Labour, opt.Parts); err != nil {
		return entities.RepairItem{}, err
	}

	if opt.IsRecommended {
		for i := range item.Options {
			item.Options[i].IsRecommended = false
		}
	}
	item.Options = append(item.Options, opt)
	return u.save(ctx, item)
}

func (u *RepairItemUseCase) SelectOption(ctx context.Context, itemID, optionID string) (entities.RepairItem, error) {
	item, err := u.editable(ctx, itemID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	opt, ok := item.FindOption(strings.TrimSpace(optionID))
	if !ok {
		return entities.RepairItem{}, ErrRepairOptionNotFound
	}
	item.SelectedOptionID = opt.ID
	return u.save(ctx, item)
}

func (u *RepairItemUseCase) SetPriceOverride(ctx context.Context, itemID string, amount decimal.Decimal, reason string) (entities.RepairItem, error) {
	item, err := u.editable(ctx, itemID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	override := decimal.NewNullDecimal(amount)
	reason = strings.TrimSpace(reason)
	if err := pricing.ValidatePriceOverride(item.ID, override, reason); err != nil {
		return entities.RepairItem{}, err
	}
	item.PriceOverride = override
	item.PriceOverrideReason = reason
	return u.save(ctx, item)
}

func (u *RepairItemUseCase) ClearPriceOverride(ctx context.Context, itemID string) (entities.RepairItem, error) {
	item, err := u.editable(ctx, itemID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	item.PriceOverride = decimal.NullDecimal{}
	item.PriceOverrideReason = ""
	return u.save(ctx, item)
}

func (u *RepairItemUseCase) UpdateWorkStatus(ctx context.Context, itemID string, in WorkStatusInput) (entities.RepairItem, error) {
	item, err := u.editable(ctx, itemID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	if in.LabourStatus != nil {
		s, err := entities.ParseWorkStatus(string(*in.LabourStatus))
		if err != nil {
			return entities.RepairItem{}, err
		}
		item.LabourStatus = s
	}
	if in.PartsStatus != nil {
		s, err := entities.ParseWorkStatus(string(*in.PartsStatus))
		if err != nil {
			return entities.RepairItem{}, err
		}
		item.PartsStatus = s
	}
	if in.NoLabourRequired != nil {
		item.NoLabourRequired = *in.NoLabourRequired
	}
	if in.NoPartsRequired != nil {
		item.NoPartsRequired = *in.NoPartsRequired
	}
	return u.save(ctx, item)
}

// Delete soft-deletes an item. Deleting a group deletes its children with it.
func (u *RepairItemUseCase) Delete(ctx context.Context, itemID string) (entities.RepairItem, error) {
	item, err := u.editable(ctx, itemID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	now := u.now()
	item.OutcomeStatus = entities.OutcomeDeleted
	item.UpdatedAt = now
	if !item.IsGroup {
		return u.save(ctx, item)
	}

	rows, err := u.repo.ListByHealthCheckID(ctx, item.HealthCheckID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	batch := []entities.RepairItem{item}
	for _, r := range rows {
		if r.ParentRepairItemID == item.ID && !r.IsDeleted() {
			r.OutcomeStatus = entities.OutcomeDeleted
			r.UpdatedAt = now
			batch = append(batch, r)
		}
	}
	if err := u.repo.SaveAll(ctx, batch); err != nil {
		return entities.RepairItem{}, err
	}
	return item, nil
}

// CreateGroup gathers at least two top-level items of a health check under a new group.
func (u *RepairItemUseCase) CreateGroup(ctx context.Context, healthCheckID string, in CreateGroupInput) (entities.RepairItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.RepairItem{}, ErrInvalidRepairItemData
	}
	ids := uniqueTrimmed(in.ItemIDs)
	if len(ids) < 2 {
		return entities.RepairItem{}, entities.NewValidationError("", "repair_item_ids", entities.ErrGroupNeedsChildren, "")
	}

	hc, err := u.snapshots.healthCheck(ctx, healthCheckID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	rows, err := u.repo.ListByHealthCheckID(ctx, hc.ID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	byID := make(map[string]entities.RepairItem, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}

	now := u.now()
	group := entities.RepairItem{
		ID:            uuid.NewString(),
		HealthCheckID: hc.ID,
		Name:          name,
		Description:   strings.TrimSpace(in.Description),
		IsGroup:       true,
		Labour:        []entities.LineItem{},
		Parts:         []entities.LineItem{},
		LabourStatus:  entities.WorkStatusPending,
		PartsStatus:   entities.WorkStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	batch := make([]entities.RepairItem, 0, len(ids)+1)
	for i, id := range ids {
		child, ok := byID[id]
		if !ok {
			return entities.RepairItem{}, entities.NewNotFoundError("repair item", id)
		}
		if child.IsDeleted() {
			return entities.RepairItem{}, ErrRepairItemDeleted
		}
		if child.IsGroup || !child.IsTopLevel() {
			return entities.RepairItem{}, entities.NewValidationError(child.ID, "repair_item_ids", entities.ErrNestedGroup, "")
		}
		if i == 0 {
			group.SortOrder = child.SortOrder
		}
		child.ParentRepairItemID = group.ID
		child.SortOrder = i
		child.UpdatedAt = now
		batch = append(batch, child)
	}
	batch = append(batch, group)

	if err := u.repo.SaveAll(ctx, batch); err != nil {
		return entities.RepairItem{}, err
	}
	group.Children = batch[:len(batch)-1]
	return group, nil
}

// Ungroup moves the children back to the top level and deletes the group.
func (u *RepairItemUseCase) Ungroup(ctx context.Context, groupID string) ([]entities.RepairItem, error) {
	group, err := u.editable(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsGroup {
		return nil, ErrNotAGroup
	}
	rows, err := u.repo.ListByHealthCheckID(ctx, group.HealthCheckID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	var children []entities.RepairItem
	for _, r := range rows {
		if r.ParentRepairItemID != group.ID {
			continue
		}
		r.ParentRepairItemID = ""
		r.SortOrder = group.SortOrder
		r.UpdatedAt = now
		children = append(children, r)
	}
	group.OutcomeStatus = entities.OutcomeDeleted
	group.UpdatedAt = now

	if err := u.repo.SaveAll(ctx, append(children, group)); err != nil {
		return nil, err
	}
	return children, nil
}

// editable loads a single row that may still be changed.
func (u *RepairItemUseCase) editable(ctx context.Context, itemID string) (entities.RepairItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.RepairItem{}, ErrInvalidRepairItemID
	}
	item, err := u.repo.GetByID(ctx, itemID)
	if err != nil {
		return entities.RepairItem{}, err
	}
	if item.ID == "" {
		return entities.RepairItem{}, ErrRepairItemNotFound
	}
	if item.IsDeleted() {
		return entities.RepairItem{}, ErrRepairItemDeleted
	}
	return item, nil
}

// validateLine checks the line on its own and, for direct allocations, that it
// points at a live child of the group it is added to.
func (u *RepairItemUseCase) validateLine(ctx context.Context, item entities.RepairItem, line entities.LineItem) error {
	if err := pricing.ValidateLineItem(item.ID, line); err != nil {
		return err
	}
	if line.AllocationType != entities.AllocationDirect {
		return nil
	}

	fail := entities.NewValidationError(item.ID, "child_repair_item_id", entities.ErrInvalidAllocation, line.ChildRepairItemID)
	fail.LineItemID = line.ID
	if !item.IsGroup || line.ChildRepairItemID == "" {
		return fail
	}
	child, err := u.repo.GetByID(ctx, line.ChildRepairItemID)
	if err != nil {
		return err
	}
	if child.ParentRepairItemID != item.ID || child.IsDeleted() {
		return fail
	}
	return nil
}

func (u *RepairItemUseCase) save(ctx context.Context, item entities.RepairItem) (entities.RepairItem, error) {
	item.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, item)
	if err != nil {
		return entities.RepairItem{}, err
	}
	if saved.ID == "" {
		return entities.RepairItem{}, ErrRepairItemNotFound
	}
	return saved, nil
}

func uniqueTrimmed(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// OutcomeStatus is the persisted customer outcome of a repair item.
// The empty value means no outcome has been recorded yet.
type OutcomeStatus string

const (
	OutcomeNone       OutcomeStatus = ""
	OutcomeAuthorised OutcomeStatus = "authorised"
	OutcomeDeclined   OutcomeStatus = "declined"
	OutcomeDeferred   OutcomeStatus = "deferred"
	OutcomeDeleted    OutcomeStatus = "deleted"
)

// ParseOutcomeStatus rejects values that are not part of the closed set.
func ParseOutcomeStatus(s string) (OutcomeStatus, error) {
	switch o := OutcomeStatus(s); o {
	case OutcomeNone, OutcomeAuthorised, OutcomeDeclined, OutcomeDeferred, OutcomeDeleted:
		return o, nil
	}
	return OutcomeNone, NewValidationError("", "outcome_status", ErrValidation, "unknown outcome status "+s)
}

// WorkStatus tracks labour and parts pricing progress of a repair item.
type WorkStatus string

const (
	WorkStatusPending    WorkStatus = "pending"
	WorkStatusInProgress WorkStatus = "in_progress"
	WorkStatusComplete   WorkStatus = "complete"
)

// ParseWorkStatus maps stored values onto the closed set; empty means pending.
func ParseWorkStatus(s string) (WorkStatus, error) {
	switch w := WorkStatus(s); w {
	case WorkStatusPending, WorkStatusInProgress, WorkStatusComplete:
		return w, nil
	case "":
		return WorkStatusPending, nil
	}
	return WorkStatusPending, NewValidationError("", "work_status", ErrValidation, "unknown work status "+s)
}

type RAGStatus string

const (
	RAGRed   RAGStatus = "red"
	RAGAmber RAGStatus = "amber"
	RAGGreen RAGStatus = "green"
)

// CheckResult is one inspection finding linked to a repair item.
type CheckResult struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RAGStatus RAGStatus `json:"rag_status"`
	Notes     string    `json:"notes,omitempty"`
}

// RepairOption is a mutually exclusive pricing variant of a repair item.
type RepairOption struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	IsRecommended bool       `json:"is_recommended"`
	Labour        []LineItem `json:"labour"`
	Parts         []LineItem `json:"parts"`
	SortOrder     int        `json:"sort_order"`
}

// RepairItem is one quoted line of a health check. Group items carry their
// children in Children once the snapshot has been assembled with BuildRepairItemTree.
type RepairItem struct {
	ID                 string `json:"id"`
	HealthCheckID      string `json:"health_check_id"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	IsGroup            bool   `json:"is_group"`
	ParentRepairItemID string `json:"parent_repair_item_id,omitempty"`
	SortOrder          int    `json:"sort_order"`

	Children         []RepairItem   `json:"children,omitempty"`
	Options          []RepairOption `json:"options,omitempty"`
	SelectedOptionID string         `json:"selected_option_id,omitempty"`
	Labour           []LineItem     `json:"labour"`
	Parts            []LineItem     `json:"parts"`

	PriceOverride       decimal.NullDecimal `json:"price_override"`
	PriceOverrideReason string              `json:"price_override_reason,omitempty"`

	OutcomeStatus    OutcomeStatus       `json:"outcome_status,omitempty"`
	OutcomeSetAt     *time.Time          `json:"outcome_set_at,omitempty"`
	OutcomeMethod    AuthorizationMethod `json:"outcome_method,omitempty"`
	DeclinedReasonID string              `json:"declined_reason_id,omitempty"`
	DeclinedNotes    string              `json:"declined_notes,omitempty"`
	DeferredUntil    *time.Time          `json:"deferred_until,omitempty"`
	DeferredNotes    string              `json:"deferred_notes,omitempty"`

	NoLabourRequired bool       `json:"no_labour_required"`
	NoPartsRequired  bool       `json:"no_parts_required"`
	LabourStatus     WorkStatus `json:"labour_status"`
	PartsStatus      WorkStatus `json:"parts_status"`

	CheckResults []CheckResult `json:"check_results"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r RepairItem) IsDeleted() bool { return r.OutcomeStatus == OutcomeDeleted }

func (r RepairItem) IsTopLevel() bool { return r.ParentRepairItemID == "" }

// HasRedOrAmber reports whether any of the item's own findings needs attention.
func (r RepairItem) HasRedOrAmber() bool {
	for _, cr := range r.CheckResults {
		if cr.RAGStatus == RAGRed || cr.RAGStatus == RAGAmber {
			return true
		}
	}
	return false
}

// ActiveChildren returns the children that have not been deleted.
func (r RepairItem) ActiveChildren() []RepairItem {
	out := make([]RepairItem, 0, len(r.Children))
	for _, c := range r.Children {
		if !c.IsDeleted() {
			out = append(out, c)
		}
	}
	return out
}

func (r RepairItem) FindOption(id string) (RepairOption, bool) {
	for _, o := range r.Options {
		if o.ID == id {
			return o, true
		}
	}
	return RepairOption{}, false
}

// FindLineItem looks up a direct labour or parts line by ID.
func (r RepairItem) FindLineItem(id string) (LineItem, bool) {
	for _, l := range r.Labour {
		if l.ID == id {
			return l, true
		}
	}
	for _, p := range r.Parts {
		if p.ID == id {
			return p, true
		}
	}
	return LineItem{}, false
}

// BuildRepairItemTree nests child rows under their group and orders both
// levels by SortOrder. Rows are expected to come from a single health check.
func BuildRepairItemTree(rows []RepairItem) ([]RepairItem, error) {
	children := make(map[string][]RepairItem)
	known := make(map[string]bool, len(rows))
	for _, r := range rows {
		known[r.ID] = true
	}

	top := make([]RepairItem, 0, len(rows))
	for _, r := range rows {
		r.Children = nil
		if r.ParentRepairItemID == "" {
			top = append(top, r)
			continue
		}
		if !known[r.ParentRepairItemID] {
			return nil, NewNotFoundError("repair group", r.ParentRepairItemID)
		}
		children[r.ParentRepairItemID] = append(children[r.ParentRepairItemID], r)
	}

	for i := range top {
		kids := children[top[i].ID]
		sortRepairItems(kids)
		top[i].Children = kids
	}
	sortRepairItems(top)
	return top, nil
}

// FlattenRepairItems is the inverse of BuildRepairItemTree.
func FlattenRepairItems(items []RepairItem) []RepairItem {
	out := make([]RepairItem, 0, len(items))
	for _, it := range items {
		kids := it.Children
		it.Children = nil
		out = append(out, it)
		out = append(out, FlattenRepairItems(kids)...)
	}
	return out
}

// FindRepairItem searches top-level items and their children.
func FindRepairItem(items []RepairItem, id string) (RepairItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
		for _, c := range it.Children {
			if c.ID == id {
				return c, true
			}
		}
	}
	return RepairItem{}, false
}

// SortedOptions returns a copy of the item's options ordered by SortOrder,
// keeping stored order for ties.
func (r RepairItem) SortedOptions() []RepairOption {
	out := append([]RepairOption(nil), r.Options...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

func sortRepairItems(items []RepairItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

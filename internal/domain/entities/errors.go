package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error below unwraps to one of the first three so
// callers can branch with errors.Is without knowing the concrete type.
var (
	ErrValidation         = errors.New("validation failed")
	ErrIncompleteDecision = errors.New("authorization incomplete")
	ErrNotFound           = errors.New("not found")

	ErrNonPositiveQuantity     = errors.New("quantity must be greater than zero")
	ErrNegativePrice           = errors.New("price cannot be negative")
	ErrInvalidDiscount         = errors.New("discount must be between 0 and 100")
	ErrDiscountNotAllowed      = errors.New("discount only applies to labour")
	ErrInvalidAllocation       = errors.New("invalid allocation type")
	ErrInvalidMargin           = errors.New("margin must be at least 0 and below 100")
	ErrOverrideReasonRequired  = errors.New("price override requires a reason")
	ErrNegativeOverride        = errors.New("price override cannot be negative")
	ErrUnknownDecision         = errors.New("unknown authorization decision")
	ErrUnknownMethod           = errors.New("unknown authorization method")
	ErrDeclineReasonRequired   = errors.New("decline requires a reason or notes")
	ErrDeclineNotesRequired    = errors.New("decline reason requires notes")
	ErrDeferredUntilInPast     = errors.New("deferred until date is before the decision date")
	ErrDecisionOnDeletedItem   = errors.New("cannot decide a deleted repair item")
	ErrGroupNeedsChildren      = errors.New("a repair group needs at least two items")
	ErrNestedGroup             = errors.New("repair groups cannot be nested")
	ErrInvalidStatusTransition = errors.New("invalid health check status transition")
	ErrValueOutOfRange         = errors.New("amount is outside the supported range")
)

// ValidationError identifies the repair item and field a business rule rejected,
// so the UI can highlight the offending row.
type ValidationError struct {
	ItemID     string
	LineItemID string
	Field      string
	Err        error
	Details    string
}

func NewValidationError(itemID, field string, err error, details string) *ValidationError {
	return &ValidationError{ItemID: itemID, Field: field, Err: err, Details: details}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString(ErrValidation.Error())
	}
	var where []string
	if e.Field != "" {
		where = append(where, "field="+e.Field)
	}
	if e.ItemID != "" {
		where = append(where, "item="+e.ItemID)
	}
	if e.LineItemID != "" {
		where = append(where, "line="+e.LineItemID)
	}
	if len(where) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(where, " "))
	}
	if e.Details != "" {
		b.WriteString(": ")
		b.WriteString(e.Details)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}

// IncompleteDecisionError lists the items that still need a customer decision.
type IncompleteDecisionError struct {
	UndecidedItemIDs []string
}

func (e *IncompleteDecisionError) Error() string {
	return fmt.Sprintf("%s: %d item(s) undecided [%s]",
		ErrIncompleteDecision.Error(), len(e.UndecidedItemIDs), strings.Join(e.UndecidedItemIDs, ","))
}

func (e *IncompleteDecisionError) Unwrap() error { return ErrIncompleteDecision }

// NotFoundError reports a reference that is missing from the loaded snapshot.
type NotFoundError struct {
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

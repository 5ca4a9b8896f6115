package entities

import (
	"strings"
	"time"
)

// Decision is what the customer asked for on a single repair item.
type Decision string

const (
	DecisionAuthorise Decision = "authorise"
	DecisionDecline   Decision = "decline"
	DecisionDefer     Decision = "defer"
)

func (d Decision) IsValid() bool {
	switch d {
	case DecisionAuthorise, DecisionDecline, DecisionDefer:
		return true
	}
	return false
}

// Outcome maps a decision onto the persisted item outcome.
func (d Decision) Outcome() OutcomeStatus {
	switch d {
	case DecisionAuthorise:
		return OutcomeAuthorised
	case DecisionDecline:
		return OutcomeDeclined
	case DecisionDefer:
		return OutcomeDeferred
	}
	return OutcomeNone
}

// AuthorizationMethod records how the customer gave their decisions.
type AuthorizationMethod string

const (
	MethodInPerson AuthorizationMethod = "in_person"
	MethodPhone    AuthorizationMethod = "phone"
	MethodEmail    AuthorizationMethod = "email"
	MethodSMS      AuthorizationMethod = "sms"
	MethodOnline   AuthorizationMethod = "online"
)

func (m AuthorizationMethod) IsValid() bool {
	switch m {
	case MethodInPerson, MethodPhone, MethodEmail, MethodSMS, MethodOnline:
		return true
	}
	return false
}

// AuthorizationDecision is the per-item payload of an authorization submission.
type AuthorizationDecision struct {
	RepairItemID     string
	Decision         Decision
	DeclinedReasonID string
	DeclinedNotes    string
	DeferredUntil    *time.Time
	DeferredNotes    string
}

// DeclineReason is a garage-configurable reason shown when a customer declines work.
//
// Storage model (DynamoDB):
//   - PK: id
type DeclineReason struct {
	ID            string    `json:"id"`
	Reason        string    `json:"reason"`
	RequiresNotes bool      `json:"requires_notes"`
	IsSystem      bool      `json:"is_system"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
}

// legacyNotesReason is the system reason whose name alone historically made
// notes mandatory. Rows created before RequiresNotes existed still rely on it.
const legacyNotesReason = "other"

// NotesRequired reports whether declining with this reason needs free-text notes.
func (r DeclineReason) NotesRequired() bool {
	return r.RequiresNotes || (r.IsSystem && strings.EqualFold(strings.TrimSpace(r.Reason), legacyNotesReason))
}

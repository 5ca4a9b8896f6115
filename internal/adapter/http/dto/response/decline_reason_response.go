package response

import "vhc_service/internal/domain/entities"

type DeclineReasonResponse struct {
	ID            string `json:"id"`
	Reason        string `json:"reason"`
	RequiresNotes bool   `json:"requires_notes"`
	IsSystem      bool   `json:"is_system"`
	SortOrder     int    `json:"sort_order"`
}

// FromDeclineReason reports requires_notes as the effective rule, so legacy
// rows that rely on the reason name are flagged too.
func FromDeclineReason(r entities.DeclineReason) DeclineReasonResponse {
	return DeclineReasonResponse{
		ID:            r.ID,
		Reason:        r.Reason,
		RequiresNotes: r.NotesRequired(),
		IsSystem:      r.IsSystem,
		SortOrder:     r.SortOrder,
	}
}

func FromDeclineReasons(list []entities.DeclineReason) []DeclineReasonResponse {
	out := make([]DeclineReasonResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDeclineReason(r))
	}
	return out
}

package request

type CreateDeclineReasonRequest struct {
	Reason        string `json:"reason" binding:"required"`
	RequiresNotes bool   `json:"requires_notes"`
	SortOrder     int    `json:"sort_order"`
}

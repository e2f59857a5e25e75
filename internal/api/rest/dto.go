package rest

import (
	"github.com/raffleworks/raffle-coordinator/internal/store/schema"
)

// DrawRequest is the body of POST /api/v1/draws
type DrawRequest struct {
	SourceURL     string `json:"source_url" binding:"required"`
	TotalSlots    *int   `json:"total_slots,omitempty"`
	WinnerCount   int    `json:"winner_count"`
	RequesterName string `json:"requester_name,omitempty"`
	// ReRoll requests a redraw of an already-called raffle; operators only
	ReRoll bool `json:"re_roll,omitempty"`
}

// DrawAccepted is the 202 response for an admitted draw request
type DrawAccepted struct {
	// Position is the request's 1-based place in the draw queue
	Position    int `json:"position"`
	QueueLength int `json:"queue_length"`
}

// QueueStatus is the response of GET /api/v1/queue
type QueueStatus struct {
	Length int `json:"length"`
}

// VerificationResponse is one persisted verification record
type VerificationResponse struct {
	ID             string `json:"id"`
	Verification   string `json:"verification"`
	Signature      string `json:"signature"`
	WinnerNumbers  []int  `json:"winner_numbers"`
	CompletionTime string `json:"completion_time"`
	TotalSlots     int    `json:"total_slots"`
	RequesterName  string `json:"requester_name,omitempty"`
}

// LinkRequest is the body of POST /api/v1/links
type LinkRequest struct {
	ExternalID  string `json:"external_id" binding:"required"`
	CommunityID string `json:"community_id" binding:"required"`
}

// LinkResponse reports a stored identity link and the announcements the
// change re-rendered
type LinkResponse struct {
	ExternalID           string `json:"external_id"`
	CommunityID          string `json:"community_id"`
	UpdatedAnnouncements int    `json:"updated_announcements"`
}

// LinkList is the response of GET /api/v1/links
type LinkList struct {
	Links []schema.IdentityLink `json:"links"`
}

// ReverseLinkList is the response of GET /api/v1/links?community_id=...
type ReverseLinkList struct {
	CommunityID string   `json:"community_id"`
	ExternalIDs []string `json:"external_ids"`
}

// WipeResponse reports how many entries an admin wipe removed
type WipeResponse struct {
	Removed int64 `json:"removed"`
}

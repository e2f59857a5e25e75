package domain

// ResultDetail carries the structured data a renderer needs to build the
// rich public announcement.
type ResultDetail struct {
	Title          string          `json:"title"`
	TotalSlots     int             `json:"total_slots"`
	Numbers        []int           `json:"numbers"`
	Host           string          `json:"host,omitempty"`
	HostURL        string          `json:"host_url,omitempty"`
	Permalink      string          `json:"permalink,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	CalledBy       string          `json:"called_by"`
	CompletionTime string          `json:"completion_time"`
	WinnerLines    []string        `json:"winner_lines,omitempty"`
	Usage          CredentialUsage `json:"usage"`
}

// PublicAnnouncement is the public draw result. ResultID keys the durable
// verification record for this exact message.
type PublicAnnouncement struct {
	ResultID string       `json:"result_id"`
	Content  string       `json:"content"`
	Detail   ResultDetail `json:"detail"`
}

// CommunityAnnouncement is the secondary-audience result with upgradeable
// mentions.
type CommunityAnnouncement struct {
	MessageID   string   `json:"message_id"`
	Content     string   `json:"content"`
	Tag         string   `json:"tag,omitempty"`
	Permalink   string   `json:"permalink,omitempty"`
	WinnerLines []string `json:"winner_lines"`
	ResultID    string   `json:"result_id"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// RequesterConfirmation is the private summary sent back to the requester.
type RequesterConfirmation struct {
	Requester string       `json:"requester"`
	ResultID  string       `json:"result_id"`
	Detail    ResultDetail `json:"detail"`
}

// OperatorNotice is a private diagnostic routed to the operator channel.
// Numbers is populated when a draw had already completed, so a human can
// finish or reverse the transaction by hand.
type OperatorNotice struct {
	Requester   string `json:"requester"`
	SourceURL   string `json:"source_url"`
	TotalSlots  int    `json:"total_slots,omitempty"`
	WinnerCount int    `json:"winner_count,omitempty"`
	Reason      string `json:"reason"`
	Numbers     []int  `json:"numbers,omitempty"`
}

// AnnouncementEdit replaces the content of a previously published
// community announcement.
type AnnouncementEdit struct {
	MessageID string `json:"message_id"`
	Content   string `json:"content"`
}

// RollHistorySummary is the per-day tally of drawn numbers.
type RollHistorySummary struct {
	Day    string      `json:"day"`
	Counts []RollCount `json:"counts"`
}

// RollCount is one drawn number and how many times it came up today.
type RollCount struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

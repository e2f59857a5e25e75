package domain

// RaffleRequest is one admitted draw request. It is immutable once it enters
// the pipeline.
type RaffleRequest struct {
	// SourceURL is the raffle post URL as submitted by the requester
	SourceURL string `json:"source_url"`
	// TotalSlots is the requested slot count; nil until resolved from the post title
	TotalSlots *int `json:"total_slots,omitempty"`
	// WinnerCount is the number of winners to draw
	WinnerCount int `json:"winner_count"`
	// Requester identifies who submitted the request
	Requester string `json:"requester"`
	// RequesterName is the requester's display name
	RequesterName string `json:"requester_name"`
	// Operator marks a request made with operator privilege (re-roll bypass)
	Operator bool `json:"operator"`
}

// ParticipantAssignment maps slot numbers to participant identities.
// Slot numbers are unique; one identity may hold many slots.
type ParticipantAssignment map[int]string

// SpotTally maps a participant identity to the number of slots it holds.
type SpotTally map[string]int

// Tally derives the identity frequency count from an assignment map.
func (a ParticipantAssignment) Tally() SpotTally {
	tally := make(SpotTally, len(a))
	for _, identity := range a {
		tally[identity]++
	}
	return tally
}

// PostMetadata describes the resolved raffle post.
type PostMetadata struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	AuthorURL string `json:"author_url"`
	Permalink string `json:"url"`
	ImageURL  string `json:"image_url,omitempty"`
	Subreddit string `json:"subreddit,omitempty"`
}

// Resolution is the full output of resolving one raffle post.
type Resolution struct {
	Post        PostMetadata
	Assignments ParticipantAssignment
	Tally       SpotTally
}

// DrawResult is the provider-issued outcome of one draw. Verification and
// Signature are persisted verbatim; re-serializing Verification must yield
// the exact bytes the provider signed over.
type DrawResult struct {
	// Numbers are the winning slot numbers in provider order
	Numbers []int
	// Verification is the serialized random object from the provider
	Verification []byte
	// Signature is the provider's signature over Verification
	Signature string
	// CompletionTime is the provider's completion timestamp, kept as issued
	CompletionTime string
}

// CredentialUsage reports advisory usage of the randomness credentials.
type CredentialUsage struct {
	Requests    int `json:"requests"`
	LimitPerKey int `json:"limit_per_key"`
}

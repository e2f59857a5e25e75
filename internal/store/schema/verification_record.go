package schema

import (
	"time"

	"gorm.io/datatypes"
)

// VerificationRecord stores the provable outcome of a draw, keyed by the
// published-result identifier minted at announcement time
type VerificationRecord struct {
	// ID is the ULID minted for the published result
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Verification holds the exact signed bytes returned by the randomness
	// provider. Stored as text so the bytes survive round trips unchanged;
	// jsonb would re-normalize them and break signature verification.
	Verification string `gorm:"column:verification;not null;type:text"`
	// Signature is the provider's base64 signature over Verification
	Signature string `gorm:"column:signature;not null;type:text"`
	// WinnerNumbers are the drawn numbers in provider order
	WinnerNumbers datatypes.JSON `gorm:"column:winner_numbers;not null;type:jsonb"`
	// PostMetadata is the canonicalized source-post metadata
	PostMetadata datatypes.JSON `gorm:"column:post_metadata;type:jsonb"`
	// CompletionTime is the provider's completion timestamp, kept verbatim
	CompletionTime string `gorm:"column:completion_time;not null;type:text"`
	// TotalSlots is the requested slot total the draw ran against
	TotalSlots int `gorm:"column:total_slots;not null"`
	// RequesterName is the display name of whoever requested the draw
	RequesterName string `gorm:"column:requester_name;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the VerificationRecord model
func (VerificationRecord) TableName() string {
	return "verification_records"
}

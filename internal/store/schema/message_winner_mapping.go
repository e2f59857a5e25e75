package schema

import (
	"time"

	"gorm.io/datatypes"
)

// MessageWinnerMapping records which external identities won in a published
// announcement so later identity links can upgrade the mentions in place
type MessageWinnerMapping struct {
	// MessageID is the published announcement's message identifier
	MessageID string `gorm:"column:message_id;primaryKey;type:text"`
	// Subject is the channel or subject the announcement was published on
	Subject string `gorm:"column:subject;not null;type:text"`
	// Identities is the ordered jsonb array of winning external identities
	Identities datatypes.JSON `gorm:"column:identities;not null;type:jsonb"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the MessageWinnerMapping model
func (MessageWinnerMapping) TableName() string {
	return "message_winners"
}

package schema

import (
	"time"
)

// IdentityLink maps an external identity (e.g. a reddit username) to a
// community identity used for mentions in announcements
type IdentityLink struct {
	// ExternalID is the lower-cased external identity
	ExternalID string `gorm:"column:external_id;primaryKey;type:text"`
	// CommunityID is the linked community identity
	CommunityID string `gorm:"column:community_id;not null;type:text;index:idx_identity_links_community_id"`
	// LinkedBy records the operator who created the link
	LinkedBy string    `gorm:"column:linked_by;type:text"`
	LinkedAt time.Time `gorm:"column:linked_at;autoCreateTime"`
}

// TableName specifies the table name for the IdentityLink model
func (IdentityLink) TableName() string {
	return "identity_links"
}

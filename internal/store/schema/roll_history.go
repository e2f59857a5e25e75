package schema

// RollHistory tallies how often each slot number has been drawn on a given day
type RollHistory struct {
	// Day is the day key in the configured display timezone, YYYY-MM-DD
	Day string `gorm:"column:day;primaryKey;type:text"`
	// Slot is the drawn slot number
	Slot int `gorm:"column:slot;primaryKey"`
	// Count is how many times the slot was drawn that day
	Count int `gorm:"column:count;not null;default:0"`
}

// TableName specifies the table name for the RollHistory model
func (RollHistory) TableName() string {
	return "roll_history"
}

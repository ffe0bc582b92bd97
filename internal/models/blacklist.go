package models

import "time"

// Blacklist represents the blacklist table
// A row is created in the same transaction that deactivates the referenced user.
type Blacklist struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	Reason        string    `gorm:"type:text" json:"reason,omitempty"`
	BlacklistedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"blacklisted_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Blacklist model
func (Blacklist) TableName() string {
	return "blacklist"
}

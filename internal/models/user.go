package models

import "time"

// User represents the users table
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Username      string     `gorm:"size:100" json:"username"`
	PasswordHash  string     `gorm:"not null;size:255" json:"-"`
	FullName      string     `gorm:"not null;size:255" json:"full_name"`
	Email         string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Phone         string     `gorm:"size:20" json:"phone,omitempty"`
	DOB           *time.Time `gorm:"column:dob" json:"dob,omitempty"`
	Gender        string     `gorm:"size:10" json:"gender,omitempty"`
	Role          Role       `gorm:"size:20;not null;index" json:"role"`
	CreatedAt     time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	IsBlacklisted bool       `gorm:"default:false" json:"is_blacklisted"`

	// Relationships
	Doctor  *Doctor  `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
	Patient *Patient `gorm:"foreignKey:UserID" json:"patient,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

package model

import (
	"time"
)

// SessionModel mirrors the 'sessions' table used by the database session strategy.
// The client-held token itself is never stored, only its SHA-256.
type SessionModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	UserID    string    `gorm:"type:varchar(36);index;not null"`
	Username  string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(255)"`
	Verified  bool      `gorm:"not null;default:false"`
	Provider  string    `gorm:"type:varchar(32);not null"`
	IssuedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null;size:80" json:"username"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	APIKeys      []APIKey  `gorm:"foreignKey:UserID" json:"-"`
	Articles     []Article `gorm:"foreignKey:UserID" json:"-"`
}

// APIKey is an opaque bearer token presented alongside the username on every
// protected call. A user may hold several live keys at once; issuing a new
// one never invalidates the old ones.
type APIKey struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"not null;index;size:64" json:"key"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

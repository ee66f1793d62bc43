package models

import (
	"time"
)

// Article is a stored bookmark. Every operation on it is scoped to its
// owner; other users cannot see that the row exists.
type Article struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Title    string    `gorm:"size:255" json:"title"`
	URL      string    `gorm:"not null;type:text" json:"url"`
	Added    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"added"`
	Read     bool      `gorm:"default:false" json:"read"`
	Favorite bool      `gorm:"default:false" json:"favorite"`
	UserID   uint      `gorm:"not null;index" json:"-"`
	User     *User     `gorm:"foreignKey:UserID" json:"-"`
}

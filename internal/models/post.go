package models

import (
	"time"
)

// Post is a blog entry. UserID is the owner, set at creation and never
// reassigned. Likes defaults to zero and is never negative.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"postId"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

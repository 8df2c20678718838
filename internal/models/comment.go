package models

import (
	"time"
)

// Comment is attached to a post by its PostID. The reference is recorded at
// creation and never revalidated afterwards: listing comments for an unknown
// post yields an empty set, not an error.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"commentId"`
	PostID    uint      `gorm:"not null;index" json:"postId"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

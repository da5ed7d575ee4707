package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Item struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string    `gorm:"size:128;index" json:"ownerId"`
	Title     string    `gorm:"not null" json:"title"`
	URL       string    `json:"url"` // Optional
	Text      string    `gorm:"type:text" json:"text"`
	VoteCount int       `gorm:"not null;default:0" json:"voteCount"`
	CreatedAt time.Time `gorm:"index" json:"timestamp"`
}

// VoteCount is derived state: it is written only by item creation (seeding
// the owner's +1) and by the vote transaction, never by plain updates.

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

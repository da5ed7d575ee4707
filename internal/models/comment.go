package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID       string  `gorm:"primaryKey;size:36" json:"id"`
	ItemID   string  `gorm:"size:36;not null;index" json:"itemId"`
	ParentID *string `gorm:"size:36;index" json:"parentId,omitempty"` // Nullable for top-level comments
	Text     string  `gorm:"type:text;not null" json:"text"`
	OwnerID  string  `gorm:"size:128;not null" json:"ownerId"`
	Username string  `gorm:"size:64;not null" json:"username"`
	// Comments are immutable once created; no UpdatedAt.
	CreatedAt time.Time `gorm:"index" json:"timestamp"`
}

// ParentID deliberately carries no foreign key: a reply may address a parent
// that was never created, and stays reachable only by listing that parent.

func (cm *Comment) BeforeCreate(tx *gorm.DB) error {
	if cm.ID == "" {
		cm.ID = uuid.NewString()
	}
	return nil
}

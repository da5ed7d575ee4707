package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Credential backs the bearer-token verifier. Only the sha256 digest of a
// token is stored; mint tokens with cmd/mktoken.
type Credential struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TokenHash string    `gorm:"uniqueIndex;size:64;not null" json:"-"`
	UID       string    `gorm:"size:128;not null" json:"uid"`
	Email     string    `gorm:"size:255" json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (cr *Credential) BeforeCreate(tx *gorm.DB) error {
	if cr.ID == "" {
		cr.ID = uuid.NewString()
	}
	return nil
}

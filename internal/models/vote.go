package models

import (
	"time"
)

// Vote is a single user's directional preference on an item. Direction is
// +1 or -1; "no vote" is the absence of the row, so direction 0 is never
// stored. The composite primary key enforces at most one row per
// (item, user) at the schema level.
type Vote struct {
	ItemID    string    `gorm:"primaryKey;size:36" json:"itemId"`
	UserID    string    `gorm:"primaryKey;size:128" json:"userId"`
	Direction int       `gorm:"not null" json:"direction"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

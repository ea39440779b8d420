package models

import (
	"time"
)

// Vote records a single upvote. The composite unique index makes the store
// enforce one vote per (user, product) pair, so concurrent duplicate attempts
// resolve to exactly one inserted row.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_votes_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_votes_user_product" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

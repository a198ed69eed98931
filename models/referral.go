package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReferralStatusPending   = "pending"
	ReferralStatusCompleted = "completed"
)

// ReferralCode is issued lazily, at most one per user, and never regenerated.
type ReferralCode struct {
	gorm.Model

	UserID uint   `gorm:"uniqueIndex" json:"user_id"`
	Code   string `gorm:"uniqueIndex;size:8" json:"code"`
}

// Referral links a referrer to the user they brought in. The unique index on
// referred_id is what guarantees a user can only ever be referred once, even
// when two redemptions race.
type Referral struct {
	gorm.Model

	ReferrerID  uint       `gorm:"index" json:"referrer_id"`
	ReferredID  uint       `gorm:"uniqueIndex" json:"referred_id"`
	CodeUsed    string     `gorm:"size:8" json:"code_used"`
	Status      string     `gorm:"size:16;default:pending" json:"status"`
	RewardCoins int64      `json:"reward_coins"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

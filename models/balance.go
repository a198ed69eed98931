package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

// Transaction type tags. Admin types are role-gated in the ledger service.
const (
	TrxAdminAdd       = "admin_add"
	TrxAdminRemove    = "admin_remove"
	TrxPurchase       = "purchase"
	TrxReferralReward = "referral_reward"
	TrxGameDebit      = "game_debit"
	TrxGameCredit     = "game_credit"
)

type Balance struct {
	gorm.Model

	UserID uint   `gorm:"uniqueIndex" json:"user_id"`
	Email  string `gorm:"size:128" json:"email"`
	Role   string `gorm:"size:16;default:user" json:"role"`
	Coins  int64  `json:"coins"`

	Transactions []Transaction `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

// Transaction is append-only: rows are never updated or deleted on their own,
// only cascaded away with the owning balance.
type Transaction struct {
	gorm.Model

	UserID        uint           `gorm:"index"`
	TrxType       string         `gorm:"size:16;index"`
	Amount        int64          `json:"amount"`
	BalanceBefore int64          `json:"balance_before"`
	BalanceAfter  int64          `json:"balance_after"`
	Note          string         `gorm:"size:255"`
	ActorID       *uint          `gorm:"index"`
	RefID         string         `gorm:"size:64;uniqueIndex"`
	Meta          datatypes.JSON `json:"meta,omitempty"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DemoUser lives in its own namespace: demo balances and bets never reference
// real balances or the real transaction log.
type DemoUser struct {
	gorm.Model

	Name        string     `gorm:"size:64" json:"name"`
	Email       string     `gorm:"uniqueIndex;size:128" json:"email"`
	Coins       int64      `gorm:"default:1000" json:"coins"`
	Role        string     `gorm:"size:16;default:demo" json:"role"`
	LastResetAt *time.Time `json:"last_reset_at,omitempty"`

	Bets []DemoBet `gorm:"foreignKey:DemoUserID"`
}

type DemoBet struct {
	gorm.Model

	DemoUserID uint           `gorm:"index"`
	GameID     string         `gorm:"size:64;index"`
	Amount     int64          `json:"amount"`
	Status     string         `gorm:"size:16;default:pending" json:"status"`
	Payload    datatypes.JSON `json:"payload,omitempty"`
}

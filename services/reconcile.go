package services

import (
	"coincore/models"

	"gorm.io/gorm"
)

// BalanceDrift reports a balance row whose coins no longer equal the sum of
// its transaction entries. Any drift means the atomic-commit guarantee was
// violated somewhere and needs operator attention.
type BalanceDrift struct {
	UserID uint  `json:"user_id"`
	Coins  int64 `json:"coins"`
	Sum    int64 `json:"sum"`
}

// Reconcile sweeps every balance against its transaction log. Read-only.
func Reconcile(db *gorm.DB) ([]BalanceDrift, error) {
	var drifts []BalanceDrift
	err := db.Model(&models.Balance{}).
		Select("balances.user_id AS user_id, balances.coins AS coins, COALESCE(SUM(transactions.amount), 0) AS sum").
		Joins("LEFT JOIN transactions ON transactions.user_id = balances.user_id AND transactions.deleted_at IS NULL").
		Where("balances.deleted_at IS NULL").
		Group("balances.user_id, balances.coins").
		Having("balances.coins != COALESCE(SUM(transactions.amount), 0)").
		Scan(&drifts).Error
	if err != nil {
		return nil, ErrStorageFault
	}
	return drifts, nil
}

package services

import (
	"errors"
	"strings"
	"time"

	"coincore/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DemoDefaultCoins is the balance every demo account starts with and is reset
// back to.
const DemoDefaultCoins int64 = 1000

// RegisterDemoAccount creates a trial account in the demo namespace, seeded
// with the default coin balance.
func RegisterDemoAccount(db *gorm.DB, name, email string) (*models.DemoUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, ErrInvalidInput
	}

	user := models.DemoUser{
		Name:  name,
		Email: email,
		Coins: DemoDefaultCoins,
		Role:  "demo",
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrInvalidInput
		}
		return nil, ErrStorageFault
	}
	return &user, nil
}

// GetDemoAccount returns the demo user with their recent bets.
func GetDemoAccount(db *gorm.DB, demoUserID uint) (*models.DemoUser, error) {
	var user models.DemoUser
	err := db.Preload("Bets", func(db *gorm.DB) *gorm.DB {
		return db.Order("id DESC").Limit(20)
	}).First(&user, demoUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrStorageFault
	}
	return &user, nil
}

// ResetDemoAccount puts the demo balance back to the default. Idempotent; demo
// history is best-effort and is not reconciled against the reset.
func ResetDemoAccount(db *gorm.DB, demoUserID uint) (*models.DemoUser, error) {
	now := time.Now()
	res := db.Model(&models.DemoUser{}).
		Where("id = ?", demoUserID).
		Updates(map[string]any{
			"coins":         DemoDefaultCoins,
			"last_reset_at": now,
		})
	if res.Error != nil {
		return nil, ErrStorageFault
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	var user models.DemoUser
	if err := db.First(&user, demoUserID).Error; err != nil {
		return nil, ErrStorageFault
	}
	return &user, nil
}

// PlaceDemoBet debits the demo balance and records a pending bet in one
// transaction. Demo bets never touch the real ledger.
func PlaceDemoBet(db *gorm.DB, demoUserID uint, gameID string, amount int64, payload datatypes.JSON) (*models.DemoBet, *models.DemoUser, error) {
	if amount <= 0 || gameID == "" {
		return nil, nil, ErrInvalidInput
	}

	var bet models.DemoBet
	var user models.DemoUser
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, demoUserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if user.Coins < amount {
			return ErrInsufficientBalance
		}

		user.Coins -= amount
		if err := tx.Model(&user).Update("coins", user.Coins).Error; err != nil {
			return err
		}

		bet = models.DemoBet{
			DemoUserID: demoUserID,
			GameID:     gameID,
			Amount:     amount,
			Status:     "pending",
			Payload:    payload,
		}
		return tx.Create(&bet).Error
	})
	if err != nil {
		if isBusinessError(err) {
			return nil, nil, err
		}
		return nil, nil, ErrStorageFault
	}
	return &bet, &user, nil
}

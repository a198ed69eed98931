package services

import (
	"errors"

	"coincore/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var validTrxTypes = map[string]bool{
	models.TrxAdminAdd:       true,
	models.TrxAdminRemove:    true,
	models.TrxPurchase:       true,
	models.TrxReferralReward: true,
	models.TrxGameDebit:      true,
	models.TrxGameCredit:     true,
}

var adminTrxTypes = map[string]bool{
	models.TrxAdminAdd:    true,
	models.TrxAdminRemove: true,
}

// Credit adds coins to a user's balance, creating the balance row if it does
// not exist yet. Exactly one transaction entry is appended in the same
// database transaction as the balance update.
func Credit(db *gorm.DB, userID uint, amount int64, trxType, note string, actor models.Actor) (*models.Balance, error) {
	if amount <= 0 {
		return nil, ErrInvalidInput
	}
	return apply(db, userID, amount, trxType, note, "", nil, actor)
}

// CreditWithRef is Credit with a caller-supplied idempotency reference: a
// second call with the same ref returns the current balance without mutating
// anything.
func CreditWithRef(db *gorm.DB, userID uint, amount int64, trxType, note, refID string, meta datatypes.JSON, actor models.Actor) (*models.Balance, error) {
	if amount <= 0 || refID == "" {
		return nil, ErrInvalidInput
	}
	return apply(db, userID, amount, trxType, note, refID, meta, actor)
}

// Debit removes coins from a user's balance. A debit that would take the
// balance below zero is rejected with ErrInsufficientBalance and leaves no
// trace in the transaction log.
func Debit(db *gorm.DB, userID uint, amount int64, trxType, note string, actor models.Actor) (*models.Balance, error) {
	if amount <= 0 {
		return nil, ErrInvalidInput
	}
	return apply(db, userID, -amount, trxType, note, "", nil, actor)
}

func DebitWithRef(db *gorm.DB, userID uint, amount int64, trxType, note, refID string, meta datatypes.JSON, actor models.Actor) (*models.Balance, error) {
	if amount <= 0 || refID == "" {
		return nil, ErrInvalidInput
	}
	return apply(db, userID, -amount, trxType, note, refID, meta, actor)
}

// GetBalance returns the balance row together with its most recent entries.
func GetBalance(db *gorm.DB, userID uint, recent int) (*models.Balance, []models.Transaction, error) {
	var bal models.Balance
	if err := db.Where("user_id = ?", userID).First(&bal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrBalanceNotFound
		}
		return nil, nil, ErrStorageFault
	}

	var trxs []models.Transaction
	if recent > 0 {
		if err := db.Where("user_id = ?", userID).
			Order("id DESC").Limit(recent).Find(&trxs).Error; err != nil {
			return nil, nil, ErrStorageFault
		}
	}
	return &bal, trxs, nil
}

func apply(db *gorm.DB, userID uint, delta int64, trxType, note, refID string, meta datatypes.JSON, actor models.Actor) (*models.Balance, error) {
	if delta == 0 {
		return nil, ErrInvalidInput
	}
	if !validTrxTypes[trxType] {
		return nil, ErrInvalidInput
	}
	if adminTrxTypes[trxType] && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if refID == "" {
		refID = uuid.New().String()
	} else {
		// Idempotent replay: the reference was already applied once.
		var existing models.Transaction
		if err := db.Where("ref_id = ?", refID).First(&existing).Error; err == nil {
			var bal models.Balance
			if err := db.Where("user_id = ?", existing.UserID).First(&bal).Error; err != nil {
				return nil, ErrStorageFault
			}
			return &bal, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStorageFault
		}
	}

	var bal *models.Balance

	// Two attempts: a concurrent lazy-create of the same balance row loses the
	// user_id unique index race and succeeds on the retry, now locking the
	// winner's row.
	for attempt := 0; attempt < 2; attempt++ {
		var applyErr error
		err := db.Transaction(func(tx *gorm.DB) error {
			bal, applyErr = applyTx(tx, userID, delta, trxType, note, refID, meta, actor)
			if applyErr != nil {
				return applyErr
			}
			return nil
		})
		if err == nil {
			return bal, nil
		}
		if isBusinessError(err) {
			return nil, err
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Ref replay racing with itself commits exactly once.
			var existing models.Transaction
			if lookupErr := db.Where("ref_id = ?", refID).First(&existing).Error; lookupErr == nil {
				var cur models.Balance
				if lookupErr = db.Where("user_id = ?", existing.UserID).First(&cur).Error; lookupErr == nil {
					return &cur, nil
				}
				return nil, ErrStorageFault
			}
			continue
		}
		return nil, ErrStorageFault
	}
	return nil, ErrStorageFault
}

// applyTx runs the balance mutation inside an existing transaction so other
// units of work (referral redemption) can compose with it atomically.
func applyTx(tx *gorm.DB, userID uint, delta int64, trxType, note, refID string, meta datatypes.JSON, actor models.Actor) (*models.Balance, error) {
	var bal models.Balance
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).First(&bal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if delta < 0 {
			return nil, ErrBalanceNotFound
		}
		bal = models.Balance{UserID: userID, Role: models.RoleUser, Coins: 0}
		if err := tx.Create(&bal).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	before := bal.Coins
	after := before + delta
	if after < 0 {
		return nil, ErrInsufficientBalance
	}

	if err := tx.Model(&bal).Update("coins", after).Error; err != nil {
		return nil, err
	}
	bal.Coins = after

	entry := models.Transaction{
		UserID:        userID,
		TrxType:       trxType,
		Amount:        delta,
		BalanceBefore: before,
		BalanceAfter:  after,
		Note:          note,
		RefID:         refID,
		Meta:          meta,
	}
	if adminTrxTypes[trxType] {
		actorID := actor.UserID
		entry.ActorID = &actorID
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}

	return &bal, nil
}

func isBusinessError(err error) bool {
	for _, candidate := range []error{
		ErrInvalidInput, ErrForbidden, ErrUserNotFound, ErrBalanceNotFound,
		ErrInsufficientBalance, ErrInvalidReferralCode, ErrSelfReferral,
		ErrAlreadyReferred, ErrCodeGenerationExhausted,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}

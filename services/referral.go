package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"coincore/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// ReferralRewardCoins is credited to the referrer on every successful
	// redemption. Payout is immediate; there is no first-deposit gate.
	ReferralRewardCoins int64 = 500

	CodeLength       = 8
	codePrefixLength = 4
	maxCodeAttempts  = 50
)

// GetOrCreateCode returns the user's referral code, issuing one on first
// request. Codes are derived from the user's email prefix plus random
// characters and are never regenerated once issued.
func GetOrCreateCode(db *gorm.DB, userID uint) (*models.ReferralCode, error) {
	var code models.ReferralCode
	err := db.Where("user_id = ?", userID).First(&code).Error
	if err == nil {
		return &code, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStorageFault
	}

	var bal models.Balance
	if err := db.Where("user_id = ?", userID).First(&bal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrStorageFault
	}

	prefix := codePrefix(bal.Email, codePrefixLength)

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		candidate := prefix + randomCodeChars(CodeLength-codePrefixLength)

		var count int64
		if err := db.Model(&models.ReferralCode{}).
			Where("code = ?", candidate).Count(&count).Error; err != nil {
			return nil, ErrStorageFault
		}
		if count > 0 {
			continue
		}

		code = models.ReferralCode{UserID: userID, Code: candidate}
		err := db.Create(&code).Error
		if err == nil {
			return &code, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Either a concurrent request issued this user's code already, or
			// the candidate collided at commit time.
			if db.Where("user_id = ?", userID).First(&code).Error == nil {
				return &code, nil
			}
			continue
		}
		return nil, ErrStorageFault
	}

	log.Printf("[REFERRAL] ❌ Code generation exhausted after %d attempts for user %d", maxCodeAttempts, userID)
	return nil, ErrCodeGenerationExhausted
}

// RedeemCode redeems a referral code on behalf of redeemerID. The relationship
// insert and the referrer's reward credit commit together or not at all; the
// unique index on referred_id turns a concurrent double redeem into
// ErrAlreadyReferred for the loser.
func RedeemCode(db *gorm.DB, redeemerID uint, rawCode string) (*models.Referral, error) {
	code := strings.ToUpper(strings.TrimSpace(rawCode))
	if code == "" {
		return nil, ErrInvalidInput
	}

	// Two attempts: a duplicate-key rollback can come from the referrer's lazy
	// balance create racing another redemption of the same code, not only from
	// the referred_id index. In that case the balance row exists on the retry
	// and the redemption goes through.
	for attempt := 0; attempt < 2; attempt++ {
		referral, err := redeemOnce(db, redeemerID, code)
		if err == nil {
			log.Printf("[REFERRAL] ✅ User %d redeemed code %s, referrer %d rewarded %d coins",
				redeemerID, code, referral.ReferrerID, ReferralRewardCoins)
			return referral, nil
		}
		if isBusinessError(err) {
			return nil, err
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Referral
			if db.Where("referred_id = ?", redeemerID).First(&existing).Error == nil {
				return nil, ErrAlreadyReferred
			}
			continue
		}
		return nil, ErrStorageFault
	}
	return nil, ErrStorageFault
}

func redeemOnce(db *gorm.DB, redeemerID uint, code string) (*models.Referral, error) {
	var referral *models.Referral
	err := db.Transaction(func(tx *gorm.DB) error {
		var rc models.ReferralCode
		if err := tx.Where("code = ?", code).First(&rc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidReferralCode
			}
			return err
		}

		if rc.UserID == redeemerID {
			return ErrSelfReferral
		}

		var existing models.Referral
		err := tx.Where("referred_id = ?", redeemerID).First(&existing).Error
		if err == nil {
			return ErrAlreadyReferred
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()
		rel := models.Referral{
			ReferrerID:  rc.UserID,
			ReferredID:  redeemerID,
			CodeUsed:    code,
			Status:      models.ReferralStatusCompleted,
			RewardCoins: ReferralRewardCoins,
			CompletedAt: &now,
		}
		if err := tx.Create(&rel).Error; err != nil {
			return err
		}

		note := fmt.Sprintf("Referral reward for inviting user %d", redeemerID)
		if _, err := applyTx(tx, rc.UserID, ReferralRewardCoins, models.TrxReferralReward,
			note, uuid.New().String(), nil, models.Actor{}); err != nil {
			return err
		}

		referral = &rel
		return nil
	})
	return referral, err
}

type ReferralStats struct {
	TotalReferrals int64 `json:"total_referrals"`
	RewardedCoins  int64 `json:"rewarded_coins"`
}

// GetReferralStats summarizes a referrer's completed redemptions.
func GetReferralStats(db *gorm.DB, referrerID uint) (*ReferralStats, error) {
	var stats ReferralStats
	err := db.Model(&models.Referral{}).
		Select("COUNT(*) AS total_referrals, COALESCE(SUM(reward_coins), 0) AS rewarded_coins").
		Where("referrer_id = ?", referrerID).
		Scan(&stats).Error
	if err != nil {
		return nil, ErrStorageFault
	}
	return &stats, nil
}

package services

import "errors"

// Business-rule rejections are final: callers surface them and do not retry.
// Only ErrStorageFault is safe to retry, because a failed commit leaves no
// partial state behind.
var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrForbidden               = errors.New("forbidden")
	ErrUserNotFound            = errors.New("user not found")
	ErrBalanceNotFound         = errors.New("balance not found")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInvalidReferralCode     = errors.New("invalid referral code")
	ErrSelfReferral            = errors.New("self referral not allowed")
	ErrAlreadyReferred         = errors.New("already referred")
	ErrCodeGenerationExhausted = errors.New("referral code generation exhausted")
	ErrStorageFault            = errors.New("storage fault")
)

package services_test

import (
	"errors"
	"fmt"
	"testing"

	"coincore/models"
	"coincore/services"
)

func TestDemoResetIdempotent(t *testing.T) {
	db := setupTestDB(t)

	user, err := services.RegisterDemoAccount(db, "Trial", fmt.Sprintf("demo%d@example.com", nextUserID()))
	if err != nil {
		t.Fatalf("RegisterDemoAccount failed: %v", err)
	}
	if user.Coins != services.DemoDefaultCoins {
		t.Errorf("Expected starting balance %d, got %d", services.DemoDefaultCoins, user.Coins)
	}

	if _, _, err := services.PlaceDemoBet(db, user.ID, "crash", 300, nil); err != nil {
		t.Fatalf("PlaceDemoBet failed: %v", err)
	}

	first, err := services.ResetDemoAccount(db, user.ID)
	if err != nil {
		t.Fatalf("First reset failed: %v", err)
	}
	second, err := services.ResetDemoAccount(db, user.ID)
	if err != nil {
		t.Fatalf("Second reset failed: %v", err)
	}
	if first.Coins != services.DemoDefaultCoins || second.Coins != services.DemoDefaultCoins {
		t.Errorf("Expected %d after both resets, got %d then %d",
			services.DemoDefaultCoins, first.Coins, second.Coins)
	}
	if second.LastResetAt == nil {
		t.Error("Reset did not stamp last_reset_at")
	}
}

func TestDemoResetUnknownUser(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.ResetDemoAccount(db, 0)
	if !errors.Is(err, services.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestDemoBetDebitsAndRecordsPending(t *testing.T) {
	db := setupTestDB(t)

	user, err := services.RegisterDemoAccount(db, "Trial", fmt.Sprintf("demo%d@example.com", nextUserID()))
	if err != nil {
		t.Fatalf("RegisterDemoAccount failed: %v", err)
	}

	bet, updated, err := services.PlaceDemoBet(db, user.ID, "roulette", 250, nil)
	if err != nil {
		t.Fatalf("PlaceDemoBet failed: %v", err)
	}
	if bet.Status != "pending" {
		t.Errorf("Expected pending bet, got %s", bet.Status)
	}
	if updated.Coins != services.DemoDefaultCoins-250 {
		t.Errorf("Expected balance %d, got %d", services.DemoDefaultCoins-250, updated.Coins)
	}
}

func TestDemoBetInsufficientBalance(t *testing.T) {
	db := setupTestDB(t)

	user, err := services.RegisterDemoAccount(db, "Trial", fmt.Sprintf("demo%d@example.com", nextUserID()))
	if err != nil {
		t.Fatalf("RegisterDemoAccount failed: %v", err)
	}

	_, _, err = services.PlaceDemoBet(db, user.ID, "crash", services.DemoDefaultCoins+1, nil)
	if !errors.Is(err, services.ErrInsufficientBalance) {
		t.Fatalf("Expected ErrInsufficientBalance, got %v", err)
	}

	var reloaded models.DemoUser
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("Failed to reload demo user: %v", err)
	}
	if reloaded.Coins != services.DemoDefaultCoins {
		t.Errorf("Balance changed on rejected bet: %d", reloaded.Coins)
	}

	var betCount int64
	db.Model(&models.DemoBet{}).Where("demo_user_id = ?", user.ID).Count(&betCount)
	if betCount != 0 {
		t.Errorf("Rejected bet recorded %d rows", betCount)
	}
}

func TestDemoBetNeverTouchesRealLedger(t *testing.T) {
	db := setupTestDB(t)

	var before int64
	db.Model(&models.Transaction{}).Count(&before)

	user, err := services.RegisterDemoAccount(db, "Trial", fmt.Sprintf("demo%d@example.com", nextUserID()))
	if err != nil {
		t.Fatalf("RegisterDemoAccount failed: %v", err)
	}
	if _, _, err := services.PlaceDemoBet(db, user.ID, "crash", 100, nil); err != nil {
		t.Fatalf("PlaceDemoBet failed: %v", err)
	}
	if _, err := services.ResetDemoAccount(db, user.ID); err != nil {
		t.Fatalf("ResetDemoAccount failed: %v", err)
	}

	var after int64
	db.Model(&models.Transaction{}).Count(&after)
	if before != after {
		t.Errorf("Demo operations wrote %d real transaction entries", after-before)
	}
}

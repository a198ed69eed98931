package services_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"coincore/models"
	"coincore/services"
)

func TestAdminCreditCreatesBalanceAndEntry(t *testing.T) {
	db := setupTestDB(t)
	admin := adminActor(t, db)
	target := nextUserID()

	bal, err := services.Credit(db, target, 1000, models.TrxAdminAdd, "welcome grant", admin)
	if err != nil {
		t.Fatalf("Credit failed: %v", err)
	}
	if bal.Coins != 1000 {
		t.Errorf("Expected balance 1000, got %d", bal.Coins)
	}

	var entries []models.Transaction
	if err := db.Where("user_id = ?", target).Find(&entries).Error; err != nil {
		t.Fatalf("Failed to load transactions: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected exactly one transaction entry, got %d", len(entries))
	}
	if entries[0].Amount != 1000 {
		t.Errorf("Expected entry amount +1000, got %d", entries[0].Amount)
	}
	if entries[0].TrxType != models.TrxAdminAdd {
		t.Errorf("Expected trx type %s, got %s", models.TrxAdminAdd, entries[0].TrxType)
	}
	if entries[0].ActorID == nil || *entries[0].ActorID != admin.UserID {
		t.Errorf("Expected actor id %d on admin entry", admin.UserID)
	}
}

func TestDebitInsufficientBalance(t *testing.T) {
	db := setupTestDB(t)
	target := nextUserID()
	seedBalance(t, db, target, 500, models.RoleUser)

	_, err := services.Debit(db, target, 600, models.TrxGameDebit, "big bet", userActor(target))
	if !errors.Is(err, services.ErrInsufficientBalance) {
		t.Fatalf("Expected ErrInsufficientBalance, got %v", err)
	}

	var bal models.Balance
	if err := db.Where("user_id = ?", target).First(&bal).Error; err != nil {
		t.Fatalf("Failed to reload balance: %v", err)
	}
	if bal.Coins != 500 {
		t.Errorf("Balance changed on rejected debit: %d", bal.Coins)
	}

	var count int64
	db.Model(&models.Transaction{}).Where("user_id = ? AND trx_type = ?", target, models.TrxGameDebit).Count(&count)
	if count != 0 {
		t.Errorf("Rejected debit produced %d log entries", count)
	}
}

func TestAdminTypesRequireAdminRole(t *testing.T) {
	db := setupTestDB(t)
	target := nextUserID()

	_, err := services.Credit(db, target, 100, models.TrxAdminAdd, "", userActor(nextUserID()))
	if !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("Expected ErrForbidden, got %v", err)
	}

	var count int64
	db.Model(&models.Balance{}).Where("user_id = ?", target).Count(&count)
	if count != 0 {
		t.Error("Forbidden credit created a balance row")
	}
}

func TestDebitAgainstMissingBalance(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.Debit(db, nextUserID(), 50, models.TrxGameDebit, "", userActor(1))
	if !errors.Is(err, services.ErrBalanceNotFound) {
		t.Fatalf("Expected ErrBalanceNotFound, got %v", err)
	}
}

func TestInvalidAmountRejected(t *testing.T) {
	db := setupTestDB(t)
	target := nextUserID()

	for _, amount := range []int64{0, -10} {
		if _, err := services.Credit(db, target, amount, models.TrxPurchase, "", userActor(target)); !errors.Is(err, services.ErrInvalidInput) {
			t.Errorf("Credit(%d): expected ErrInvalidInput, got %v", amount, err)
		}
		if _, err := services.Debit(db, target, amount, models.TrxGameDebit, "", userActor(target)); !errors.Is(err, services.ErrInvalidInput) {
			t.Errorf("Debit(%d): expected ErrInvalidInput, got %v", amount, err)
		}
	}
}

func TestUnknownTrxTypeRejected(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.Credit(db, nextUserID(), 10, "mystery", "", userActor(1))
	if !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for unknown trx type, got %v", err)
	}
}

func TestPurchaseRefIdempotency(t *testing.T) {
	db := setupTestDB(t)
	target := nextUserID()
	ref := fmt.Sprintf("purchase:test-%d", nextUserID())

	first, err := services.CreditWithRef(db, target, 250, models.TrxPurchase, "coin pack", ref, nil, userActor(target))
	if err != nil {
		t.Fatalf("First credit failed: %v", err)
	}
	second, err := services.CreditWithRef(db, target, 250, models.TrxPurchase, "coin pack", ref, nil, userActor(target))
	if err != nil {
		t.Fatalf("Replay credit failed: %v", err)
	}
	if first.Coins != 250 || second.Coins != 250 {
		t.Errorf("Expected balance 250 after replay, got %d then %d", first.Coins, second.Coins)
	}

	var count int64
	db.Model(&models.Transaction{}).Where("ref_id = ?", ref).Count(&count)
	if count != 1 {
		t.Errorf("Expected one entry for ref, got %d", count)
	}
}

func TestConcurrentCreditsReconcile(t *testing.T) {
	db := setupTestDB(t)
	target := nextUserID()
	actor := userActor(target)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := services.Credit(db, target, 10, models.TrxGameCredit, "win", actor); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("Concurrent credit failed: %v", err)
	}

	var bal models.Balance
	if err := db.Where("user_id = ?", target).First(&bal).Error; err != nil {
		t.Fatalf("Failed to reload balance: %v", err)
	}
	if bal.Coins != workers*10 {
		t.Errorf("Expected balance %d, got %d", workers*10, bal.Coins)
	}

	var sum int64
	db.Model(&models.Transaction{}).Where("user_id = ?", target).
		Select("COALESCE(SUM(amount), 0)").Scan(&sum)
	if sum != bal.Coins {
		t.Errorf("Entry sum %d does not reconcile with balance %d", sum, bal.Coins)
	}

	drifts, err := services.Reconcile(db)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	for _, d := range drifts {
		if d.UserID == target {
			t.Errorf("Reconcile reported drift for user %d: coins=%d sum=%d", d.UserID, d.Coins, d.Sum)
		}
	}
}

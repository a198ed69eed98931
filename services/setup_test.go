package services_test

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"coincore/database"
	"coincore/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var idCounter uint64 = uint64(time.Now().UnixNano() % 1_000_000_000)

func nextUserID() uint {
	return uint(atomic.AddUint64(&idCounter, 1))
}

// randomSuffix returns n digits unique within (and very likely across) runs,
// for seeding codes directly without colliding on the unique code column.
func randomSuffix(t *testing.T, n int) string {
	t.Helper()
	mod := uint64(1)
	for i := 0; i < n; i++ {
		mod *= 10
	}
	return fmt.Sprintf("%0*d", n, atomic.AddUint64(&idCounter, 1)%mod)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping database-backed test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func seedBalance(t *testing.T, db *gorm.DB, userID uint, coins int64, role string) models.Balance {
	t.Helper()

	bal := models.Balance{
		UserID: userID,
		Email:  fmt.Sprintf("user%d@example.com", userID),
		Role:   role,
		Coins:  coins,
	}
	if err := db.Create(&bal).Error; err != nil {
		t.Fatalf("Failed to seed balance for user %d: %v", userID, err)
	}
	if coins != 0 {
		entry := models.Transaction{
			UserID:        userID,
			TrxType:       models.TrxPurchase,
			Amount:        coins,
			BalanceBefore: 0,
			BalanceAfter:  coins,
			Note:          "test seed",
			RefID:         fmt.Sprintf("seed:%d", userID),
		}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("Failed to seed transaction for user %d: %v", userID, err)
		}
	}
	return bal
}

func adminActor(t *testing.T, db *gorm.DB) models.Actor {
	t.Helper()

	id := nextUserID()
	bal := seedBalance(t, db, id, 0, models.RoleAdmin)
	return models.Actor{UserID: bal.UserID, Email: bal.Email, Role: bal.Role}
}

func userActor(id uint) models.Actor {
	return models.Actor{UserID: id, Email: fmt.Sprintf("user%d@example.com", id), Role: models.RoleUser}
}

package tasks

import (
	"log"
	"os"
	"time"

	"coincore/database"
	"coincore/models"
)

// CleanupOldDemoBets drops stale demo bet history. Demo entries are
// best-effort history, not a reconciled ledger, so pruning them is safe.
func CleanupOldDemoBets() {
	retention := 72 * time.Hour
	if v := os.Getenv("DEMO_BET_RETENTION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			retention = d
		} else {
			log.Printf("⚠️  Invalid value for DEMO_BET_RETENTION: %s\n", v)
		}
	}

	cutoff := time.Now().Add(-retention)
	result := database.DB.
		Where("created_at < ?", cutoff).
		Delete(&models.DemoBet{})

	if result.Error != nil {
		log.Println("❌ Failed to delete old demo bets:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Deleted %d demo bets older than %s\n", result.RowsAffected, retention)
	}
}

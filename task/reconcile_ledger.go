package tasks

import (
	"log"

	"coincore/database"
	"coincore/services"
)

// ReconcileLedger sweeps every balance against the sum of its transaction
// entries and screams if they disagree.
func ReconcileLedger() {
	drifts, err := services.Reconcile(database.DB)
	if err != nil {
		log.Println("❌ Ledger reconciliation sweep failed:", err)
		return
	}

	if len(drifts) == 0 {
		return
	}

	for _, d := range drifts {
		log.Printf("❌ Ledger drift: user=%d coins=%d entry_sum=%d", d.UserID, d.Coins, d.Sum)
	}
}

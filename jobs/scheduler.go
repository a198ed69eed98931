package jobs

import (
	"log"
	"time"

	tasks "coincore/task"

	"github.com/go-co-op/gocron/v2"
)

// StartSchedulers runs the background maintenance jobs: demo bet pruning and
// the ledger reconciliation sweep.
func StartSchedulers() {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("❌ Failed to create scheduler: %v", err)
		return
	}

	if _, err := sched.NewJob(
		gocron.DurationJob(6*time.Hour),
		gocron.NewTask(tasks.CleanupOldDemoBets),
	); err != nil {
		log.Printf("❌ Failed to schedule demo bet cleanup: %v", err)
	}

	if _, err := sched.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(tasks.ReconcileLedger),
	); err != nil {
		log.Printf("❌ Failed to schedule ledger reconciliation: %v", err)
	}

	sched.Start()
}

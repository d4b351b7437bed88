package jobs

import (
	"time"

	tasks "luckywheel/task"
)

// StartResultExpiryScheduler sweeps stale pending results in the
// background for as long as the process runs.
func StartResultExpiryScheduler() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for {
			<-ticker.C
			tasks.ExpireStalePendingResults()
		}
	}()
}

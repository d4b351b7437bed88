package tasks

import (
	"time"

	"luckywheel/database"
	"luckywheel/models"

	log "github.com/sirupsen/logrus"
)

// ExpireStalePendingResults moves pending results whose owning session
// has lapsed to the terminal expired status. Sessions expire passively,
// so unclaimed results are swept here instead.
func ExpireStalePendingResults() {
	sub := database.DB.Model(&models.Session{}).
		Select("id").
		Where("expires_at <= ?", time.Now())

	res := database.DB.Model(&models.SpinResult{}).
		Where("status = ?", models.SpinStatusPending).
		Where("session_id IN (?)", sub).
		Update("status", models.SpinStatusExpired)

	if res.Error != nil {
		log.Error("❌ Failed to expire stale spin results: ", res.Error)
	} else if res.RowsAffected > 0 {
		log.Infof("✅ Expired %d stale pending spin results", res.RowsAffected)
	}
}

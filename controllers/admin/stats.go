package admin

import (
	"time"

	"luckywheel/database"
	"luckywheel/helpers"
	"luckywheel/models"

	"github.com/gofiber/fiber/v2"
)

// Overview aggregates the dashboard counters.
func Overview(c *fiber.Ctx) error {
	db := database.DB
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Monday-based week.
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	startOfWeek := startOfDay.AddDate(0, 0, -(weekday - 1))

	var (
		totalCodes, activeCodes       int64
		totalSessions, activeSessions int64
		totalSpins, spinsToday        int64
		spinsThisWeek                 int64
		totalPrizes, activePrizes     int64
	)

	db.Model(&models.RedeemCode{}).Count(&totalCodes)
	db.Model(&models.RedeemCode{}).Where("is_active = true").Count(&activeCodes)
	db.Model(&models.Session{}).Count(&totalSessions)
	db.Model(&models.Session{}).Where("expires_at > ?", now).Count(&activeSessions)
	db.Model(&models.SpinResult{}).Count(&totalSpins)
	db.Model(&models.SpinResult{}).Where("created_at >= ?", startOfDay).Count(&spinsToday)
	db.Model(&models.SpinResult{}).Where("created_at >= ?", startOfWeek).Count(&spinsThisWeek)
	db.Model(&models.Prize{}).Count(&totalPrizes)
	db.Model(&models.Prize{}).Where("is_active = true").Count(&activePrizes)

	var topPrizes []struct {
		ID               uint   `json:"id"`
		Name             string `json:"name"`
		Price            int    `json:"price"`
		SpinResultsCount int64  `json:"spin_results_count"`
	}
	db.Table("prizes").
		Select("prizes.id, prizes.name, prizes.price, count(spin_results.id) as spin_results_count").
		Joins("LEFT JOIN spin_results ON spin_results.prize_id = prizes.id AND spin_results.deleted_at IS NULL").
		Where("prizes.deleted_at IS NULL").
		Group("prizes.id").
		Order("spin_results_count desc").
		Limit(5).
		Scan(&topPrizes)

	var dailySpins []struct {
		Date  string `json:"date"`
		Count int64  `json:"count"`
	}
	db.Model(&models.SpinResult{}).
		Select("DATE(created_at) as date, count(*) as count").
		Where("created_at >= ?", now.AddDate(0, 0, -7)).
		Group("DATE(created_at)").
		Order("date").
		Scan(&dailySpins)

	return helpers.JSONSuccess(c, "Stats retrieved successfully", fiber.Map{
		"total_codes":     totalCodes,
		"active_codes":    activeCodes,
		"total_sessions":  totalSessions,
		"active_sessions": activeSessions,
		"total_spins":     totalSpins,
		"spins_today":     spinsToday,
		"spins_this_week": spinsThisWeek,
		"total_prizes":    totalPrizes,
		"active_prizes":   activePrizes,
		"top_prizes":      topPrizes,
		"daily_spins":     dailySpins,
	})
}

// CodeUsage lists codes by redemption volume.
func CodeUsage(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c, 20)

	var total int64
	if err := database.DB.Model(&models.RedeemCode{}).Count(&total).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to load code usage")
	}

	var rows []struct {
		ID            uint       `json:"id"`
		Code          string     `json:"code"`
		SpinsAmount   int        `json:"spins_amount"`
		MaxUses       *int       `json:"max_uses"`
		UsedCount     int        `json:"used_count"`
		IsActive      bool       `json:"is_active"`
		ExpiresAt     *time.Time `json:"expires_at"`
		SessionsCount int64      `json:"sessions_count"`
		TotalSpins    int64      `json:"total_spins"`
	}
	err := database.DB.Table("redeem_codes").
		Select(`redeem_codes.id, redeem_codes.code, redeem_codes.spins_amount,
			redeem_codes.max_uses, redeem_codes.used_count, redeem_codes.is_active,
			redeem_codes.expires_at,
			count(sessions.id) as sessions_count,
			coalesce(sum(sessions.total_spins), 0) as total_spins`).
		Joins("LEFT JOIN sessions ON sessions.code_id = redeem_codes.id AND sessions.deleted_at IS NULL").
		Where("redeem_codes.deleted_at IS NULL").
		Group("redeem_codes.id").
		Order("redeem_codes.used_count desc").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to load code usage")
	}

	return helpers.JSONSuccess(c, "Code usage retrieved successfully", fiber.Map{
		"items": rows,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

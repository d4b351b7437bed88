package admin

import (
	"time"

	"luckywheel/database"
	"luckywheel/helpers"
	"luckywheel/models"

	"github.com/gofiber/fiber/v2"
)

func resultView(r *models.SpinResult) map[string]any {
	view := map[string]any{
		"id":              r.ID,
		"prize":           r.Prize.PublicView(),
		"spin_token":      r.SpinToken,
		"target_angle":    r.TargetAngle,
		"status":          r.Status,
		"claimed_at":      r.ClaimedAt,
		"delivery_status": r.DeliveryStatus,
		"delivery_note":   r.DeliveryNote,
		"delivered_at":    r.DeliveredAt,
		"created_at":      r.CreatedAt,
		"ip_address":      r.Session.IPAddress,
	}
	if r.Session.Code != nil {
		view["code"] = r.Session.Code.Code
	}
	return view
}

// ListResults lists spin results newest first with the admin filters:
// date range, prize, status, delivery status and code search.
func ListResults(c *fiber.Ctx) error {
	query := database.DB.Model(&models.SpinResult{}).
		Preload("Prize").
		Preload("Session").
		Preload("Session.Code")

	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("spin_results.created_at >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("spin_results.created_at < ?", t.AddDate(0, 0, 1))
		}
	}
	if prizeID := c.QueryInt("prize_id"); prizeID > 0 {
		query = query.Where("spin_results.prize_id = ?", prizeID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("spin_results.status = ?", status)
	}
	if ds := c.Query("delivery_status"); ds != "" {
		query = query.Where("spin_results.delivery_status = ?", ds)
	}
	if code := c.Query("code"); code != "" {
		query = query.
			Joins("JOIN sessions ON sessions.id = spin_results.session_id").
			Joins("JOIN redeem_codes ON redeem_codes.id = sessions.code_id").
			Where("redeem_codes.code LIKE ?", "%"+models.NormalizeCode(code)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to load results")
	}

	page, limit, offset := parsePage(c, 50)

	var results []models.SpinResult
	if err := query.Order("spin_results.created_at desc").
		Limit(limit).Offset(offset).
		Find(&results).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to load results")
	}

	views := make([]map[string]any, 0, len(results))
	for i := range results {
		views = append(views, resultView(&results[i]))
	}

	return helpers.JSONSuccess(c, "Results retrieved successfully", fiber.Map{
		"items": views,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

type DeliveryRequest struct {
	DeliveryStatus string `json:"delivery_status" validate:"required,oneof=pending delivered"`
	DeliveryNote   string `json:"delivery_note" validate:"max=500"`
}

func UpdateDelivery(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_ID")
	}

	var req DeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONError(c, "INVALID_DELIVERY_PAYLOAD")
	}

	var result models.SpinResult
	if err := database.DB.
		Preload("Prize").
		Preload("Session").
		Preload("Session.Code").
		First(&result, id).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "result not found")
	}

	if req.DeliveryStatus == models.DeliveryStatusDelivered {
		err = result.MarkDelivered(database.DB, req.DeliveryNote)
	} else {
		err = result.MarkUndelivered(database.DB, req.DeliveryNote)
	}
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to update delivery status")
	}

	result.DeliveryStatus = req.DeliveryStatus
	result.DeliveryNote = req.DeliveryNote

	return helpers.JSONSuccess(c, "Delivery status updated", resultView(&result))
}

type BulkDeliveryRequest struct {
	IDs            []uint `json:"ids" validate:"required,min=1"`
	DeliveryStatus string `json:"delivery_status" validate:"required,oneof=pending delivered"`
	DeliveryNote   string `json:"delivery_note" validate:"max=500"`
}

func BulkUpdateDelivery(c *fiber.Ctx) error {
	var req BulkDeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONError(c, "INVALID_DELIVERY_PAYLOAD")
	}

	updates := map[string]any{
		"delivery_status": req.DeliveryStatus,
		"delivery_note":   req.DeliveryNote,
		"delivered_at":    nil,
	}
	if req.DeliveryStatus == models.DeliveryStatusDelivered {
		updates["delivered_at"] = time.Now()
	}

	res := database.DB.Model(&models.SpinResult{}).
		Where("id IN ?", req.IDs).
		Updates(updates)
	if res.Error != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to update delivery status")
	}

	return helpers.JSONSuccess(c, "Delivery status updated", fiber.Map{
		"updated_count": res.RowsAffected,
	})
}

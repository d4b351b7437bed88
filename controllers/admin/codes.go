package admin

import (
	"encoding/json"
	"errors"
	"time"

	"luckywheel/database"
	"luckywheel/helpers"
	"luckywheel/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCodes returns codes newest first, filterable by active flag and a
// code substring.
func ListCodes(c *fiber.Ctx) error {
	query := database.DB.Model(&models.RedeemCode{})

	if c.Query("is_active") != "" {
		query = query.Where("is_active = ?", c.QueryBool("is_active"))
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("code LIKE ?", "%"+models.NormalizeCode(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to load codes")
	}

	page, limit, offset := parsePage(c, 20)

	var codes []models.RedeemCode
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&codes).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to load codes")
	}

	return helpers.JSONSuccess(c, "Codes retrieved successfully", fiber.Map{
		"items": codes,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

type CreateCodeRequest struct {
	Code        string     `json:"code" validate:"omitempty,max=50"`
	SpinsAmount int        `json:"spins_amount" validate:"required,min=1,max=1000"`
	MaxUses     *int       `json:"max_uses" validate:"omitempty,min=1"`
	Note        string     `json:"note" validate:"max=255"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

func CreateCode(c *fiber.Ctx) error {
	var req CreateCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONError(c, "INVALID_CODE_PAYLOAD")
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return helpers.JSONError(c, "EXPIRY_MUST_BE_IN_FUTURE")
	}

	codeStr := models.NormalizeCode(req.Code)
	if codeStr == "" {
		codeStr = generateUniqueCode(10)
	} else {
		var existing models.RedeemCode
		err := database.DB.Where("code = ?", codeStr).First(&existing).Error
		if err == nil {
			return helpers.JSONError(c, "CODE_ALREADY_EXISTS")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to create code")
		}
	}

	code := models.RedeemCode{
		Code:        codeStr,
		SpinsAmount: req.SpinsAmount,
		MaxUses:     req.MaxUses,
		Note:        req.Note,
		ExpiresAt:   req.ExpiresAt,
		IsActive:    true,
	}
	if err := database.DB.Create(&code).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to create code")
	}

	return helpers.JSONCreated(c, "Code created successfully", code)
}

func ShowCode(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_ID")
	}

	var code models.RedeemCode
	if err := database.DB.First(&code, id).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "code not found")
	}

	var sessions []models.Session
	_ = database.DB.
		Where("code_id = ?", code.ID).
		Order("created_at desc").
		Limit(10).
		Find(&sessions).Error

	return helpers.JSONSuccess(c, "Code retrieved successfully", fiber.Map{
		"code":     code,
		"sessions": sessions,
	})
}

type UpdateCodeRequest struct {
	SpinsAmount *int       `json:"spins_amount" validate:"omitempty,min=1,max=1000"`
	MaxUses     *int       `json:"max_uses" validate:"omitempty,min=1"`
	Note        *string    `json:"note" validate:"omitempty,max=255"`
	ExpiresAt   *time.Time `json:"expires_at"`
	IsActive    *bool      `json:"is_active"`
}

func UpdateCode(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_ID")
	}

	var req UpdateCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONError(c, "INVALID_CODE_PAYLOAD")
	}

	var code models.RedeemCode
	if err := database.DB.First(&code, id).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "code not found")
	}

	updates := map[string]any{}
	if req.SpinsAmount != nil {
		updates["spins_amount"] = *req.SpinsAmount
	}
	if req.MaxUses != nil {
		updates["max_uses"] = *req.MaxUses
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}
	if req.ExpiresAt != nil {
		updates["expires_at"] = *req.ExpiresAt
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&code).Updates(updates).Error; err != nil {
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to update code")
		}
	}

	return helpers.JSONSuccess(c, "Code updated successfully", code)
}

func DeleteCode(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_ID")
	}

	var code models.RedeemCode
	if err := database.DB.First(&code, id).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "code not found")
	}

	if err := database.DB.Delete(&code).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to delete code")
	}

	return helpers.JSONSuccess(c, "Code deleted", nil)
}

type GenerateBatchRequest struct {
	Count       int        `json:"count" validate:"required,min=1,max=100"`
	SpinsAmount int        `json:"spins_amount" validate:"required,min=1,max=1000"`
	Prefix      string     `json:"prefix" validate:"omitempty,max=10"`
	MaxUses     *int       `json:"max_uses" validate:"omitempty,min=1"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Note        string     `json:"note" validate:"max=255"`
}

// GenerateBatchCodes creates a batch of random single-use codes. Every
// code in the batch carries the same jsonb batch metadata so batches can
// be traced later.
func GenerateBatchCodes(c *fiber.Ctx) error {
	var req GenerateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONError(c, "INVALID_BATCH_PAYLOAD")
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return helpers.JSONError(c, "EXPIRY_MUST_BE_IN_FUTURE")
	}

	prefix := models.NormalizeCode(req.Prefix)
	maxUses := 1
	if req.MaxUses != nil {
		maxUses = *req.MaxUses
	}

	batchID := uuid.New().String()
	batchInfo, _ := json.Marshal(map[string]any{
		"batch_id": batchID,
		"prefix":   prefix,
		"count":    req.Count,
	})

	codes := make([]string, 0, req.Count)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < req.Count; i++ {
			code := models.RedeemCode{
				Code:        prefix + generateUniqueCode(8),
				SpinsAmount: req.SpinsAmount,
				MaxUses:     &maxUses,
				Note:        req.Note,
				ExpiresAt:   req.ExpiresAt,
				IsActive:    true,
				BatchInfo:   batchInfo,
			}
			if err := tx.Create(&code).Error; err != nil {
				return err
			}
			codes = append(codes, code.Code)
		}
		return nil
	})
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to generate batch")
	}

	return helpers.JSONCreated(c, "Batch generated successfully", fiber.Map{
		"batch_id": batchID,
		"codes":    codes,
		"count":    len(codes),
	})
}

func generateUniqueCode(length int) string {
	for {
		code := helpers.GenerateCode(length)
		var existing models.RedeemCode
		err := database.DB.Where("code = ?", code).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code
		}
	}
}

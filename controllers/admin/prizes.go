package admin

import (
	"luckywheel/database"
	"luckywheel/helpers"
	"luckywheel/models"
	"luckywheel/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListPrizes returns every prize in wheel order, probability included.
func ListPrizes(c *fiber.Ctx) error {
	var prizes []models.Prize
	if err := database.DB.Order("sort_order asc").Find(&prizes).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to load prizes")
	}

	counts := map[uint]int64{}
	rows := []struct {
		PrizeID uint
		Count   int64
	}{}
	if err := database.DB.Model(&models.SpinResult{}).
		Select("prize_id, count(*) as count").
		Group("prize_id").
		Scan(&rows).Error; err == nil {
		for _, r := range rows {
			counts[r.PrizeID] = r.Count
		}
	}

	views := make([]map[string]any, 0, len(prizes))
	for i := range prizes {
		view := prizes[i].AdminView()
		view["spin_results_count"] = counts[prizes[i].ID]
		views = append(views, view)
	}

	return helpers.JSONSuccess(c, "Prizes retrieved successfully", views)
}

type CreatePrizeRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Price       int     `json:"price" validate:"min=0"`
	Image       string  `json:"image" validate:"max=255"`
	Color       string  `json:"color" validate:"required,max=20"`
	Probability float64 `json:"probability" validate:"required,gt=0,lte=1"`
	Stock       *int    `json:"stock" validate:"omitempty,min=0"`
	SortOrder   int     `json:"sort_order"`
}

func CreatePrize(c *fiber.Ctx) error {
	var req CreatePrizeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONError(c, "INVALID_PRIZE_PAYLOAD")
	}

	prize := models.Prize{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Color:       req.Color,
		Probability: helpers.FormatFloat(req.Probability, 4),
		IsActive:    true,
		Stock:       req.Stock,
		SortOrder:   req.SortOrder,
	}
	if err := database.DB.Create(&prize).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to create prize")
	}

	return helpers.JSONCreated(c, "Prize created successfully", prize.AdminView())
}

func ShowPrize(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_ID")
	}

	var prize models.Prize
	if err := database.DB.First(&prize, id).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "prize not found")
	}

	var resultCount int64
	_ = database.DB.Model(&models.SpinResult{}).
		Where("prize_id = ?", prize.ID).
		Count(&resultCount).Error

	view := prize.AdminView()
	view["spin_results_count"] = resultCount

	return helpers.JSONSuccess(c, "Prize retrieved successfully", view)
}

type UpdatePrizeRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Price       *int     `json:"price" validate:"omitempty,min=0"`
	Image       *string  `json:"image" validate:"omitempty,max=255"`
	Color       *string  `json:"color" validate:"omitempty,max=20"`
	Probability *float64 `json:"probability" validate:"omitempty,gt=0,lte=1"`
	IsActive    *bool    `json:"is_active"`
	Stock       *int     `json:"stock" validate:"omitempty,min=0"`
	SortOrder   *int     `json:"sort_order"`
}

func UpdatePrize(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_ID")
	}

	var req UpdatePrizeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONError(c, "INVALID_PRIZE_PAYLOAD")
	}

	var prize models.Prize
	if err := database.DB.First(&prize, id).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "prize not found")
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Probability != nil {
		updates["probability"] = helpers.FormatFloat(*req.Probability, 4)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&prize).Updates(updates).Error; err != nil {
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to update prize")
		}
	}

	return helpers.JSONSuccess(c, "Prize updated successfully", prize.AdminView())
}

// DeletePrize refuses to remove a prize that already has results; those
// rows reference it forever.
func DeletePrize(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_ID")
	}

	var prize models.Prize
	if err := database.DB.First(&prize, id).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "prize not found")
	}

	var resultCount int64
	if err := database.DB.Model(&models.SpinResult{}).
		Where("prize_id = ?", prize.ID).
		Count(&resultCount).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to delete prize")
	}
	if resultCount > 0 {
		return helpers.JSONError(c, "cannot delete a prize that has been won")
	}

	if err := database.DB.Delete(&prize).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to delete prize")
	}

	return helpers.JSONSuccess(c, "Prize deleted", nil)
}

type ReorderRequest struct {
	Orders []struct {
		ID        uint `json:"id" validate:"required"`
		SortOrder int  `json:"sort_order"`
	} `json:"orders" validate:"required,min=1,dive"`
}

func ReorderPrizes(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONError(c, "INVALID_REORDER_PAYLOAD")
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Orders {
			if err := tx.Model(&models.Prize{}).
				Where("id = ?", item.ID).
				UpdateColumn("sort_order", item.SortOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to reorder prizes")
	}

	return helpers.JSONSuccess(c, "Prizes reordered", nil)
}

// AutoProbability redistributes probabilities by inverse price across
// the eligible prizes.
func AutoProbability(c *fiber.Ctx) error {
	if err := services.AutoDistributeProbability(database.DB); err != nil {
		return helpers.JSONFail(c, err)
	}
	return helpers.JSONSuccess(c, "Probabilities distributed by price", nil)
}

package spin

import (
	"luckywheel/database"
	"luckywheel/helpers"
	"luckywheel/models"

	"github.com/gofiber/fiber/v2"
)

// ListPrizes serves the public wheel layout. Probability is never part
// of this projection.
func ListPrizes(c *fiber.Ctx) error {
	prizes, err := models.AvailablePrizes(database.DB)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "failed to load prizes")
	}

	views := make([]map[string]any, 0, len(prizes))
	for i := range prizes {
		views = append(views, prizes[i].PublicView())
	}

	return helpers.JSONSuccess(c, "Prizes retrieved successfully", views)
}

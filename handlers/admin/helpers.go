package handlers // handlers/admin paketi

import (
	"github.com/gofiber/fiber/v2"

	"randevu.link/pkg/queryparams"
)

// currentUserID session middleware'inin Locals'a koyduğu kullanıcı ID'sini okur.
// Auth middleware'i geçilmişse her zaman doludur.
func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}

// parseIDParam :id path parametresini okur.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "geçersiz id")
	}
	return uint(id), nil
}

// parseListParams ortak liste parametrelerini query'den okur ve doğrular.
func parseListParams(c *fiber.Ctx) queryparams.ListParams {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams(queryparams.DefaultSortBy)
	}
	params.Validate()
	return params
}

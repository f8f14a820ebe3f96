package handlers // handlers/api paketi

import (
	"randevu.link/pkg/responder"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ScheduleHandler public takvim okuma uçlarını yönetir.
type ScheduleHandler struct {
	service services.IScheduleService
}

// NewScheduleHandler yeni bir ScheduleHandler örneği oluşturur.
func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{service: services.NewScheduleService(db)}
}

// ListActiveSchedules vatandaşın slot seçebileceği aktif takvimleri listeler.
// GET /api/schedules
func (h *ScheduleHandler) ListActiveSchedules(c *fiber.Ctx) error {
	schedules, err := h.service.GetActiveSchedules(c.UserContext())
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, fiber.Map{"data": schedules})
}

// GetSchedule takvimi rezervasyonları ile döndürür.
// GET /api/schedules/:id
func (h *ScheduleHandler) GetSchedule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz id"})
	}
	schedule, err := h.service.FindScheduleByID(c.UserContext(), uint(id))
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, schedule)
}

package handlers // handlers/admin paketi

import (
	"randevu.link/pkg/responder"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ScheduleHandler takvim yönetim uçlarını yönetir.
type ScheduleHandler struct {
	service services.IScheduleService
}

// NewScheduleHandler yeni bir ScheduleHandler örneği oluşturur.
func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{service: services.NewScheduleService(db)}
}

// CreateSchedule bir uzman için günlük takvim açar.
// POST /admin/schedules
func (h *ScheduleHandler) CreateSchedule(c *fiber.Ctx) error {
	var input services.ScheduleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	schedule, err := h.service.AddSchedule(c.UserContext(), input)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusCreated, schedule)
}

// GetSchedule takvimi rezervasyonlarıyla döndürür.
// GET /admin/schedules/:id
func (h *ScheduleHandler) GetSchedule(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	schedule, err := h.service.FindScheduleByID(c.UserContext(), id)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, schedule)
}

// ListSchedules aktif/pasif tüm takvimleri listeler.
// GET /admin/schedules
func (h *ScheduleHandler) ListSchedules(c *fiber.Ctx) error {
	schedules, err := h.service.GetSchedules(c.UserContext())
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, fiber.Map{"data": schedules})
}

// DeleteSchedule takvimi ve bağlı rezervasyonlarını siler.
// DELETE /admin/schedules/:id
func (h *ScheduleHandler) DeleteSchedule(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.service.RemoveSchedule(c.UserContext(), id, currentUserID(c)); err != nil {
		return responder.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

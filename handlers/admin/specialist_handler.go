package handlers // handlers/admin paketi

import (
	"randevu.link/pkg/responder"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SpecialistHandler uzman yönetim uçlarını yönetir.
type SpecialistHandler struct {
	service services.ISpecialistService
}

// NewSpecialistHandler yeni bir SpecialistHandler örneği oluşturur.
func NewSpecialistHandler(db *gorm.DB) *SpecialistHandler {
	return &SpecialistHandler{service: services.NewSpecialistService(db)}
}

// CreateSpecialist yeni uzman kaydeder.
// POST /admin/specialists
func (h *SpecialistHandler) CreateSpecialist(c *fiber.Ctx) error {
	var input services.SpecialistInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	specialist, err := h.service.CreateSpecialist(c.UserContext(), input)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusCreated, specialist)
}

// GetSpecialist uzmanı ID ile döndürür.
// GET /admin/specialists/:id
func (h *SpecialistHandler) GetSpecialist(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	specialist, err := h.service.GetSpecialistByID(c.UserContext(), id)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, specialist)
}

// ListSpecialists uzmanları sayfalı listeler.
// GET /admin/specialists
func (h *SpecialistHandler) ListSpecialists(c *fiber.Ctx) error {
	result, err := h.service.GetSpecialists(c.UserContext(), parseListParams(c))
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, result)
}

// UpdateSpecialist uzman bilgilerini günceller.
// PUT /admin/specialists/:id
func (h *SpecialistHandler) UpdateSpecialist(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var input services.SpecialistInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	if err := h.service.UpdateSpecialist(c.UserContext(), id, input); err != nil {
		return responder.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeactivateSpecialist uzmanı pasife çeker; geçmiş kayıtları korunur.
// POST /admin/specialists/:id/deactivate
func (h *SpecialistHandler) DeactivateSpecialist(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.service.DeactivateSpecialist(c.UserContext(), id); err != nil {
		return responder.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteSpecialist uzmanı siler. Bağlı takvimi olan uzman silinemez.
// DELETE /admin/specialists/:id
func (h *SpecialistHandler) DeleteSpecialist(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteSpecialist(c.UserContext(), id, currentUserID(c)); err != nil {
		return responder.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

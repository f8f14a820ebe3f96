package handlers // handlers/admin paketi

import (
	"randevu.link/pkg/responder"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ServiceHandler hizmet kataloğu yönetim uçlarını yönetir.
type ServiceHandler struct {
	service services.IServiceCatalogService
}

// NewServiceHandler yeni bir ServiceHandler örneği oluşturur.
func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{service: services.NewServiceCatalogService(db)}
}

// CreateService kataloğa yeni hizmet ekler.
// POST /admin/services
func (h *ServiceHandler) CreateService(c *fiber.Ctx) error {
	var input services.ServiceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	service, err := h.service.CreateService(c.UserContext(), input)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusCreated, service)
}

// GetService hizmeti ID ile döndürür.
// GET /admin/services/:id
func (h *ServiceHandler) GetService(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	service, err := h.service.GetServiceByID(c.UserContext(), id)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, service)
}

// ListServices hizmetleri sayfalı listeler.
// GET /admin/services
func (h *ServiceHandler) ListServices(c *fiber.Ctx) error {
	result, err := h.service.GetServices(c.UserContext(), parseListParams(c))
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, result)
}

// UpdateService hizmet adını/durumunu günceller.
// PUT /admin/services/:id
func (h *ServiceHandler) UpdateService(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var input services.ServiceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	if err := h.service.UpdateService(c.UserContext(), id, input); err != nil {
		return responder.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteService hizmeti katalogdan kaldırır.
// DELETE /admin/services/:id
func (h *ServiceHandler) DeleteService(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteService(c.UserContext(), id, currentUserID(c)); err != nil {
		return responder.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

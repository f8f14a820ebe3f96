package handlers // handlers/admin paketi

import (
	"randevu.link/pkg/responder"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OrganizationHandler kurum yönetim uçlarını yönetir.
type OrganizationHandler struct {
	service services.IOrganizationService
}

// NewOrganizationHandler yeni bir OrganizationHandler örneği oluşturur.
func NewOrganizationHandler(db *gorm.DB) *OrganizationHandler {
	return &OrganizationHandler{service: services.NewOrganizationService(db)}
}

// CreateOrganization yeni kurum kaydeder.
// POST /admin/organizations
func (h *OrganizationHandler) CreateOrganization(c *fiber.Ctx) error {
	var input services.OrganizationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	organization, err := h.service.CreateOrganization(c.UserContext(), input)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusCreated, organization)
}

// GetOrganization kurumu ID ile döndürür.
// GET /admin/organizations/:id
func (h *OrganizationHandler) GetOrganization(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	organization, err := h.service.GetOrganizationByID(c.UserContext(), id)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, organization)
}

// ListOrganizations kurumları sayfalı listeler.
// GET /admin/organizations
func (h *OrganizationHandler) ListOrganizations(c *fiber.Ctx) error {
	result, err := h.service.GetOrganizations(c.UserContext(), parseListParams(c))
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, result)
}

// UpdateOrganization kurum bilgilerini günceller.
// PUT /admin/organizations/:id
func (h *OrganizationHandler) UpdateOrganization(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var input services.OrganizationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	if err := h.service.UpdateOrganization(c.UserContext(), id, input); err != nil {
		return responder.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteOrganization kurumu siler.
// DELETE /admin/organizations/:id
func (h *OrganizationHandler) DeleteOrganization(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteOrganization(c.UserContext(), id, currentUserID(c)); err != nil {
		return responder.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

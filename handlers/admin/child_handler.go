package handlers // handlers/admin paketi

import (
	"randevu.link/pkg/responder"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ChildHandler çocuk kayıtları yönetim uçlarını yönetir.
type ChildHandler struct {
	service services.IChildService
}

// NewChildHandler yeni bir ChildHandler örneği oluşturur.
func NewChildHandler(db *gorm.DB) *ChildHandler {
	return &ChildHandler{service: services.NewChildService(db)}
}

// CreateChild yeni çocuk kaydı oluşturur.
// POST /admin/children
func (h *ChildHandler) CreateChild(c *fiber.Ctx) error {
	var input services.ChildInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	child, err := h.service.CreateChild(c.UserContext(), input)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusCreated, child)
}

// GetChild kaydı ID ile döndürür.
// GET /admin/children/:id
func (h *ChildHandler) GetChild(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	child, err := h.service.GetChildByID(c.UserContext(), id)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, child)
}

// GetChildByBirthCertificate kaydı doğum belgesi seri + numarası ile bulur.
// GET /admin/children/by-certificate?series=...&number=...
func (h *ChildHandler) GetChildByBirthCertificate(c *fiber.Ctx) error {
	series := c.Query("series")
	number := c.Query("number")
	if series == "" || number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "series ve number zorunlu"})
	}
	child, err := h.service.GetChildByBirthCertificate(c.UserContext(), series, number)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, child)
}

// ListChildren kayıtları sayfalı listeler.
// GET /admin/children
func (h *ChildHandler) ListChildren(c *fiber.Ctx) error {
	result, err := h.service.GetChildren(c.UserContext(), parseListParams(c))
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, result)
}

// UpdateChild kayıt bilgilerini günceller.
// PUT /admin/children/:id
func (h *ChildHandler) UpdateChild(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	var input services.ChildInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	if err := h.service.UpdateChild(c.UserContext(), id, input); err != nil {
		return responder.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

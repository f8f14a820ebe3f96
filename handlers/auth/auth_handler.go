package handlers // handlers/auth paketi

import (
	"randevu.link/configs/configslog"
	"randevu.link/pkg/responder"
	"randevu.link/services"
	"randevu.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthHandler giriş/çıkış ve profil uçlarını yönetir.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{service: services.NewAuthService(db)}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type passwordUpdateRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login e-posta + şifre doğrular ve session açar.
// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	user, err := h.service.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return responder.Error(c, err)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Session başlatılamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "işlem gerçekleştirilemedi"})
	}
	sess.Set(utils.SessionKeyUserID, user.ID)
	sess.Set(utils.SessionKeyIsSystem, user.IsSystem)
	sess.Set(utils.SessionKeyUserName, user.Name)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Session kaydedilemedi", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "işlem gerçekleştirilemedi"})
	}

	configslog.SLog.Infof("Kullanıcı giriş yaptı: %s (ID: %d)", user.Email, user.ID)
	return responder.JSON(c, fiber.StatusOK, fiber.Map{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"is_system": user.IsSystem,
	})
}

// Logout session'ı sonlandırır.
// POST /auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		if destroyErr := sess.Destroy(); destroyErr != nil {
			configslog.Log.Error("Session sonlandırılamadı", zap.Error(destroyErr))
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Profile giriş yapmış kullanıcının bilgilerini döndürür.
// GET /auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	user, err := h.service.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, fiber.Map{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"is_system": user.IsSystem,
	})
}

// UpdatePassword mevcut şifreyi doğrulayıp yenisiyle değiştirir.
// POST /auth/update-password
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	var req passwordUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	userID, _ := c.Locals("userID").(uint)
	if err := h.service.UpdatePassword(c.UserContext(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return responder.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

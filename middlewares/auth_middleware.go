package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware giriş yapmış kullanıcı ister; Locals("userID") router
// kurulumundaki session middleware'i tarafından doldurulur.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "giriş gerekli"})
	}
	return c.Next()
}

// RequireSystem yalnızca sistem yöneticisi kullanıcılara izin verir.
func RequireSystem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isSystem, ok := c.Locals("isSystem").(bool)
		if !ok || !isSystem {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "bu işlem için yetkiniz yok"})
		}
		return c.Next()
	}
}

// GuestMiddleware giriş yapmış kullanıcının tekrar login olmasını engeller.
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "zaten giriş yapılmış"})
	}
	return c.Next()
}

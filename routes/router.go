package routes

import (
	"randevu.link/configs"
	"randevu.link/models"
	"randevu.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(initializeSessionAndLocals())

	// --- Rota Grupları ---
	registerAuthRoutes(app, db)   // /auth rotaları
	registerAPIRoutes(app, db)    // /api rotaları (public rezervasyon uçları)
	registerAdminRoutes(app, db)  // /admin rotaları

	// --- 404 ---
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "kaynak bulunamadı"})
	})
}

// initializeSessionAndLocals session store'u ve kullanıcı bilgilerini
// Locals'a koyar. Giriş yapılmışsa audit kolonları için user ID'yi
// istek context'ine de yazar.
func initializeSessionAndLocals() fiber.Handler {
	store := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", store)

		sess, err := store.Get(c)
		if err != nil {
			return c.Next()
		}
		if userID, err := utils.GetUserIDFromSession(sess); err == nil {
			c.Locals("userID", userID)
			c.SetUserContext(models.ContextWithUserID(c.UserContext(), userID))
		}
		if isSystem, err := utils.GetIsSystemFromSession(sess); err == nil {
			c.Locals("isSystem", isSystem)
		}
		return c.Next()
	}
}

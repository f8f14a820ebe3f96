package routes

import (
	auth_handlers "randevu.link/handlers/auth" // İsim çakışmasını önlemek için alias
	"randevu.link/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerAuthRoutes /auth altındaki rotaları tanımlar.
func registerAuthRoutes(app *fiber.App, db *gorm.DB) {
	authHandler := auth_handlers.NewAuthHandler(db)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", middlewares.GuestMiddleware, authHandler.Login)
	authGroup.Post("/logout", middlewares.AuthMiddleware, authHandler.Logout)
	authGroup.Get("/profile", middlewares.AuthMiddleware, authHandler.Profile)
	authGroup.Post("/update-password", middlewares.AuthMiddleware, authHandler.UpdatePassword)
}

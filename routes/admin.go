package routes

import (
	admin_handlers "randevu.link/handlers/admin"
	"randevu.link/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerAdminRoutes /admin altındaki yönetim rotalarını tanımlar.
// Tümü giriş ister; sistem yöneticisi olmayanlar erişemez.
func registerAdminRoutes(app *fiber.App, db *gorm.DB) {
	scheduleHandler := admin_handlers.NewScheduleHandler(db)
	specialistHandler := admin_handlers.NewSpecialistHandler(db)
	organizationHandler := admin_handlers.NewOrganizationHandler(db)
	serviceHandler := admin_handlers.NewServiceHandler(db)
	childHandler := admin_handlers.NewChildHandler(db)

	adminGroup := app.Group("/admin")
	adminGroup.Use(
		middlewares.AuthMiddleware,
		middlewares.RequireSystem(),
	)

	// --- Takvimler ---
	adminGroup.Post("/schedules", scheduleHandler.CreateSchedule)
	adminGroup.Get("/schedules", scheduleHandler.ListSchedules)
	adminGroup.Get("/schedules/:id", scheduleHandler.GetSchedule)
	adminGroup.Delete("/schedules/:id", scheduleHandler.DeleteSchedule)

	// --- Uzmanlar ---
	adminGroup.Post("/specialists", specialistHandler.CreateSpecialist)
	adminGroup.Get("/specialists", specialistHandler.ListSpecialists)
	adminGroup.Get("/specialists/:id", specialistHandler.GetSpecialist)
	adminGroup.Put("/specialists/:id", specialistHandler.UpdateSpecialist)
	adminGroup.Post("/specialists/:id/deactivate", specialistHandler.DeactivateSpecialist)
	adminGroup.Delete("/specialists/:id", specialistHandler.DeleteSpecialist)

	// --- Kurumlar ---
	adminGroup.Post("/organizations", organizationHandler.CreateOrganization)
	adminGroup.Get("/organizations", organizationHandler.ListOrganizations)
	adminGroup.Get("/organizations/:id", organizationHandler.GetOrganization)
	adminGroup.Put("/organizations/:id", organizationHandler.UpdateOrganization)
	adminGroup.Delete("/organizations/:id", organizationHandler.DeleteOrganization)

	// --- Hizmet kataloğu ---
	adminGroup.Post("/services", serviceHandler.CreateService)
	adminGroup.Get("/services", serviceHandler.ListServices)
	adminGroup.Get("/services/:id", serviceHandler.GetService)
	adminGroup.Put("/services/:id", serviceHandler.UpdateService)
	adminGroup.Delete("/services/:id", serviceHandler.DeleteService)

	// --- Çocuk kayıtları ---
	adminGroup.Post("/children", childHandler.CreateChild)
	adminGroup.Get("/children", childHandler.ListChildren)
	adminGroup.Get("/children/by-certificate", childHandler.GetChildByBirthCertificate)
	adminGroup.Get("/children/:id", childHandler.GetChild)
	adminGroup.Put("/children/:id", childHandler.UpdateChild)
}

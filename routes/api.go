package routes

import (
	api_handlers "randevu.link/handlers/api"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerAPIRoutes /api altındaki public rotaları tanımlar.
// Rezervasyon oluşturma ve sorgulama vatandaşa açıktır, giriş istemez.
func registerAPIRoutes(app *fiber.App, db *gorm.DB) {
	reservationHandler := api_handlers.NewReservationHandler(db)
	scheduleHandler := api_handlers.NewScheduleHandler(db)

	apiGroup := app.Group("/api")

	apiGroup.Post("/reservations", reservationHandler.CreateReservation)
	apiGroup.Get("/reservations", reservationHandler.ListReservations)
	apiGroup.Get("/reservations/code/:code", reservationHandler.GetReservationByCode)
	apiGroup.Get("/reservations/:id", reservationHandler.GetReservation)

	apiGroup.Get("/schedules", scheduleHandler.ListActiveSchedules)
	apiGroup.Get("/schedules/:id", scheduleHandler.GetSchedule)
}

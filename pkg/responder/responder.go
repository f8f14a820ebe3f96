package responder

import (
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatusForError servis hatasını HTTP durum koduna eşler.
// Doğrulama → 400, bulunamadı → 404, çakışma → 409, kimlik → 401, kalan her şey → 500.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrChildNotFound),
		errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrScheduleNotFound),
		errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrSpecialistNotFound),
		errors.Is(err, services.ErrOrganizationNotFound),
		errors.Is(err, services.ErrAuthUserNotFound):
		return fiber.StatusNotFound

	case errors.Is(err, services.ErrSlotAlreadyBooked),
		errors.Is(err, services.ErrScheduleAlreadyExists),
		errors.Is(err, services.ErrServiceAlreadyExists),
		errors.Is(err, services.ErrChildAlreadyExists),
		errors.Is(err, services.ErrSpecialistHasSchedules):
		return fiber.StatusConflict

	case errors.Is(err, services.ErrReservationTimeInvalid),
		errors.Is(err, services.ErrServiceNotAllowed),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidQueryArguments),
		errors.Is(err, services.ErrScheduleInvalidInput),
		errors.Is(err, services.ErrScheduleDateInPast),
		errors.Is(err, services.ErrSpecialistInvalidInput),
		errors.Is(err, services.ErrOrganizationInvalidInput),
		errors.Is(err, services.ErrServiceInvalidInput),
		errors.Is(err, services.ErrChildInvalidInput),
		errors.Is(err, services.ErrAuthPasswordTooShort):
		return fiber.StatusBadRequest

	case errors.Is(err, services.ErrAuthInvalidCredentials),
		errors.Is(err, services.ErrAuthUserInactive):
		return fiber.StatusUnauthorized

	default:
		return fiber.StatusInternalServerError
	}
}

// Error hatayı JSON olarak döndürür. Beklenmeyen hatalar detayıyla loglanır,
// çağırana opak bir mesaj gider; iş hataları mesajlarıyla iletilir.
func Error(c *fiber.Ctx, err error) error {
	status := StatusForError(err)
	if status == fiber.StatusInternalServerError {
		configslog.Log.Error("Beklenmeyen hata",
			zap.String("path", c.Path()), zap.String("method", c.Method()), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": "işlem gerçekleştirilemedi"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// JSON veriyi verilen durum koduyla döndürür.
func JSON(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

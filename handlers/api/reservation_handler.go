package handlers // handlers/api paketi

import (
	"fmt"
	"time"

	"randevu.link/pkg/responder"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReservationHandler public rezervasyon uçlarını yönetir.
type ReservationHandler struct {
	service services.IReservationService
}

// NewReservationHandler yeni bir ReservationHandler örneği oluşturur.
func NewReservationHandler(db *gorm.DB) *ReservationHandler {
	return &ReservationHandler{service: services.NewReservationService(db)}
}

// reservationCreateRequest rezervasyon isteğinin JSON gövdesi.
type reservationCreateRequest struct {
	DateTime   string `json:"date_time"`
	ScheduleID uint   `json:"schedule_id"`
	ServiceID  uint   `json:"service_id"`
	ChildID    uint   `json:"child_id"`
	Active     bool   `json:"active"`
}

// parseDateTime istek gövdesindeki tarih/saat alanını çözümler.
// RFC3339 tercih edilir; saniyesiz kısa biçimler de kabul edilir.
func parseDateTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("date_time alanı boş")
	}
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("date_time çözümlenemedi: %q", value)
}

// parseDate "YYYY-MM-DD" formatındaki query parametresini çözümler.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// CreateReservation yeni rezervasyon oluşturur.
// POST /api/reservations
func (h *ReservationHandler) CreateReservation(c *fiber.Ctx) error {
	var req reservationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	dateTime, err := parseDateTime(req.DateTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	reservation, err := h.service.AddReservation(c.UserContext(), services.BookingRequest{
		DateTime:   dateTime,
		ScheduleID: req.ScheduleID,
		ServiceID:  req.ServiceID,
		ChildID:    req.ChildID,
		Active:     req.Active,
	})
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusCreated, reservation)
}

// GetReservation rezervasyonu ID ile döndürür.
// GET /api/reservations/:id
func (h *ReservationHandler) GetReservation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz id"})
	}
	reservation, err := h.service.FindReservationByID(c.UserContext(), uint(id))
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, reservation)
}

// GetReservationByCode rezervasyonu public onay kodu ile döndürür.
// GET /api/reservations/code/:code
func (h *ReservationHandler) GetReservationByCode(c *fiber.Ctx) error {
	reservation, err := h.service.FindReservationByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, reservation)
}

// ListReservations tarih filtrelerine göre rezervasyonları listeler.
// GET /api/reservations?date=YYYY-MM-DD&start_date=...&end_date=...
// Geçerli kombinasyonlar: filtre yok, sadece date, sadece start_date+end_date.
func (h *ReservationHandler) ListReservations(c *fiber.Ctx) error {
	var date, startDate, endDate *time.Time

	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date çözümlenemedi"})
		}
		date = &parsed
	}
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_date çözümlenemedi"})
		}
		startDate = &parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date çözümlenemedi"})
		}
		endDate = &parsed
	}

	reservations, err := h.service.GetReservations(c.UserContext(), date, startDate, endDate)
	if err != nil {
		return responder.Error(c, err)
	}
	return responder.JSON(c, fiber.StatusOK, fiber.Map{"data": reservations})
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReservationServiceError rezervasyon motoru hataları.
type ReservationServiceError string

func (e ReservationServiceError) Error() string { return string(e) }

const (
	ErrChildNotFound         ReservationServiceError = "çocuk kaydı bulunamadı"
	ErrServiceNotFound       ReservationServiceError = "hizmet bulunamadı"
	ErrScheduleNotFound      ReservationServiceError = "takvim bulunamadı"
	ErrReservationNotFound   ReservationServiceError = "rezervasyon bulunamadı"
	ErrServiceNotAllowed     ReservationServiceError = "hizmet bu takvimde verilmiyor"
	ErrInvalidDateRange      ReservationServiceError = "tarih alanları boş olamaz"
	ErrInvalidQueryArguments ReservationServiceError = "tarih filtreleri geçersiz kombinasyonda"
	ErrReservationFailed     ReservationServiceError = "rezervasyon oluşturulamadı"
)

// BookingRequest HTTP katmanından gelen rezervasyon isteğinin gövdesi.
type BookingRequest struct {
	DateTime   time.Time `json:"date_time"`
	ScheduleID uint      `json:"schedule_id"`
	ServiceID  uint      `json:"service_id"`
	ChildID    uint      `json:"child_id"`
	Active     bool      `json:"active"`
}

// IReservationService rezervasyon alma ve sorgulama işlemleri için arayüz.
type IReservationService interface {
	AddReservation(ctx context.Context, req BookingRequest) (*models.Reservation, error)
	FindReservationByID(ctx context.Context, id uint) (*models.Reservation, error)
	FindReservationByCode(ctx context.Context, code string) (*models.Reservation, error)
	FindReservationByDate(ctx context.Context, date time.Time) ([]models.Reservation, error)
	FindReservationByPeriod(ctx context.Context, start, end time.Time) ([]models.Reservation, error)
	GetReservations(ctx context.Context, date, startDate, endDate *time.Time) ([]models.Reservation, error)
}

// ReservationService IReservationService arayüzünü uygular.
type ReservationService struct {
	childRepo       repositories.IChildRepository
	serviceRepo     repositories.IServiceRepository
	reservationRepo repositories.IReservationRepository
	txManager       repositories.ITxManager
}

// NewReservationService yeni bir ReservationService örneği oluşturur.
// Veritabanı bağlantısı dışarıdan verilir; servis global duruma bağlanmaz.
func NewReservationService(db *gorm.DB) IReservationService {
	return &ReservationService{
		childRepo:       repositories.NewChildRepository(db),
		serviceRepo:     repositories.NewServiceRepository(db),
		reservationRepo: repositories.NewReservationRepository(db),
		txManager:       repositories.NewTxManager(db),
	}
}

// AddReservation rezervasyon işleminin tamamını yürütür:
// çocuk → hizmet → takvim çözülür, slot uygunluğu doğrulanır ve yeni kayıt
// takvime eklenir. Takvim çözme + doğrulama + yazma adımları tek transaction
// içinde, takvim satırı kilitliyken çalışır; aynı takvime eşzamanlı istekler
// aynı slotu iki kez alamaz. Herhangi bir adım başarısız olursa hiçbir
// değişiklik kalmaz.
func (s *ReservationService) AddReservation(ctx context.Context, req BookingRequest) (*models.Reservation, error) {
	child, err := s.childRepo.FindByID(ctx, req.ChildID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrChildNotFound, req.ChildID)
		}
		return nil, err
	}

	service, err := s.serviceRepo.FindByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrServiceNotFound, req.ServiceID)
		}
		return nil, err
	}

	var created *models.Reservation
	txErr := s.txManager.WithTx(ctx, func(txCtx context.Context, repos repositories.TxRepositories) error {
		schedule, err := repos.Schedules.FindByIDForUpdate(txCtx, req.ScheduleID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: id %d", ErrScheduleNotFound, req.ScheduleID)
			}
			return err
		}

		if !schedule.AllowsService(service.ID) {
			return fmt.Errorf("%w: %s", ErrServiceNotAllowed, service.Name)
		}

		if err := CheckTimeInSchedule(schedule, req.DateTime); err != nil {
			return err
		}

		reservation := models.Reservation{
			DateTime:   req.DateTime,
			ScheduleID: schedule.ID,
			ServiceID:  service.ID,
			ChildID:    child.ID,
			Active:     true,
		}
		if err := repos.Reservations.Create(txCtx, &reservation); err != nil {
			configslog.Log.Error("Rezervasyon oluşturulurken transaction hatası", zap.Error(err))
			return ErrReservationFailed
		}

		// Yeni kayıt takvimin rezervasyon listesine eklenir; aynı transaction
		// içindeki sonraki çakışma kontrolleri bu kaydı da görür.
		schedule.Reservations = append(schedule.Reservations, reservation)

		reservation.Schedule = *schedule
		reservation.Service = *service
		reservation.Child = *child
		created = &reservation
		return nil
	})
	if txErr != nil {
		if isReservationDomainError(txErr) {
			return nil, txErr
		}
		configslog.Log.Error("AddReservation transaction failed",
			zap.Uint("scheduleID", req.ScheduleID), zap.Error(txErr))
		return nil, txErr
	}

	configslog.SLog.Infof("Rezervasyon oluşturuldu: ID %d, takvim %d, saat %s, kod %s",
		created.ID, created.ScheduleID, created.DateTime.Format("2006-01-02 15:04"), created.Code)
	return created, nil
}

// isReservationDomainError beklenen (loglanması gerekmeyen) iş hatalarını ayırır.
func isReservationDomainError(err error) bool {
	return errors.Is(err, ErrScheduleNotFound) ||
		errors.Is(err, ErrServiceNotAllowed) ||
		errors.Is(err, ErrReservationTimeInvalid) ||
		errors.Is(err, ErrSlotAlreadyBooked)
}

// FindReservationByID rezervasyonu ID ile getirir.
func (s *ReservationService) FindReservationByID(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrReservationNotFound, id)
		}
		return nil, err
	}
	return reservation, nil
}

// FindReservationByCode rezervasyonu public onay kodu ile getirir.
func (s *ReservationService) FindReservationByCode(ctx context.Context, code string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}

// FindReservationByDate takvim günü verilen güne eşit olan tüm takvimlerin
// rezervasyonlarını düzleştirilmiş liste olarak döndürür.
func (s *ReservationService) FindReservationByDate(ctx context.Context, date time.Time) ([]models.Reservation, error) {
	if date.IsZero() {
		return nil, ErrInvalidDateRange
	}
	return s.reservationRepo.FindAllByScheduleDate(ctx, date)
}

// FindReservationByPeriod takvim günü [start, end] aralığına (sınırlar dahil)
// düşen rezervasyonları döndürür. start > end için sonuç boş listedir, hata değil.
func (s *ReservationService) FindReservationByPeriod(ctx context.Context, start, end time.Time) ([]models.Reservation, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrInvalidDateRange
	}
	return s.reservationRepo.FindAllByScheduleDateRange(ctx, start, end)
}

// GetReservations tarih filtrelerinin kombinasyonuna göre listeleme yapar.
// Geçerli kombinasyonlar: hepsi boş → tümü; sadece date → tek gün;
// sadece startDate+endDate → aralık. Diğer her kombinasyon reddedilir.
func (s *ReservationService) GetReservations(ctx context.Context, date, startDate, endDate *time.Time) ([]models.Reservation, error) {
	switch {
	case date == nil && startDate == nil && endDate == nil:
		return s.reservationRepo.FindAll(ctx)
	case date != nil && startDate == nil && endDate == nil:
		return s.FindReservationByDate(ctx, *date)
	case date == nil && startDate != nil && endDate != nil:
		return s.FindReservationByPeriod(ctx, *startDate, *endDate)
	default:
		return nil, ErrInvalidQueryArguments
	}
}

var _ IReservationService = (*ReservationService)(nil)

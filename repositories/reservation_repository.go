package repositories

import (
	"context"
	"errors"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IReservationRepository rezervasyon veritabanı işlemleri için arayüz.
type IReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
	FindByCode(ctx context.Context, code string) (*models.Reservation, error)
	FindAll(ctx context.Context) ([]models.Reservation, error)
	FindAllByScheduleDate(ctx context.Context, date time.Time) ([]models.Reservation, error)
	FindAllByScheduleDateRange(ctx context.Context, start, end time.Time) ([]models.Reservation, error)
}

// ReservationRepository IReservationRepository arayüzünü uygular.
type ReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository yeni bir ReservationRepository örneği oluşturur.
func NewReservationRepository(db *gorm.DB) IReservationRepository {
	return &ReservationRepository{db: db}
}

// NewReservationRepositoryTx transaction üzerinde çalışan repository oluşturur.
func NewReservationRepositoryTx(tx *gorm.DB) IReservationRepository {
	return &ReservationRepository{db: tx}
}

func (r *ReservationRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// preloadAll rezervasyonun döndürüleceği her yerde beklenen ilişkileri yükler.
func (r *ReservationRepository) preloadAll(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Schedule.Specialist").
		Preload("Schedule.Services").
		Preload("Service").
		Preload("Child")
}

// Create yeni rezervasyon kaydı oluşturur. ID ataması veritabanı sequence'ı ile
// yapılır; silinen kayıtların ID'leri yeniden kullanılmaz.
func (r *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	if reservation == nil || reservation.ScheduleID == 0 {
		return errors.New("geçersiz veya eksik takvim bilgisi olan rezervasyon oluşturulamaz")
	}
	return r.getDB(ctx).Create(reservation).Error
}

// FindByID rezervasyonu tüm ilişkileriyle getirir.
func (r *ReservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var reservation models.Reservation
	err := r.preloadAll(r.getDB(ctx)).First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ReservationRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &reservation, nil
}

// FindByCode rezervasyonu public onay kodu ile getirir.
func (r *ReservationRepository) FindByCode(ctx context.Context, code string) (*models.Reservation, error) {
	if code == "" {
		return nil, ErrNotFound
	}
	var reservation models.Reservation
	err := r.preloadAll(r.getDB(ctx)).Where("code = ?", code).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ReservationRepository.FindByCode: DB error", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return &reservation, nil
}

// FindAll tüm rezervasyonları getirir.
func (r *ReservationRepository) FindAll(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.preloadAll(r.getDB(ctx)).Order("date_time, id").Find(&reservations).Error
	if err != nil {
		configslog.Log.Error("ReservationRepository.FindAll: DB error", zap.Error(err))
	}
	return reservations, err
}

// FindAllByScheduleDate takvim günü verilen güne eşit olan rezervasyonları getirir.
func (r *ReservationRepository) FindAllByScheduleDate(ctx context.Context, date time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.preloadAll(r.getDB(ctx)).
		Joins("JOIN schedules ON schedules.id = reservations.schedule_id").
		Where("schedules.date = ? AND schedules.deleted_at IS NULL", date.Format("2006-01-02")).
		Order("reservations.date_time, reservations.id").
		Find(&reservations).Error
	if err != nil {
		configslog.Log.Error("ReservationRepository.FindAllByScheduleDate: DB error", zap.Error(err))
	}
	return reservations, err
}

// FindAllByScheduleDateRange takvim günü [start, end] aralığına (sınırlar dahil)
// düşen rezervasyonları getirir. Ters aralık için sonuç doğal olarak boştur.
func (r *ReservationRepository) FindAllByScheduleDateRange(ctx context.Context, start, end time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.preloadAll(r.getDB(ctx)).
		Joins("JOIN schedules ON schedules.id = reservations.schedule_id").
		Where("schedules.date >= ? AND schedules.date <= ? AND schedules.deleted_at IS NULL",
			start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("reservations.date_time, reservations.id").
		Find(&reservations).Error
	if err != nil {
		configslog.Log.Error("ReservationRepository.FindAllByScheduleDateRange: DB error", zap.Error(err))
	}
	return reservations, err
}

var _ IReservationRepository = (*ReservationRepository)(nil)

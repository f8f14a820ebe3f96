package repositories

import (
	"context"
	"errors"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IScheduleRepository takvim veritabanı işlemleri için arayüz.
type IScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	FindByID(ctx context.Context, id uint) (*models.Schedule, error)
	// FindByIDForUpdate takvim satırını FOR UPDATE kilidi ile okur. Aynı takvime
	// eşzamanlı rezervasyon denemeleri bu kilitte sıraya girer; farklı takvimler
	// birbirini bekletmez.
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Schedule, error)
	FindBySpecialistAndDate(ctx context.Context, specialistID uint, date time.Time) (*models.Schedule, error)
	FindAll(ctx context.Context) ([]models.Schedule, error)
	FindAllActive(ctx context.Context) ([]models.Schedule, error)
	CountBySpecialistID(ctx context.Context, specialistID uint) (int64, error)
	Delete(ctx context.Context, schedule *models.Schedule, deletedByUserID uint) error
}

// ScheduleRepository IScheduleRepository arayüzünü uygular.
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository yeni bir ScheduleRepository örneği oluşturur.
func NewScheduleRepository(db *gorm.DB) IScheduleRepository {
	return &ScheduleRepository{db: db}
}

// NewScheduleRepositoryTx transaction üzerinde çalışan repository oluşturur.
func NewScheduleRepositoryTx(tx *gorm.DB) IScheduleRepository {
	return &ScheduleRepository{db: tx}
}

func (r *ScheduleRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni takvim kaydını izin verilen hizmet ilişkileriyle birlikte oluşturur.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	if schedule == nil || schedule.SpecialistID == 0 {
		return errors.New("geçersiz veya eksik uzman bilgisi olan takvim oluşturulamaz")
	}
	return r.getDB(ctx).Create(schedule).Error
}

// FindByID takvimi ilişkili uzman, hizmet ve rezervasyon kayıtlarıyla getirir.
func (r *ScheduleRepository) FindByID(ctx context.Context, id uint) (*models.Schedule, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var schedule models.Schedule
	err := r.getDB(ctx).
		Preload("Specialist.Organization").
		Preload("Services").
		Preload("Reservations", "active = ?", true).
		First(&schedule, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ScheduleRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &schedule, nil
}

// FindByIDForUpdate takvim satırını kilitleyerek okur (rezervasyon commit'i için).
func (r *ScheduleRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Schedule, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var schedule models.Schedule
	// Kilit yalnızca schedules satırına uygulanır; Preload sorguları kilitsizdir.
	err := r.getDB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: clause.CurrentTable}}).
		Preload("Services").
		Preload("Reservations", "active = ?", true).
		First(&schedule, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ScheduleRepository.FindByIDForUpdate: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &schedule, nil
}

// FindBySpecialistAndDate (uzman, gün) ikilisine ait takvimi bulur.
func (r *ScheduleRepository) FindBySpecialistAndDate(ctx context.Context, specialistID uint, date time.Time) (*models.Schedule, error) {
	if specialistID == 0 {
		return nil, ErrNotFound
	}
	var schedule models.Schedule
	err := r.getDB(ctx).
		Where("specialist_id = ? AND date = ?", specialistID, date.Format("2006-01-02")).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ScheduleRepository.FindBySpecialistAndDate: DB error",
			zap.Uint("specialistID", specialistID), zap.Error(err))
		return nil, err
	}
	return &schedule, nil
}

// FindAll tüm takvimleri ilişkileriyle getirir.
func (r *ScheduleRepository) FindAll(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.getDB(ctx).
		Preload("Specialist").
		Preload("Services").
		Preload("Reservations", "active = ?", true).
		Order("date, id").
		Find(&schedules).Error
	if err != nil {
		configslog.Log.Error("ScheduleRepository.FindAll: DB error", zap.Error(err))
	}
	return schedules, err
}

// FindAllActive sadece aktif takvimleri getirir.
func (r *ScheduleRepository) FindAllActive(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.getDB(ctx).
		Preload("Specialist").
		Preload("Services").
		Preload("Reservations", "active = ?", true).
		Where("active = ?", true).
		Order("date, id").
		Find(&schedules).Error
	if err != nil {
		configslog.Log.Error("ScheduleRepository.FindAllActive: DB error", zap.Error(err))
	}
	return schedules, err
}

// CountBySpecialistID uzmana bağlı (silinmemiş) takvim sayısını döndürür.
func (r *ScheduleRepository) CountBySpecialistID(ctx context.Context, specialistID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Schedule{}).
		Where("specialist_id = ?", specialistID).
		Count(&count).Error
	return count, err
}

// Delete takvimi ve sahip olduğu rezervasyonları soft-delete eder (cascade).
func (r *ScheduleRepository) Delete(ctx context.Context, schedule *models.Schedule, deletedByUserID uint) error {
	if schedule == nil || schedule.ID == 0 {
		return errors.New("silinecek takvim geçerli değil")
	}
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		updateData := map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID}

		// Önce takvime bağlı rezervasyonlar silinir (sahiplik takvimde).
		if err := tx.Model(&models.Reservation{}).
			Where("schedule_id = ? AND deleted_at IS NULL", schedule.ID).
			Updates(updateData).Error; err != nil {
			configslog.Log.Error("ScheduleRepository.Delete: rezervasyon cascade hatası",
				zap.Uint("scheduleID", schedule.ID), zap.Error(err))
			return err
		}

		result := tx.Model(&models.Schedule{}).
			Where("id = ? AND deleted_at IS NULL", schedule.ID).
			Updates(updateData)
		if result.Error != nil {
			configslog.Log.Error("ScheduleRepository.Delete: DB error",
				zap.Uint("scheduleID", schedule.ID), zap.Error(result.Error))
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

var _ IScheduleRepository = (*ScheduleRepository)(nil)

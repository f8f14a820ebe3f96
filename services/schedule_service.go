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

// ScheduleServiceError takvim yaşam döngüsü hataları.
type ScheduleServiceError string

func (e ScheduleServiceError) Error() string { return string(e) }

const (
	ErrSpecialistNotFound     ScheduleServiceError = "uzman bulunamadı"
	ErrScheduleInvalidInput   ScheduleServiceError = "geçersiz takvim girdisi"
	ErrScheduleDateInPast     ScheduleServiceError = "takvim günü geçmişte olamaz"
	ErrScheduleAlreadyExists  ScheduleServiceError = "uzmanın bu güne ait takvimi zaten var"
	ErrScheduleCreationFailed ScheduleServiceError = "takvim oluşturulamadı"
	ErrScheduleDeletionFailed ScheduleServiceError = "takvim silinemedi"
)

// ScheduleInput takvim oluşturma isteğinin gövdesi.
type ScheduleInput struct {
	SpecialistID    uint      `json:"specialist_id"`
	Date            time.Time `json:"date"`
	ServiceIDs      []uint    `json:"service_ids"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	IntervalMinutes int       `json:"interval_minutes"`
	Active          bool      `json:"active"`
}

// IScheduleService takvim yaşam döngüsü işlemleri için arayüz.
type IScheduleService interface {
	AddSchedule(ctx context.Context, input ScheduleInput) (*models.Schedule, error)
	RemoveSchedule(ctx context.Context, id uint, deletedByUserID uint) error
	FindScheduleByID(ctx context.Context, id uint) (*models.Schedule, error)
	GetSchedules(ctx context.Context) ([]models.Schedule, error)
	GetActiveSchedules(ctx context.Context) ([]models.Schedule, error)
}

// ScheduleService IScheduleService arayüzünü uygular.
type ScheduleService struct {
	scheduleRepo   repositories.IScheduleRepository
	specialistRepo repositories.ISpecialistRepository
	serviceRepo    repositories.IServiceRepository
	now            func() time.Time
}

// NewScheduleService yeni bir ScheduleService örneği oluşturur.
func NewScheduleService(db *gorm.DB) IScheduleService {
	return &ScheduleService{
		scheduleRepo:   repositories.NewScheduleRepository(db),
		specialistRepo: repositories.NewSpecialistRepository(db),
		serviceRepo:    repositories.NewServiceRepository(db),
		now:            time.Now,
	}
}

// validateScheduleInput alan doğrulamalarını yapar; referans çözmez.
func (s *ScheduleService) validateScheduleInput(input ScheduleInput) error {
	if input.SpecialistID == 0 {
		return fmt.Errorf("%w: uzman seçilmedi", ErrScheduleInvalidInput)
	}
	if input.Date.IsZero() {
		return fmt.Errorf("%w: takvim günü boş", ErrScheduleInvalidInput)
	}
	if len(input.ServiceIDs) == 0 {
		return fmt.Errorf("%w: en az bir hizmet seçilmeli", ErrScheduleInvalidInput)
	}
	start, err := parseClock(input.StartTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScheduleInvalidInput, err)
	}
	end, err := parseClock(input.EndTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScheduleInvalidInput, err)
	}
	if start >= end {
		return fmt.Errorf("%w: başlangıç saati bitişten önce olmalı", ErrScheduleInvalidInput)
	}
	if input.IntervalMinutes < models.ScheduleIntervalMin || input.IntervalMinutes > models.ScheduleIntervalMax {
		return fmt.Errorf("%w: slot aralığı %d-%d dakika olmalı",
			ErrScheduleInvalidInput, models.ScheduleIntervalMin, models.ScheduleIntervalMax)
	}

	today := s.now()
	ty, tm, td := today.Date()
	dy, dm, dd := input.Date.Date()
	if time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC).Before(time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)) {
		return ErrScheduleDateInPast
	}
	return nil
}

// AddSchedule yeni takvim oluşturur. (uzman, gün) ikilisinin benzersizliği
// burada da kontrol edilir; veritabanındaki composite unique index son güvencedir.
func (s *ScheduleService) AddSchedule(ctx context.Context, input ScheduleInput) (*models.Schedule, error) {
	if err := s.validateScheduleInput(input); err != nil {
		return nil, err
	}

	specialist, err := s.specialistRepo.FindByID(ctx, input.SpecialistID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrSpecialistNotFound, input.SpecialistID)
		}
		return nil, err
	}

	services, err := s.serviceRepo.FindByIDs(ctx, input.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(uniqueIDs(input.ServiceIDs)) {
		return nil, fmt.Errorf("%w: hizmet listesinde bilinmeyen id var", ErrServiceNotFound)
	}

	if _, err := s.scheduleRepo.FindBySpecialistAndDate(ctx, specialist.ID, input.Date); err == nil {
		return nil, fmt.Errorf("%w: %s / %s", ErrScheduleAlreadyExists,
			specialist.Name, input.Date.Format("2006-01-02"))
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	schedule := models.Schedule{
		SpecialistID:    specialist.ID,
		Date:            input.Date,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		IntervalMinutes: input.IntervalMinutes,
		Active:          input.Active,
		Services:        services,
		Reservations:    []models.Reservation{},
	}
	if err := s.scheduleRepo.Create(ctx, &schedule); err != nil {
		// Yarış durumunda unique index devreye girer.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s / %s", ErrScheduleAlreadyExists,
				specialist.Name, input.Date.Format("2006-01-02"))
		}
		configslog.Log.Error("Takvim oluşturulamadı", zap.Uint("specialistID", specialist.ID), zap.Error(err))
		return nil, ErrScheduleCreationFailed
	}
	schedule.Specialist = *specialist

	configslog.SLog.Infof("Takvim oluşturuldu: ID %d, uzman %s, gün %s, pencere %s-%s (%d dk)",
		schedule.ID, specialist.Name, schedule.Date.Format("2006-01-02"),
		schedule.StartTime, schedule.EndTime, schedule.IntervalMinutes)
	return &schedule, nil
}

// RemoveSchedule takvimi ve sahip olduğu rezervasyonları siler (cascade).
func (s *ScheduleService) RemoveSchedule(ctx context.Context, id uint, deletedByUserID uint) error {
	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrScheduleNotFound, id)
		}
		return err
	}
	if err := s.scheduleRepo.Delete(ctx, schedule, deletedByUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrScheduleNotFound, id)
		}
		configslog.Log.Error("RemoveSchedule failed", zap.Uint("id", id), zap.Error(err))
		return ErrScheduleDeletionFailed
	}
	configslog.SLog.Infof("Takvim silindi: ID %d (%d rezervasyon ile birlikte, silen: %d)",
		id, len(schedule.Reservations), deletedByUserID)
	return nil
}

// FindScheduleByID takvimi ilişkileriyle getirir.
func (s *ScheduleService) FindScheduleByID(ctx context.Context, id uint) (*models.Schedule, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrScheduleNotFound, id)
		}
		return nil, err
	}
	return schedule, nil
}

// GetSchedules tüm takvimleri getirir.
func (s *ScheduleService) GetSchedules(ctx context.Context) ([]models.Schedule, error) {
	return s.scheduleRepo.FindAll(ctx)
}

// GetActiveSchedules sadece aktif takvimleri getirir.
func (s *ScheduleService) GetActiveSchedules(ctx context.Context) ([]models.Schedule, error) {
	return s.scheduleRepo.FindAllActive(ctx)
}

// uniqueIDs tekrar eden ID'leri eler.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

var _ IScheduleService = (*ScheduleService)(nil)

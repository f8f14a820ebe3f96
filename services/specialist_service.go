package services

import (
	"context"
	"errors"
	"fmt"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/queryparams"
	"randevu.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SpecialistServiceError uzman yönetimi hataları.
type SpecialistServiceError string

func (e SpecialistServiceError) Error() string { return string(e) }

const (
	ErrSpecialistInvalidInput SpecialistServiceError = "geçersiz uzman girdisi"
	ErrSpecialistHasSchedules SpecialistServiceError = "uzmana bağlı takvimler varken silinemez"
)

// SpecialistInput uzman oluşturma/güncelleme isteğinin gövdesi.
type SpecialistInput struct {
	Name           string `json:"name"`
	RoomNumber     string `json:"room_number"`
	OrganizationID uint   `json:"organization_id"`
	Active         bool   `json:"active"`
}

// ISpecialistService uzman yönetimi için arayüz.
type ISpecialistService interface {
	CreateSpecialist(ctx context.Context, input SpecialistInput) (*models.Specialist, error)
	GetSpecialistByID(ctx context.Context, id uint) (*models.Specialist, error)
	GetSpecialistByName(ctx context.Context, name string) (*models.Specialist, error)
	GetSpecialists(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateSpecialist(ctx context.Context, id uint, input SpecialistInput) error
	DeactivateSpecialist(ctx context.Context, id uint) error
	DeleteSpecialist(ctx context.Context, id uint, deletedByUserID uint) error
}

// SpecialistService ISpecialistService arayüzünü uygular.
type SpecialistService struct {
	repo             repositories.ISpecialistRepository
	organizationRepo repositories.IOrganizationRepository
	scheduleRepo     repositories.IScheduleRepository
}

// NewSpecialistService yeni bir SpecialistService örneği oluşturur.
func NewSpecialistService(db *gorm.DB) ISpecialistService {
	return &SpecialistService{
		repo:             repositories.NewSpecialistRepository(db),
		organizationRepo: repositories.NewOrganizationRepository(db),
		scheduleRepo:     repositories.NewScheduleRepository(db),
	}
}

func validateSpecialistInput(input SpecialistInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: isim zorunludur", ErrSpecialistInvalidInput)
	}
	if input.OrganizationID == 0 {
		return fmt.Errorf("%w: kurum seçilmedi", ErrSpecialistInvalidInput)
	}
	return nil
}

// CreateSpecialist yeni uzman kaydı oluşturur; kurum referansı çözülür.
func (s *SpecialistService) CreateSpecialist(ctx context.Context, input SpecialistInput) (*models.Specialist, error) {
	if err := validateSpecialistInput(input); err != nil {
		return nil, err
	}
	organization, err := s.organizationRepo.FindByID(ctx, input.OrganizationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrOrganizationNotFound, input.OrganizationID)
		}
		return nil, err
	}

	specialist := models.Specialist{
		Name:           input.Name,
		RoomNumber:     input.RoomNumber,
		OrganizationID: organization.ID,
		Active:         input.Active,
	}
	if err := s.repo.Create(ctx, &specialist); err != nil {
		configslog.Log.Error("Uzman oluşturulamadı", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}
	specialist.Organization = *organization

	configslog.SLog.Infof("Uzman oluşturuldu: ID %d, %s (%s)", specialist.ID, specialist.Name, organization.Name)
	return &specialist, nil
}

// GetSpecialistByID uzmanı ID ile getirir.
func (s *SpecialistService) GetSpecialistByID(ctx context.Context, id uint) (*models.Specialist, error) {
	specialist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrSpecialistNotFound, id)
		}
		return nil, err
	}
	return specialist, nil
}

// GetSpecialistByName uzmanı tam isim eşleşmesi ile getirir.
func (s *SpecialistService) GetSpecialistByName(ctx context.Context, name string) (*models.Specialist, error) {
	specialist, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSpecialistNotFound, name)
		}
		return nil, err
	}
	return specialist, nil
}

// GetSpecialists uzmanları sayfalayarak listeler.
func (s *SpecialistService) GetSpecialists(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	specialists, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Uzmanlar listelenirken hata", zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: specialists,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// UpdateSpecialist uzman bilgilerini günceller.
func (s *SpecialistService) UpdateSpecialist(ctx context.Context, id uint, input SpecialistInput) error {
	if err := validateSpecialistInput(input); err != nil {
		return err
	}
	specialist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrSpecialistNotFound, id)
		}
		return err
	}
	if input.OrganizationID != specialist.OrganizationID {
		if _, err := s.organizationRepo.FindByID(ctx, input.OrganizationID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: id %d", ErrOrganizationNotFound, input.OrganizationID)
			}
			return err
		}
	}

	specialist.Name = input.Name
	specialist.RoomNumber = input.RoomNumber
	specialist.OrganizationID = input.OrganizationID
	specialist.Active = input.Active
	if err := s.repo.Update(ctx, specialist); err != nil {
		configslog.Log.Error("Uzman güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Uzman güncellendi: ID %d", id)
	return nil
}

// DeactivateSpecialist uzmanı pasife alır; takvimleri olan uzman için silme
// yerine tercih edilen yol budur.
func (s *SpecialistService) DeactivateSpecialist(ctx context.Context, id uint) error {
	specialist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrSpecialistNotFound, id)
		}
		return err
	}
	if !specialist.Active {
		return nil
	}
	specialist.Active = false
	if err := s.repo.Update(ctx, specialist); err != nil {
		configslog.Log.Error("Uzman pasife alınamadı", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Uzman pasife alındı: ID %d", id)
	return nil
}

// DeleteSpecialist uzmanı siler. Bağlı takvimi olan uzman silinemez;
// önce takvimler kaldırılmalı ya da uzman pasife alınmalıdır.
func (s *SpecialistService) DeleteSpecialist(ctx context.Context, id uint, deletedByUserID uint) error {
	specialist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrSpecialistNotFound, id)
		}
		return err
	}

	count, err := s.scheduleRepo.CountBySpecialistID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %d takvim", ErrSpecialistHasSchedules, count)
	}

	if err := s.repo.Delete(ctx, specialist, deletedByUserID); err != nil {
		configslog.Log.Error("Uzman silinemedi", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Uzman silindi: ID %d (silen: %d)", id, deletedByUserID)
	return nil
}

var _ ISpecialistService = (*SpecialistService)(nil)

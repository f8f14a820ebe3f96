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

// ServiceCatalogError hizmet kataloğu yönetimi hataları.
type ServiceCatalogError string

func (e ServiceCatalogError) Error() string { return string(e) }

const (
	ErrServiceInvalidInput  ServiceCatalogError = "geçersiz hizmet girdisi"
	ErrServiceAlreadyExists ServiceCatalogError = "bu isimde hizmet zaten var"
)

// ServiceInput hizmet oluşturma/güncelleme isteğinin gövdesi.
type ServiceInput struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// IServiceCatalogService hizmet (randevu sebebi) kataloğu için arayüz.
type IServiceCatalogService interface {
	CreateService(ctx context.Context, input ServiceInput) (*models.Service, error)
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
	GetServiceByName(ctx context.Context, name string) (*models.Service, error)
	GetServices(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateService(ctx context.Context, id uint, input ServiceInput) error
	DeleteService(ctx context.Context, id uint, deletedByUserID uint) error
}

// ServiceCatalogService IServiceCatalogService arayüzünü uygular.
type ServiceCatalogService struct {
	repo repositories.IServiceRepository
}

// NewServiceCatalogService yeni bir ServiceCatalogService örneği oluşturur.
func NewServiceCatalogService(db *gorm.DB) IServiceCatalogService {
	return &ServiceCatalogService{repo: repositories.NewServiceRepository(db)}
}

func (s *ServiceCatalogService) CreateService(ctx context.Context, input ServiceInput) (*models.Service, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: isim zorunludur", ErrServiceInvalidInput)
	}
	service := models.Service{Name: input.Name, Active: input.Active}
	if err := s.repo.Create(ctx, &service); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", ErrServiceAlreadyExists, input.Name)
		}
		configslog.Log.Error("Hizmet oluşturulamadı", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Hizmet oluşturuldu: ID %d, %s", service.ID, service.Name)
	return &service, nil
}

func (s *ServiceCatalogService) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrServiceNotFound, id)
		}
		return nil, err
	}
	return service, nil
}

func (s *ServiceCatalogService) GetServiceByName(ctx context.Context, name string) (*models.Service, error) {
	service, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, name)
		}
		return nil, err
	}
	return service, nil
}

func (s *ServiceCatalogService) GetServices(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	services, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Hizmetler listelenirken hata", zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: services,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *ServiceCatalogService) UpdateService(ctx context.Context, id uint, input ServiceInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: isim zorunludur", ErrServiceInvalidInput)
	}
	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrServiceNotFound, id)
		}
		return err
	}
	service.Name = input.Name
	service.Active = input.Active
	if err := s.repo.Update(ctx, service); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrServiceAlreadyExists, input.Name)
		}
		configslog.Log.Error("Hizmet güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Hizmet güncellendi: ID %d", id)
	return nil
}

func (s *ServiceCatalogService) DeleteService(ctx context.Context, id uint, deletedByUserID uint) error {
	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrServiceNotFound, id)
		}
		return err
	}
	if err := s.repo.Delete(ctx, service, deletedByUserID); err != nil {
		configslog.Log.Error("Hizmet silinemedi", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Hizmet silindi: ID %d (silen: %d)", id, deletedByUserID)
	return nil
}

var _ IServiceCatalogService = (*ServiceCatalogService)(nil)

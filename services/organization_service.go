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

// OrganizationServiceError kurum yönetimi hataları.
type OrganizationServiceError string

func (e OrganizationServiceError) Error() string { return string(e) }

const (
	ErrOrganizationNotFound     OrganizationServiceError = "kurum bulunamadı"
	ErrOrganizationInvalidInput OrganizationServiceError = "geçersiz kurum girdisi"
)

// OrganizationInput kurum oluşturma/güncelleme isteğinin gövdesi.
type OrganizationInput struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// IOrganizationService kurum yönetimi için arayüz.
type IOrganizationService interface {
	CreateOrganization(ctx context.Context, input OrganizationInput) (*models.Organization, error)
	GetOrganizationByID(ctx context.Context, id uint) (*models.Organization, error)
	GetOrganizations(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateOrganization(ctx context.Context, id uint, input OrganizationInput) error
	DeleteOrganization(ctx context.Context, id uint, deletedByUserID uint) error
}

// OrganizationService IOrganizationService arayüzünü uygular.
type OrganizationService struct {
	repo repositories.IOrganizationRepository
}

// NewOrganizationService yeni bir OrganizationService örneği oluşturur.
func NewOrganizationService(db *gorm.DB) IOrganizationService {
	return &OrganizationService{repo: repositories.NewOrganizationRepository(db)}
}

func (s *OrganizationService) CreateOrganization(ctx context.Context, input OrganizationInput) (*models.Organization, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: isim zorunludur", ErrOrganizationInvalidInput)
	}
	organization := models.Organization{
		Name:        input.Name,
		Address:     input.Address,
		Description: input.Description,
	}
	if err := s.repo.Create(ctx, &organization); err != nil {
		configslog.Log.Error("Kurum oluşturulamadı", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Kurum oluşturuldu: ID %d, %s", organization.ID, organization.Name)
	return &organization, nil
}

func (s *OrganizationService) GetOrganizationByID(ctx context.Context, id uint) (*models.Organization, error) {
	organization, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrOrganizationNotFound, id)
		}
		return nil, err
	}
	return organization, nil
}

func (s *OrganizationService) GetOrganizations(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	organizations, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Kurumlar listelenirken hata", zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: organizations,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *OrganizationService) UpdateOrganization(ctx context.Context, id uint, input OrganizationInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: isim zorunludur", ErrOrganizationInvalidInput)
	}
	organization, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrOrganizationNotFound, id)
		}
		return err
	}
	organization.Name = input.Name
	organization.Address = input.Address
	organization.Description = input.Description
	if err := s.repo.Update(ctx, organization); err != nil {
		configslog.Log.Error("Kurum güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Kurum güncellendi: ID %d", id)
	return nil
}

func (s *OrganizationService) DeleteOrganization(ctx context.Context, id uint, deletedByUserID uint) error {
	organization, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrOrganizationNotFound, id)
		}
		return err
	}
	if err := s.repo.Delete(ctx, organization, deletedByUserID); err != nil {
		configslog.Log.Error("Kurum silinemedi", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Kurum silindi: ID %d (silen: %d)", id, deletedByUserID)
	return nil
}

var _ IOrganizationService = (*OrganizationService)(nil)

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

// ChildServiceError çocuk kayıtları yönetimi hataları.
type ChildServiceError string

func (e ChildServiceError) Error() string { return string(e) }

const (
	ErrChildInvalidInput  ChildServiceError = "geçersiz çocuk kaydı girdisi"
	ErrChildAlreadyExists ChildServiceError = "bu doğum belgesi numarasıyla kayıt zaten var"
)

// ChildInput çocuk kaydı oluşturma/güncelleme isteğinin gövdesi.
type ChildInput struct {
	BirthCertificateSeries string `json:"birth_certificate_series"`
	BirthCertificateNumber string `json:"birth_certificate_number"`
	FirstName              string `json:"first_name"`
	LastName               string `json:"last_name"`
	MiddleName             string `json:"middle_name"`
	Phone                  string `json:"phone"`
	Email                  string `json:"email"`
}

// IChildService çocuk kayıtları için arayüz.
type IChildService interface {
	CreateChild(ctx context.Context, input ChildInput) (*models.Child, error)
	GetChildByID(ctx context.Context, id uint) (*models.Child, error)
	GetChildByBirthCertificate(ctx context.Context, series, number string) (*models.Child, error)
	GetChildren(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateChild(ctx context.Context, id uint, input ChildInput) error
}

// ChildService IChildService arayüzünü uygular.
type ChildService struct {
	repo repositories.IChildRepository
}

// NewChildService yeni bir ChildService örneği oluşturur.
func NewChildService(db *gorm.DB) IChildService {
	return &ChildService{repo: repositories.NewChildRepository(db)}
}

func validateChildInput(input ChildInput) error {
	if input.BirthCertificateSeries == "" || input.BirthCertificateNumber == "" {
		return fmt.Errorf("%w: doğum belgesi seri ve numarası zorunludur", ErrChildInvalidInput)
	}
	if input.FirstName == "" || input.LastName == "" {
		return fmt.Errorf("%w: ad ve soyad zorunludur", ErrChildInvalidInput)
	}
	return nil
}

func (s *ChildService) CreateChild(ctx context.Context, input ChildInput) (*models.Child, error) {
	if err := validateChildInput(input); err != nil {
		return nil, err
	}
	child := models.Child{
		BirthCertificateSeries: input.BirthCertificateSeries,
		BirthCertificateNumber: input.BirthCertificateNumber,
		FirstName:              input.FirstName,
		LastName:               input.LastName,
		MiddleName:             input.MiddleName,
		Phone:                  input.Phone,
		Email:                  input.Email,
	}
	if err := s.repo.Create(ctx, &child); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s %s", ErrChildAlreadyExists,
				input.BirthCertificateSeries, input.BirthCertificateNumber)
		}
		configslog.Log.Error("Çocuk kaydı oluşturulamadı", zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Çocuk kaydı oluşturuldu: ID %d, %s %s", child.ID, child.FirstName, child.LastName)
	return &child, nil
}

func (s *ChildService) GetChildByID(ctx context.Context, id uint) (*models.Child, error) {
	child, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrChildNotFound, id)
		}
		return nil, err
	}
	return child, nil
}

func (s *ChildService) GetChildByBirthCertificate(ctx context.Context, series, number string) (*models.Child, error) {
	child, err := s.repo.FindByBirthCertificate(ctx, series, number)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %s", ErrChildNotFound, series, number)
		}
		return nil, err
	}
	return child, nil
}

func (s *ChildService) GetChildren(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	children, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Çocuk kayıtları listelenirken hata", zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: children,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *ChildService) UpdateChild(ctx context.Context, id uint, input ChildInput) error {
	if err := validateChildInput(input); err != nil {
		return err
	}
	child, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrChildNotFound, id)
		}
		return err
	}
	child.BirthCertificateSeries = input.BirthCertificateSeries
	child.BirthCertificateNumber = input.BirthCertificateNumber
	child.FirstName = input.FirstName
	child.LastName = input.LastName
	child.MiddleName = input.MiddleName
	child.Phone = input.Phone
	child.Email = input.Email
	if err := s.repo.Update(ctx, child); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s %s", ErrChildAlreadyExists,
				input.BirthCertificateSeries, input.BirthCertificateNumber)
		}
		configslog.Log.Error("Çocuk kaydı güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Çocuk kaydı güncellendi: ID %d", id)
	return nil
}

var _ IChildService = (*ChildService)(nil)

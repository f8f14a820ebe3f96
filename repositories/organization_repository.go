package repositories

import (
	"context"
	"errors"

	"randevu.link/models"
	"randevu.link/pkg/queryparams"

	"gorm.io/gorm"
)

// IOrganizationRepository kurum veritabanı işlemleri için arayüz.
type IOrganizationRepository interface {
	Create(ctx context.Context, organization *models.Organization) error
	FindByID(ctx context.Context, id uint) (*models.Organization, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Organization, int64, error)
	Update(ctx context.Context, organization *models.Organization) error
	Delete(ctx context.Context, organization *models.Organization, deletedByUserID uint) error
}

// OrganizationRepository IOrganizationRepository arayüzünü uygular.
type OrganizationRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Organization]
}

// NewOrganizationRepository yeni bir OrganizationRepository örneği oluşturur.
func NewOrganizationRepository(db *gorm.DB) IOrganizationRepository {
	base := NewBaseRepository[models.Organization](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name"})
	return &OrganizationRepository{db: db, base: base}
}

func (r *OrganizationRepository) Create(ctx context.Context, organization *models.Organization) error {
	if organization == nil {
		return errors.New("oluşturulacak kurum nil olamaz")
	}
	return r.db.WithContext(ctx).Create(organization).Error
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uint) (*models.Organization, error) {
	return r.base.FindByID(ctx, id)
}

func (r *OrganizationRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Organization, int64, error) {
	return r.base.FindAllPaginated(ctx, params)
}

func (r *OrganizationRepository) Update(ctx context.Context, organization *models.Organization) error {
	if organization == nil || organization.ID == 0 {
		return errors.New("güncellenecek kurum geçerli değil")
	}
	return r.db.WithContext(ctx).Save(organization).Error
}

func (r *OrganizationRepository) Delete(ctx context.Context, organization *models.Organization, deletedByUserID uint) error {
	return r.base.Delete(ctx, organization, deletedByUserID)
}

var _ IOrganizationRepository = (*OrganizationRepository)(nil)

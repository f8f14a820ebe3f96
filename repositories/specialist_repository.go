package repositories

import (
	"context"
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ISpecialistRepository uzman veritabanı işlemleri için arayüz.
type ISpecialistRepository interface {
	Create(ctx context.Context, specialist *models.Specialist) error
	FindByID(ctx context.Context, id uint) (*models.Specialist, error)
	FindByName(ctx context.Context, name string) (*models.Specialist, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Specialist, int64, error)
	Update(ctx context.Context, specialist *models.Specialist) error
	Delete(ctx context.Context, specialist *models.Specialist, deletedByUserID uint) error
}

// SpecialistRepository ISpecialistRepository arayüzünü uygular.
type SpecialistRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Specialist]
}

// NewSpecialistRepository yeni bir SpecialistRepository örneği oluşturur.
func NewSpecialistRepository(db *gorm.DB) ISpecialistRepository {
	base := NewBaseRepository[models.Specialist](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "active"})
	return &SpecialistRepository{db: db, base: base}
}

func (r *SpecialistRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *SpecialistRepository) Create(ctx context.Context, specialist *models.Specialist) error {
	if specialist == nil || specialist.OrganizationID == 0 {
		return errors.New("geçersiz veya eksik kurum bilgisi olan uzman oluşturulamaz")
	}
	return r.getDB(ctx).Create(specialist).Error
}

func (r *SpecialistRepository) FindByID(ctx context.Context, id uint) (*models.Specialist, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var specialist models.Specialist
	err := r.getDB(ctx).Preload("Organization").First(&specialist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SpecialistRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &specialist, nil
}

// FindByName tam isim eşleşmesi ile uzmanı bulur.
func (r *SpecialistRepository) FindByName(ctx context.Context, name string) (*models.Specialist, error) {
	if name == "" {
		return nil, ErrNotFound
	}
	var specialist models.Specialist
	err := r.getDB(ctx).Preload("Organization").Where("name = ?", name).First(&specialist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SpecialistRepository.FindByName: DB error", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &specialist, nil
}

func (r *SpecialistRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Specialist, int64, error) {
	return r.base.FindAllPaginated(ctx, params)
}

func (r *SpecialistRepository) Update(ctx context.Context, specialist *models.Specialist) error {
	if specialist == nil || specialist.ID == 0 {
		return errors.New("güncellenecek uzman geçerli değil")
	}
	return r.getDB(ctx).Save(specialist).Error
}

func (r *SpecialistRepository) Delete(ctx context.Context, specialist *models.Specialist, deletedByUserID uint) error {
	return r.base.Delete(ctx, specialist, deletedByUserID)
}

var _ ISpecialistRepository = (*SpecialistRepository)(nil)

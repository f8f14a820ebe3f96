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

// IChildRepository çocuk kayıtları için veritabanı arayüzü.
type IChildRepository interface {
	Create(ctx context.Context, child *models.Child) error
	FindByID(ctx context.Context, id uint) (*models.Child, error)
	FindByBirthCertificate(ctx context.Context, series, number string) (*models.Child, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Child, int64, error)
	Update(ctx context.Context, child *models.Child) error
	Delete(ctx context.Context, child *models.Child, deletedByUserID uint) error
}

// ChildRepository IChildRepository arayüzünü uygular.
type ChildRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Child]
}

// NewChildRepository yeni bir ChildRepository örneği oluşturur.
func NewChildRepository(db *gorm.DB) IChildRepository {
	base := NewBaseRepository[models.Child](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "last_name", "first_name"})
	return &ChildRepository{db: db, base: base}
}

func (r *ChildRepository) Create(ctx context.Context, child *models.Child) error {
	if child == nil {
		return errors.New("oluşturulacak çocuk kaydı nil olamaz")
	}
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *ChildRepository) FindByID(ctx context.Context, id uint) (*models.Child, error) {
	return r.base.FindByID(ctx, id)
}

// FindByBirthCertificate doğum belgesi seri+numara ikilisi ile kaydı bulur.
func (r *ChildRepository) FindByBirthCertificate(ctx context.Context, series, number string) (*models.Child, error) {
	if series == "" || number == "" {
		return nil, ErrNotFound
	}
	var child models.Child
	err := r.db.WithContext(ctx).
		Where("birth_certificate_series = ? AND birth_certificate_number = ?", series, number).
		First(&child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ChildRepository.FindByBirthCertificate: DB error",
			zap.String("series", series), zap.String("number", number), zap.Error(err))
		return nil, err
	}
	return &child, nil
}

func (r *ChildRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Child, int64, error) {
	return r.base.FindAllPaginated(ctx, params)
}

func (r *ChildRepository) Update(ctx context.Context, child *models.Child) error {
	if child == nil || child.ID == 0 {
		return errors.New("güncellenecek çocuk kaydı geçerli değil")
	}
	return r.db.WithContext(ctx).Save(child).Error
}

func (r *ChildRepository) Delete(ctx context.Context, child *models.Child, deletedByUserID uint) error {
	return r.base.Delete(ctx, child, deletedByUserID)
}

var _ IChildRepository = (*ChildRepository)(nil)

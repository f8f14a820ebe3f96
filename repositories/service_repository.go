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

// IServiceRepository hizmet (randevu sebebi) veritabanı işlemleri için arayüz.
type IServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	FindByID(ctx context.Context, id uint) (*models.Service, error)
	FindByName(ctx context.Context, name string) (*models.Service, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Service, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Service, int64, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, service *models.Service, deletedByUserID uint) error
}

// ServiceRepository IServiceRepository arayüzünü uygular.
type ServiceRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Service]
}

// NewServiceRepository yeni bir ServiceRepository örneği oluşturur.
func NewServiceRepository(db *gorm.DB) IServiceRepository {
	base := NewBaseRepository[models.Service](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "active"})
	return &ServiceRepository{db: db, base: base}
}

func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if service == nil {
		return errors.New("oluşturulacak hizmet nil olamaz")
	}
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	return r.base.FindByID(ctx, id)
}

// FindByName hizmeti benzersiz adı ile bulur.
func (r *ServiceRepository) FindByName(ctx context.Context, name string) (*models.Service, error) {
	if name == "" {
		return nil, ErrNotFound
	}
	var service models.Service
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ServiceRepository.FindByName: DB error", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &service, nil
}

// FindByIDs verilen ID listesindeki hizmetleri getirir. Eksik ID'lerin tespiti
// çağıran tarafın sorumluluğundadır (uzunluk karşılaştırması).
func (r *ServiceRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var services []models.Service
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services).Error
	if err != nil {
		configslog.Log.Error("ServiceRepository.FindByIDs: DB error", zap.Error(err))
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Service, int64, error) {
	return r.base.FindAllPaginated(ctx, params)
}

func (r *ServiceRepository) Update(ctx context.Context, service *models.Service) error {
	if service == nil || service.ID == 0 {
		return errors.New("güncellenecek hizmet geçerli değil")
	}
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, service *models.Service, deletedByUserID uint) error {
	return r.base.Delete(ctx, service, deletedByUserID)
}

var _ IServiceRepository = (*ServiceRepository)(nil)

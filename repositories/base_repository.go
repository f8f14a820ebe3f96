package repositories

import (
	"context"
	"errors"
	"time"

	"randevu.link/pkg/queryparams"

	"gorm.io/gorm"
)

// ErrNotFound aranan kayıt bulunamadığında tüm repository'lerin döndürdüğü ortak hata.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository ortak CRUD işlemleri için generik arayüz.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]T, int64, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T, deletedByUserID uint) error
	Count(ctx context.Context) (int64, error)
	SetAllowedSortColumns(columns []string)
}

// BaseRepository IBaseRepository'nin GORM implementasyonu.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]struct{}
}

// NewBaseRepository verilen bağlantı (veya transaction) üzerinde çalışan
// generik repository oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:                 db,
		allowedSortColumns: map[string]struct{}{"id": {}, "created_at": {}},
	}
}

// SetAllowedSortColumns sıralamaya izin verilen sütunları belirler (SQL injection önlemi).
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	allowed := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		allowed[col] = struct{}{}
	}
	r.allowedSortColumns = allowed
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("oluşturulacak kayıt nil olamaz")
	}
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Find(&entities).Error
	return entities, err
}

// FindAllPaginated kayıtları sayfalayarak ve güvenli sıralama ile döndürür.
func (r *BaseRepository[T]) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]T, int64, error) {
	var entities []T
	var totalCount int64

	var model T
	query := r.db.WithContext(ctx).Model(&model)

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return entities, 0, nil
	}

	orderColumn := "created_at"
	if _, ok := r.allowedSortColumns[params.SortBy]; ok {
		orderColumn = params.SortBy
	}
	query = query.Order(orderColumn + " " + params.OrderBy)
	query = query.Limit(params.PerPage).Offset(params.CalculateOffset())

	if err := query.Find(&entities).Error; err != nil {
		return nil, totalCount, err
	}
	return entities, totalCount, nil
}

func (r *BaseRepository[T]) Update(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("güncellenecek kayıt nil olamaz")
	}
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete kaydı soft-delete eder ve DeletedBy sütununu işlemi yapan kullanıcıyla doldurur.
func (r *BaseRepository[T]) Delete(ctx context.Context, entity *T, deletedByUserID uint) error {
	if entity == nil {
		return errors.New("silinecek kayıt nil olamaz")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		updateData := map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID}
		result := tx.Model(entity).Where("deleted_at IS NULL").Updates(updateData)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *BaseRepository[T]) Count(ctx context.Context) (int64, error) {
	var model T
	var count int64
	err := r.db.WithContext(ctx).Model(&model).Count(&count).Error
	return count, err
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)

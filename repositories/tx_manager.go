package repositories

import (
	"context"

	"gorm.io/gorm"
)

// TxRepositories rezervasyon commit'i sırasında transaction'a bağlı çalışan
// repository'leri bir arada taşır.
type TxRepositories struct {
	Schedules    IScheduleRepository
	Reservations IReservationRepository
}

// ITxManager rezervasyon motorunun transaction sınırını soyutlar.
// WithTx verilen fonksiyonu tek bir veritabanı transaction'ı içinde çalıştırır;
// fonksiyon hata döndürürse tüm değişiklikler geri alınır.
type ITxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

// GormTxManager ITxManager'ın GORM implementasyonu.
type GormTxManager struct {
	db *gorm.DB
}

// NewTxManager yeni bir GormTxManager örneği oluşturur.
func NewTxManager(db *gorm.DB) ITxManager {
	return &GormTxManager{db: db}
}

func (m *GormTxManager) WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := TxRepositories{
			Schedules:    NewScheduleRepositoryTx(tx),
			Reservations: NewReservationRepositoryTx(tx),
		}
		return fn(ctx, repos)
	})
}

var _ ITxManager = (*GormTxManager)(nil)

package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// ContextUserIDKey audit hook'larının işlemi yapan kullanıcıyı bulduğu context anahtarı.
const ContextUserIDKey contextKey = "user_id"

// BaseModel tüm tabloların ortak alanları: ID, zaman damgaları ve audit sütunları.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	CreatedBy *uint          `gorm:"index" json:"-"`
	UpdatedBy *uint          `json:"-"`
	DeletedBy *uint          `json:"-"`
}

// userIDFromContext context'e konan kullanıcı ID'sini okur, yoksa nil döner.
func userIDFromContext(ctx context.Context) *uint {
	if ctx == nil {
		return nil
	}
	if userID, ok := ctx.Value(ContextUserIDKey).(uint); ok && userID != 0 {
		return &userID
	}
	return nil
}

// ContextWithUserID audit hook'ları için kullanıcı ID'sini context'e ekler.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, ContextUserIDKey, userID)
}

// BeforeCreate CreatedBy alanını context'ten doldurur.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if userID := userIDFromContext(tx.Statement.Context); userID != nil {
		b.CreatedBy = userID
	}
	return nil
}

// BeforeUpdate UpdatedBy alanını context'ten doldurur.
func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if userID := userIDFromContext(tx.Statement.Context); userID != nil {
		b.UpdatedBy = userID
	}
	return nil
}

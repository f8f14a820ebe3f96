package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation bir çocuk adına, bir takvimin tek slotuna yapılan rezervasyondur.
// DateTime takvimin gününe eşit olmalı ve [StartTime, EndTime] penceresine düşmelidir.
// Rezervasyonun kapladığı aralık [DateTime, DateTime + takvim aralığı) olarak
// yarı açıktır; arka arkaya slotlar çakışma sayılmaz.
type Reservation struct {
	BaseModel
	Code       string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"code"`
	DateTime   time.Time `gorm:"type:timestamptz;not null;index" json:"date_time"`
	ScheduleID uint      `gorm:"not null;index" json:"schedule_id"`
	ServiceID  uint      `gorm:"not null;index" json:"service_id"`
	ChildID    uint      `gorm:"not null;index" json:"child_id"`
	Active     bool      `gorm:"default:true;index" json:"active"`

	// GORM İlişkileri
	Schedule Schedule `gorm:"foreignKey:ScheduleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Service  Service  `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`
	Child    Child    `gorm:"foreignKey:ChildID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"child"`
}

// BeforeCreate public onay kodunu üretir. BaseModel'in audit hook'unu da çalıştırır.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.Code == "" {
		r.Code = uuid.NewString()
	}
	return r.BaseModel.BeforeCreate(tx)
}

// OccupiedUntil rezervasyonun kapladığı yarı açık aralığın üst sınırını döndürür.
func (r *Reservation) OccupiedUntil(interval time.Duration) time.Time {
	return r.DateTime.Add(interval)
}

package models

import "time"

// Takvim slot aralığı için izin verilen sınırlar (dakika).
const (
	ScheduleIntervalMin = 5
	ScheduleIntervalMax = 60
)

// Schedule bir uzmanın tek bir takvim günündeki randevu penceresidir.
// StartTime/EndTime "HH:MM" formatında tutulur; pencere IntervalMinutes
// uzunluğundaki slotlara bölünerek rezerve edilir.
// (specialist_id, date) ikilisi benzersizdir: bir uzmanın aynı güne ikinci
// takvimi açılamaz.
type Schedule struct {
	BaseModel
	SpecialistID    uint      `gorm:"not null;index:idx_schedules_specialist_date,unique,where:deleted_at IS NULL" json:"specialist_id"`
	Date            time.Time `gorm:"type:date;not null;index:idx_schedules_specialist_date,unique,where:deleted_at IS NULL" json:"date"`
	StartTime       string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime         string    `gorm:"type:varchar(5);not null" json:"end_time"`
	IntervalMinutes int       `gorm:"not null" json:"interval_minutes"`
	Active          bool      `gorm:"default:true;index" json:"active"`

	// GORM İlişkileri
	Specialist   Specialist    `gorm:"foreignKey:SpecialistID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"specialist"`
	Services     []Service     `gorm:"many2many:schedule_services;" json:"services"`
	Reservations []Reservation `gorm:"foreignKey:ScheduleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reservations"`
}

// Interval slot uzunluğunu time.Duration olarak döndürür.
func (s *Schedule) Interval() time.Duration {
	return time.Duration(s.IntervalMinutes) * time.Minute
}

// AllowsService istenen hizmetin takvimin izin verilen hizmetleri arasında
// olup olmadığını kontrol eder.
func (s *Schedule) AllowsService(serviceID uint) bool {
	for _, svc := range s.Services {
		if svc.ID == serviceID {
			return true
		}
	}
	return false
}

package models

// Service randevunun alınma sebebini (muayene türü vb.) temsil eden referans kayıttır.
// Takvim oluşturulurken izin verilen hizmetler bu tablodan seçilir.
type Service struct {
	BaseModel
	Name   string `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	Active bool   `gorm:"default:true;index" json:"active"`
}

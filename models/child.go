package models

// Child adına randevu alınan çocuğun kaydıdır. Doğum belgesi seri+numara
// ikilisi benzersizdir; kayıt bu numara veya ID ile aranır.
type Child struct {
	BaseModel
	BirthCertificateSeries string `gorm:"type:varchar(10);not null;index:idx_children_birth_certificate,unique,where:deleted_at IS NULL" json:"birth_certificate_series"`
	BirthCertificateNumber string `gorm:"type:varchar(20);not null;index:idx_children_birth_certificate,unique,where:deleted_at IS NULL" json:"birth_certificate_number"`
	FirstName              string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName               string `gorm:"type:varchar(100);not null" json:"last_name"`
	MiddleName             string `gorm:"type:varchar(100)" json:"middle_name"`
	Phone                  string `gorm:"type:varchar(20)" json:"phone"`
	Email                  string `gorm:"type:varchar(150)" json:"email"`
}

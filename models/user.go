package models

// User yönetim paneline giriş yapabilen kullanıcıdır.
// IsSystem true olan kullanıcı tüm kurumların verisini yönetebilir.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(150);not null" json:"name"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Active       bool   `gorm:"default:true;index" json:"active"`
	IsSystem     bool   `gorm:"default:false" json:"is_system"`
}

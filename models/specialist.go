package models

// Specialist kurumda hizmet veren uzmanın ana kaydıdır.
// Takvimler bu kayda bağlandığı sürece fiziksel olarak silinmez, pasife alınır.
type Specialist struct {
	BaseModel
	Name           string `gorm:"type:varchar(200);not null;index" json:"name"`
	RoomNumber     string `gorm:"type:varchar(20)" json:"room_number"`
	Active         bool   `gorm:"default:true;index" json:"active"`
	OrganizationID uint   `gorm:"index;not null" json:"organization_id"`

	// GORM İlişkileri
	Organization Organization `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"organization"`
}

package models

// Organization randevu hizmeti veren kamu kurumunu temsil eder.
// Referans veridir; Specialist kayıtları bu tabloya bağlanır.
type Organization struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null" json:"name"`
	Address     string `gorm:"type:varchar(300)" json:"address"`
	Description string `gorm:"type:text" json:"description"`
}

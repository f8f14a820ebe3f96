package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSpecialistsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating specialists table...")
	err := db.AutoMigrate(&models.Specialist{})
	if err != nil {
		configslog.Log.Error("Failed to migrate specialists table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Specialists table migrated successfully")
	return nil
}

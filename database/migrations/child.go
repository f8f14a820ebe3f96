package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateChildrenTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating children table...")
	err := db.AutoMigrate(&models.Child{})
	if err != nil {
		configslog.Log.Error("Failed to migrate children table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Children table migrated successfully")
	return nil
}

package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateServicesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating services table...")
	err := db.AutoMigrate(&models.Service{})
	if err != nil {
		configslog.Log.Error("Failed to migrate services table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Services table migrated successfully")
	return nil
}

package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateSchedulesTable takvim tablosunu ve schedule_services ara tablosunu kurar.
func MigrateSchedulesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating schedules & schedule_services tables...")
	err := db.AutoMigrate(&models.Schedule{})
	if err != nil {
		configslog.Log.Error("Failed to migrate schedules & schedule_services tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Schedules & schedule_services tables migrated successfully")
	return nil
}

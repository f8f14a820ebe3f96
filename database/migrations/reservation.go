package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateReservationsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating reservations table...")
	err := db.AutoMigrate(&models.Reservation{})
	if err != nil {
		configslog.Log.Error("Failed to migrate reservations table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Reservations table migrated successfully")
	return nil
}

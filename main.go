package main

import (
	"os"
	"os/signal"
	"syscall"

	"randevu.link/configs/configsdatabase"
	"randevu.link/configs/configslog"
	"randevu.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env yoksa ortam değişkenleriyle devam edilir.
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	app := fiber.New(fiber.Config{
		AppName: "randevu.link",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				code = fiberErr.Code
			}
			if code == fiber.StatusInternalServerError {
				configslog.Log.Error("İstek işlenirken hata", zap.String("path", c.Path()), zap.Error(err))
				return c.Status(code).JSON(fiber.Map{"error": "işlem gerçekleştirilemedi"})
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	routes.SetupRoutes(app, db)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Sunucu %s portunda dinliyor...", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}

package routes

import (
	"factory-app/config"
	"factory-app/controllers"
	"factory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStorageRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/storage", middleware.AuthMiddleware)
	storageController := controllers.NewStorageController(db)

	api.Get("/", storageController.GetAllStorageItems)
	api.Post("/", storageController.CreateStorageItem)
	api.Get("/availability", storageController.GetAvailability)
	api.Post("/cleanup", storageController.CleanupEmptyLots)
	api.Post("/upload-excel", storageController.CreateStorageItemsFromExcel)
	api.Get("/export", storageController.ExportExcel)
	api.Get("/:id", storageController.GetStorageItemByID)
	api.Put("/:id", storageController.UpdateStorageItem)
	api.Delete("/:id", storageController.DeleteStorageItem)
}

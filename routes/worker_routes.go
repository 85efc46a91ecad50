package routes

import (
	"factory-app/config"
	"factory-app/controllers"
	"factory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWorkerRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/workers", middleware.AuthMiddleware)
	workerController := controllers.NewWorkerController(db)

	api.Get("/", workerController.GetAllWorkers)
	api.Post("/", workerController.CreateWorker)
	api.Get("/:id", workerController.GetWorkerByID)
	api.Put("/:id", workerController.UpdateWorker)
	api.Delete("/:id", workerController.DeleteWorker)
}

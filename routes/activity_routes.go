package routes

import (
	"factory-app/config"
	"factory-app/controllers"
	"factory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupActivityRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/activities", middleware.AuthMiddleware)
	activityController := controllers.NewActivityController(db)

	api.Get("/", activityController.GetAllActivities)
	api.Post("/", activityController.CreateActivity)
	api.Delete("/:id", activityController.DeleteActivity)
}

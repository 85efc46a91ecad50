package routes

import (
	"factory-app/config"
	"factory-app/controllers"
	"factory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDeductionRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/deductions", middleware.AuthMiddleware)
	deductionController := controllers.NewDeductionController(db)

	api.Get("/", deductionController.GetAllDeductions)
	api.Post("/", deductionController.CreateDeduction)
	api.Get("/:id", deductionController.GetDeductionByID)
	api.Put("/:id", deductionController.UpdateDeduction)
	api.Delete("/:id", deductionController.DeleteDeduction)
}

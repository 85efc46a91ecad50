package routes

import (
	"factory-app/config"
	"factory-app/controllers"
	"factory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSaleRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/sales", middleware.AuthMiddleware)
	saleController := controllers.NewSaleController(db)

	api.Get("/", saleController.GetAllSales)
	api.Post("/", saleController.CreateSale)
	api.Get("/:id", saleController.GetSaleByID)
	api.Put("/:id", saleController.UpdateSale)
	api.Delete("/:id", saleController.DeleteSale)
}

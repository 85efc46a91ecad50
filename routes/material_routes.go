package routes

import (
	"factory-app/config"
	"factory-app/controllers"
	"factory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMaterialRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/materials", middleware.AuthMiddleware)
	materialController := controllers.NewMaterialController(db)

	api.Get("/", materialController.GetAllMaterials)
	api.Post("/", materialController.CreateMaterial)
	api.Get("/:id", materialController.GetMaterialByID)
	api.Put("/:id", materialController.UpdateMaterial)
	api.Delete("/:id", materialController.DeleteMaterial)
}

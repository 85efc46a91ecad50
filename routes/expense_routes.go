package routes

import (
	"factory-app/config"
	"factory-app/controllers"
	"factory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupExpenseRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/expenses", middleware.AuthMiddleware)
	expenseController := controllers.NewExpenseController(db)

	api.Get("/", expenseController.GetAllExpenses)
	api.Post("/", expenseController.CreateExpense)
	api.Get("/:id", expenseController.GetExpenseByID)
	api.Put("/:id", expenseController.UpdateExpense)
	api.Delete("/:id", expenseController.DeleteExpense)
}

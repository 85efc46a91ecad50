package routes

import (
	"factory-app/config"
	"factory-app/controllers"
	"factory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/attendance", middleware.AuthMiddleware)
	attendanceController := controllers.NewAttendanceController(db)

	api.Get("/", attendanceController.GetAllAttendance)
	api.Post("/", attendanceController.CreateAttendance)
	api.Get("/summary", attendanceController.GetMonthlySummary)
	api.Get("/date/:date", attendanceController.GetAttendanceByDate)
	api.Put("/:id", attendanceController.UpdateAttendance)
	api.Delete("/:id", attendanceController.DeleteAttendance)
}

package main

import (
	"factory-app/config"
	"factory-app/controllers/idgen"
	"factory-app/database"
	"factory-app/routes"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupMaterialRoutes(app, db)
	routes.SetupStorageRoutes(app, db)
	routes.SetupSaleRoutes(app, db)
	routes.SetupExpenseRoutes(app, db)
	routes.SetupWorkerRoutes(app, db)
	routes.SetupAttendanceRoutes(app, db)
	routes.SetupDeductionRoutes(app, db)
	routes.SetupActivityRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}

// database/seeder.go
package database

import (
	"factory-app/models"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedMaterials(db)
	SeedStorageItems(db)
	SeedWorkers(db)
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("Failed to hash admin password: %v", err)
			}
			admin := models.User{
				Name:     "Administrator",
				Username: "admin",
				Email:    "admin@factory.local",
				Password: string(hashed),
				IsActive: true,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Fatalf("Failed to create admin user: %v", err)
			}
		} else {
			log.Fatalf("Unexpected DB error: %v", err)
		}
	}
}

func SeedMaterials(db *gorm.DB) {
	materials := []models.Material{
		{Name: "Ammonium Nitrate"},
		{Name: "Potassium Chloride"},
		{Name: "Phosphoric Acid"},
		{Name: "Urea"},
		{Name: "Sulfuric Acid"},
		{Name: "Limestone"},
		{Name: "Potassium Sulfate"},
		{Name: "Gypsum"},
	}

	for _, m := range materials {
		var existing models.Material
		if err := db.Where("name = ?", m.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&m)
			}
		}
	}
}

func SeedStorageItems(db *gorm.DB) {
	var count int64
	db.Model(&models.StorageItem{}).Count(&count)
	if count > 0 {
		return
	}

	today := time.Now().Format("2006-01-02")
	items := []models.StorageItem{
		{ItemName: "Ammonium Nitrate", QuantityInTons: 150, PurchasePricePerTon: 350, DealerName: "Global Chemical Industries", DealerContact: "+20 120 555 0001", PurchaseDate: today},
		{ItemName: "Potassium Chloride", QuantityInTons: 120, PurchasePricePerTon: 420, DealerName: "Nile Valley Chemicals Ltd.", DealerContact: "+20 122 555 0002", PurchaseDate: today},
		{ItemName: "Phosphoric Acid", QuantityInTons: 80, PurchasePricePerTon: 650, DealerName: "Egyptian Raw Materials Co.", DealerContact: "+20 121 555 0003", PurchaseDate: today},
		{ItemName: "Urea", QuantityInTons: 200, PurchasePricePerTon: 300, DealerName: "Mediterranean Chemical Supply", DealerContact: "+20 123 555 0004", PurchaseDate: today},
		{ItemName: "Sulfuric Acid", QuantityInTons: 95, PurchasePricePerTon: 280, DealerName: "Cairo Chemical Trading", DealerContact: "+20 124 555 0005", PurchaseDate: today},
		{ItemName: "Limestone", QuantityInTons: 300, PurchasePricePerTon: 45, DealerName: "Delta Mining & Chemicals", DealerContact: "+20 125 555 0006", PurchaseDate: today},
		{ItemName: "Potassium Sulfate", QuantityInTons: 60, PurchasePricePerTon: 580, DealerName: "Suez Industrial Supplies", DealerContact: "+20 126 555 0007", PurchaseDate: today},
	}

	for _, item := range items {
		db.Create(&item)
	}
}

func SeedWorkers(db *gorm.DB) {
	var count int64
	db.Model(&models.Worker{}).Count(&count)
	if count > 0 {
		return
	}

	workers := []models.Worker{
		{Name: "Ahmed Mohamed", Position: "Production Supervisor", Department: "Production", Salary: 8000, Phone: "+20 100 111 2233", Email: "ahmed.mohamed@factory.local", HireDate: "2022-03-15", IsActive: true},
		{Name: "Fatima Ibrahim", Position: "Quality Control Specialist", Department: "QualityControl", Salary: 6500, Phone: "+20 101 222 3344", Email: "fatima.ibrahim@factory.local", HireDate: "2023-01-10", IsActive: true},
		{Name: "Mohamed Hassan", Position: "Machine Operator", Department: "Production", Salary: 5500, Phone: "+20 102 333 4455", Email: "mohamed.hassan@factory.local", HireDate: "2021-11-20", IsActive: true},
		{Name: "Amira Ali", Position: "Storage Manager", Department: "Storage", Salary: 7000, Phone: "+20 103 444 5566", Email: "amira.ali@factory.local", HireDate: "2022-07-08", IsActive: true},
		{Name: "Khaled Mahmoud", Position: "Maintenance Technician", Department: "Maintenance", Salary: 6000, Phone: "+20 104 555 6677", Email: "khaled.mahmoud@factory.local", HireDate: "2023-05-22", IsActive: true},
	}

	for _, w := range workers {
		db.Create(&w)
	}
}

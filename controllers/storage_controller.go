package controllers

import (
	"errors"
	"factory-app/models"
	"factory-app/repositories"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type StorageController struct {
	DB *gorm.DB
}

func NewStorageController(db *gorm.DB) *StorageController {
	return &StorageController{DB: db}
}

func (c *StorageController) GetAllStorageItems(ctx *fiber.Ctx) error {
	query := c.DB.Order("created_at ASC, id ASC")

	if item := ctx.Query("item"); item != "" {
		query = query.Where("item_name = ?", item)
	}

	var items []models.StorageItem
	if err := query.Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Storage items found", "data": items})
}

func (c *StorageController) GetStorageItemByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.StorageItem
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Storage item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Storage item found", "data": item})
}

// GetAvailability reports the aggregate quantity per material name.
func (c *StorageController) GetAvailability(ctx *fiber.Ctx) error {
	item := ctx.Query("item")
	if item == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "item query parameter is required"})
	}

	total, err := repositories.NewInventoryRepository(c.DB).AvailableQuantity(item)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"item_name": item, "available_quantity": total},
	})
}

func (c *StorageController) CreateStorageItem(ctx *fiber.Ctx) error {
	var input struct {
		ItemName            string  `json:"item_name" validate:"required"`
		QuantityInTons      float64 `json:"quantity_in_tons" validate:"gte=0"`
		PurchasePricePerTon float64 `json:"purchase_price_per_ton" validate:"gte=0"`
		DealerName          string  `json:"dealer_name"`
		DealerContact       string  `json:"dealer_contact"`
		PurchaseDate        string  `json:"purchase_date"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var material models.Material
	if err := c.DB.Where("name = ?", input.ItemName).First(&material).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Material not found: " + input.ItemName})
	}

	if input.PurchaseDate == "" {
		input.PurchaseDate = time.Now().Format("2006-01-02")
	}

	item := models.StorageItem{
		ItemName:            input.ItemName,
		QuantityInTons:      input.QuantityInTons,
		PurchasePricePerTon: input.PurchasePricePerTon,
		DealerName:          input.DealerName,
		DealerContact:       input.DealerContact,
		PurchaseDate:        input.PurchaseDate,
		CreatedBy:           int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Storage item created successfully", "data": item})
}

func (c *StorageController) UpdateStorageItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var existing models.StorageItem
	if err := c.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Storage item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		ItemName            *string  `json:"item_name"`
		QuantityInTons      *float64 `json:"quantity_in_tons"`
		PurchasePricePerTon *float64 `json:"purchase_price_per_ton"`
		DealerName          *string  `json:"dealer_name"`
		DealerContact       *string  `json:"dealer_contact"`
		PurchaseDate        *string  `json:"purchase_date"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.ItemName != nil {
		var material models.Material
		if err := c.DB.Where("name = ?", *input.ItemName).First(&material).Error; err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Material not found: " + *input.ItemName})
		}
		existing.ItemName = *input.ItemName
	}
	if input.QuantityInTons != nil {
		if *input.QuantityInTons < 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quantity cannot be negative"})
		}
		existing.QuantityInTons = *input.QuantityInTons
	}
	if input.PurchasePricePerTon != nil {
		existing.PurchasePricePerTon = *input.PurchasePricePerTon
	}
	if input.DealerName != nil {
		existing.DealerName = *input.DealerName
	}
	if input.DealerContact != nil {
		existing.DealerContact = *input.DealerContact
	}
	if input.PurchaseDate != nil {
		existing.PurchaseDate = *input.PurchaseDate
	}
	existing.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&existing).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Storage item updated successfully", "data": existing})
}

func (c *StorageController) DeleteStorageItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.StorageItem
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Storage item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	item.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Storage item deleted successfully", "data": item})
}

// CleanupEmptyLots removes exhausted lots on demand. Kept out of the deduction
// path so a sale never deletes rows beyond the material it touches.
func (c *StorageController) CleanupEmptyLots(ctx *fiber.Ctx) error {
	removed, err := repositories.NewInventoryRepository(c.DB).CleanupEmptyLots()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Removed %d empty lots", removed),
		"data":    fiber.Map{"removed": removed},
	})
}

type StorageUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	ErrorCount    int      `json:"error_count"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateStorageItemsFromExcel bulk-loads purchase lots from an uploaded
// spreadsheet. Columns: ITEM_NAME, QUANTITY_TONS, PRICE_PER_TON, DEALER_NAME,
// DEALER_CONTACT, PURCHASE_DATE.
func (c *StorageController) CreateStorageItemsFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "File is required"})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Only Excel files (.xlsx, .xls) are allowed"})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to open file"})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Failed to read Excel file"})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "No sheets found in Excel file"})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to read rows"})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Excel file must contain header and at least one data row"})
	}

	result := StorageUploadResult{
		TotalRows:     len(rows) - 1,
		ErrorMessages: []string{},
	}

	userID := int(ctx.Locals("userID").(float64))

	// Cache for material validation
	materialCache := make(map[string]bool)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i, row := range rows[1:] {
		rowNum := i + 2 // Excel row number (header is row 1)

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 3 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected at least 3)", rowNum))
			continue
		}

		itemName := strings.TrimSpace(row[0])

		if _, exists := materialCache[itemName]; !exists {
			var material models.Material
			if err := tx.Where("name = ?", itemName).First(&material).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Material '%s' not found", rowNum, itemName))
				continue
			}
			materialCache[itemName] = true
		}

		quantity, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil || quantity < 0 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid quantity '%s'", rowNum, row[1]))
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil || price < 0 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid price '%s'", rowNum, row[2]))
			continue
		}

		item := models.StorageItem{
			ItemName:            itemName,
			QuantityInTons:      quantity,
			PurchasePricePerTon: price,
			CreatedBy:           userID,
			PurchaseDate:        time.Now().Format("2006-01-02"),
		}
		if len(row) > 3 {
			item.DealerName = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			item.DealerContact = strings.TrimSpace(row[4])
		}
		if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
			item.PurchaseDate = strings.TrimSpace(row[5])
		}

		if err := tx.Create(&item).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create lot - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to commit transaction"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d errors", result.SuccessCount, result.ErrorCount),
		"data":    result,
	})
}

// ExportExcel streams the current lots as a spreadsheet.
func (c *StorageController) ExportExcel(ctx *fiber.Ctx) error {
	var items []models.StorageItem
	if err := c.DB.Order("item_name ASC, created_at ASC").Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Item Name")
	f.SetCellValue(sheet, "B1", "Quantity (tons)")
	f.SetCellValue(sheet, "C1", "Price / ton")
	f.SetCellValue(sheet, "D1", "Dealer")
	f.SetCellValue(sheet, "E1", "Dealer Contact")
	f.SetCellValue(sheet, "F1", "Purchase Date")

	for i, item := range items {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), item.ItemName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), item.QuantityInTons)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), item.PurchasePricePerTon)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), item.DealerName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), item.DealerContact)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), item.PurchaseDate)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="storage.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel file")
	}

	return nil
}

package services

import (
	"factory-app/config"
	"factory-app/repositories"
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// NotifyLowStock mails the configured recipient when a material's aggregate
// availability drops below the threshold. Best effort: failures are logged
// and never surface to the request that triggered the check.
func NotifyLowStock(db *gorm.DB, itemName string) {
	if config.SMTPHost == "" || config.AlertRecipient == "" {
		return
	}

	total, err := repositories.NewInventoryRepository(db).AvailableQuantity(itemName)
	if err != nil {
		log.Println("Low stock check failed:", err)
		return
	}
	if total >= config.LowStockThreshold {
		return
	}

	subject := fmt.Sprintf("Low stock alert: %s", itemName)
	body := fmt.Sprintf("Remaining stock for <b>%s</b> is %.3f tons, below the %.3f ton threshold.",
		itemName, total, config.LowStockThreshold)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.AlertRecipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("Failed to send low stock alert:", err)
	}
}

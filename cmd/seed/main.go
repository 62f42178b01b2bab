// Command seed bootstraps the first company and its administrator. It is
// idempotent: rerunning with the same SEED_* environment reuses the existing
// rows and re-promotes the admin.
package main

import (
	"errors"
	"os"

	"todo-service/internal/model"
	"todo-service/internal/service"
	"todo-service/pkg/config"
	"todo-service/pkg/database"
	"todo-service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	companyName := getenv("SEED_COMPANY_NAME", "Default Company")
	companyDesc := getenv("SEED_COMPANY_DESC", "")
	adminEmail := getenv("SEED_ADMIN_EMAIL", "admin@example.com")
	adminUsername := getenv("SEED_ADMIN_USERNAME", "admin")
	adminPassword := getenv("SEED_ADMIN_PASSWORD", "")
	adminFirst := getenv("SEED_ADMIN_FIRST", "")
	adminLast := getenv("SEED_ADMIN_LAST", "")

	if adminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var company model.Company
		result := tx.Where("name = ?", companyName).First(&company)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			company = model.Company{Name: companyName, Description: companyDesc}
			if err := tx.Create(&company).Error; err != nil {
				return err
			}
		} else if result.Error != nil {
			return result.Error
		}

		hashed, err := service.HashPassword(adminPassword)
		if err != nil {
			return err
		}

		var admin model.User
		result = tx.Where("email = ?", adminEmail).First(&admin)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			admin = model.User{
				Email:          adminEmail,
				Username:       adminUsername,
				FirstName:      adminFirst,
				LastName:       adminLast,
				HashedPassword: hashed,
				IsActive:       true,
				IsAdmin:        true,
				CompanyID:      company.ID,
			}
			return tx.Create(&admin).Error
		}
		if result.Error != nil {
			return result.Error
		}

		admin.CompanyID = company.ID
		admin.IsActive = true
		admin.IsAdmin = true
		if adminUsername != "" {
			admin.Username = adminUsername
		}
		if adminFirst != "" {
			admin.FirstName = adminFirst
		}
		if adminLast != "" {
			admin.LastName = adminLast
		}
		return tx.Save(&admin).Error
	})
	if err != nil {
		log.Fatal("Seed failed", zap.Error(err))
	}

	log.Info("Seed completed",
		zap.String("company", companyName),
		zap.String("admin", adminEmail))
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

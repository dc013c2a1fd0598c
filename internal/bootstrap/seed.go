package bootstrap

import (
	"os"

	"go-hrms/internal/employee"
	"go-hrms/internal/rbac"
	"go-hrms/internal/settings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed provisions the default admin account, a couple of sample employees
// and the settings singleton on an empty database. Re-runs are no-ops.
func Seed(db *gorm.DB) error {
	logger := zap.L().Named("bootstrap.seed")

	var count int64
	if err := db.Model(&employee.Employee{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		adminPassword := os.Getenv("ADMIN_PASSWORD")
		if adminPassword == "" {
			adminPassword = "admin"
		}

		seeds := []struct {
			name     string
			username string
			password string
			role     string
			salary   float64
		}{
			{"Administrator", "admin", adminPassword, rbac.RoleAdmin, 0},
			{"Babar Azam", "babar", "babar123", rbac.RoleEmployee, 45000},
			{"Sara Khan", "sara", "sara123", rbac.RoleEmployee, 38000},
		}

		for _, s := range seeds {
			hashed, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			empl := employee.Employee{
				ID:       uuid.New(),
				Name:     s.name,
				Username: s.username,
				Password: string(hashed),
				Role:     s.role,
				Salary:   s.salary,
				Status:   "Active",
			}
			if err := db.Create(&empl).Error; err != nil {
				return err
			}
		}

		logger.Info("seeded default accounts", zap.Int("count", len(seeds)))
	}

	var settingsCount int64
	if err := db.Model(&settings.Settings{}).Count(&settingsCount).Error; err != nil {
		return err
	}
	if settingsCount == 0 {
		def := settings.Defaults()
		if err := db.Create(&def).Error; err != nil {
			return err
		}
		logger.Info("seeded default settings")
	}

	return nil
}

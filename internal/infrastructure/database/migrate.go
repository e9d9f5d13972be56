package database

import (
	"github.com/winning-appliances/service-automation/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates the service request, customer response and
// product catalog tables.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.ServiceRequest{},
		&model.CustomerResponse{},
		&model.CatalogProduct{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}
	logger.Info("GORM auto-migrations completed successfully")

	logger.Info("Creating custom indexes...")
	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// customIndexes are the partial indexes AutoMigrate cannot express.
var customIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_service_requests_pending ON service_requests (lower(customer_email), created_at DESC) WHERE status = 'waiting_customer'`,
}

func createCustomIndexes(db *gorm.DB) error {
	for _, stmt := range customIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

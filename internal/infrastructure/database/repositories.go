package database

import (
	adapterRepo "github.com/winning-appliances/service-automation/internal/adapter/repository"
	domainRepo "github.com/winning-appliances/service-automation/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories holds the gorm-backed stores
type Repositories struct {
	ServiceRequest domainRepo.ServiceRequestRepository
	Catalog        domainRepo.CatalogRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		ServiceRequest: adapterRepo.NewServiceRequestRepository(db, logger),
		Catalog:        adapterRepo.NewCatalogRepository(db, logger),
	}
}

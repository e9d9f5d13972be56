package model

import (
	"time"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
)

// CatalogProduct represents a product_catalog row
type CatalogProduct struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SKU          string    `gorm:"column:sku;size:100;not null;uniqueIndex:unique_sku" json:"sku"`
	Manufacturer string    `gorm:"size:100;not null;index:idx_manufacturer" json:"manufacturer"`
	Category     string    `gorm:"size:100;index:idx_category" json:"category"`
	Description  string    `gorm:"type:text" json:"description"`
	ProductType  string    `gorm:"size:100;index:idx_product_type" json:"product_type"`
	Status       string    `gorm:"size:20;default:'Active';index:idx_status" json:"status"`
	CreatedAt    time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (CatalogProduct) TableName() string {
	return "product_catalog"
}

func CatalogProductFromEntity(e *entity.CatalogProduct) *CatalogProduct {
	return &CatalogProduct{
		ID:           e.ID,
		SKU:          e.SKU,
		Manufacturer: e.Manufacturer,
		Category:     e.Category,
		Description:  e.Description,
		ProductType:  e.ProductType,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

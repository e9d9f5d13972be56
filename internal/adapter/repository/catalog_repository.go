package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
	"github.com/winning-appliances/service-automation/internal/domain/model"
	domainRepo "github.com/winning-appliances/service-automation/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type catalogRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCatalogRepository creates a new product catalog repository
func NewCatalogRepository(db *gorm.DB, logger *zap.Logger) domainRepo.CatalogRepository {
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert creates or updates a product by SKU
func (r *catalogRepository) Upsert(ctx context.Context, product *entity.CatalogProduct) (bool, error) {
	var existing model.CatalogProduct

	err := r.db.WithContext(ctx).
		Where("sku = ?", product.SKU).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row := model.CatalogProductFromEntity(product)
		row.ID = 0
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return false, fmt.Errorf("failed to create product %s: %w", product.SKU, err)
		}
		product.ID = row.ID
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get product %s: %w", product.SKU, err)
	}

	err = r.db.WithContext(ctx).
		Model(&existing).
		Updates(map[string]interface{}{
			"manufacturer": product.Manufacturer,
			"category":     product.Category,
			"description":  product.Description,
			"product_type": product.ProductType,
			"status":       product.Status,
			"updated_at":   time.Now(),
		}).Error
	if err != nil {
		return false, fmt.Errorf("failed to update product %s: %w", product.SKU, err)
	}

	product.ID = existing.ID
	return false, nil
}

// Stats summarises the catalog
func (r *catalogRepository) Stats(ctx context.Context, topManufacturers int) (*entity.CatalogStats, error) {
	var totals struct {
		Total         int64
		Manufacturers int64
		ProductTypes  int64
	}

	err := r.db.WithContext(ctx).
		Model(&model.CatalogProduct{}).
		Select("COUNT(*) AS total, COUNT(DISTINCT manufacturer) AS manufacturers, COUNT(DISTINCT product_type) AS product_types").
		Scan(&totals).Error
	if err != nil {
		r.logger.Error("Failed to get catalog totals", zap.Error(err))
		return nil, fmt.Errorf("failed to get catalog totals: %w", err)
	}

	var top []entity.ManufacturerCount
	err = r.db.WithContext(ctx).
		Model(&model.CatalogProduct{}).
		Select("manufacturer, COUNT(*) AS count").
		Group("manufacturer").
		Order("count DESC").
		Limit(topManufacturers).
		Scan(&top).Error
	if err != nil {
		r.logger.Error("Failed to get top manufacturers", zap.Error(err))
		return nil, fmt.Errorf("failed to get top manufacturers: %w", err)
	}

	return &entity.CatalogStats{
		Total:            totals.Total,
		Manufacturers:    totals.Manufacturers,
		ProductTypes:     totals.ProductTypes,
		TopManufacturers: top,
	}, nil
}

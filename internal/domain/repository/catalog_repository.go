package repository

import (
	"context"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
)

type CatalogRepository interface {
	// Upsert inserts or updates a product keyed by SKU.
	Upsert(ctx context.Context, product *entity.CatalogProduct) (created bool, err error)
	Stats(ctx context.Context, topManufacturers int) (*entity.CatalogStats, error)
}

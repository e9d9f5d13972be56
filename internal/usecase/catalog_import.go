package usecase

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/winning-appliances/service-automation/internal/domain/classifier"
	"github.com/winning-appliances/service-automation/internal/domain/entity"
	"github.com/winning-appliances/service-automation/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	DefaultCatalogBatchSize = 100
	catalogMinFields        = 4
	maxCatalogLineBytes     = 1 << 20
)

// ParseCatalogTSV reads manufacturer, category, SKU, description and an
// optional status per tab-separated line. Lines with fewer than four fields
// are ignored, as are lines without a manufacturer or SKU.
func ParseCatalogTSV(r io.Reader) (products []entity.CatalogProduct, ignored int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxCatalogLineBytes)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < catalogMinFields {
			ignored++
			continue
		}

		product := entity.CatalogProduct{
			Manufacturer: strings.TrimSpace(fields[0]),
			Category:     strings.TrimSpace(fields[1]),
			SKU:          strings.TrimSpace(fields[2]),
			Description:  strings.TrimSpace(fields[3]),
			Status:       entity.CatalogStatusActive,
		}
		if len(fields) > 4 {
			if status := strings.TrimSpace(fields[4]); status != "" {
				product.Status = status
			}
		}
		if product.Manufacturer == "" || product.SKU == "" {
			ignored++
			continue
		}

		product.ProductType = classifier.ProductTypeFromCatalog(product.Category, product.Description)
		products = append(products, product)
	}

	if err := scanner.Err(); err != nil {
		return nil, ignored, fmt.Errorf("failed to read catalog: %w", err)
	}
	return products, ignored, nil
}

type CatalogImportResult struct {
	Parsed   int
	Imported int
	Updated  int
	// Skipped counts products whose upsert failed.
	Skipped int
	Stats   *entity.CatalogStats
}

type CatalogImporter struct {
	catalogRepo      repository.CatalogRepository
	batchSize        int
	topManufacturers int
	logger           *zap.Logger
}

func NewCatalogImporter(catalogRepo repository.CatalogRepository, batchSize, topManufacturers int, logger *zap.Logger) *CatalogImporter {
	if batchSize <= 0 {
		batchSize = DefaultCatalogBatchSize
	}
	return &CatalogImporter{
		catalogRepo:      catalogRepo,
		batchSize:        batchSize,
		topManufacturers: topManufacturers,
		logger:           logger,
	}
}

// Import upserts products batch by batch, then collects catalog statistics.
// A failing product is logged and counted as skipped.
func (i *CatalogImporter) Import(ctx context.Context, products []entity.CatalogProduct) (*CatalogImportResult, error) {
	result := &CatalogImportResult{Parsed: len(products)}

	for start := 0; start < len(products); start += i.batchSize {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		end := min(start+i.batchSize, len(products))
		for idx := start; idx < end; idx++ {
			p := products[idx]
			created, err := i.catalogRepo.Upsert(ctx, &p)
			switch {
			case err != nil:
				i.logger.Warn("Failed to import product", zap.String("sku", p.SKU), zap.Error(err))
				result.Skipped++
			case created:
				result.Imported++
			default:
				result.Updated++
			}
		}

		i.logger.Info("Import progress",
			zap.Int("processed", end),
			zap.Int("total", len(products)),
			zap.Int("percent", end*100/len(products)),
			zap.Int("imported", result.Imported),
			zap.Int("updated", result.Updated),
			zap.Int("skipped", result.Skipped))
	}

	stats, err := i.catalogRepo.Stats(ctx, i.topManufacturers)
	if err != nil {
		return result, fmt.Errorf("failed to collect catalog stats: %w", err)
	}
	result.Stats = stats

	return result, nil
}

package usecase

import (
	"context"

	"github.com/winning-appliances/service-automation/internal/domain/classifier"
	"github.com/winning-appliances/service-automation/internal/domain/entity"
	domainErrors "github.com/winning-appliances/service-automation/internal/domain/errors"
	"github.com/winning-appliances/service-automation/internal/domain/repository"
	"go.uber.org/zap"
)

// OptionLookup is the outcome of one option lookup. Err is set only when the
// sheet could not be fetched or parsed; an empty Options with a nil Err means
// nothing matched.
type OptionLookup struct {
	Key     classifier.Key
	Options []entity.ServiceOption
	Err     error
}

// OptionMatcher selects service options for a SKU and warranty status.
type OptionMatcher struct {
	source repository.ServiceOptionSource
	logger *zap.Logger
}

func NewOptionMatcher(source repository.ServiceOptionSource, logger *zap.Logger) *OptionMatcher {
	return &OptionMatcher{
		source: source,
		logger: logger,
	}
}

// Lookup classifies sku, fetches the sheet and keeps rows whose manufacturer,
// product type and warranty status equal the key exactly. Sheet order is
// preserved and duplicates are kept.
func (m *OptionMatcher) Lookup(ctx context.Context, sku, warrantyStatus string) OptionLookup {
	key := classifier.Classify(sku, warrantyStatus)

	table, err := m.source.FetchTable(ctx)
	if err != nil {
		return OptionLookup{
			Key: key,
			Err: domainErrors.NewExternalLookupError("failed to load service options", err),
		}
	}

	options := []entity.ServiceOption{}
	for _, row := range table.Rows {
		if row[entity.ColumnManufacturer] == key.Manufacturer &&
			row[entity.ColumnProductType] == key.ProductType &&
			row[entity.ColumnWarrantyStatus] == key.WarrantyStatus {
			options = append(options, entity.ServiceOptionFromRow(row))
		}
	}

	return OptionLookup{Key: key, Options: options}
}

// Match is Lookup with failures logged and reported as no options.
func (m *OptionMatcher) Match(ctx context.Context, sku, warrantyStatus string) []entity.ServiceOption {
	lookup := m.Lookup(ctx, sku, warrantyStatus)
	if lookup.Err != nil {
		m.logger.Warn("Service option lookup failed, continuing without options",
			zap.String("sku", sku),
			zap.String("manufacturer", lookup.Key.Manufacturer),
			zap.String("product_type", lookup.Key.ProductType),
			zap.String("warranty_status", warrantyStatus),
			zap.Error(lookup.Err))
		return []entity.ServiceOption{}
	}

	m.logger.Info("Service options matched",
		zap.String("sku", sku),
		zap.String("manufacturer", lookup.Key.Manufacturer),
		zap.String("product_type", lookup.Key.ProductType),
		zap.String("warranty_status", warrantyStatus),
		zap.Int("options_found", len(lookup.Options)))
	return lookup.Options
}

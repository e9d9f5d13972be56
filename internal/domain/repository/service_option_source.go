package repository

import (
	"context"

	"github.com/winning-appliances/service-automation/internal/domain/csvtable"
)

// ServiceOptionSource fetches the full service options sheet. Implementations
// must not cache: every call reflects the sheet as currently published.
type ServiceOptionSource interface {
	FetchTable(ctx context.Context) (csvtable.Table, error)
}

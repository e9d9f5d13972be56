package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/winning-appliances/service-automation/internal/domain/csvtable"
	domainRepo "github.com/winning-appliances/service-automation/internal/domain/repository"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrSourceNotConfigured is returned by the source used when no option sheet
// is configured.
var ErrSourceNotConfigured = errors.New("service option source is not configured")

type sheetsOptionSource struct {
	service   *sheets.Service
	sheetID   string
	sheetName string
	logger    *zap.Logger
}

// NewSheetsOptionSource reads the options sheet through the Sheets API v4
// values endpoint. Extra client options are appended after the API key.
func NewSheetsOptionSource(ctx context.Context, apiKey, sheetID, sheetName string, logger *zap.Logger, opts ...option.ClientOption) (domainRepo.ServiceOptionSource, error) {
	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)

	service, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &sheetsOptionSource{
		service:   service,
		sheetID:   sheetID,
		sheetName: sheetName,
		logger:    logger,
	}, nil
}

func (s *sheetsOptionSource) FetchTable(ctx context.Context) (csvtable.Table, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.sheetID, s.sheetName).Context(ctx).Do()
	if err != nil {
		return csvtable.Table{}, fmt.Errorf("failed to read sheet %s: %w", s.sheetName, err)
	}

	if len(resp.Values) == 0 {
		return csvtable.Table{}, nil
	}

	headers := cellsToStrings(resp.Values[0])
	table := csvtable.Table{Headers: headers, Rows: make([]csvtable.Row, 0, len(resp.Values)-1)}
	for _, cells := range resp.Values[1:] {
		table.Rows = append(table.Rows, csvtable.NewRow(headers, cellsToStrings(cells)))
	}

	s.logger.Debug("Fetched service options sheet",
		zap.String("sheet", s.sheetName),
		zap.Int("rows", len(table.Rows)))
	return table, nil
}

func cellsToStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if c != nil {
			out[i] = fmt.Sprint(c)
		}
	}
	return out
}

type unconfiguredOptionSource struct{}

// NewUnconfiguredOptionSource always fails with ErrSourceNotConfigured.
func NewUnconfiguredOptionSource() domainRepo.ServiceOptionSource {
	return unconfiguredOptionSource{}
}

func (unconfiguredOptionSource) FetchTable(context.Context) (csvtable.Table, error) {
	return csvtable.Table{}, ErrSourceNotConfigured
}

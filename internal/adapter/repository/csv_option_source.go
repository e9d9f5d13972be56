package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/winning-appliances/service-automation/internal/domain/csvtable"
	domainRepo "github.com/winning-appliances/service-automation/internal/domain/repository"
	"go.uber.org/zap"
)

// PublishedCSVURL is the CSV export address of a published sheet tab.
func PublishedCSVURL(sheetID, sheetName string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		url.PathEscape(sheetID), url.QueryEscape(sheetName))
}

type csvOptionSource struct {
	client *http.Client
	url    string
	logger *zap.Logger
}

// NewCSVOptionSource reads the options sheet from a published CSV URL.
func NewCSVOptionSource(client *http.Client, csvURL string, logger *zap.Logger) domainRepo.ServiceOptionSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &csvOptionSource{
		client: client,
		url:    csvURL,
		logger: logger,
	}
}

func (s *csvOptionSource) FetchTable(ctx context.Context) (csvtable.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return csvtable.Table{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := s.client.Do(req)
	if err != nil {
		return csvtable.Table{}, fmt.Errorf("failed to fetch service options: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return csvtable.Table{}, fmt.Errorf("failed to read service options: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("Service options sheet returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.String("url", s.url))
		return csvtable.Table{}, fmt.Errorf("service options sheet returned status %d", resp.StatusCode)
	}

	table, err := csvtable.Parse(string(body))
	if err != nil {
		return csvtable.Table{}, fmt.Errorf("failed to parse service options: %w", err)
	}

	s.logger.Debug("Fetched service options sheet", zap.Int("rows", len(table.Rows)))
	return table, nil
}

package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func TestSheetsOptionSource_FetchTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/sheet-id/values/"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"range": "'Service Options'!A1:D3",
			"majorDimension": "ROWS",
			"values": [
				["Manufacturer", "Product Type", "Warranty Status", "Service Agent", "Phone Number"],
				["Miele", "Oven", "In Warranty", "Miele Care", "1300 111 111"],
				["Neff", "Dishwasher", "Out of Warranty"]
			]
		}`))
	}))
	defer server.Close()

	source, err := NewSheetsOptionSource(context.Background(), "test-key", "sheet-id", "Service Options", zap.NewNop(),
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)

	table, err := source.FetchTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Manufacturer", "Product Type", "Warranty Status", "Service Agent", "Phone Number"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "1300 111 111", table.Rows[0]["Phone Number"])
	assert.Equal(t, "", table.Rows[1]["Service Agent"])
}

func TestSheetsOptionSource_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	source, err := NewSheetsOptionSource(context.Background(), "bad", "sheet-id", "Service Options", zap.NewNop(),
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)

	_, err = source.FetchTable(context.Background())
	assert.Error(t, err)
}

func TestUnconfiguredOptionSource(t *testing.T) {
	_, err := NewUnconfiguredOptionSource().FetchTable(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotConfigured)
}

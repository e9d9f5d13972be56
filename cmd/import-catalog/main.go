package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/winning-appliances/service-automation/internal/config"
	"github.com/winning-appliances/service-automation/internal/infrastructure/database"
	"github.com/winning-appliances/service-automation/internal/usecase"
	"github.com/winning-appliances/service-automation/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens before exit.
func run() int {
	file := flag.String("file", "", "tab-separated catalog file (default stdin)")
	batchSize := flag.Int("batch", 0, "products per batch (default from config)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		FilePath:    cfg.Log.FilePath,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	input, closeInput, err := openInput(*file)
	if err != nil {
		zapLogger.Fatal("Failed to open catalog", zap.String("file", *file), zap.Error(err))
	}
	defer closeInput()

	products, ignored, err := usecase.ParseCatalogTSV(input)
	if err != nil {
		zapLogger.Fatal("Failed to parse catalog", zap.Error(err))
	}
	zapLogger.Info("Parsed catalog",
		zap.Int("products", len(products)),
		zap.Int("ignored_lines", ignored))

	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	repos := database.NewRepositories(db, zapLogger)

	if *batchSize <= 0 {
		*batchSize = cfg.Catalog.BatchSize
	}
	importer := usecase.NewCatalogImporter(repos.Catalog, *batchSize, cfg.Catalog.TopManufacturers, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := importer.Import(ctx, products)
	return reportImport(zapLogger, result, ignored, err)
}

// reportImport logs the import outcome and returns the exit code.
func reportImport(zapLogger *zap.Logger, result *usecase.CatalogImportResult, ignored int, err error) int {
	if err != nil {
		zapLogger.Error("Catalog import did not complete",
			zap.Int("imported", result.Imported),
			zap.Int("updated", result.Updated),
			zap.Int("skipped", result.Skipped),
			zap.Error(err))
		return 1
	}

	zapLogger.Info("Catalog import complete",
		zap.Int("parsed", result.Parsed),
		zap.Int("imported", result.Imported),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Int("ignored_lines", ignored))

	zapLogger.Info("Catalog statistics",
		zap.Int64("total_products", result.Stats.Total),
		zap.Int64("manufacturers", result.Stats.Manufacturers),
		zap.Int64("product_types", result.Stats.ProductTypes))
	for _, m := range result.Stats.TopManufacturers {
		zapLogger.Info("Top manufacturer",
			zap.String("manufacturer", m.Manufacturer),
			zap.Int64("products", m.Count))
	}
	return 0
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

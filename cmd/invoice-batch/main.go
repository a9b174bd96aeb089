package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/danielolaitan/invoice-agent/gen/ent"
	"github.com/danielolaitan/invoice-agent/internal/categorize"
	"github.com/danielolaitan/invoice-agent/internal/common"
	"github.com/danielolaitan/invoice-agent/internal/document"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/export"
	"github.com/danielolaitan/invoice-agent/internal/extract"
	"github.com/danielolaitan/invoice-agent/internal/ingest"
	"github.com/danielolaitan/invoice-agent/internal/llm"
	"github.com/danielolaitan/invoice-agent/internal/llm/ollama"
	"github.com/danielolaitan/invoice-agent/internal/pipeline"
	"github.com/danielolaitan/invoice-agent/internal/reconcile"
	repo "github.com/danielolaitan/invoice-agent/internal/repository"
	"github.com/danielolaitan/invoice-agent/internal/storage"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory to process invoices from (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
		force   = flag.Bool("force", false, "re-extract files that already have an invoice row")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, cleanup, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	vendorsRepo := repo.NewVendorRepository(entc, logger)
	projectsRepo := repo.NewProjectRepository(entc, logger)

	blobs, err := storage.NewFSStore(cfg.Storage.LocalDir)
	if err != nil {
		logger.Error("failed to open local blob storage", "error", err)
		os.Exit(1)
	}

	source, err := ingest.NewDirSource(*dir, true)
	if err != nil {
		logger.Error("failed to open input directory", "error", err)
		os.Exit(1)
	}

	ocr := document.NewOCR(document.OCRConfig{
		Pdftoppm:  cfg.OCR.Pdftoppm,
		Tesseract: cfg.OCR.Tesseract,
		DPI:       cfg.OCR.DPI,
		MaxPages:  cfg.OCR.MaxPages,
	}, logger)
	extractor := document.NewExtractor(ocr, logger)

	var classifier llm.ItemClassifier
	if cfg.Classifier.BaseURL != "" {
		classifier = ollama.NewClient(ollama.Config{
			BaseURL:     cfg.Classifier.BaseURL,
			Model:       cfg.Classifier.Model,
			Temperature: cfg.Classifier.Temperature,
			Timeout:     cfg.Classifier.Timeout,
		}, logger)
		logger.Info("item classifier enabled", "model", cfg.Classifier.Model)
	} else {
		logger.Warn("OLLAMA_BASE_URL not set, using keyword categorization only")
	}
	categorizer := categorize.NewCategorizer(classifier, logger)

	processor := pipeline.NewProcessor(
		logger, source, extractor, extract.NewEngine(logger), categorizer,
		blobs, invoicesRepo, cfg.ExtractorVersion,
	)

	logger.Info("scanning directory", "dir", *dir)
	ids, err := source.Search(ctx, 0)
	if err != nil {
		logger.Error("failed to scan directory", "error", err)
		os.Exit(1)
	}

	processed := 0
	failures := 0
	for _, id := range ids {
		if err := processor.HandleMessage(ctx, id, *force); err != nil {
			logger.Error("failed to process file", "file", id, "error", err)
			failures++
			continue
		}
		processed++
	}

	// one reconciliation sweep over everything just ingested
	reconcileWorker := reconcile.NewWorker(
		registry{vendors: vendorsRepo, projects: projectsRepo},
		invoicesRepo, 0, len(ids)+1, logger,
	)
	reconciled, err := reconcileWorker.RunOnce(ctx)
	if err != nil {
		logger.Error("reconciliation sweep failed", "error", err)
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(invoicesRepo, logger)
	xlsxBytes, err := exportService.ExportInvoicesXLSX(ctx, from, to)
	if err != nil {
		logger.Error("failed to export invoices", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0o644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_found", len(ids),
		"files_processed", processed,
		"failures", failures,
		"reconciled", reconciled,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files found: %d\n", len(ids))
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}

func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if !inmem && cfg.Database.DSN != "" {
		entc, pool, err := repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return entc, func() { repo.Close(entc, pool, logger) }, nil
	}

	if !inmem {
		logger.Warn("DB_URL not set, using in-memory database")
	}
	entc, err := repo.OpenSQLite(ctx, "", logger)
	if err != nil {
		return nil, nil, err
	}
	return entc, func() { _ = entc.Close() }, nil
}

type registry struct {
	vendors  repo.VendorRepository
	projects repo.ProjectRepository
}

func (r registry) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	return r.vendors.ListVendors(ctx)
}

func (r registry) ListProjects(ctx context.Context) ([]entity.Project, error) {
	return r.projects.ListProjects(ctx)
}

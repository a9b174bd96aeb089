package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/danielolaitan/invoice-agent/internal/async"
	"github.com/danielolaitan/invoice-agent/internal/categorize"
	"github.com/danielolaitan/invoice-agent/internal/common"
	"github.com/danielolaitan/invoice-agent/internal/document"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
	"github.com/danielolaitan/invoice-agent/internal/ingest"
	gmailsource "github.com/danielolaitan/invoice-agent/internal/ingest/gmail"
	"github.com/danielolaitan/invoice-agent/internal/llm"
	"github.com/danielolaitan/invoice-agent/internal/llm/ollama"
	"github.com/danielolaitan/invoice-agent/internal/pipeline"
	"github.com/danielolaitan/invoice-agent/internal/reconcile"
	repo "github.com/danielolaitan/invoice-agent/internal/repository"
	"github.com/danielolaitan/invoice-agent/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	vendorsRepo := repo.NewVendorRepository(entc, logger)
	projectsRepo := repo.NewProjectRepository(entc, logger)

	var blobs storage.BlobStore
	if cfg.Storage.Bucket != "" {
		gcsStore, err := storage.NewGCSStore(ctx, cfg.Storage.Bucket, cfg.Storage.Prefix, logger)
		if err != nil {
			logger.Error("failed to open blob storage", "error", err)
			os.Exit(1)
		}
		defer gcsStore.Close()
		blobs = gcsStore
	} else {
		fsStore, err := storage.NewFSStore(cfg.Storage.LocalDir)
		if err != nil {
			logger.Error("failed to open local blob storage", "error", err)
			os.Exit(1)
		}
		blobs = fsStore
		logger.Warn("no bucket configured, storing blobs locally", "dir", cfg.Storage.LocalDir)
	}

	source, err := gmailsource.NewSource(ctx, gmailsource.Config{
		CredentialsFile: cfg.Gmail.CredentialsFile,
		TokenFile:       cfg.Gmail.TokenFile,
		UserID:          cfg.Gmail.UserID,
		ProcessedLabel:  cfg.Gmail.ProcessedLabel,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to mailbox", "error", err)
		os.Exit(1)
	}

	ocr := document.NewOCR(document.OCRConfig{
		Pdftoppm:  cfg.OCR.Pdftoppm,
		Tesseract: cfg.OCR.Tesseract,
		DPI:       cfg.OCR.DPI,
		MaxPages:  cfg.OCR.MaxPages,
	}, logger)
	extractor := document.NewExtractor(ocr, logger)
	engine := extract.NewEngine(logger)

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
		logger, source, extractor, engine, categorizer,
		blobs, invoicesRepo, cfg.ExtractorVersion,
	)

	var queue async.Queue
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("failed to ping redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		queue = async.NewRedisQueue(client, cfg.Redis.QueueName, processor,
			cfg.Worker.ExtractWorkers, cfg.Worker.ProcessTimeout, logger)
		logger.Info("durable queue enabled", "addr", cfg.Redis.Addr, "queue", cfg.Redis.QueueName)
	} else {
		queue = async.NewWorkerQueue(processor, logger,
			async.WithWorkers(cfg.Worker.ExtractWorkers),
			async.WithQueueSize(512),
			async.WithProcessTimeout(cfg.Worker.ProcessTimeout),
		)
	}

	syncService := ingest.NewSyncService(source, invoicesRepo, queue, cfg.Gmail.MaxResults, logger)
	go syncService.Run(ctx, cfg.Worker.SyncInterval)

	reconcileWorker := reconcile.NewWorker(
		registry{vendors: vendorsRepo, projects: projectsRepo},
		invoicesRepo,
		cfg.Worker.ReconcileInterval,
		cfg.Worker.ReconcileBatchSize,
		logger,
	)
	go reconcileWorker.Run(ctx)

	// gRPC health endpoint for orchestration probes
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("invoiced listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// registry joins the vendor and project repositories behind the reconcile
// worker's read interface.
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

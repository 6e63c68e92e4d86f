package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/fieldline/docparse/gen/proto/docparse/v1"
	"github.com/fieldline/docparse/internal/async"
	"github.com/fieldline/docparse/internal/common"
	"github.com/fieldline/docparse/internal/decoder"
	"github.com/fieldline/docparse/internal/export"
	"github.com/fieldline/docparse/internal/ingest"
	"github.com/fieldline/docparse/internal/pipeline"
	repo "github.com/fieldline/docparse/internal/repository"
	svc "github.com/fieldline/docparse/internal/server"
)

// pathProcessor adapts the pipeline processor to the queue contract.
type pathProcessor struct {
	proc *pipeline.Processor
}

func (p pathProcessor) ProcessPath(ctx context.Context, path string) error {
	_, _, err := p.proc.ProcessFile(ctx, path)
	return err
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repo.Open(ctx, repo.Config{
		DSN:         cfg.Database.DSN,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open archive database", "error", err, "dsn", cfg.Database.DSN)
		os.Exit(1)
	}
	defer repo.Close(db, logger)

	if err := repo.HealthCheck(ctx, db, cfg.Database.HealthTimeout, logger); err != nil {
		logger.Error("failed to ping archive database", "error", err)
		os.Exit(1)
	}

	runsRepo, err := repo.NewParseRunRepository(db, logger)
	if err != nil {
		logger.Error("failed to prepare parse run repository", "error", err)
		os.Exit(1)
	}

	pipe := pipeline.NewPipeline(logger, pipeline.Config{
		LineProximity: cfg.Pipeline.LineProximity,
	}, decoder.NewAuto())
	processor := pipeline.NewProcessor(logger, pipe, runsRepo)
	exporter := export.NewService(runsRepo, logger)

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	parseService := svc.NewParseService(processor, runsRepo, exporter, logger)
	v1.RegisterParseServiceServer(grpcServer, parseService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	// Optional drop-directory ingestion.
	var queue *async.ProcessorQueue
	if cfg.Ingest.WatchDir != "" {
		queue = async.NewProcessorQueue(pathProcessor{processor}, logger,
			async.WithWorkers(cfg.Ingest.Workers),
			async.WithQueueSize(cfg.Ingest.QueueSize),
			async.WithProcessTimeout(cfg.Ingest.ProcessTimeout),
		)
		paths, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       []string{cfg.Ingest.WatchDir},
			InitialScan: true,
			Debounce:    cfg.Ingest.Debounce,
		})
		if err != nil {
			logger.Error("failed to start drop-directory watcher", "dir", cfg.Ingest.WatchDir, "error", err)
			os.Exit(1)
		}
		go func() {
			for path := range paths {
				_ = queue.Enqueue(ctx, async.Job{Path: path, SubmittedAt: time.Now()})
			}
		}()
		go func() {
			for err := range watchErrs {
				logger.Warn("watcher reported error", "error", err)
			}
		}()
		logger.Info("watching drop directory", "dir", cfg.Ingest.WatchDir)
	}

	logger.Info("docparsed listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	if queue != nil {
		queue.Shutdown(context.Background())
	}
	grpcServer.GracefulStop()
}

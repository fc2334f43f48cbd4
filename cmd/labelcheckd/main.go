package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	labelcheckv1 "github.com/labelcheck/labelcheck/gen/labelcheck/v1"
	"github.com/labelcheck/labelcheck/internal/common"
	"github.com/labelcheck/labelcheck/internal/compare"
	"github.com/labelcheck/labelcheck/internal/export"
	"github.com/labelcheck/labelcheck/internal/llm/openai"
	"github.com/labelcheck/labelcheck/internal/pipeline"
	"github.com/labelcheck/labelcheck/internal/repository"
	"github.com/labelcheck/labelcheck/internal/server"
	"github.com/labelcheck/labelcheck/internal/vision/azure"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}()
	if pool != nil {
		defer pool.Close()
	}

	labels := repository.NewLabelRepository(entc, logger)
	jobs := repository.NewVerificationJobRepository(entc, logger)
	items := repository.NewValidationItemRepository(entc, logger)

	ocrClient := azure.NewClient(azure.Config{
		Endpoint: cfg.Vision.Endpoint,
		APIKey:   cfg.Vision.APIKey,
		Timeout:  cfg.Vision.Timeout,
	}, logger)
	classifier := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		Lenient:     cfg.LLM.Lenient,
	}, logger)

	engine := compare.NewEngine(compare.Config{MinorFields: cfg.Verify.MinorFields})
	ocrStage := pipeline.NewOCRStage(labels, jobs, ocrClient, logger)
	verifyStage := pipeline.NewVerifyStage(labels, jobs, items, classifier, engine, cfg.Verify, logger)
	processor := pipeline.NewProcessor(logger, labels, jobs, ocrStage, verifyStage, cfg.Verify.PipelineTimeout)
	exporter := export.NewService(items, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewVerificationService(labels, items, processor, exporter, logger)
	labelcheckv1.RegisterLabelVerificationServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}

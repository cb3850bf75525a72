package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/wealthflow-forecast/internal/adapter/grpc"
	"github.com/simaogato/wealthflow-forecast/internal/adapter/repository/postgres"
	"github.com/simaogato/wealthflow-forecast/internal/config"
	"github.com/simaogato/wealthflow-forecast/internal/logger"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/forecast"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/goal"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/portfolio"
	"github.com/simaogato/wealthflow-forecast/internal/usecase/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Init(cfg.LogLevel)

	// 1. Setup Database
	// Add 2-second delay to ensure Postgres is up (Simple retry)
	time.Sleep(2 * time.Second)

	db, err := postgres.NewDB(cfg.DBConnStr)
	if err != nil {
		logger.L().Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.EnsureSchema(ctx); err != nil {
		logger.L().Fatalf("Failed to apply database schema: %v", err)
	}

	// 2. Initialize Repositories (Postgres)
	assetRepo := postgres.NewAssetRepository(db)
	goalRepo := postgres.NewGoalRepository(db)
	snapshotRepo := postgres.NewSnapshotRepository(db)

	// 3. Initialize Services (Use Cases)
	forecastService := forecast.NewForecastService(assetRepo)
	portfolioService := portfolio.NewPortfolioService(assetRepo)
	goalService := goal.NewGoalService(goalRepo, assetRepo)
	recorder := snapshot.NewRecorder(assetRepo, snapshotRepo, forecastService)

	if cfg.SnapshotsEnabled {
		if err := recorder.Start(cfg.SnapshotSchedule); err != nil {
			logger.L().Fatalf("Failed to start snapshot recorder: %v", err)
		}
	}

	// 4. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)

	grpcAdapter := grpcadapter.NewServer(portfolioService, forecastService, goalService, recorder)
	grpcadapter.RegisterNetWorthServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.L().Fatalf("Failed to listen on %s: %v", cfg.GRPCAddr, err)
	}

	// Start server in a goroutine
	go func() {
		logger.L().Infof("gRPC server listening on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.L().Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, recorder)
}

// waitForShutdown waits for SIGTERM or SIGINT, stops the snapshot job and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, recorder *snapshot.Recorder) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.L().Infof("Received signal: %v. Shutting down gracefully...", sig)

	recorder.Stop()
	grpcServer.GracefulStop()
	logger.L().Info("gRPC server stopped")
}

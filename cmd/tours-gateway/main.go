package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	httpapi "github.com/ozzus/tours-gateway/internal/api/http"
	"github.com/ozzus/tours-gateway/internal/api/http/handlers"
	"github.com/ozzus/tours-gateway/internal/application/service"
	"github.com/ozzus/tours-gateway/internal/config"
	"github.com/ozzus/tours-gateway/internal/grpcapp"
	"github.com/ozzus/tours-gateway/internal/infrastructures/provider"
	"github.com/ozzus/tours-gateway/internal/infrastructures/provider/auth"
	providerclient "github.com/ozzus/tours-gateway/internal/infrastructures/provider/http/client"
	"github.com/ozzus/tours-gateway/internal/infrastructures/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "tours-gateway"

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	shutdownTracer, err := tracing.Init(serviceName, cfg.Jaeger.Address)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	scheme, err := auth.Resolve(cfg.Provider.Credentials())
	if err != nil {
		log.Fatal("provider credentials are not configured", zap.Error(err))
	}

	log.Info("tours-gateway starting",
		zap.String("env", cfg.Env),
		zap.String("http_addr", cfg.HTTP.Address()),
		zap.String("provider_base_url", cfg.Provider.BaseURL),
		zap.String("auth_mode", string(scheme.Mode())),
		zap.Strings("allowed_origins", cfg.CORS.AllowedOrigins),
	)

	activityClient := providerclient.NewClient(cfg.Provider.BaseURL, scheme, cfg.Provider.Timeout)
	source := provider.NewSource(log, activityClient, cfg.Provider.VendorID)
	tourService := service.NewTourService(log, source)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Log:            log,
		Tours:          handlers.NewToursHandler(log, tourService, cfg.Provider.Timeout),
		Health:         handlers.Health(cfg.CORS.AllowedOrigins, nil),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Address(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	var grpcApp *grpcapp.GrpcApp
	if cfg.GRPC.Enabled() {
		grpcApp = grpcapp.New(log, cfg.GRPC.Host, cfg.GRPC.Port)
		go func() {
			errCh <- grpcApp.Run()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", zap.Error(err))
		}
	}

	if grpcApp != nil {
		grpcApp.SetServing(false)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", zap.Error(err))
	}

	if grpcApp != nil {
		grpcApp.Stop()
	}
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log.With(zap.String("service", serviceName))
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

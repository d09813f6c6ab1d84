package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"womenhub/cmd/app"
	"womenhub/internal/config"
	handlers "womenhub/internal/handler"
	"womenhub/internal/logging"
	"womenhub/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("close dependencies", zap.Error(err))
		}
	}()

	limiter := middleware.NewRateLimiter(cfg.AI.RatePerHour)
	if err := limiter.TrustProxies(cfg.AI.TrustedProxies...); err != nil {
		logger.Fatal("invalid TRUSTED_PROXIES", zap.Error(err))
	}
	go limiter.Run(ctx, 10*time.Minute)

	router := handlers.NewRouter(application.Handlers, limiter.Middleware)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           withMiddleware(router, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      cfg.AI.Timeout + 30*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	// Starting the server
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// withMiddleware wraps the router. Logging sits outside Recover so a
// recovered panic is still logged as a 500.
func withMiddleware(router http.Handler, logger *zap.Logger) http.Handler {
	return middleware.Chain(
		router,
		middleware.RequestID,
		middleware.LoggingMiddleware(logger),
		middleware.Recover(logger),
		middleware.CORSMiddleware,
	)
}

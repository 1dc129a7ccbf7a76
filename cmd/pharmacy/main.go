package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/pharmacy/internal/api"
	"github.com/nikolayk812/pharmacy/internal/api/handler"
	"github.com/nikolayk812/pharmacy/internal/api/router"
	"github.com/nikolayk812/pharmacy/internal/config"
	"github.com/nikolayk812/pharmacy/internal/repository"
	"github.com/nikolayk812/pharmacy/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func run(logger zerolog.Logger) error {
	ctx := context.Background()

	cf, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	pool, err := pgxpool.New(ctx, cf.DatabaseURL())
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := repository.ApplySchema(ctx, pool); err != nil {
		return fmt.Errorf("repository.ApplySchema: %w", err)
	}

	productRepo := repository.NewProduct(pool)
	userRepo := repository.NewUser(pool)

	orderService, err := service.NewOrder(pool)
	if err != nil {
		return fmt.Errorf("service.NewOrder: %w", err)
	}

	authService, err := service.NewAuth(userRepo, cf.TokenKey, cf.TokenDuration)
	if err != nil {
		return fmt.Errorf("service.NewAuth: %w", err)
	}

	server := api.NewServer(
		handler.NewAuth(authService, userRepo),
		handler.NewProduct(productRepo),
		handler.NewOrder(orderService),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cf.ServerPort),
		Handler: router.SetupRouter(server, authService, logger),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{})
	go func() {
		<-sigChan
		logger.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}

		close(shutdownCompleted)
	}()

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	<-shutdownCompleted
	logger.Info().Msg("server stopped")

	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github-scout/api"
	"github-scout/internal/app"
	"github-scout/internal/config"
	"github-scout/internal/database"
	"github-scout/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, cfgErr := config.LoadConfig()
	logger := app.NewLogger(cfg.LogLevel)
	if cfgErr != nil {
		logger.Warnf(".env not loaded: %v", cfgErr)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	tokens, _ := cfg.Tokens()
	if len(tokens) == 0 {
		logger.Warn("AUTH_TOKENS is empty, every API request will be rejected")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected and migrated")

	uc, err := app.Wire(db, cfg, logger)
	if err != nil {
		logger.Fatalf("Wiring failed: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Use(handler.RequestIDMiddleware())
	e.Use(handler.LoggingMiddleware(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.KeyAuthMiddleware(tokens))

	apiHandler := handler.NewAPIHandler(uc.Batches, uc.Pods, uc.Fellows, uc.PRs, uc.Analytics, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/openapi.yml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.OpenAPIDocument)
	})

	go func() {
		logger.WithField("port", cfg.ServerPort).Info("Server starting")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}

// Package app wires configuration, storage, GitHub and the use cases
// together for the server and the operator CLI.
package app

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github-scout/internal/config"
	"github-scout/internal/database"
	"github-scout/internal/domain"
	"github-scout/internal/gateway"
	"github-scout/internal/repository"
	"github-scout/internal/usecase"

	"github.com/sirupsen/logrus"
)

// UseCases is the set of business operations exposed to the outer layers.
type UseCases struct {
	Batches   domain.BatchUseCase
	Pods      domain.PodUseCase
	Fellows   domain.FellowUseCase
	PRs       domain.PRUseCase
	Analytics domain.AnalyticsUseCase
}

// NewLogger returns a JSON logger at the configured level; an unknown
// level falls back to info.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithField("log_level", level).Warn("Unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// Wire builds the repositories, the GitHub gateway and the use cases over db.
func Wire(db *sql.DB, cfg config.Config, logger *logrus.Logger) (*UseCases, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	github, err := gateway.NewGitHubGateway(cfg.GitHubToken, cfg.GitHubBaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("github gateway: %w", err)
	}
	if cfg.GitHubToken == "" {
		logger.Warn("GITHUB_TOKEN is empty, GitHub requests are unauthenticated")
	}

	queries := database.New(db)

	batchRepo := repository.NewBatchRepository(db, queries)
	podRepo := repository.NewPodRepository(db, queries)
	fellowRepo := repository.NewFellowRepository(db, queries)
	prRepo := repository.NewPRRepository(db, queries)
	statsRepo := repository.NewStatsRepository(queries)

	return &UseCases{
		Batches:   usecase.NewBatchUseCase(batchRepo),
		Pods:      usecase.NewPodUseCase(podRepo, batchRepo, fellowRepo),
		Fellows:   usecase.NewFellowUseCase(fellowRepo, podRepo),
		PRs:       usecase.NewPRUseCase(prRepo, fellowRepo, github, logger, cfg.ImportConcurrency),
		Analytics: usecase.NewAnalyticsUseCase(statsRepo, loc, time.Now),
	}, nil
}

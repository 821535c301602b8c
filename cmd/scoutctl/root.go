package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github-scout/internal/app"
	"github-scout/internal/config"
	"github-scout/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scoutctl",
	Short: "Operator tool for the GitHub Scout database.",
	Long: `scoutctl runs schema migrations and bulk GitHub synchronisation
against the same database and configuration the server uses.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// env is what every subcommand needs: configuration, a logger and the database.
type env struct {
	cfg    config.Config
	logger *logrus.Logger
	db     *sql.DB
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, cfgErr := config.LoadConfig()
	logger := app.NewLogger(cfg.LogLevel)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	if cfgErr != nil {
		logger.Debugf(".env not loaded: %v", cfgErr)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := database.Open(cmd.Context(), cfg.DSN())
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, db: db}, nil
}

func (e *env) close() {
	_ = e.db.Close()
}

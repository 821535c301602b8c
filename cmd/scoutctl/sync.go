package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github-scout/internal/app"
	"github-scout/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Track every PR a fellow opened in a repository",
	Example: `  scoutctl import --fellow ada-lovelace-x7k2p --repo https://github.com/octo/widgets
  scoutctl import --fellow ada-lovelace-x7k2p --repo octo/widgets`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fellowID, _ := cmd.Flags().GetString("fellow")
		repository, _ := cmd.Flags().GetString("repo")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		uc, err := app.Wire(e.db, e.cfg, e.logger)
		if err != nil {
			return err
		}

		result, err := uc.PRs.ImportFellowPRs(cmd.Context(), fellowID, repository)
		if result == nil {
			return err
		}

		out := map[string]interface{}{
			"repository": result.Repository,
			"found":      result.Found,
			"imported":   len(result.Imported),
			"skipped":    result.Skipped,
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(out); encErr != nil {
			return encErr
		}
		return err
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-fetch every tracked PR of a fellow from GitHub",
	RunE: func(cmd *cobra.Command, args []string) error {
		fellowID, _ := cmd.Flags().GetString("fellow")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		uc, err := app.Wire(e.db, e.cfg, e.logger)
		if err != nil {
			return err
		}

		summary, err := refreshFellow(cmd.Context(), uc.PRs, fellowID, e.logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "refreshed %d of %d pull requests\n", summary.refreshed, summary.total)
		if summary.failed > 0 {
			return fmt.Errorf("%d pull requests could not be refreshed", summary.failed)
		}
		return nil
	},
}

type refreshSummary struct {
	total     int
	refreshed int
	failed    int
}

// refreshFellow refreshes the fellow's PRs one by one. A failing PR is
// logged and counted; the rest are still attempted unless ctx is done.
func refreshFellow(ctx context.Context, prs domain.PRUseCase, fellowID string, logger *logrus.Logger) (refreshSummary, error) {
	tracked, err := prs.ListFellowPRs(ctx, fellowID)
	if err != nil {
		return refreshSummary{}, err
	}

	summary := refreshSummary{total: len(tracked)}
	for _, pr := range tracked {
		if _, err := prs.RefreshPR(ctx, pr.ID); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return summary, err
			}
			logger.WithError(err).WithFields(logrus.Fields{
				"pr_id":      pr.ID,
				"repository": pr.Repository,
				"pr_number":  pr.Number,
			}).Warn("Refresh failed")
			summary.failed++
			continue
		}
		summary.refreshed++
	}
	return summary, nil
}

func init() {
	importCmd.Flags().String("fellow", "", "Fellow id")
	importCmd.Flags().String("repo", "", "Repository URL or owner/name")
	_ = importCmd.MarkFlagRequired("fellow")
	_ = importCmd.MarkFlagRequired("repo")

	refreshCmd.Flags().String("fellow", "", "Fellow id")
	_ = refreshCmd.MarkFlagRequired("fellow")

	rootCmd.AddCommand(importCmd, refreshCmd)
}

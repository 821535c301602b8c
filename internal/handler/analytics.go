package handler

import (
	"net/http"

	"github-scout/api"
	"github-scout/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AnalyticsHandler serves the read-only analytics views.
type AnalyticsHandler struct {
	*BaseHandler
	analyticsUseCase domain.AnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUseCase domain.AnalyticsUseCase, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      NewBaseHandler(logger),
		analyticsUseCase: analyticsUseCase,
	}
}

func (h *AnalyticsHandler) GetPRsByFellow(c echo.Context) error {
	logEntry := h.logRequest(c, "prs_by_fellow")

	stats, err := h.analyticsUseCase.PRsByFellow(c.Request().Context())
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to build PR breakdown")
	}

	logEntry.WithField("repos_count", len(stats)).Info("PR breakdown built")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"repos": toAPIRepoStats(stats),
	})
}

func (h *AnalyticsHandler) GetPRSeries(c echo.Context, params api.GetPRSeriesParams) error {
	scope, id, days := deref(params.Type), deref(params.Id), deref(params.Days)
	logEntry := h.logRequest(c, "pr_series").WithFields(logrus.Fields{
		"scope": scope,
		"id":    id,
		"days":  days,
	})

	series, err := h.analyticsUseCase.PRSeries(c.Request().Context(), domain.Scope(scope), id, days)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to build PR series")
	}

	return c.JSON(http.StatusOK, toAPISeries(series))
}

func (h *AnalyticsHandler) GetCommitStats(c echo.Context, params api.GetCommitStatsParams) error {
	scope, id := deref(params.Type), deref(params.Id)
	logEntry := h.logRequest(c, "commit_stats").WithFields(logrus.Fields{
		"scope": scope,
		"id":    id,
	})

	stats, err := h.analyticsUseCase.CommitStats(c.Request().Context(), domain.Scope(scope), id)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to count commits")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"commits": toAPICommitStats(stats),
	})
}

// GetDashboard returns all three views of one scope.
func (h *AnalyticsHandler) GetDashboard(c echo.Context, params api.GetDashboardParams) error {
	scope, id, days := deref(params.Type), deref(params.Id), deref(params.Days)
	logEntry := h.logRequest(c, "dashboard").WithFields(logrus.Fields{
		"scope": scope,
		"id":    id,
		"days":  days,
	})

	dashboard, err := h.analyticsUseCase.Dashboard(c.Request().Context(), domain.Scope(scope), id, days)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to build dashboard")
	}

	return c.JSON(http.StatusOK, toAPIDashboard(dashboard))
}

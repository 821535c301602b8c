package handler

import (
	"net/http"

	"github-scout/api"
	"github-scout/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type FellowHandler struct {
	*BaseHandler
	fellowUseCase domain.FellowUseCase
}

func NewFellowHandler(fellowUseCase domain.FellowUseCase, logger *logrus.Logger) *FellowHandler {
	return &FellowHandler{
		BaseHandler:   NewBaseHandler(logger),
		fellowUseCase: fellowUseCase,
	}
}

func (h *FellowHandler) CreateFellow(c echo.Context) error {
	var req api.CreateFellowJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create fellow request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "create_fellow").WithFields(logrus.Fields{
		"pod_id":   req.PodId,
		"username": req.Username,
	})

	fellow, err := h.fellowUseCase.CreateFellow(c.Request().Context(), req.FullName, req.Username, req.PodId)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to create fellow")
	}

	logEntry.WithField("fellow_id", fellow.ID).Info("Fellow created")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"fellow": toAPIFellow(fellow),
	})
}

func (h *FellowHandler) ListPodFellows(c echo.Context, podId api.PodId) error {
	logEntry := h.logRequest(c, "list_fellows").WithField("pod_id", podId)

	fellows, err := h.fellowUseCase.ListFellows(c.Request().Context(), podId)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to list fellows")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"fellows": toAPIFellows(fellows),
	})
}

// GetFellow returns the fellow with PRs and commits.
func (h *FellowHandler) GetFellow(c echo.Context, fellowId api.FellowId) error {
	logEntry := h.logRequest(c, "get_fellow").WithField("fellow_id", fellowId)

	fellow, err := h.fellowUseCase.GetFellow(c.Request().Context(), fellowId)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to get fellow")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"fellow": toAPIFellow(fellow),
	})
}

func (h *FellowHandler) UpdateFellow(c echo.Context, fellowId api.FellowId) error {
	var req api.UpdateFellowJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind update fellow request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "update_fellow").WithField("fellow_id", fellowId)

	fellow, err := h.fellowUseCase.UpdateFellow(c.Request().Context(), fellowId, req.FullName, req.Username)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to update fellow")
	}

	logEntry.Info("Fellow updated")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"fellow": toAPIFellow(fellow),
	})
}

func (h *FellowHandler) DeleteFellow(c echo.Context, fellowId api.FellowId) error {
	logEntry := h.logRequest(c, "delete_fellow").WithField("fellow_id", fellowId)

	if err := h.fellowUseCase.DeleteFellow(c.Request().Context(), fellowId); err != nil {
		return h.fail(c, logEntry, err, "Failed to delete fellow")
	}

	logEntry.Info("Fellow deleted")
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github-scout/api"
	"github-scout/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PodHandler serves the pod endpoints.
type PodHandler struct {
	*BaseHandler
	podUseCase domain.PodUseCase
}

func NewPodHandler(podUseCase domain.PodUseCase, logger *logrus.Logger) *PodHandler {
	return &PodHandler{
		BaseHandler: NewBaseHandler(logger),
		podUseCase:  podUseCase,
	}
}

// CreatePod stores the pod under "<batch_id>.<id>".
func (h *PodHandler) CreatePod(c echo.Context) error {
	var req api.CreatePodJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create pod request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "create_pod").WithFields(logrus.Fields{
		"batch_id": req.BatchId,
		"local_id": req.Id,
	})

	pod, err := h.podUseCase.CreatePod(c.Request().Context(), req.Id, req.Name, req.BatchId)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to create pod")
	}

	logEntry.WithField("pod_id", pod.ID).Info("Pod created")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"pod": toAPIPod(pod),
	})
}

func (h *PodHandler) ListBatchPods(c echo.Context, batchId api.BatchId) error {
	logEntry := h.logRequest(c, "list_pods").WithField("batch_id", batchId)

	pods, err := h.podUseCase.ListPods(c.Request().Context(), batchId)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to list pods")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pods": toAPIPods(pods),
	})
}

func (h *PodHandler) GetPod(c echo.Context, podId api.PodId) error {
	logEntry := h.logRequest(c, "get_pod").WithField("pod_id", podId)

	pod, err := h.podUseCase.GetPod(c.Request().Context(), podId)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to get pod")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pod": toAPIPod(pod),
	})
}

func (h *PodHandler) UpdatePod(c echo.Context, podId api.PodId) error {
	var req api.UpdatePodJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind rename pod request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "rename_pod").WithField("pod_id", podId)

	pod, err := h.podUseCase.RenamePod(c.Request().Context(), podId, req.Name)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to rename pod")
	}

	logEntry.Info("Pod renamed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"pod": toAPIPod(pod),
	})
}

func (h *PodHandler) DeletePod(c echo.Context, podId api.PodId) error {
	logEntry := h.logRequest(c, "delete_pod").WithField("pod_id", podId)

	if err := h.podUseCase.DeletePod(c.Request().Context(), podId); err != nil {
		return h.fail(c, logEntry, err, "Failed to delete pod")
	}

	logEntry.Info("Pod deleted")
	return c.NoContent(http.StatusNoContent)
}

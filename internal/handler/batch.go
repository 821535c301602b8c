package handler

import (
	"net/http"

	"github-scout/api"
	"github-scout/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// BatchHandler serves the batch endpoints.
type BatchHandler struct {
	*BaseHandler
	batchUseCase domain.BatchUseCase
}

func NewBatchHandler(batchUseCase domain.BatchUseCase, logger *logrus.Logger) *BatchHandler {
	return &BatchHandler{
		BaseHandler:  NewBaseHandler(logger),
		batchUseCase: batchUseCase,
	}
}

// ListBatches returns every batch with its whole subtree.
func (h *BatchHandler) ListBatches(c echo.Context) error {
	logEntry := h.logRequest(c, "list_batches")

	batches, err := h.batchUseCase.ListBatches(c.Request().Context())
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to list batches")
	}

	logEntry.WithField("batches_count", len(batches)).Info("Batches listed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"batches": toAPIBatches(batches),
	})
}

func (h *BatchHandler) CreateBatch(c echo.Context) error {
	var req api.CreateBatchJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create batch request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "create_batch").WithFields(logrus.Fields{
		"batch_id":   req.Id,
		"batch_name": req.Name,
	})

	batch, err := h.batchUseCase.CreateBatch(c.Request().Context(), req.Id, req.Name)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to create batch")
	}

	logEntry.Info("Batch created")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"batch": toAPIBatch(batch),
	})
}

func (h *BatchHandler) GetBatch(c echo.Context, batchId api.BatchId) error {
	logEntry := h.logRequest(c, "get_batch").WithField("batch_id", batchId)

	batch, err := h.batchUseCase.GetBatch(c.Request().Context(), batchId)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to get batch")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"batch": toAPIBatch(batch),
	})
}

func (h *BatchHandler) UpdateBatch(c echo.Context, batchId api.BatchId) error {
	var req api.UpdateBatchJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind rename batch request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "rename_batch").WithFields(logrus.Fields{
		"batch_id":   batchId,
		"batch_name": req.Name,
	})

	batch, err := h.batchUseCase.RenameBatch(c.Request().Context(), batchId, req.Name)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to rename batch")
	}

	logEntry.Info("Batch renamed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"batch": toAPIBatch(batch),
	})
}

// DeleteBatch removes the batch together with everything under it.
func (h *BatchHandler) DeleteBatch(c echo.Context, batchId api.BatchId) error {
	logEntry := h.logRequest(c, "delete_batch").WithField("batch_id", batchId)

	if err := h.batchUseCase.DeleteBatch(c.Request().Context(), batchId); err != nil {
		return h.fail(c, logEntry, err, "Failed to delete batch")
	}

	logEntry.Info("Batch deleted")
	return c.NoContent(http.StatusNoContent)
}

package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github-scout/internal/domain"
	"github-scout/internal/domain/mocks"
	"github-scout/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, rec)
	errBody, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "missing error object in %s", rec.Body.String())
	return errBody["code"].(string)
}

func TestBatchHandler_CreateBatch(t *testing.T) {
	uc := mocks.NewBatchUseCase(t)
	created := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	uc.On("CreateBatch", mock.Anything, "25.SUM", "Summer 2025").
		Return(&domain.Batch{ID: "25.SUM", Name: "Summer 2025", CreatedAt: created, Pods: []*domain.Pod{}}, nil)

	h := handler.NewBatchHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/batches", `{"id":"25.SUM","name":"Summer 2025"}`)

	require.NoError(t, h.CreateBatch(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"batch":{"id":"25.SUM","name":"Summer 2025","created_at":"2026-06-01T00:00:00Z","pods":[]}}`,
		rec.Body.String())
}

func TestBatchHandler_CreateBatch_Conflict(t *testing.T) {
	uc := mocks.NewBatchUseCase(t)
	uc.On("CreateBatch", mock.Anything, "25.SUM", "dup").Return(nil, domain.ErrBatchAlreadyExists)

	h := handler.NewBatchHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/batches", `{"id":"25.SUM","name":"dup"}`)

	require.NoError(t, h.CreateBatch(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "BATCH_EXISTS", errorCode(t, rec))
}

func TestBatchHandler_CreateBatch_MalformedBody(t *testing.T) {
	uc := mocks.NewBatchUseCase(t)

	h := handler.NewBatchHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/batches", `{"id":`)

	require.NoError(t, h.CreateBatch(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, rec))
	uc.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestBatchHandler_ListBatches_PopulatedTree(t *testing.T) {
	uc := mocks.NewBatchUseCase(t)
	uc.On("ListBatches", mock.Anything).Return([]*domain.Batch{{
		ID:   "25.SUM",
		Name: "Summer",
		Pods: []*domain.Pod{{
			ID:      "25.SUM.1",
			BatchID: "25.SUM",
			Fellows: []*domain.Fellow{{
				ID:       "ada-x7k2p",
				FullName: "Ada",
				PodID:    "25.SUM.1",
				PRs: []*domain.PullRequest{{
					ID:         7,
					Number:     12,
					Repository: "o/r",
					State:      domain.StateOpen,
					Commits:    []*domain.Commit{{ID: 1, PRID: 7, SHA: "abc"}},
				}},
			}},
		}},
	}}, nil)

	h := handler.NewBatchHandler(uc, quietLogger())
	c, rec := newContext(http.MethodGet, "/batches", "")

	require.NoError(t, h.ListBatches(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	batches := body["batches"].([]interface{})
	require.Len(t, batches, 1)
	pod := batches[0].(map[string]interface{})["pods"].([]interface{})[0].(map[string]interface{})
	fellow := pod["fellows"].([]interface{})[0].(map[string]interface{})
	pr := fellow["prs"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "open", pr["status"])
	assert.Equal(t, "ada-x7k2p", fellow["id"])
	assert.Len(t, pr["commits"], 1)
}

func TestBatchHandler_GetBatch_NotFound(t *testing.T) {
	uc := mocks.NewBatchUseCase(t)
	uc.On("GetBatch", mock.Anything, "missing").Return(nil, domain.ErrBatchNotFound)

	h := handler.NewBatchHandler(uc, quietLogger())
	c, rec := newContext(http.MethodGet, "/batches/missing", "")

	require.NoError(t, h.GetBatch(c, "missing"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestBatchHandler_DeleteBatch(t *testing.T) {
	uc := mocks.NewBatchUseCase(t)
	uc.On("DeleteBatch", mock.Anything, "25.SUM").Return(nil)

	h := handler.NewBatchHandler(uc, quietLogger())
	c, rec := newContext(http.MethodDelete, "/batches/25.SUM", "")

	require.NoError(t, h.DeleteBatch(c, "25.SUM"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBatchHandler_UnmappedErrorIsSanitized(t *testing.T) {
	uc := mocks.NewBatchUseCase(t)
	uc.On("RenameBatch", mock.Anything, "25.SUM", "x").
		Return(nil, assert.AnError)

	h := handler.NewBatchHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPut, "/batches/25.SUM", `{"name":"x"}`)

	require.NoError(t, h.UpdateBatch(c, "25.SUM"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

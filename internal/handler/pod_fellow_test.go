package handler_test

import (
	"net/http"
	"testing"

	"github-scout/internal/domain"
	"github-scout/internal/domain/mocks"
	"github-scout/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPodHandler_CreatePod(t *testing.T) {
	uc := mocks.NewPodUseCase(t)
	uc.On("CreatePod", mock.Anything, "1", "Pod One", "25.SUM").
		Return(&domain.Pod{ID: "25.SUM.1", Name: "Pod One", BatchID: "25.SUM", Fellows: []*domain.Fellow{}}, nil)

	h := handler.NewPodHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/pods", `{"id":"1","name":"Pod One","batch_id":"25.SUM"}`)

	require.NoError(t, h.CreatePod(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	pod := decode(t, rec)["pod"].(map[string]interface{})
	assert.Equal(t, "25.SUM.1", pod["id"])
	assert.Equal(t, []interface{}{}, pod["fellows"])
}

func TestPodHandler_CreatePod_MissingBatch(t *testing.T) {
	uc := mocks.NewPodUseCase(t)
	uc.On("CreatePod", mock.Anything, "1", "Pod", "nope").Return(nil, domain.ErrBatchNotFound)

	h := handler.NewPodHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/pods", `{"id":"1","name":"Pod","batch_id":"nope"}`)

	require.NoError(t, h.CreatePod(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPodHandler_ListBatchPods(t *testing.T) {
	uc := mocks.NewPodUseCase(t)
	uc.On("ListPods", mock.Anything, "25.SUM").Return([]*domain.Pod{
		{ID: "25.SUM.1", BatchID: "25.SUM"},
		{ID: "25.SUM.2", BatchID: "25.SUM"},
	}, nil)

	h := handler.NewPodHandler(uc, quietLogger())
	c, rec := newContext(http.MethodGet, "/batches/25.SUM/pods", "")

	require.NoError(t, h.ListBatchPods(c, "25.SUM"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["pods"], 2)
}

func TestFellowHandler_CreateFellow(t *testing.T) {
	uc := mocks.NewFellowUseCase(t)
	uc.On("CreateFellow", mock.Anything, "Ada Lovelace", "ada", "25.SUM.1").
		Return(&domain.Fellow{ID: "ada-lovelace-x7k2p", FullName: "Ada Lovelace", Username: "ada", PodID: "25.SUM.1", PRs: []*domain.PullRequest{}}, nil)

	h := handler.NewFellowHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/fellows", `{"full_name":"Ada Lovelace","username":"ada","pod_id":"25.SUM.1"}`)

	require.NoError(t, h.CreateFellow(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	fellow := decode(t, rec)["fellow"].(map[string]interface{})
	assert.Equal(t, "ada-lovelace-x7k2p", fellow["id"])
	assert.Equal(t, []interface{}{}, fellow["prs"])
}

func TestFellowHandler_UpdateFellow_Validation(t *testing.T) {
	uc := mocks.NewFellowUseCase(t)
	uc.On("UpdateFellow", mock.Anything, "ada-x7k2p", "", "ada").Return(nil, domain.ErrInvalidFullName)

	h := handler.NewFellowHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPut, "/fellows/ada-x7k2p", `{"full_name":"","username":"ada"}`)

	require.NoError(t, h.UpdateFellow(c, "ada-x7k2p"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, rec))
}

func TestFellowHandler_DeleteFellow_NotFound(t *testing.T) {
	uc := mocks.NewFellowUseCase(t)
	uc.On("DeleteFellow", mock.Anything, "ghost").Return(domain.ErrFellowNotFound)

	h := handler.NewFellowHandler(uc, quietLogger())
	c, rec := newContext(http.MethodDelete, "/fellows/ghost", "")

	require.NoError(t, h.DeleteFellow(c, "ghost"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

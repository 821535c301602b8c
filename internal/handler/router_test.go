package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github-scout/api"
	"github-scout/internal/domain"
	"github-scout/internal/domain/mocks"
	"github-scout/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	echo      *echo.Echo
	hook      *test.Hook
	batches   *mocks.BatchUseCase
	prs       *mocks.PRUseCase
	analytics *mocks.AnalyticsUseCase
}

func (s *RouterTestSuite) SetupTest() {
	var logger *logrus.Logger
	logger, s.hook = test.NewNullLogger()

	s.batches = mocks.NewBatchUseCase(s.T())
	s.prs = mocks.NewPRUseCase(s.T())
	s.analytics = mocks.NewAnalyticsUseCase(s.T())

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Use(handler.RequestIDMiddleware())
	e.Use(handler.LoggingMiddleware(logger))
	e.Use(handler.KeyAuthMiddleware(map[string]string{"s3cret": "ci"}))

	api.RegisterHandlers(e, handler.NewAPIHandler(
		s.batches,
		mocks.NewPodUseCase(s.T()),
		mocks.NewFellowUseCase(s.T()),
		s.prs,
		s.analytics,
		logger,
	))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	s.echo = e
}

func (s *RouterTestSuite) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestMissingTokenIsRejectedBeforeUseCase() {
	rec := s.do(http.MethodGet, "/batches", "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("UNAUTHORIZED", errorCode(s.T(), rec))
	s.batches.AssertNotCalled(s.T(), "ListBatches", mock.Anything)
}

func (s *RouterTestSuite) TestWrongTokenIsRejected() {
	rec := s.do(http.MethodGet, "/analytics/prs-by-fellow", "guess")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.analytics.AssertNotCalled(s.T(), "PRsByFellow", mock.Anything)
}

func (s *RouterTestSuite) TestHealthIsPublic() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestAuthenticatedRequestIsLoggedWithIdentity() {
	s.batches.On("ListBatches", mock.Anything).Return([]*domain.Batch{}, nil)

	rec := s.do(http.MethodGet, "/batches", "s3cret")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"batches":[]}`, rec.Body.String())
	s.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))

	entry := s.hook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal("ci", entry.Data["identity"])
	s.Equal(http.StatusOK, entry.Data["status"])
}

func (s *RouterTestSuite) TestQueryParametersReachUseCase() {
	s.analytics.On("PRSeries", mock.Anything, domain.ScopeFellow, "ada-x7k2p", 3).
		Return(&domain.PRSeries{Repos: []string{}, PRs: []domain.SeriesPoint{}}, nil)

	rec := s.do(http.MethodGet, "/analytics/prs?type=fellow&id=ada-x7k2p&days=3", "s3cret")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestMalformedDaysIsInvalidRequest() {
	rec := s.do(http.MethodGet, "/analytics/prs?type=batch&id=x&days=many", "s3cret")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("INVALID_REQUEST", errorCode(s.T(), rec))
	s.analytics.AssertNotCalled(s.T(), "PRSeries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestNonNumericPRIDIsInvalidRequest() {
	rec := s.do(http.MethodGet, "/prs/abc", "s3cret")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("INVALID_REQUEST", errorCode(s.T(), rec))
}

func (s *RouterTestSuite) TestPathParameterReachesUseCase() {
	s.prs.On("RefreshPR", mock.Anything, int64(12)).Return(nil, domain.ErrPRNotFound)

	rec := s.do(http.MethodPost, "/prs/12/refresh", "s3cret")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("NOT_FOUND", errorCode(s.T(), rec))
}

func (s *RouterTestSuite) TestUnknownRouteUsesErrorFormat() {
	rec := s.do(http.MethodGet, "/nowhere", "s3cret")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("NOT_FOUND", errorCode(s.T(), rec))
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func TestIdentity_EmptyWithoutAuth(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/", "")

	assert.Equal(t, "", handler.Identity(c))
}

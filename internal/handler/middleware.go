package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github-scout/api"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

const identityKey = "identity"

// Paths served without a bearer token.
var publicPaths = map[string]bool{
	"/health":      true,
	"/openapi.yml": true,
}

// Identity returns the name the bearer token resolved to, or "".
func Identity(c echo.Context) string {
	name, _ := c.Get(identityKey).(string)
	return name
}

// LoggingMiddleware logs every request with its status and latency.
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status below is final.
				c.Error(err)
			}

			status := c.Response().Status
			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"status":     status,
				"latency":    time.Since(start),
				"user_agent": c.Request().UserAgent(),
				"ip":         c.RealIP(),
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"identity":   Identity(c),
			})

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			switch {
			case status >= 500:
				entry.Error("Server error")
			case status >= 400:
				entry.Warn("Client error")
			default:
				entry.Info("Request processed")
			}

			return nil
		}
	}
}

// RequestIDMiddleware tags each request with a UUID unless the client sent one.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// KeyAuthMiddleware accepts "Authorization: Bearer <token>" for the tokens
// in the token → identity map and stores the identity on the context.
func KeyAuthMiddleware(tokens map[string]string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			return publicPaths[c.Path()] || publicPaths[c.Request().URL.Path]
		},
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(key string, c echo.Context) (bool, error) {
			name, ok := tokens[strings.TrimSpace(key)]
			if !ok {
				return false, nil
			}
			c.Set(identityKey, name)
			return true, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, toErrorResponse(api.UNAUTHORIZED, "missing or invalid bearer token"))
		},
	})
}

// ErrorHandler renders errors that reach echo (binding failures, unknown
// routes, panics recovered upstream) in the API error format.
func ErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if status < 500 {
				message = fmt.Sprint(he.Message)
			}
		} else {
			logger.WithError(err).Error("Unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, toErrorResponse(codeForStatus(status), message))
		}
		if err != nil {
			logger.WithError(err).Error("Failed to write error response")
		}
	}
}

package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/PayRam/go-chinook/filter"
	"github.com/PayRam/go-chinook/request"
	"github.com/PayRam/go-chinook/response"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// StatusCode maps an error returned by a controller to an HTTP status.
func StatusCode(err error) int {
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, filter.ErrMalformedFilter),
		errors.Is(err, filter.ErrInvalidColumn),
		errors.Is(err, filter.ErrEmptyInput),
		errors.Is(err, request.ErrInvalidPagination):
		return http.StatusBadRequest
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders every error as {"error": "..."}.
func ErrorHandler(logger *logrus.Entry) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := StatusCode(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message = fmt.Sprint(httpErr.Message)
		}

		if status >= http.StatusInternalServerError {
			logger.WithError(err).Errorf("%s %s", ctx.Request().Method, ctx.Request().URL.Path)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(status)
		} else {
			err = ctx.JSON(status, response.Error{Error: message})
		}
		if err != nil {
			logger.WithError(err).Error("Unable to write error response")
		}
	}
}

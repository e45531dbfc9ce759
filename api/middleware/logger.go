package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// Logger writes one access log entry per request.
func Logger(logger *logrus.Entry) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true, // the error handler sets the status before it is logged
		LogValuesFunc: func(_ echo.Context, req middleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":     req.Method,
				"uri":        req.URI,
				"status":     req.Status,
				"latency":    req.Latency.String(),
				"request_id": req.RequestID,
				"remote_ip":  req.RemoteIP,
			})
			if req.Error != nil && req.Status >= 500 {
				entry.WithError(req.Error).Error("Request failed")
			} else {
				entry.Info("Request handled")
			}
			return nil
		},
	})
}

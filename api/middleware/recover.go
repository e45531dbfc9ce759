package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func Recover(logger *logrus.Entry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (er error) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = errors.Errorf("%v", rec)
					}
					err = errors.WithStack(err)
					logger.Debugf("%+v", err)
					er = err
				}
			}()

			return next(ctx)
		}
	}
}

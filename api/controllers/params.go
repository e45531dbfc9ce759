package controllers

import (
	"net/http"

	"github.com/PayRam/go-chinook/request"
	"github.com/labstack/echo/v4"
)

func idParam(ctx echo.Context, name string) (uint, error) {
	var id uint
	if err := echo.PathParamsBinder(ctx).MustUint(name, &id).BindError(); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+": "+ctx.Param(name))
	}
	return id, nil
}

// paginationParams reads limit, offset, sortBy and order from the query string. Absent
// parameters stay nil.
func paginationParams(ctx echo.Context) (request.PaginationConditions, error) {
	var (
		conditions    request.PaginationConditions
		limit, offset int
	)

	err := echo.QueryParamsBinder(ctx).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError()
	if err != nil {
		return conditions, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if ctx.QueryParam("limit") != "" {
		conditions.Limit = &limit
	}
	if ctx.QueryParam("offset") != "" {
		conditions.Offset = &offset
	}
	if sortBy := ctx.QueryParam("sortBy"); sortBy != "" {
		conditions.SortBy = &sortBy
	}
	if order := ctx.QueryParam("order"); order != "" {
		conditions.Order = &order
	}
	return conditions, nil
}

package controllers

import (
	"net/http"

	"github.com/PayRam/go-chinook/api/router"
	"github.com/PayRam/go-chinook/request"
	"github.com/PayRam/go-chinook/service"
	"github.com/labstack/echo/v4"
)

// CatalogController serves the read-only parts of the catalog.
type CatalogController struct {
	Albums    service.AlbumService
	Genres    service.GenreService
	Employees service.EmployeeService
	Invoices  service.InvoiceService
}

// Register implements router.Controller.Register
func (controller *CatalogController) Register(router *router.Router) {
	router.GET("/albums/:id/tracks", controller.albumTracksAction)
	router.GET("/genres", controller.genresAction)
	router.GET("/employees", controller.employeesAction)
	router.GET("/invoices/:id/invoiceitems", controller.invoiceItemsAction)
}

func (controller *CatalogController) albumTracksAction(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	tracks, err := controller.Albums.GetAlbumTracks(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tracks)
}

func (controller *CatalogController) genresAction(ctx echo.Context) error {
	genres, err := controller.Genres.GetGenres()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, genres)
}

func (controller *CatalogController) employeesAction(ctx echo.Context) error {
	pagination, err := paginationParams(ctx)
	if err != nil {
		return err
	}

	employees, err := controller.Employees.GetEmployees(request.GetEmployeesRequest{PaginationConditions: pagination})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, employees)
}

func (controller *CatalogController) invoiceItemsAction(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	items, err := controller.Invoices.GetInvoiceItems(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, items)
}

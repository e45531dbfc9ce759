package controllers

import (
	"fmt"
	"net/http"

	"github.com/PayRam/go-chinook/api/router"
	"github.com/PayRam/go-chinook/request"
	"github.com/PayRam/go-chinook/response"
	"github.com/PayRam/go-chinook/service"
	"github.com/labstack/echo/v4"
)

const artistPath = "/artists"

type ArtistController struct {
	Artists service.ArtistService
}

// Register implements router.Controller.Register
func (controller *ArtistController) Register(router *router.Router) {
	router = router.Group(artistPath)

	router.GET("", controller.listAction)
	router.POST("", controller.createAction)
	router.GET("/:id", controller.getAction)
	router.PUT("/:id", controller.updateAction)
	router.DELETE("/:id", controller.deleteAction)
	router.GET("/search/:name", controller.searchAction)
	router.GET("/:id/albums", controller.albumsAction)
}

func (controller *ArtistController) listAction(ctx echo.Context) error {
	pagination, err := paginationParams(ctx)
	if err != nil {
		return err
	}

	artists, err := controller.Artists.GetArtists(request.GetArtistsRequest{PaginationConditions: pagination})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, artists)
}

func (controller *ArtistController) getAction(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	artist, err := controller.Artists.GetArtist(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, artist)
}

func (controller *ArtistController) createAction(ctx echo.Context) error {
	var req request.CreateArtistRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	artist, err := controller.Artists.CreateArtist(req)
	if err != nil {
		return fmt.Errorf("error adding new artist: %w", err)
	}
	return ctx.JSON(http.StatusCreated, response.ArtistCreated{ArtistID: artist.ID})
}

func (controller *ArtistController) updateAction(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	var req request.UpdateArtistRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	rows, err := controller.Artists.UpdateArtist(id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, response.Message{Message: fmt.Sprintf("Rows updated: %d", rows)})
}

func (controller *ArtistController) deleteAction(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	rows, err := controller.Artists.DeleteArtist(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, response.Message{Message: fmt.Sprintf("Rows deleted: %d", rows)})
}

func (controller *ArtistController) searchAction(ctx echo.Context) error {
	artists, err := controller.Artists.SearchArtists(ctx.Param("name"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, artists)
}

func (controller *ArtistController) albumsAction(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	rows, err := controller.Artists.GetArtistAlbums(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

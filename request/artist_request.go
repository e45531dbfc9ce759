package request

import "github.com/PayRam/go-chinook/filter"

type CreateArtistRequest struct {
	Name string `json:"name"`
}

type UpdateArtistRequest struct {
	Name string `json:"name"`
}

type GetArtistsRequest struct {
	PaginationConditions
}

// ArtistSortColumns are the artist columns accepted by PaginationConditions.SortBy.
var ArtistSortColumns = filter.Columns{"ArtistId", "Name"}

package service

import (
	"github.com/PayRam/go-chinook/models"
	"github.com/PayRam/go-chinook/request"
	"github.com/PayRam/go-chinook/response"
)

// ArtistService handles operations related to artists
type ArtistService interface {
	GetArtists(req request.GetArtistsRequest) ([]models.Artist, error)
	GetArtist(id uint) (*models.Artist, error)
	CreateArtist(req request.CreateArtistRequest) (*models.Artist, error)
	UpdateArtist(id uint, req request.UpdateArtistRequest) (int64, error)
	DeleteArtist(id uint) (int64, error)
	SearchArtists(name string) ([]models.Artist, error)
	GetArtistAlbums(id uint) ([]response.AlbumTrackRow, error)
}

// AlbumService handles operations related to albums
type AlbumService interface {
	GetAlbumTracks(albumID uint) ([]models.Track, error)
}

type GenreService interface {
	GetGenres() ([]models.Genre, error)
}

// CustomerService handles customer records and the advanced customer search
type CustomerService interface {
	GetCustomers(req request.GetCustomersRequest) ([]models.Customer, error)
	GetCustomer(id uint) (*models.Customer, error)
	CreateCustomer(req request.CustomerRequest) (*models.Customer, error)
	UpdateCustomer(id uint, req request.CustomerRequest) (int64, error)
	DeleteCustomer(id uint) (int64, error)
	SearchCustomers(req request.SearchCustomersRequest) ([]models.Customer, error)
	GetCustomerSupportEmployees(id uint) ([]models.Employee, error)
	GetCustomerInvoiceLines(id uint) ([]response.CustomerInvoiceLine, error)
}

type EmployeeService interface {
	GetEmployees(req request.GetEmployeesRequest) ([]models.Employee, error)
}

type InvoiceService interface {
	GetInvoiceItems(invoiceID uint) ([]models.InvoiceItem, error)
}

package go_chinook

import (
	db2 "github.com/PayRam/go-chinook/internal/db"
	"github.com/PayRam/go-chinook/filter"
	"github.com/PayRam/go-chinook/internal/serviceimpl"
	"github.com/PayRam/go-chinook/service"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CatalogService struct {
	Artists   service.ArtistService
	Albums    service.AlbumService
	Genres    service.GenreService
	Customers service.CustomerService
	Employees service.EmployeeService
	Invoices  service.InvoiceService
}

// NewCatalogService migrates the database and wires every service. The customer search is
// restricted to the customers columns of schema.
func NewCatalogService(db *gorm.DB, schema filter.Schema, logger *logrus.Entry) (*CatalogService, error) {
	if err := db2.Migrate(db, logger.WithField("component", "db")); err != nil {
		return nil, err
	}

	customerSearch, err := schema.Compiler(filter.CustomersTable)
	if err != nil {
		return nil, err
	}

	return &CatalogService{
		Artists:   serviceimpl.NewArtistService(db),
		Albums:    serviceimpl.NewAlbumService(db),
		Genres:    serviceimpl.NewGenreService(db),
		Customers: serviceimpl.NewCustomerService(db, customerSearch, logger.WithField("component", "customers")),
		Employees: serviceimpl.NewEmployeeService(db),
		Invoices:  serviceimpl.NewInvoiceService(db),
	}, nil
}

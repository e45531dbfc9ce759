package serviceimpl

import (
	"errors"
	"fmt"
	"github.com/PayRam/go-chinook/filter"
	"github.com/PayRam/go-chinook/models"
	"github.com/PayRam/go-chinook/request"
	"github.com/PayRam/go-chinook/response"
	"github.com/PayRam/go-chinook/service"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type customerService struct {
	DB       *gorm.DB
	Compiler *filter.Compiler
	Logger   *logrus.Entry
}

var _ service.CustomerService = &customerService{}

// NewCustomerService returns a customer service whose advanced search is restricted to the
// columns allowed by compiler
func NewCustomerService(db *gorm.DB, compiler *filter.Compiler, logger *logrus.Entry) service.CustomerService {
	return &customerService{DB: db, Compiler: compiler, Logger: logger}
}

func (s *customerService) GetCustomers(req request.GetCustomersRequest) ([]models.Customer, error) {
	customers := []models.Customer{}

	query, err := request.ApplyPaginationConditions(s.DB.Model(&models.Customer{}), req.PaginationConditions, request.CustomerSortColumns, "LastName, FirstName")
	if err != nil {
		return nil, err
	}

	if err := query.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to fetch customer %d: %w", id, err)
	}
	return &customer, nil
}

func (s *customerService) CreateCustomer(req request.CustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Company:      req.Company,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		Phone:        req.Phone,
		Email:        req.Email,
		SupportRepID: req.SupportRepID,
	}

	if err := s.DB.Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// UpdateCustomer overwrites the ten customer fields and returns the number of updated rows
func (s *customerService) UpdateCustomer(id uint, req request.CustomerRequest) (int64, error) {
	updates := map[string]interface{}{
		"FirstName":  req.FirstName,
		"LastName":   req.LastName,
		"Company":    req.Company,
		"Address":    req.Address,
		"City":       req.City,
		"State":      req.State,
		"Country":    req.Country,
		"PostalCode": req.PostalCode,
		"Phone":      req.Phone,
		"Email":      req.Email,
	}
	if req.SupportRepID != nil {
		updates["SupportRepId"] = *req.SupportRepID
	}

	result := s.DB.Model(&models.Customer{}).Where("CustomerId = ?", id).Updates(updates)
	if result.Error != nil {
		s.Logger.WithError(result.Error).Errorf("Error updating customer %d", id)
		return 0, fmt.Errorf("failed to update customer %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

func (s *customerService) DeleteCustomer(id uint) (int64, error) {
	result := s.DB.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete customer %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// SearchCustomers runs an advanced search expression against the customers table. An empty
// expression matches no customers.
func (s *customerService) SearchCustomers(req request.SearchCustomersRequest) ([]models.Customer, error) {
	customers := []models.Customer{}

	predicate, err := s.Compiler.CompileString(req.Search)
	if errors.Is(err, filter.ErrEmptyInput) {
		s.Logger.Debug("Empty customer search, returning no rows")
		return customers, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid customer search: %w", err)
	}

	s.Logger.WithFields(logrus.Fields{
		"search": req.Search,
		"where":  predicate.Clause,
	}).Debug("Running customer search")

	if err := predicate.Apply(s.DB.Model(&models.Customer{})).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customers, nil
}

// GetCustomerSupportEmployees returns the support representative assigned to the customer
func (s *customerService) GetCustomerSupportEmployees(id uint) ([]models.Employee, error) {
	employees := []models.Employee{}

	err := s.DB.Table("employees e").
		Select("e.*").
		Joins("INNER JOIN customers c ON c.SupportRepId = e.EmployeeId").
		Where("c.CustomerId = ?", id).
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch support employee for customer %d: %w", id, err)
	}
	return employees, nil
}

// GetCustomerInvoiceLines returns every invoice item billed to the customer
func (s *customerService) GetCustomerInvoiceLines(id uint) ([]response.CustomerInvoiceLine, error) {
	lines := []response.CustomerInvoiceLine{}

	err := s.DB.Table("invoices").
		Select("invoices.InvoiceId, invoices.InvoiceDate, invoice_items.TrackId, invoice_items.UnitPrice, invoice_items.Quantity").
		Joins("JOIN invoice_items ON invoices.InvoiceId = invoice_items.InvoiceId").
		Where("invoices.CustomerId = ?", id).
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices for customer %d: %w", id, err)
	}
	return lines, nil
}

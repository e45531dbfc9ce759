package serviceimpl

import (
	"fmt"
	"github.com/PayRam/go-chinook/internal/db"
	"github.com/PayRam/go-chinook/models"
	"github.com/PayRam/go-chinook/request"
	"github.com/PayRam/go-chinook/service"
	"gorm.io/gorm"
)

type employeeService struct {
	DB *gorm.DB
}

var _ service.EmployeeService = &employeeService{}

func NewEmployeeService(db *gorm.DB) service.EmployeeService {
	return &employeeService{DB: db}
}

func (s *employeeService) GetEmployees(req request.GetEmployeesRequest) ([]models.Employee, error) {
	employees := []models.Employee{}

	query, err := request.ApplyPaginationConditions(s.DB.Model(&models.Employee{}), req.PaginationConditions, request.EmployeeSortColumns, "LastName, FirstName")
	if err != nil {
		return nil, err
	}

	if err := query.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	return employees, nil
}

type invoiceService struct {
	DB *gorm.DB
}

var _ service.InvoiceService = &invoiceService{}

func NewInvoiceService(db *gorm.DB) service.InvoiceService {
	return &invoiceService{DB: db}
}

func (s *invoiceService) GetInvoiceItems(invoiceID uint) ([]models.InvoiceItem, error) {
	items := []models.InvoiceItem{}

	query, err := db.ApplyQueryConditions(s.DB.Model(&models.InvoiceItem{}), db.Equals("InvoiceId", invoiceID))
	if err != nil {
		return nil, err
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch items for invoice %d: %w", invoiceID, err)
	}
	return items, nil
}

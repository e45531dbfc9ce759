package request

import "github.com/PayRam/go-chinook/filter"

// CustomerRequest carries the customer fields for create and update. Update replaces all ten
// fields.
type CustomerRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Company      *string `json:"company"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Country      *string `json:"country"`
	PostalCode   *string `json:"postalCode"`
	Phone        *string `json:"phone"`
	Email        string  `json:"email"`
	SupportRepID *uint   `json:"supportRepId"` // Optional, left unchanged on update when nil
}

type GetCustomersRequest struct {
	PaginationConditions
}

// SearchCustomersRequest carries a filter expression such as
// "FirstName:John;OR;LastName:Doe;NOR;City:Berlin".
type SearchCustomersRequest struct {
	Search string `query:"search"`
}

// CustomerSortColumns are the customer columns accepted by PaginationConditions.SortBy.
var CustomerSortColumns = append(filter.Columns{"CustomerId", "SupportRepId"}, filter.CustomerSearchColumns...)

type GetEmployeesRequest struct {
	PaginationConditions
}

var EmployeeSortColumns = filter.Columns{"EmployeeId", "LastName", "FirstName", "Title", "HireDate", "City", "Country"}

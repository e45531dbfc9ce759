package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PayRam/go-chinook/filter"
	"gorm.io/gorm"
)

// ErrInvalidPagination is wrapped by every pagination validation error.
var ErrInvalidPagination = errors.New("invalid pagination")

type PaginationConditions struct {
	Limit  *int    `query:"limit"`  // Pagination limit
	Offset *int    `query:"offset"` // Pagination offset
	SortBy *string `query:"sortBy"` // Column to sort by, must be sortable for the table
	Order  *string `query:"order"`  // ASC or DESC
}

// ApplyPaginationConditions applies sorting and paging. Without SortBy the query is ordered by
// defaultOrder. SortBy is written into the query so it must be one of sortable.
func ApplyPaginationConditions(query *gorm.DB, conditions PaginationConditions, sortable filter.Columns, defaultOrder string) (*gorm.DB, error) {
	order := "ASC"
	if conditions.Order != nil {
		order = strings.ToUpper(*conditions.Order)
		if order != "ASC" && order != "DESC" {
			return nil, fmt.Errorf("%w: sort order %q must be ASC or DESC", ErrInvalidPagination, *conditions.Order)
		}
	}
	if conditions.Limit != nil && *conditions.Limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ErrInvalidPagination, *conditions.Limit)
	}
	if conditions.Offset != nil && *conditions.Offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrInvalidPagination, *conditions.Offset)
	}

	if conditions.SortBy != nil {
		if !sortable.Contains(*conditions.SortBy) {
			return nil, &filter.InvalidColumnError{Column: *conditions.SortBy}
		}
		query = query.Order(fmt.Sprintf("%s %s", *conditions.SortBy, order))
	} else if defaultOrder != "" {
		query = query.Order(defaultOrder)
	}

	if conditions.Offset != nil && *conditions.Offset > 0 {
		query = query.Offset(*conditions.Offset)
	}

	if conditions.Limit != nil && *conditions.Limit > 0 {
		query = query.Limit(*conditions.Limit)
	}

	return query, nil
}

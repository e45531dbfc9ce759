package db

import (
	"fmt"

	"gorm.io/gorm"
)

type QueryCondition struct {
	Field    string      // Column name, never taken from user input
	Operator string      // One of "=", "<>", "<", "<=", ">", ">=", "LIKE"
	Value    interface{} // Value to compare against, always bound
}

var allowedOperators = map[string]bool{
	"=":    true,
	"<>":   true,
	"<":    true,
	"<=":   true,
	">":    true,
	">=":   true,
	"LIKE": true,
}

// ApplyQueryConditions adds every condition to the query, combined with AND.
func ApplyQueryConditions(query *gorm.DB, conditions ...QueryCondition) (*gorm.DB, error) {
	for _, condition := range conditions {
		if !allowedOperators[condition.Operator] {
			return nil, fmt.Errorf("unsupported operator %q for field %s", condition.Operator, condition.Field)
		}
		query = query.Where(fmt.Sprintf("%s %s ?", condition.Field, condition.Operator), condition.Value)
	}
	return query, nil
}

func Contains(field, value string) QueryCondition {
	return QueryCondition{Field: field, Operator: "LIKE", Value: "%" + value + "%"}
}

func Equals(field string, value interface{}) QueryCondition {
	return QueryCondition{Field: field, Operator: "=", Value: value}
}

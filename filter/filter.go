// Package filter implements the advanced search language used by the customer search
// endpoint.
//
// A filter expression is a flat list of segments separated by ';'. Each segment is either a
// join operator (AND, OR, NOR) or a condition of the form column:value. Parse turns the
// expression into an ordered Query of Groups and a Compiler renders that Query into a
// parameterized WHERE predicate:
//
//	compiler := filter.DefaultSchema.MustCompiler("customers")
//	predicate, err := compiler.CompileString("FirstName:John;NOR;City:Berlin")
//	// predicate.Clause == "(FirstName LIKE ?) AND (NOT (City LIKE ?))"
//	// predicate.Params == []string{"%John%", "%Berlin%"}
//
// Column names are only ever written into the clause after they pass the compiler's
// allow-list. Values are always bound as parameters.
package filter

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// SegmentSeparator separates operators and conditions.
	SegmentSeparator = ';'
	// ColumnSeparator separates a column from its value inside a condition.
	ColumnSeparator = ':'
	// EscapeChar makes the following character literal.
	EscapeChar = '\\'
	// Wildcard is the storage pattern-match wildcard wrapped around every value.
	Wildcard = "%"
)

// JoinOperator is one of the reserved operator literals.
type JoinOperator string

const (
	And JoinOperator = "AND"
	Or  JoinOperator = "OR"
	Nor JoinOperator = "NOR"
)

// ParseJoinOperator reports whether s is exactly one of the operator literals.
func ParseJoinOperator(s string) (JoinOperator, bool) {
	switch op := JoinOperator(s); op {
	case And, Or, Nor:
		return op, true
	}
	return "", false
}

// connective is the word used between the conditions of a group. NOR groups are joined with
// OR and negated as a whole.
func (op JoinOperator) connective() string {
	if op == Nor {
		return string(Or)
	}
	return string(op)
}

// Condition is a single "column contains value" test.
type Condition struct {
	Column  string
	Pattern string
}

// Group is one or more conditions combined by a single operator.
type Group struct {
	Conditions []Condition
	Operator   JoinOperator
}

// Query is the parsed form of a filter expression. Order matters: it decides both the order
// of the clauses and the order of the bound parameters.
type Query []Group

// ConditionCount returns the number of conditions over all groups.
func (q Query) ConditionCount() int {
	n := 0
	for _, group := range q {
		n += len(group.Conditions)
	}
	return n
}

// Predicate is a compiled WHERE clause with '?' placeholders and the values bound to them,
// in placeholder order.
type Predicate struct {
	Clause string
	Params []string
}

// IsEmpty reports whether the predicate has no clause.
func (p Predicate) IsEmpty() bool {
	return p.Clause == ""
}

// Vars returns the parameters as driver arguments.
func (p Predicate) Vars() []interface{} {
	vars := make([]interface{}, len(p.Params))
	for i, param := range p.Params {
		vars[i] = param
	}
	return vars
}

// Expr returns the predicate as a gorm expression.
func (p Predicate) Expr() clause.Expr {
	return clause.Expr{SQL: p.Clause, Vars: p.Vars()}
}

// Apply adds the predicate to the query's WHERE conditions. An empty predicate leaves the
// query untouched.
func (p Predicate) Apply(query *gorm.DB) *gorm.DB {
	if p.IsEmpty() {
		return query
	}
	return query.Where(p.Expr())
}

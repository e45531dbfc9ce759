package filter

import "strings"

// Compiler renders a Query into a Predicate for a single table. It only writes column names
// that are part of its allow-list. A Compiler is immutable and safe for concurrent use.
type Compiler struct {
	table   string
	columns Columns
}

// NewCompiler returns a Compiler that accepts the given columns of table.
func NewCompiler(table string, columns ...string) *Compiler {
	return &Compiler{table: table, columns: append(Columns(nil), columns...)}
}

// Table returns the table the compiler was built for.
func (c *Compiler) Table() string {
	return c.table
}

// Columns returns a copy of the allow-list.
func (c *Compiler) Columns() Columns {
	return append(Columns(nil), c.columns...)
}

// Compile renders every group as a parenthesized clause and joins the groups with AND.
//
// Inside a group the conditions are joined with the group's operator, except NOR groups which
// are joined with OR and negated as a whole. The operator tag never changes how a group is
// joined to its neighbours.
//
// An empty Query compiles to an empty Predicate. No Predicate is returned when any column is
// outside the allow-list, a group has no conditions or its operator is not one of the literals.
func (c *Compiler) Compile(query Query) (Predicate, error) {
	var (
		clauses = make([]string, 0, len(query))
		params  = make([]string, 0, query.ConditionCount())
	)

	for _, group := range query {
		if len(group.Conditions) == 0 {
			return Predicate{}, &MalformedFilterError{Reason: "group without conditions"}
		}
		if _, ok := ParseJoinOperator(string(group.Operator)); !ok {
			return Predicate{}, &MalformedFilterError{Segment: string(group.Operator), Reason: "unknown join operator"}
		}

		parts := make([]string, 0, len(group.Conditions))
		for _, condition := range group.Conditions {
			if !c.columns.Contains(condition.Column) {
				return Predicate{}, &InvalidColumnError{Column: condition.Column, Table: c.table}
			}
			parts = append(parts, condition.Column+" LIKE ?")
			params = append(params, condition.Pattern)
		}

		groupClause := strings.Join(parts, " "+group.Operator.connective()+" ")
		if group.Operator == Nor {
			groupClause = "NOT (" + groupClause + ")"
		}
		clauses = append(clauses, "("+groupClause+")")
	}

	return Predicate{Clause: strings.Join(clauses, " AND "), Params: params}, nil
}

// CompileString parses and compiles raw. It returns ErrEmptyInput for an empty expression so
// the caller can decide what an absent filter means.
func (c *Compiler) CompileString(raw string) (Predicate, error) {
	if raw == "" {
		return Predicate{}, ErrEmptyInput
	}

	query, err := Parse(raw)
	if err != nil {
		return Predicate{}, err
	}
	return c.Compile(query)
}

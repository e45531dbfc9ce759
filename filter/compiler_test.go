package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func TestCompileString(t *testing.T) {
	compiler := DefaultSchema.MustCompiler(CustomersTable)

	testCases := []struct {
		input          string
		expectedClause string
		expectedParams []string
	}{
		{
			input:          "FirstName:John",
			expectedClause: "(FirstName LIKE ?)",
			expectedParams: []string{"%John%"},
		},
		{
			input:          "FirstName:John;OR;LastName:Doe",
			expectedClause: "(FirstName LIKE ?) AND (LastName LIKE ?)",
			expectedParams: []string{"%John%", "%Doe%"},
		},
		{
			input:          "FirstName:John,;NOR;City:Berlin",
			expectedClause: "(FirstName LIKE ?) AND (NOT (City LIKE ?))",
			expectedParams: []string{"%John,%", "%Berlin%"},
		},
		{
			input:          "FirstName:John;LastName:Doe",
			expectedClause: "(FirstName LIKE ? AND LastName LIKE ?)",
			expectedParams: []string{"%John%", "%Doe%"},
		},
		{
			input:          "OR;City:Berlin;City:Paris",
			expectedClause: "(City LIKE ? OR City LIKE ?)",
			expectedParams: []string{"%Berlin%", "%Paris%"},
		},
		{
			// NOR groups are joined internally with OR
			input:          "NOR;Country:USA;Country:Canada",
			expectedClause: "(NOT (Country LIKE ? OR Country LIKE ?))",
			expectedParams: []string{"%USA%", "%Canada%"},
		},
		{
			// groups are always joined with AND, whatever their tag
			input:          "Country:Brazil;OR;City:Paris;City:Rome;NOR;Company:Inc;AND;Email:gmail",
			expectedClause: "(Country LIKE ?) AND (City LIKE ? OR City LIKE ?) AND (NOT (Company LIKE ?)) AND (Email LIKE ?)",
			expectedParams: []string{"%Brazil%", "%Paris%", "%Rome%", "%Inc%", "%gmail%"},
		},
		{
			input:          "Phone:+55 (12);OR;PostalCode:' OR 1=1 --",
			expectedClause: "(Phone LIKE ?) AND (PostalCode LIKE ?)",
			expectedParams: []string{"%+55 (12)%", "%' OR 1=1 --%"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			predicate, err := compiler.CompileString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedClause, predicate.Clause)
			assert.Equal(t, tc.expectedParams, predicate.Params)
			assert.Equal(t, strings.Count(predicate.Clause, "?"), len(predicate.Params))
		})
	}
}

func TestCompileParamCountMatchesConditions(t *testing.T) {
	compiler := DefaultSchema.MustCompiler(CustomersTable)

	inputs := []string{
		"FirstName:a",
		"FirstName:a;LastName:b;City:c",
		"AND;FirstName:a;OR;LastName:b;NOR;City:c;Country:d;OR;OR;Email:e",
		`Company:x\;y;Address:z`,
	}

	for _, input := range inputs {
		query, err := Parse(input)
		require.NoError(t, err)

		predicate, err := compiler.Compile(query)
		require.NoError(t, err)

		conditions := 0
		for _, segment := range splitUnescaped(input, SegmentSeparator) {
			if _, ok := ParseJoinOperator(segment); !ok {
				conditions++
			}
		}
		assert.Len(t, predicate.Params, conditions, input)
		assert.Equal(t, query.ConditionCount(), len(predicate.Params), input)
	}
}

func TestCompileEmpty(t *testing.T) {
	compiler := DefaultSchema.MustCompiler(CustomersTable)

	predicate, err := compiler.Compile(Query{})
	require.NoError(t, err)
	assert.True(t, predicate.IsEmpty())
	assert.Empty(t, predicate.Params)

	_, err = compiler.CompileString("")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestCompileInvalidColumn(t *testing.T) {
	compiler := DefaultSchema.MustCompiler(CustomersTable)

	testCases := []string{
		"CustomerId:1",
		"firstname:john",
		"FirstName:John;OR;1=1) OR (1:1",
		"FirstName:John;NOR;SupportRepId:3",
		`First\:Name:x`,
	}

	for _, input := range testCases {
		t.Run(input, func(t *testing.T) {
			predicate, err := compiler.CompileString(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidColumn)
			assert.True(t, predicate.IsEmpty())
			assert.Nil(t, predicate.Params)

			var invalid *InvalidColumnError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, CustomersTable, invalid.Table)
			assert.Contains(t, err.Error(), invalid.Column)
		})
	}
}

func TestCompileMalformedPassesThrough(t *testing.T) {
	compiler := DefaultSchema.MustCompiler(CustomersTable)

	_, err := compiler.CompileString("FirstName")
	assert.ErrorIs(t, err, ErrMalformedFilter)
}

func TestCompileQueryFromCode(t *testing.T) {
	compiler := NewCompiler("artists", "Name")

	predicate, err := compiler.Compile(Query{
		{Conditions: []Condition{{Column: "Name", Pattern: "%AC%"}, {Column: "Name", Pattern: "%DC%"}}, Operator: Or},
	})
	require.NoError(t, err)
	assert.Equal(t, "(Name LIKE ? OR Name LIKE ?)", predicate.Clause)

	expr := predicate.Expr()
	assert.Equal(t, clause.Expr{SQL: predicate.Clause, Vars: []interface{}{"%AC%", "%DC%"}}, expr)
}

func TestCompilerCopiesColumns(t *testing.T) {
	columns := []string{"Name"}
	compiler := NewCompiler("artists", columns...)
	columns[0] = "Password"

	assert.Equal(t, Columns{"Name"}, compiler.Columns())
	assert.Equal(t, "artists", compiler.Table())

	_, err := compiler.CompileString("Password:x")
	assert.ErrorIs(t, err, ErrInvalidColumn)
}

func TestCompileRejectsInvalidGroups(t *testing.T) {
	compiler := DefaultSchema.MustCompiler(CustomersTable)
	city := Condition{Column: "City", Pattern: "%Paris%"}
	country := Condition{Column: "Country", Pattern: "%France%"}

	testCases := []struct {
		name  string
		query Query
	}{
		{
			name:  "operator with sql",
			query: Query{{Conditions: []Condition{city, country}, Operator: "OR 1=1 OR"}},
		},
		{
			name:  "missing operator",
			query: Query{{Conditions: []Condition{city, country}}},
		},
		{
			name:  "lowercase operator",
			query: Query{{Conditions: []Condition{city}, Operator: "or"}},
		},
		{
			name:  "group without conditions",
			query: Query{{Operator: And}, {Conditions: []Condition{city}, Operator: And}},
		},
		{
			name:  "empty group after a valid one",
			query: Query{{Conditions: []Condition{city}, Operator: And}, {Conditions: []Condition{}, Operator: Nor}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			predicate, err := compiler.Compile(tc.query)
			assert.ErrorIs(t, err, ErrMalformedFilter)
			assert.True(t, predicate.IsEmpty())
		})
	}
}

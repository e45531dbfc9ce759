package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input    string
		expected Query
	}{
		{
			input:    "",
			expected: Query{},
		},
		{
			input: "FirstName:John",
			expected: Query{
				{Conditions: []Condition{{Column: "FirstName", Pattern: "%John%"}}, Operator: And},
			},
		},
		{
			input: "FirstName:John;LastName:Doe",
			expected: Query{
				{Conditions: []Condition{
					{Column: "FirstName", Pattern: "%John%"},
					{Column: "LastName", Pattern: "%Doe%"},
				}, Operator: And},
			},
		},
		{
			input: "FirstName:John;OR;LastName:Doe",
			expected: Query{
				{Conditions: []Condition{{Column: "FirstName", Pattern: "%John%"}}, Operator: And},
				{Conditions: []Condition{{Column: "LastName", Pattern: "%Doe%"}}, Operator: Or},
			},
		},
		{
			input: "OR;City:Berlin;City:Paris;NOR;Country:USA",
			expected: Query{
				{Conditions: []Condition{
					{Column: "City", Pattern: "%Berlin%"},
					{Column: "City", Pattern: "%Paris%"},
				}, Operator: Or},
				{Conditions: []Condition{{Column: "Country", Pattern: "%USA%"}}, Operator: Nor},
			},
		},
		{
			// consecutive operators only replace the pending operator
			input: "FirstName:A;OR;AND;NOR;City:B",
			expected: Query{
				{Conditions: []Condition{{Column: "FirstName", Pattern: "%A%"}}, Operator: And},
				{Conditions: []Condition{{Column: "City", Pattern: "%B%"}}, Operator: Nor},
			},
		},
		{
			input: "FirstName:A;OR",
			expected: Query{
				{Conditions: []Condition{{Column: "FirstName", Pattern: "%A%"}}, Operator: And},
			},
		},
		{
			input:    "NOR;OR",
			expected: Query{},
		},
		{
			input: "Email:user:admin@example.com",
			expected: Query{
				{Conditions: []Condition{{Column: "Email", Pattern: "%user:admin@example.com%"}}, Operator: And},
			},
		},
		{
			input: "FirstName:",
			expected: Query{
				{Conditions: []Condition{{Column: "FirstName", Pattern: "%%"}}, Operator: And},
			},
		},
		{
			input: `Company:Foo\;Bar;Address:12\:30 Main \\ St`,
			expected: Query{
				{Conditions: []Condition{
					{Column: "Company", Pattern: "%Foo;Bar%"},
					{Column: "Address", Pattern: `%12:30 Main \ St%`},
				}, Operator: And},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			query, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, query)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "missing separator", input: "FirstName"},
		{name: "missing column", input: ":John"},
		{name: "empty segment", input: "FirstName:John;;City:Berlin"},
		{name: "trailing separator", input: "FirstName:John;"},
		{name: "lowercase operator", input: "FirstName:John;or;City:Berlin"},
		{name: "unknown operator", input: "FirstName:John;XOR;City:Berlin"},
		{name: "dangling escape", input: `FirstName:John\`},
		{name: "escaped separator only", input: `FirstName\:John`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := Parse(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedFilter)
			assert.NotErrorIs(t, err, ErrInvalidColumn)
			assert.Nil(t, query)

			var malformed *MalformedFilterError
			require.ErrorAs(t, err, &malformed)
			assert.NotEmpty(t, malformed.Reason)
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	inputs := []string{
		"FirstName:John",
		"FirstName:John;OR;LastName:Doe;NOR;City:Berlin;Country:Germany",
		`Company:a\;b;AND;Phone:+1`,
	}

	for _, input := range inputs {
		first, err := Parse(input)
		require.NoError(t, err)
		second, err := Parse(input)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestParseNeverBuildsEmptyGroups(t *testing.T) {
	query, err := Parse("AND;OR;FirstName:a;NOR;NOR;AND;LastName:b;OR")
	require.NoError(t, err)
	require.Len(t, query, 2)
	for _, group := range query {
		assert.NotEmpty(t, group.Conditions)
	}
	assert.Equal(t, Or, query[0].Operator)
	assert.Equal(t, And, query[1].Operator)
}

func TestParseJoinOperator(t *testing.T) {
	for _, literal := range []string{"AND", "OR", "NOR"} {
		op, ok := ParseJoinOperator(literal)
		assert.True(t, ok)
		assert.Equal(t, JoinOperator(literal), op)
	}
	for _, literal := range []string{"", "and", "Nor", "NOT", " OR"} {
		_, ok := ParseJoinOperator(literal)
		assert.False(t, ok, literal)
	}
}

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaCompiler(t *testing.T) {
	schema := Schema{
		"customers": CustomerSearchColumns,
		"artists":   Columns{"Name"},
	}

	compiler, err := schema.Compiler("artists")
	require.NoError(t, err)
	assert.Equal(t, Columns{"Name"}, compiler.Columns())

	_, err = schema.Compiler("employees")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTable)
	assert.Contains(t, err.Error(), "employees")

	assert.Panics(t, func() { schema.MustCompiler("employees") })
}

func TestColumnsContains(t *testing.T) {
	assert.Len(t, CustomerSearchColumns, 10)
	assert.True(t, CustomerSearchColumns.Contains("PostalCode"))
	assert.False(t, CustomerSearchColumns.Contains(""))
	assert.False(t, CustomerSearchColumns.Contains("postalcode"))
	assert.False(t, CustomerSearchColumns.Contains("CustomerId"))
}

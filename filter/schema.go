package filter

// Columns is an ordered allow-list of column identifiers.
type Columns []string

// Contains reports whether column is in the list. Matching is exact.
func (c Columns) Contains(column string) bool {
	if column == "" {
		return false
	}
	for _, allowed := range c {
		if allowed == column {
			return true
		}
	}
	return false
}

// Schema maps a table name to the columns that may be searched on it.
type Schema map[string]Columns

// CustomersTable is the table searched by the customer search endpoint.
const CustomersTable = "customers"

// CustomerSearchColumns are the customer fields reachable from the advanced search.
var CustomerSearchColumns = Columns{
	"FirstName",
	"LastName",
	"Company",
	"Address",
	"City",
	"State",
	"Country",
	"PostalCode",
	"Phone",
	"Email",
}

// DefaultSchema allows the customer search columns on CustomersTable.
var DefaultSchema = Schema{
	CustomersTable: CustomerSearchColumns,
}

// Compiler returns a Compiler restricted to the columns configured for table.
func (s Schema) Compiler(table string) (*Compiler, error) {
	columns, ok := s[table]
	if !ok {
		return nil, &UnknownTableError{Table: table}
	}
	return NewCompiler(table, columns...), nil
}

// MustCompiler is like Compiler but panics when the table is not configured.
func (s Schema) MustCompiler(table string) *Compiler {
	compiler, err := s.Compiler(table)
	if err != nil {
		panic(err)
	}
	return compiler
}

package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedFilter matches every *MalformedFilterError.
	ErrMalformedFilter = errors.New("malformed filter")
	// ErrInvalidColumn matches every *InvalidColumnError.
	ErrInvalidColumn = errors.New("invalid column")
	// ErrUnknownTable matches every *UnknownTableError.
	ErrUnknownTable = errors.New("unknown table")
	// ErrEmptyInput is returned by CompileString when there is nothing to compile. It is a
	// signal for the caller rather than a failure.
	ErrEmptyInput = errors.New("empty filter")
)

// MalformedFilterError is returned when a segment is neither an operator nor a valid
// column:value condition.
type MalformedFilterError struct {
	Segment string
	Reason  string
}

func (e *MalformedFilterError) Error() string {
	return fmt.Sprintf("malformed filter segment(%q): %s", e.Segment, e.Reason)
}

func (e *MalformedFilterError) Is(target error) bool {
	return target == ErrMalformedFilter
}

// InvalidColumnError is returned when a condition names a column outside the allow-list.
type InvalidColumnError struct {
	Column string
	Table  string
}

func (e *InvalidColumnError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("invalid column name: %s", e.Column)
	}
	return fmt.Sprintf("invalid column name for %s: %s", e.Table, e.Column)
}

func (e *InvalidColumnError) Is(target error) bool {
	return target == ErrInvalidColumn
}

// UnknownTableError is returned by Schema.Compiler for a table without configured columns.
type UnknownTableError struct {
	Table string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("no searchable columns configured for table %s", e.Table)
}

func (e *UnknownTableError) Is(target error) bool {
	return target == ErrUnknownTable
}

package filter

import "strings"

// Parse splits a filter expression into condition groups.
//
// Conditions accumulate into the current group until an operator literal is seen. The
// operator closes the pending group, tagged with the operator that was in effect while it was
// built, and becomes the operator of the next group. The first group uses AND. Operators that
// follow each other without conditions in between only replace the pending operator.
//
// An empty expression yields an empty Query.
func Parse(raw string) (Query, error) {
	if raw == "" {
		return Query{}, nil
	}

	var (
		query    = Query{}
		current  []Condition
		operator = And
	)

	for _, segment := range splitUnescaped(raw, SegmentSeparator) {
		if op, ok := ParseJoinOperator(segment); ok {
			if len(current) > 0 {
				query = append(query, Group{Conditions: current, Operator: operator})
				current = nil
			}
			operator = op
			continue
		}

		condition, err := parseCondition(segment)
		if err != nil {
			return nil, err
		}
		current = append(current, condition)
	}

	if len(current) > 0 {
		query = append(query, Group{Conditions: current, Operator: operator})
	}

	return query, nil
}

func parseCondition(segment string) (Condition, error) {
	if segment == "" {
		return Condition{}, &MalformedFilterError{Segment: segment, Reason: "empty segment"}
	}

	idx := indexUnescaped(segment, ColumnSeparator)
	if idx < 0 {
		if strings.EqualFold(segment, string(And)) || strings.EqualFold(segment, string(Or)) ||
			strings.EqualFold(segment, string(Nor)) {
			return Condition{}, &MalformedFilterError{Segment: segment, Reason: "operators are case-sensitive"}
		}
		return Condition{}, &MalformedFilterError{Segment: segment, Reason: "expected column:value"}
	}

	column, err := unescape(segment[:idx])
	if err != nil {
		return Condition{}, &MalformedFilterError{Segment: segment, Reason: err.Error()}
	}
	if column == "" {
		return Condition{}, &MalformedFilterError{Segment: segment, Reason: "missing column name"}
	}

	value, err := unescape(segment[idx+1:])
	if err != nil {
		return Condition{}, &MalformedFilterError{Segment: segment, Reason: err.Error()}
	}

	return Condition{Column: column, Pattern: Wildcard + value + Wildcard}, nil
}

// splitUnescaped splits s on every sep that is not preceded by EscapeChar. Escapes are kept so
// the parts can be split again.
func splitUnescaped(s string, sep byte) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case EscapeChar:
			i++
		case sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func indexUnescaped(s string, sep byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case EscapeChar:
			i++
		case sep:
			return i
		}
	}
	return -1
}

type escapeError struct{}

func (escapeError) Error() string { return "dangling escape character" }

func unescape(s string) (string, error) {
	if strings.IndexByte(s, EscapeChar) < 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == EscapeChar {
			i++
			if i == len(s) {
				return "", escapeError{}
			}
		}
		b.WriteByte(s[i])
	}
	return b.String(), nil
}

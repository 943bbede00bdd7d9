package services

import (
	"fmt"
)

// NullHandling selects how aggregate queries treat rows with a missing
// category or value.
type NullHandling int

const (
	// SkipNulls drops invalid rows and keeps going.
	SkipNulls NullHandling = iota
	// ThrowOnNull fails the whole call on the first invalid row.
	ThrowOnNull
)

func (nh NullHandling) String() string {
	switch nh {
	case ThrowOnNull:
		return "throw_on_null"
	default:
		return "skip_nulls"
	}
}

// ParseNullHandling maps the HTTP query-param spelling to a mode.
// Unknown values fall back to SkipNulls, the default everywhere else.
func ParseNullHandling(s string) NullHandling {
	if s == "strict" {
		return ThrowOnNull
	}
	return SkipNulls
}

// Row field names as aliased by the contribution repo queries.
const (
	fieldCategory   = "category"
	fieldMaxValue   = "maxValue"
	fieldAvgValue   = "avgValue"
	fieldTotalValue = "totalValue"
	fieldCountValue = "countValue"
)

const (
	reasonNullField  = "null_field"
	reasonNotNumeric = "not_numeric"
	reasonNotText    = "not_text"
)

// InvalidRowError reports a repository row that cannot be aggregated under
// ThrowOnNull: a null category or value, a non-text category, or a
// non-numeric value.
type InvalidRowError struct {
	Field string
	Row   map[string]any
	Value any

	reason string
}

func (e *InvalidRowError) Error() string {
	switch e.reason {
	case reasonNotNumeric:
		return fmt.Sprintf("%s is not numeric: %v", e.Field, e.Value)
	case reasonNotText:
		return fmt.Sprintf("%s is not text: %v", e.Field, e.Value)
	default:
		return fmt.Sprintf("null category or %s encountered in repository result: %v", e.Field, e.Row)
	}
}

// numeric is the closed set of result types an aggregate can produce.
type numeric interface {
	~int | ~int64 | ~float64
}

// coerceNumber converts the dynamically-typed value a scanned row can hold
// into the metric's result type. Conversion from a float source truncates
// the fraction (40.5 -> 40 for integer targets); integer sources convert
// exactly. Anything outside the closed set reports false.
func coerceNumber[T numeric](v any) (T, bool) {
	switch n := v.(type) {
	case int:
		return T(n), true
	case int8:
		return T(n), true
	case int16:
		return T(n), true
	case int32:
		return T(n), true
	case int64:
		return T(n), true
	case uint:
		return T(n), true
	case uint8:
		return T(n), true
	case uint16:
		return T(n), true
	case uint32:
		return T(n), true
	case uint64:
		return T(n), true
	case float32:
		return T(n), true
	case float64:
		return T(n), true
	default:
		var zero T
		return zero, false
	}
}

// aggregateRows runs the shared per-row pass over a repository result set:
// validate category and value, coerce, and write result[category] = value.
// Rows arrive already grouped by category upstream, so a duplicate category
// only happens on malformed input; the last row wins rather than merging.
func aggregateRows[T numeric](rows []map[string]any, valueField string, handling NullHandling) (map[string]T, error) {
	result := make(map[string]T, len(rows))
	for _, row := range rows {
		catVal := row[fieldCategory]
		val := row[valueField]

		if catVal == nil || val == nil {
			if handling == ThrowOnNull {
				return nil, &InvalidRowError{Field: valueField, Row: row, reason: reasonNullField}
			}
			continue
		}

		category, ok := catVal.(string)
		if !ok {
			if handling == ThrowOnNull {
				return nil, &InvalidRowError{Field: fieldCategory, Value: catVal, reason: reasonNotText}
			}
			continue
		}

		coerced, ok := coerceNumber[T](val)
		if !ok {
			if handling == ThrowOnNull {
				return nil, &InvalidRowError{Field: valueField, Value: val, reason: reasonNotNumeric}
			}
			continue
		}

		result[category] = coerced
	}
	return result, nil
}

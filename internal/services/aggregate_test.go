package services

import (
	"errors"
	"testing"
)

func TestParseNullHandling(t *testing.T) {
	t.Parallel()
	if got := ParseNullHandling("strict"); got != ThrowOnNull {
		t.Fatalf("strict: got=%v want=%v", got, ThrowOnNull)
	}
	if got := ParseNullHandling("skip"); got != SkipNulls {
		t.Fatalf("skip: got=%v want=%v", got, SkipNulls)
	}
	if got := ParseNullHandling(""); got != SkipNulls {
		t.Fatalf("empty: got=%v want=%v", got, SkipNulls)
	}
	if got := ParseNullHandling("bogus"); got != SkipNulls {
		t.Fatalf("unknown: got=%v want=%v", got, SkipNulls)
	}
}

func TestAggregateRowsEmptyInput(t *testing.T) {
	t.Parallel()
	for _, handling := range []NullHandling{SkipNulls, ThrowOnNull} {
		result, err := aggregateRows[int](nil, fieldMaxValue, handling)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", handling, err)
		}
		if result == nil {
			t.Fatalf("%v: result map is nil", handling)
		}
		if len(result) != 0 {
			t.Fatalf("%v: expected empty map, got %v", handling, result)
		}
	}
}

func TestAggregateRowsSkipAndThrowAgreeOnCleanInput(t *testing.T) {
	t.Parallel()
	rows := []map[string]any{
		{"category": "Eng", "maxValue": 50},
		{"category": "Sales", "maxValue": 30},
		{"category": "Ops", "maxValue": 75},
	}

	skipped, err := aggregateRows[int](rows, fieldMaxValue, SkipNulls)
	if err != nil {
		t.Fatalf("skip: unexpected error: %v", err)
	}
	strict, err := aggregateRows[int](rows, fieldMaxValue, ThrowOnNull)
	if err != nil {
		t.Fatalf("strict: unexpected error: %v", err)
	}

	if len(skipped) != 3 || len(strict) != 3 {
		t.Fatalf("expected 3 entries each, got skip=%v strict=%v", skipped, strict)
	}
	for category, want := range skipped {
		if got := strict[category]; got != want {
			t.Fatalf("modes disagree for %q: skip=%d strict=%d", category, want, got)
		}
	}
}

func TestAggregateRowsLastRowWinsOnDuplicateCategory(t *testing.T) {
	t.Parallel()
	rows := []map[string]any{
		{"category": "Eng", "maxValue": 50},
		{"category": "Eng", "maxValue": 75},
	}
	result, err := aggregateRows[int](rows, fieldMaxValue, SkipNulls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 || result["Eng"] != 75 {
		t.Fatalf("expected {Eng:75}, got %v", result)
	}
}

func TestAggregateRowsSkipsNullCategoryAndValue(t *testing.T) {
	t.Parallel()
	rows := []map[string]any{
		{"category": "A", "maxValue": 10},
		{"category": nil, "maxValue": 99},
		{"category": "C", "maxValue": nil},
	}
	result, err := aggregateRows[int](rows, fieldMaxValue, SkipNulls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 || result["A"] != 10 {
		t.Fatalf("expected {A:10}, got %v", result)
	}
}

func TestAggregateRowsSkipsAbsentKeys(t *testing.T) {
	t.Parallel()
	rows := []map[string]any{
		{"category": "A", "maxValue": 10},
		{"maxValue": 99},
		{"category": "C"},
	}
	result, err := aggregateRows[int](rows, fieldMaxValue, SkipNulls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 || result["A"] != 10 {
		t.Fatalf("expected {A:10}, got %v", result)
	}
}

func TestAggregateRowsThrowOnNullCitesFirstInvalidRow(t *testing.T) {
	t.Parallel()
	first := map[string]any{"category": nil, "maxValue": 99}
	rows := []map[string]any{
		{"category": "A", "maxValue": 10},
		first,
		{"category": "C", "maxValue": nil},
	}
	result, err := aggregateRows[int](rows, fieldMaxValue, ThrowOnNull)
	if err == nil {
		t.Fatalf("expected error, got result %v", result)
	}
	if result != nil {
		t.Fatalf("expected no partial result, got %v", result)
	}

	var invalidRow *InvalidRowError
	if !errors.As(err, &invalidRow) {
		t.Fatalf("expected InvalidRowError, got %T", err)
	}
	if invalidRow.Field != fieldMaxValue {
		t.Fatalf("field: got=%q want=%q", invalidRow.Field, fieldMaxValue)
	}
	if invalidRow.Row["maxValue"] != first["maxValue"] || invalidRow.Row["category"] != nil {
		t.Fatalf("expected first invalid row cited, got %v", invalidRow.Row)
	}
}

func TestAggregateRowsNonNumericValue(t *testing.T) {
	t.Parallel()
	rows := []map[string]any{
		{"category": "A", "maxValue": 10},
		{"category": "B", "maxValue": "not_a_number"},
	}

	result, err := aggregateRows[int](rows, fieldMaxValue, SkipNulls)
	if err != nil {
		t.Fatalf("skip: unexpected error: %v", err)
	}
	if len(result) != 1 || result["A"] != 10 {
		t.Fatalf("skip: expected {A:10}, got %v", result)
	}

	_, err = aggregateRows[int](rows, fieldMaxValue, ThrowOnNull)
	var invalidRow *InvalidRowError
	if !errors.As(err, &invalidRow) {
		t.Fatalf("strict: expected InvalidRowError, got %v", err)
	}
	if invalidRow.Value != "not_a_number" {
		t.Fatalf("strict: expected offending value cited, got %v", invalidRow.Value)
	}
}

func TestAggregateRowsTruncatesFloatToInt(t *testing.T) {
	t.Parallel()
	rows := []map[string]any{
		{"category": "Sales", "maxValue": 40.5},
	}
	for _, handling := range []NullHandling{SkipNulls, ThrowOnNull} {
		result, err := aggregateRows[int](rows, fieldMaxValue, handling)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", handling, err)
		}
		if result["Sales"] != 40 {
			t.Fatalf("%v: expected truncation to 40, got %v", handling, result["Sales"])
		}
	}
}

func TestAggregateRowsMixedNumericSourceTypes(t *testing.T) {
	t.Parallel()
	rows := []map[string]any{
		{"category": "A", "maxValue": int(10)},
		{"category": "B", "maxValue": int64(20)},
		{"category": "C", "maxValue": float64(30.9)},
		{"category": "D", "maxValue": int32(40)},
	}
	result, err := aggregateRows[int](rows, fieldMaxValue, ThrowOnNull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]int{"A": 10, "B": 20, "C": 30, "D": 40}
	if len(result) != len(want) {
		t.Fatalf("expected %v, got %v", want, result)
	}
	for category, wantVal := range want {
		if result[category] != wantVal {
			t.Fatalf("%q: got=%d want=%d", category, result[category], wantVal)
		}
	}
}

func TestAggregateRowsFloatTarget(t *testing.T) {
	t.Parallel()
	rows := []map[string]any{
		{"category": "A", "avgValue": 40.5},
		{"category": "B", "avgValue": int64(12)},
	}
	result, err := aggregateRows[float64](rows, fieldAvgValue, ThrowOnNull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["A"] != 40.5 {
		t.Fatalf("expected avg 40.5 kept exact, got %v", result["A"])
	}
	if result["B"] != 12.0 {
		t.Fatalf("expected int source coerced to 12.0, got %v", result["B"])
	}
}

func TestAggregateRowsNonTextCategory(t *testing.T) {
	t.Parallel()
	rows := []map[string]any{
		{"category": 7, "maxValue": 10},
		{"category": "B", "maxValue": 20},
	}

	result, err := aggregateRows[int](rows, fieldMaxValue, SkipNulls)
	if err != nil {
		t.Fatalf("skip: unexpected error: %v", err)
	}
	if len(result) != 1 || result["B"] != 20 {
		t.Fatalf("skip: expected {B:20}, got %v", result)
	}

	_, err = aggregateRows[int](rows, fieldMaxValue, ThrowOnNull)
	var invalidRow *InvalidRowError
	if !errors.As(err, &invalidRow) {
		t.Fatalf("strict: expected InvalidRowError, got %v", err)
	}
}

func TestCoerceNumberClosedSet(t *testing.T) {
	t.Parallel()
	if _, ok := coerceNumber[int]("10"); ok {
		t.Fatalf("string should not coerce")
	}
	if _, ok := coerceNumber[int](true); ok {
		t.Fatalf("bool should not coerce")
	}
	if _, ok := coerceNumber[int](nil); ok {
		t.Fatalf("nil should not coerce")
	}
	if v, ok := coerceNumber[int64](uint32(9)); !ok || v != 9 {
		t.Fatalf("uint32: got=(%d,%v)", v, ok)
	}
	if v, ok := coerceNumber[float64](float32(1.5)); !ok || v != 1.5 {
		t.Fatalf("float32: got=(%v,%v)", v, ok)
	}
}

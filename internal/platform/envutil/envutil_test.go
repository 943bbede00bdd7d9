package envutil

import "testing"

func TestStringDefaultsWhenUnset(t *testing.T) {
	if got := String("TEAMPULSE_TEST_UNSET", "fallback", nil); got != "fallback" {
		t.Fatalf("got=%q want=%q", got, "fallback")
	}
}

func TestStringReadsEnvironment(t *testing.T) {
	t.Setenv("TEAMPULSE_TEST_STR", "value")
	if got := String("TEAMPULSE_TEST_STR", "fallback", nil); got != "value" {
		t.Fatalf("got=%q want=%q", got, "value")
	}
}

func TestIntParsesAndFallsBack(t *testing.T) {
	t.Setenv("TEAMPULSE_TEST_INT", "42")
	if got := Int("TEAMPULSE_TEST_INT", 7, nil); got != 42 {
		t.Fatalf("got=%d want=42", got)
	}
	t.Setenv("TEAMPULSE_TEST_INT", "not-a-number")
	if got := Int("TEAMPULSE_TEST_INT", 7, nil); got != 7 {
		t.Fatalf("got=%d want=7", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("TEAMPULSE_TEST_BOOL", "on")
	if !Bool("TEAMPULSE_TEST_BOOL", false, nil) {
		t.Fatalf("expected true for 'on'")
	}
	t.Setenv("TEAMPULSE_TEST_BOOL", "garbage")
	if Bool("TEAMPULSE_TEST_BOOL", false, nil) {
		t.Fatalf("expected default for unparseable value")
	}
}

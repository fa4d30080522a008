package coerce

import (
	"testing"
	"time"
)

func TestToDirectAssertion(t *testing.T) {
	got, err := To[string]("hello")
	if err != nil || got != "hello" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestToNumericConversions(t *testing.T) {
	if got, err := To[float64](42); err != nil || got != 42.0 {
		t.Fatalf("int -> float64: got %v, %v", got, err)
	}
	if got, err := To[int](42.0); err != nil || got != 42 {
		t.Fatalf("whole float -> int: got %v, %v", got, err)
	}
	if _, err := To[int](1.5); err == nil {
		t.Fatalf("lossy conversion must fail")
	}
}

func TestToDuration(t *testing.T) {
	if got, err := To[time.Duration]("90s"); err != nil || got != 90*time.Second {
		t.Fatalf("got %v, %v", got, err)
	}
	if got, err := To[time.Duration](time.Minute); err != nil || got != time.Minute {
		t.Fatalf("got %v, %v", got, err)
	}
	if _, err := To[time.Duration]("not a duration"); err == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestToStructuredViaJSON(t *testing.T) {
	type limits struct {
		Max int `json:"max"`
	}
	got, err := To[limits](map[string]any{"max": 10})
	if err != nil || got.Max != 10 {
		t.Fatalf("got %+v, %v", got, err)
	}
	if got, err := To[[]string]([]any{"a", "b"}); err != nil || len(got) != 2 || got[1] != "b" {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestToRejectsNilAndMismatch(t *testing.T) {
	if _, err := To[int](nil); err == nil {
		t.Fatalf("nil must be rejected")
	}
	if _, err := To[bool]("true"); err == nil {
		t.Fatalf("string -> bool must be rejected, not guessed")
	}
}

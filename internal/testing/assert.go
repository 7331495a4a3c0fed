package testing

import (
	"reflect"
	"testing"
	"time"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertPanics asserts that f panics with msg.
func AssertPanics(t testing.TB, msg string, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic '%s'", msg)
		}

		if s, ok := r.(string); !ok || s != msg {
			t.Fatalf("expected panic '%s', got '%v'", msg, r)
		}
	}()

	f()
}

// AssertEventuallyTrue asserts that f eventually returns true.
func AssertEventuallyTrue(t testing.TB, f func() bool, timeout ...time.Duration) {
	t.Helper()

	limit := time.Second
	if timeout != nil {
		limit = timeout[0]
	}

	timer := time.NewTimer(limit)
	defer timer.Stop()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timer.C:
			t.Fatalf("timeout: expected eventually to be true")

		case <-ticker.C:
			if f() {
				return
			}
		}
	}
}

package scenario

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoMatchingElements is returned when a selector that must match matched nothing
var ErrNoMatchingElements = errors.New("no matching elements")

// ErrUnknownScenario is returned when a scenario name is not registered
var ErrUnknownScenario = errors.New("unknown scenario")

// AssertionError reports an expected/actual mismatch
type AssertionError struct {
	Check    string
	Expected any
	Actual   any
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Check, render(e.Expected), render(e.Actual))
}

func render(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(v)
}

// expectEqual returns an *AssertionError when actual differs from expected
func expectEqual[T comparable](check string, expected, actual T) error {
	if expected != actual {
		return &AssertionError{Check: check, Expected: expected, Actual: actual}
	}
	return nil
}

// noMatches wraps ErrNoMatchingElements with the selector that matched nothing
func noMatches(selector string) error {
	return fmt.Errorf("%w for selector %q", ErrNoMatchingElements, selector)
}

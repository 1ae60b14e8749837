package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput is returned when a duration field is not an integer.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyDuration is returned when the entered duration is not positive.
	ErrEmptyDuration = errors.New("empty duration")
)

// InputError reports which duration field could not be parsed.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}

// ParseDuration converts the hours, minutes and seconds fields into a total
// number of seconds. Fields may carry surrounding spaces and a sign; the total
// is not checked here.
func ParseDuration(hours, minutes, seconds string) (int, error) {
	fields := []struct {
		name   string
		value  string
		factor int
	}{
		{"hours", hours, 3600},
		{"minutes", minutes, 60},
		{"seconds", seconds, 1},
	}

	total := 0
	for _, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f.value), 10, 32)
		if err != nil {
			return 0, &InputError{Field: f.name, Value: f.value, Err: err}
		}
		total += int(n) * f.factor
	}
	return total, nil
}

// FormatClock converts a number of seconds into a HH:MM:SS string.
func FormatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, sec%3600/60, sec%60)
}

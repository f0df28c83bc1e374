package ytime

import (
	"fmt"
	"github.com/davejbax/go-ytime/internal/calendar"
	"strconv"
	"strings"
)

const fractionDigits = 6

// ParseDate parses a date in the form YYYY-MM-DD. Fields are not range checked; see [Validate].
func ParseDate(s string) (Date, error) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidFormat, s)
	}

	fields, err := parseInts(parts)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q: %w", ErrInvalidFormat, s, err)
	}

	return Date{Year: fields[0], Month: fields[1], Day: fields[2]}, nil
}

// ParseTime parses a time of day in the form HH:MM:SS, optionally followed by a fraction of a second. Fractions with
// fewer than six digits are scaled up to microseconds and extra digits are truncated.
func ParseTime(s string) (Time, error) {
	hms, fraction, hasFraction := strings.Cut(s, ".")

	parts := strings.SplitN(hms, ":", 3)
	if len(parts) != 3 {
		return Time{}, fmt.Errorf("%w: time %q must be HH:MM:SS[.ffffff]", ErrInvalidFormat, s)
	}

	fields, err := parseInts(parts)
	if err != nil {
		return Time{}, fmt.Errorf("%w: time %q: %w", ErrInvalidFormat, s, err)
	}

	microsecond := 0
	if hasFraction {
		microsecond, err = parseFraction(fraction)
		if err != nil {
			return Time{}, fmt.Errorf("%w: time %q: %w", ErrInvalidFormat, s, err)
		}
	}

	return Time{Hour: fields[0], Minute: fields[1], Second: fields[2], Microsecond: microsecond}, nil
}

// ParseDateTime parses a date and time separated by 'T'. A date on its own is taken to be at midnight; a time on its
// own gets the zero [Date].
func ParseDateTime(s string) (DateTime, error) {
	if datePart, timePart, ok := strings.Cut(s, "T"); ok {
		date, err := ParseDate(datePart)
		if err != nil {
			return DateTime{}, err
		}

		t, err := ParseTime(timePart)
		if err != nil {
			return DateTime{}, err
		}

		return DateTime{Date: date, Time: t}, nil
	}

	if strings.Contains(s, "-") {
		date, err := ParseDate(s)
		if err != nil {
			return DateTime{}, err
		}

		return DateTime{Date: date}, nil
	}

	t, err := ParseTime(s)
	if err != nil {
		return DateTime{}, err
	}

	return DateTime{Time: t}, nil
}

// ParseSeconds parses a signed number of seconds with an optional fraction, e.g. "-86399" or "1.5", and returns it
// as microseconds
func ParseSeconds(s string) (int64, error) {
	sign := int64(1)
	unsigned := s
	if strings.HasPrefix(s, "-") {
		sign = -1
		unsigned = s[1:]
	} else if strings.HasPrefix(s, "+") {
		unsigned = s[1:]
	}

	whole, fraction, hasFraction := strings.Cut(unsigned, ".")

	seconds, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: seconds %q", ErrInvalidFormat, s)
	}

	us := int64(seconds) * calendar.MicrosecondsPerSecond
	if hasFraction {
		frac, err := parseFraction(fraction)
		if err != nil {
			return 0, fmt.Errorf("%w: seconds %q: %w", ErrInvalidFormat, s, err)
		}

		us += int64(frac)
	}

	return sign * us, nil
}

// ParseDelta parses the form produced by [Delta.String], e.g. "1 days 2 seconds" or "0 days -0.500000 seconds"
func ParseDelta(s string) (Delta, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 || fields[1] != "days" || fields[3] != "seconds" {
		return Delta{}, fmt.Errorf("%w: delta %q must be '<days> days <seconds> seconds'", ErrInvalidFormat, s)
	}

	days, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Delta{}, fmt.Errorf("%w: delta %q has invalid days", ErrInvalidFormat, s)
	}

	us, err := ParseSeconds(fields[2])
	if err != nil {
		return Delta{}, err
	}

	return NewDelta(days, us), nil
}

func parseInts(parts []string) ([]int, error) {
	fields := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}

		fields[i] = n
	}

	return fields, nil
}

func parseFraction(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("fraction is empty")
	}

	n := 0
	for i, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("fraction %q is not a number", s)
		}

		if i < fractionDigits {
			n = n*10 + int(r-'0')
		}
	}

	for i := len(s); i < fractionDigits; i++ {
		n *= 10
	}

	return n, nil
}

package ytime

import "errors"

var (
	// ErrLeapSecondAnchor is returned when a delta is measured from, or applied to, an instant that lies inside a
	// leap second. Such an instant has no well-defined position within its day.
	ErrLeapSecondAnchor = errors.New("cannot count days from a leap second")

	// ErrOutOfRange is returned by [Validate] when a date or time field is outside its allowed range
	ErrOutOfRange = errors.New("date or time field out of range")

	// ErrInvalidFormat is returned when a date, time or delta string cannot be parsed
	ErrInvalidFormat = errors.New("invalid date or time format")

	// ErrInvalidLeapSecondTable is returned when leap second entries are not in strictly chronological order, or
	// their cumulative counts don't increase by one per entry
	ErrInvalidLeapSecondTable = errors.New("invalid leap second table")
)

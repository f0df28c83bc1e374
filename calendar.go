package ytime

import "errors"

var errNilLeapSecondTable = errors.New("leap second table must not be nil")

// Calendar binds the packing and interval functions to one leap second table. The package-level functions use a
// calendar with the built-in table; create a Calendar to work with a different table, e.g. one loaded with
// [LoadLeapSecondTable] after a new leap second has been announced.
//
// Calendar values are immutable and safe for concurrent use.
type Calendar struct {
	leapSeconds *LeapSecondTable
}

var defaultCalendar = &Calendar{leapSeconds: defaultLeapSecondTable}

func NewCalendar(leapSeconds *LeapSecondTable) (*Calendar, error) {
	if leapSeconds == nil {
		return nil, errNilLeapSecondTable
	}

	return &Calendar{
		leapSeconds: leapSeconds,
	}, nil
}

// DefaultCalendar returns the calendar used by the package-level functions
func DefaultCalendar() *Calendar {
	return defaultCalendar
}

// LeapSecondTable returns the table the calendar was created with
func (c *Calendar) LeapSecondTable() *LeapSecondTable {
	return c.leapSeconds
}

// LeapSecondsAt returns the number of leap seconds inserted before dt
func (c *Calendar) LeapSecondsAt(dt DateTime) uint32 {
	return c.leapSeconds.LeapSeconds(c.Pack(dt))
}

// IsLeapSecondDateTime reports whether dt lies within a leap second
func (c *Calendar) IsLeapSecondDateTime(dt DateTime) bool {
	return c.leapSeconds.IsLeapSecond(c.Pack(dt))
}

// LeapSeconds returns the number of leap seconds inserted before instant, according to the built-in table
func LeapSeconds(instant PackedDateTime) uint32 {
	return defaultLeapSecondTable.LeapSeconds(instant)
}

// IsLeapSecond reports whether instant lies within a leap second of the built-in table
func IsLeapSecond(instant PackedDateTime) bool {
	return defaultLeapSecondTable.IsLeapSecond(instant)
}

// LeapSecondsOnDate returns the number of leap seconds inserted before the start of date, according to the built-in
// table
func LeapSecondsOnDate(date Date) uint32 {
	return defaultLeapSecondTable.LeapSecondsOnDate(date)
}

// HasLeapSecond reports whether date ends with a leap second of the built-in table
func HasLeapSecond(date Date) bool {
	return defaultLeapSecondTable.HasLeapSecond(date)
}

func LeapSecondsAt(dt DateTime) uint32 {
	return defaultCalendar.LeapSecondsAt(dt)
}

func IsLeapSecondDateTime(dt DateTime) bool {
	return defaultCalendar.IsLeapSecondDateTime(dt)
}

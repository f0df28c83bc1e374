package ytime

import (
	"cmp"
	"fmt"
)

// Date is a proleptic Gregorian calendar date. The fields are not validated on construction; see [Validate].
type Date struct {
	Year, Month, Day int
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	if c := cmp.Compare(d.Year, other.Year); c != 0 {
		return c
	}

	if c := cmp.Compare(d.Month, other.Month); c != 0 {
		return c
	}

	return cmp.Compare(d.Day, other.Day)
}

func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time is a UTC time of day. Second is 60 during a leap second.
type Time struct {
	Hour, Minute, Second, Microsecond int
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or after other
func (t Time) Compare(other Time) int {
	if c := cmp.Compare(t.Hour, other.Hour); c != 0 {
		return c
	}

	if c := cmp.Compare(t.Minute, other.Minute); c != 0 {
		return c
	}

	if c := cmp.Compare(t.Second, other.Second); c != 0 {
		return c
	}

	return cmp.Compare(t.Microsecond, other.Microsecond)
}

func (t Time) Before(other Time) bool {
	return t.Compare(other) < 0
}

func (t Time) After(other Time) bool {
	return t.Compare(other) > 0
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%06d", t.Hour, t.Minute, t.Second, t.Microsecond)
}

// DateTime is a UTC date and time of day
type DateTime struct {
	Date Date
	Time Time
}

// NewDateTime is shorthand for building a [DateTime] with whole seconds
func NewDateTime(year, month, day, hour, minute, second int) DateTime {
	return DateTime{
		Date: Date{Year: year, Month: month, Day: day},
		Time: Time{Hour: hour, Minute: minute, Second: second},
	}
}

// Compare returns -1, 0 or +1 depending on whether dt is before, equal to or after other
func (dt DateTime) Compare(other DateTime) int {
	if c := dt.Date.Compare(other.Date); c != 0 {
		return c
	}

	return dt.Time.Compare(other.Time)
}

func (dt DateTime) Before(other DateTime) bool {
	return dt.Compare(other) < 0
}

func (dt DateTime) After(other DateTime) bool {
	return dt.Compare(other) > 0
}

func (dt DateTime) Equal(other DateTime) bool {
	return dt == other
}

func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

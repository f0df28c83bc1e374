package ytime

import (
	"cmp"
	"github.com/davejbax/go-ytime/internal/calendar"
)

// PackedDateTime is a UTC date and time stored as the number of microseconds since March 1, 1200, leap seconds
// included. Unlike [DateTime], every value is valid: each one maps to exactly one date and time. Values of the same
// leap second table order the same way as the date-times they represent.
type PackedDateTime uint64

// Uint64 returns the raw microsecond count
func (p PackedDateTime) Uint64() uint64 {
	return uint64(p)
}

// Compare returns -1, 0 or +1 depending on whether p is before, equal to or after other
func (p PackedDateTime) Compare(other PackedDateTime) int {
	return cmp.Compare(p, other)
}

func (p PackedDateTime) Before(other PackedDateTime) bool {
	return p < other
}

func (p PackedDateTime) After(other PackedDateTime) bool {
	return p > other
}

// AddMicroseconds moves p by a plain number of elapsed microseconds, with no calendar adjustment. Use [AddDelta] to
// move by days.
func (p PackedDateTime) AddMicroseconds(us int64) PackedDateTime {
	return PackedDateTime(int64(p) + us)
}

// String returns the date and time that p represents under the built-in leap second table
func (p PackedDateTime) String() string {
	return Unpack(p).String()
}

func packDaysMicroseconds(days int64, us uint64) PackedDateTime {
	return PackedDateTime(uint64(days)*calendar.MicrosecondsPerDay + us)
}

func unpackDaysMicroseconds(p PackedDateTime) (int64, uint64) {
	return int64(p / calendar.MicrosecondsPerDay), uint64(p % calendar.MicrosecondsPerDay)
}

// Pack converts dt to a [PackedDateTime]. dt is assumed to be valid (see [Validate]); a second of 60 is only
// meaningful on a day with a leap second.
func (c *Calendar) Pack(dt DateTime) PackedDateTime {
	days := calendar.DaysSinceEpoch(dt.Date.Year, dt.Date.Month, dt.Date.Day)
	us := calendar.MicrosecondsSinceMidnight(dt.Time.Hour, dt.Time.Minute, dt.Time.Second, dt.Time.Microsecond)
	leapSeconds := uint64(c.leapSeconds.LeapSecondsOnDate(dt.Date))

	return packDaysMicroseconds(days, us) + PackedDateTime(leapSeconds*calendar.MicrosecondsPerSecond)
}

// Unpack converts p back to a date and time. An instant inside a leap second unpacks to 23:59:60 on the day before
// the leap second takes effect.
func (c *Calendar) Unpack(p PackedDateTime) DateTime {
	leapSeconds := uint64(c.leapSeconds.LeapSeconds(p))
	days, us := unpackDaysMicroseconds(p - PackedDateTime(leapSeconds*calendar.MicrosecondsPerSecond))

	if c.leapSeconds.IsLeapSecond(p) {
		// Still counts as the previous day
		days--
		us += calendar.MicrosecondsPerDay
	}

	year, month, day := calendar.FromDaysSinceEpoch(days)
	hour, minute, second, microsecond := calendar.FromMicrosecondsSinceMidnight(us)

	return DateTime{
		Date: Date{Year: year, Month: month, Day: day},
		Time: Time{Hour: hour, Minute: minute, Second: second, Microsecond: microsecond},
	}
}

// Pack converts dt to a [PackedDateTime] using the built-in leap second table
func Pack(dt DateTime) PackedDateTime {
	return defaultCalendar.Pack(dt)
}

// Unpack converts p to a [DateTime] using the built-in leap second table
func Unpack(p PackedDateTime) DateTime {
	return defaultCalendar.Unpack(p)
}

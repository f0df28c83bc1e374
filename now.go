package ytime

import "time"

// Now returns the current UTC date and time from the system clock. The system clock doesn't report leap seconds, so
// the result never has a second of 60.
func Now() DateTime {
	return FromTime(time.Now())
}

// FromTime converts t to UTC and truncates it to microseconds
func FromTime(t time.Time) DateTime {
	t = t.UTC()
	return DateTime{
		Date: Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()},
		Time: Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Microsecond: t.Nanosecond() / 1000},
	}
}

// ToTime converts dt to a [time.Time] in UTC. [time.Time] has no leap seconds, so 23:59:60 becomes 00:00:00 of the
// next day.
func (dt DateTime) ToTime() time.Time {
	return time.Date(
		dt.Date.Year,
		time.Month(dt.Date.Month),
		dt.Date.Day,
		dt.Time.Hour,
		dt.Time.Minute,
		dt.Time.Second,
		dt.Time.Microsecond*1000,
		time.UTC,
	)
}

// Package calendar holds the pure proleptic Gregorian arithmetic that the packed representation is built on.
//
// Day counts start at March 1 of [EpochYear]. Internally March is the first month of the year, which moves
// February's variable length to the end of the year and keeps the month table free of leap-year branches.
package calendar

import "sort"

const (
	SecondsPerDay = 24 * 60 * 60

	MicrosecondsPerSecond = 1_000_000
	MicrosecondsPerMinute = 60 * MicrosecondsPerSecond
	MicrosecondsPerHour   = 60 * MicrosecondsPerMinute
	MicrosecondsPerDay    = SecondsPerDay * MicrosecondsPerSecond
)

const (
	// EpochYear is the year containing day 0. It must be a leap century (divisible by 400) before MinYear; 1200 is
	// the last one before the Gregorian calendar was introduced in October 1582.
	EpochYear = 1200

	// MinYear is the first year that is supported for calendar values
	MinYear = 1582
)

// Number of days in 400, 100 (not divisible by 400), 4 and 1 years
const (
	daysPer400Years = 400*365 + 97
	daysPer100Years = 100*365 + 24
	daysPer4Years   = 4*365 + 1
	daysPerYear     = 365
)

// Days before the start of each month, with March as month 0
var accumulatedDays = [12]int64{
	0, 31, 61, 92, 122, 153,
	184, 214, 245, 275, 306, 337,
}

func daysSinceEpochYear(year int64) int64 {
	years := year - EpochYear
	return years*365 + years/4 - years/100 + years/400
}

// DaysSinceEpoch returns the number of days from March 1, [EpochYear] to the given date. The date is not validated,
// but year must not be earlier than [EpochYear].
func DaysSinceEpoch(year, month, day int) int64 {
	y := int64(year)
	m := month

	if m > 2 {
		m -= 3
	} else {
		m += 9
		y--
	}

	return daysSinceEpochYear(y) + accumulatedDays[m] + int64(day) - 1
}

// FromDaysSinceEpoch is the inverse of [DaysSinceEpoch]. days must not be negative.
func FromDaysSinceEpoch(days int64) (year, month, day int) {
	y, dayOfYear := internalYearDay(days)

	// Find the first month that starts after dayOfYear; the month we want is the one before it
	m := sort.Search(len(accumulatedDays), func(i int) bool {
		return accumulatedDays[i] > dayOfYear
	})

	day = int(dayOfYear-accumulatedDays[m-1]) + 1

	if m > 10 {
		// January and February belong to the next calendar year
		return int(y) + 1, m - 10, day
	}

	return int(y), m + 2, day
}

// internalYearDay splits a day count into a year and a zero-based day within that (March-first) year.
func internalYearDay(days int64) (int64, int64) {
	n := days / daysPer400Years
	year := EpochYear + 400*n
	days -= n * daysPer400Years

	// The last day of a 400-year period is the 366th day of a leap century, not the start of a fifth century
	n = min(3, days/daysPer100Years)
	year += 100 * n
	days -= n * daysPer100Years

	n = days / daysPer4Years
	year += 4 * n
	days -= n * daysPer4Years

	n = min(3, days/daysPerYear)
	year += n

	return year, days - n*daysPerYear
}

// MicrosecondsSinceMidnight converts a time of day to microseconds. Fields are not validated.
func MicrosecondsSinceMidnight(hour, minute, second, microsecond int) uint64 {
	return uint64(hour)*MicrosecondsPerHour +
		uint64(minute)*MicrosecondsPerMinute +
		uint64(second)*MicrosecondsPerSecond +
		uint64(microsecond)
}

// FromMicrosecondsSinceMidnight is the inverse of [MicrosecondsSinceMidnight]. Hours are capped at 23 and minutes at
// 59, so that the extra second of a leap-second day comes out as 23:59:60 rather than 24:00:00.
func FromMicrosecondsSinceMidnight(us uint64) (hour, minute, second, microsecond int) {
	h := min(23, us/MicrosecondsPerHour)
	us -= h * MicrosecondsPerHour

	m := min(59, us/MicrosecondsPerMinute)
	us -= m * MicrosecondsPerMinute

	return int(h), int(m), int(us / MicrosecondsPerSecond), int(us % MicrosecondsPerSecond)
}

// IsLeapYear reports whether year has a February 29th
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

var daysInMonth = [12]int{31, 0, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of month in year, or 0 if month is not in the range 1-12
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}

	if month != 2 {
		return daysInMonth[month-1]
	}

	if IsLeapYear(year) {
		return 29
	}

	return 28
}

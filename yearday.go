package ytime

import "github.com/davejbax/go-ytime/internal/calendar"

// YearDay is a date given as a year and a one-based day of that year
type YearDay struct {
	Year, Day int
}

func ToYearDay(date Date) YearDay {
	day := calendar.DaysSinceEpoch(date.Year, date.Month, date.Day) - calendar.DaysSinceEpoch(date.Year, 1, 1)
	return YearDay{Year: date.Year, Day: int(day) + 1}
}

// FromYearDay is the inverse of [ToYearDay]. Days past the end of the year roll over into the following years.
func FromYearDay(yd YearDay) Date {
	year, month, day := calendar.FromDaysSinceEpoch(calendar.DaysSinceEpoch(yd.Year, 1, 1) + int64(yd.Day) - 1)
	return Date{Year: year, Month: month, Day: day}
}

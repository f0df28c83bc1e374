package ytime

import (
	"fmt"
	"github.com/davejbax/go-ytime/internal/calendar"
)

// MinYear is the earliest year that [Validate] accepts
const MinYear = calendar.MinYear

func validateDate(date Date) error {
	if date.Year < MinYear {
		return fmt.Errorf("%w: year must be at least %d", ErrOutOfRange, MinYear)
	}

	daysInMonth := calendar.DaysInMonth(date.Year, date.Month)
	if daysInMonth == 0 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrOutOfRange)
	}

	if date.Day < 1 || date.Day > daysInMonth {
		return fmt.Errorf("%w: day must be between 1 and %d", ErrOutOfRange, daysInMonth)
	}

	return nil
}

func (c *Calendar) validateTime(date Date, t Time) error {
	if t.Hour < 0 || t.Hour > 23 {
		return fmt.Errorf("%w: hour must be between 0 and 23", ErrOutOfRange)
	}

	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("%w: minute must be between 0 and 59", ErrOutOfRange)
	}

	if t.Microsecond < 0 || t.Microsecond > 999_999 {
		return fmt.Errorf("%w: microsecond must be between 0 and 999999", ErrOutOfRange)
	}

	if t.Second >= 0 && t.Second <= 59 {
		return nil
	}

	// Second 60 only exists in the last minute of a day that ends with a leap second
	if t.Second == 60 && t.Hour == 23 && t.Minute == 59 && c.leapSeconds.HasLeapSecond(date) {
		return nil
	}

	if t.Hour == 23 && t.Minute == 59 && c.leapSeconds.HasLeapSecond(date) {
		return fmt.Errorf("%w: second must be between 0 and 60", ErrOutOfRange)
	}

	return fmt.Errorf("%w: second must be between 0 and 59", ErrOutOfRange)
}

// Validate checks that every field of dt is within range, including that a second of 60 only appears at 23:59 on a
// day that ends with a leap second in the calendar's table. The returned error wraps [ErrOutOfRange].
func (c *Calendar) Validate(dt DateTime) error {
	if err := validateDate(dt.Date); err != nil {
		return err
	}

	return c.validateTime(dt.Date, dt.Time)
}

// Validate checks dt against the built-in leap second table. See [Calendar.Validate].
func Validate(dt DateTime) error {
	return defaultCalendar.Validate(dt)
}

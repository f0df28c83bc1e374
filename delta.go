package ytime

import (
	"fmt"
	"github.com/davejbax/go-ytime/internal/calendar"
)

// Delta is a signed distance between two instants, expressed as whole calendar days plus elapsed microseconds. The
// two parts are kept apart because a calendar day is not always 86400 seconds long: a day that ends with a leap
// second lasts 86401 seconds.
//
// The zero value is an empty delta.
type Delta struct {
	days         int64
	microseconds int64
}

// NewDelta returns a delta of days calendar days plus totalMicroseconds elapsed microseconds
func NewDelta(days, totalMicroseconds int64) Delta {
	return Delta{days: days, microseconds: totalMicroseconds}
}

func Days(days int64) Delta {
	return Delta{days: days}
}

func Seconds(seconds int64) Delta {
	return Delta{microseconds: seconds * calendar.MicrosecondsPerSecond}
}

func Microseconds(microseconds int64) Delta {
	return Delta{microseconds: microseconds}
}

func (d Delta) IsZero() bool {
	return d.days == 0 && d.microseconds == 0
}

func (d Delta) Days() int64 {
	return d.days
}

// Seconds returns the whole seconds of the time part, truncated towards zero
func (d Delta) Seconds() int64 {
	return d.microseconds / calendar.MicrosecondsPerSecond
}

// Microseconds returns the part of the time that is less than a second. It has the same sign as
// [Delta.TotalMicroseconds].
func (d Delta) Microseconds() int64 {
	return d.microseconds - d.Seconds()*calendar.MicrosecondsPerSecond
}

// TotalMicroseconds returns the whole time part, excluding days
func (d Delta) TotalMicroseconds() int64 {
	return d.microseconds
}

func (d Delta) Add(other Delta) Delta {
	return Delta{days: d.days + other.days, microseconds: d.microseconds + other.microseconds}
}

func (d Delta) Sub(other Delta) Delta {
	return Delta{days: d.days - other.days, microseconds: d.microseconds - other.microseconds}
}

func (d Delta) Neg() Delta {
	return Delta{days: -d.days, microseconds: -d.microseconds}
}

// String formats the delta as e.g. "1 days 2 seconds" or "0 days -0.500000 seconds"
func (d Delta) String() string {
	if d.microseconds%calendar.MicrosecondsPerSecond == 0 {
		return fmt.Sprintf("%d days %d seconds", d.days, d.Seconds())
	}

	sign := ""
	us := d.microseconds
	if us < 0 {
		sign = "-"
		us = -us
	}

	return fmt.Sprintf("%d days %s%d.%06d seconds", d.days, sign,
		us/calendar.MicrosecondsPerSecond, us%calendar.MicrosecondsPerSecond)
}

package ytime

import (
	"fmt"
	"github.com/davejbax/go-ytime/internal/calendar"
)

// shiftDays moves from by a number of calendar days, keeping the time of day. The raw shift is corrected by the
// change in the leap second count between from and the shifted instant. If a leap second boundary is crossed the
// result can land inside a leap second; callers decide which side of it they want.
func (c *Calendar) shiftDays(from PackedDateTime, days int64) PackedDateTime {
	fromLeapSeconds := int64(c.leapSeconds.LeapSeconds(from))

	to := from.AddMicroseconds(days * calendar.MicrosecondsPerDay)
	toLeapSeconds := int64(c.leapSeconds.LeapSeconds(to))

	return to.AddMicroseconds((toLeapSeconds - fromLeapSeconds) * calendar.MicrosecondsPerSecond)
}

// GetDelta returns the calendar distance from one instant to another: whole days, such that adding them to from keeps
// its time of day, plus the elapsed microseconds that remain. A day that ends in a leap second therefore counts as a
// single day although it is a second longer than usual.
//
// When the whole days land exactly inside a leap second, the remaining time is measured from the next regular
// second for positive deltas and from the previous one otherwise. If the remainder is then zero, positive deltas give
// up a day for 86400 seconds and negative deltas gain a day for -86400 seconds, so GetDelta(a, b) is not always
// the negation of GetDelta(b, a) near a leap second.
//
// An error wrapping [ErrLeapSecondAnchor] is returned if from lies inside a leap second and to is a different instant.
func (c *Calendar) GetDelta(from, to PackedDateTime) (Delta, error) {
	if from == to {
		return Delta{}, nil
	}

	if c.leapSeconds.IsLeapSecond(from) {
		return Delta{}, fmt.Errorf("%w: %s", ErrLeapSecondAnchor, c.Unpack(from))
	}

	// Elapsed time, less the leap seconds inserted in between
	elapsed := int64(to - from)
	leapSeconds := int64(c.leapSeconds.LeapSeconds(to)) - int64(c.leapSeconds.LeapSeconds(from))
	elapsed -= leapSeconds * calendar.MicrosecondsPerSecond

	days := elapsed / calendar.MicrosecondsPerDay
	to0 := c.shiftDays(from, days)
	us := int64(to - to0)

	if c.leapSeconds.IsLeapSecond(to0) {
		switch {
		case us != 0 && days > 0:
			us -= calendar.MicrosecondsPerSecond
		case us != 0:
			us += calendar.MicrosecondsPerSecond
		case days > 0:
			days--
			us = calendar.MicrosecondsPerDay
		default:
			days++
			us = -calendar.MicrosecondsPerDay
		}
	}

	return NewDelta(days, us), nil
}

// AddDelta moves from by delta: first by the delta's days, keeping the time of day, then by its elapsed
// microseconds. It is the counterpart of [Calendar.GetDelta], so AddDelta(a, GetDelta(a, b)) is b.
//
// If the days land inside a leap second, positive deltas continue from the second after it and negative deltas from
// the second before it. An error wrapping [ErrLeapSecondAnchor] is returned if delta has days and from lies inside a
// leap second.
func (c *Calendar) AddDelta(from PackedDateTime, delta Delta) (PackedDateTime, error) {
	if delta.days == 0 {
		return from.AddMicroseconds(delta.microseconds), nil
	}

	if c.leapSeconds.IsLeapSecond(from) {
		return 0, fmt.Errorf("%w: %s", ErrLeapSecondAnchor, c.Unpack(from))
	}

	to := c.shiftDays(from, delta.days)

	if c.leapSeconds.IsLeapSecond(to) {
		if delta.days > 0 {
			to = to.AddMicroseconds(calendar.MicrosecondsPerSecond)
		} else {
			to = to.AddMicroseconds(-calendar.MicrosecondsPerSecond)
		}
	}

	return to.AddMicroseconds(delta.microseconds), nil
}

// GetDelta returns the distance between two instants using the built-in leap second table. See
// [Calendar.GetDelta].
func GetDelta(from, to PackedDateTime) (Delta, error) {
	return defaultCalendar.GetDelta(from, to)
}

// AddDelta adds a delta to an instant using the built-in leap second table. See [Calendar.AddDelta].
func AddDelta(from PackedDateTime, delta Delta) (PackedDateTime, error) {
	return defaultCalendar.AddDelta(from, delta)
}

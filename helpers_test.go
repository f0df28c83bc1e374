package ytime_test

import (
	"github.com/davejbax/go-ytime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// dt builds a date-time with whole seconds
func dt(year, month, day, hour, minute, second int) ytime.DateTime {
	return ytime.NewDateTime(year, month, day, hour, minute, second)
}

// dtus builds a date-time with a microsecond part
func dtus(year, month, day, hour, minute, second, microsecond int) ytime.DateTime {
	d := ytime.NewDateTime(year, month, day, hour, minute, second)
	d.Time.Microsecond = microsecond
	return d
}

// checkDelta asserts that the delta between two date-times, packed with the built-in table, is as expected
func checkDelta(t *testing.T, from, to ytime.DateTime, expected ytime.Delta) {
	t.Helper()

	actual, err := ytime.GetDelta(ytime.Pack(from), ytime.Pack(to))
	require.NoError(t, err, "GetDelta should not return an error from %s", from)
	assert.Equal(t, expected, actual, "Delta from %s to %s should be %s, got %s", from, to, expected, actual)
}

// checkSum asserts that adding delta to from gives the expected date-time
func checkSum(t *testing.T, from ytime.DateTime, delta ytime.Delta, expected ytime.DateTime) {
	t.Helper()

	packed, err := ytime.AddDelta(ytime.Pack(from), delta)
	require.NoError(t, err, "AddDelta should not return an error from %s", from)
	assert.Equal(t, expected, ytime.Unpack(packed), "%s + %s should be %s", from, delta, expected)
}

// leapSecondBoundaries returns the first instant after each leap second of the built-in table
func leapSecondBoundaries() []ytime.PackedDateTime {
	entries := ytime.DefaultLeapSecondTable().Entries()

	boundaries := make([]ytime.PackedDateTime, 0, len(entries))
	for _, entry := range entries {
		boundaries = append(boundaries, ytime.Pack(ytime.DateTime{Date: entry.Date}))
	}

	return boundaries
}

const (
	second = int64(1_000_000)
	day    = 86_400 * second
)

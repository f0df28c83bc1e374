package ytime_test

import (
	"github.com/davejbax/go-ytime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		input    string
		expected ytime.DateTime
	}{
		{"2015-06-30T23:59:60", dt(2015, 6, 30, 23, 59, 60)},
		{"2015-06-30T23:59:60.5", dtus(2015, 6, 30, 23, 59, 60, 500_000)},
		{"2015-06-30T23:59:60.123456789", dtus(2015, 6, 30, 23, 59, 60, 123_456)},
		{"2015-06-30T00:00:00.000001", dtus(2015, 6, 30, 0, 0, 0, 1)},
		{"1990-4-24T9:45:0", dt(1990, 4, 24, 9, 45, 0)},
		{"2020-04-24", dt(2020, 4, 24, 0, 0, 0)},
		{"12:30:15", ytime.DateTime{Time: ytime.Time{Hour: 12, Minute: 30, Second: 15}}},
		{"2020-02-30T25:00:00", dt(2020, 2, 30, 25, 0, 0)},
	}

	for _, c := range cases {
		c := c
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			actual, err := ytime.ParseDateTime(c.input)
			require.NoError(t, err, "ParseDateTime should accept %q", c.input)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestParseDateTime_Errors(t *testing.T) {
	cases := []string{
		"",
		"2015-06",
		"2015-06-xxT00:00:00",
		"2015-06-30T00:00",
		"2015-06-30T00:00:00.",
		"2015-06-30T00:00:00.5a",
		"2015/06/30",
		"noon",
	}

	for _, c := range cases {
		c := c
		t.Run(c, func(t *testing.T) {
			t.Parallel()

			_, err := ytime.ParseDateTime(c)
			assert.ErrorIs(t, err, ytime.ErrInvalidFormat, "ParseDateTime should reject %q", c)
		})
	}
}

func TestParseSeconds(t *testing.T) {
	cases := []struct {
		input    string
		expected int64
	}{
		{"0", 0},
		{"86400", 86_400_000_000},
		{"-86399", -86_399_000_000},
		{"+2", 2_000_000},
		{"1.5", 1_500_000},
		{"-0.000001", -1},
	}

	for _, c := range cases {
		c := c
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			actual, err := ytime.ParseSeconds(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}

	for _, input := range []string{"", "-", "1.", "one", "1e3", "--1"} {
		_, err := ytime.ParseSeconds(input)
		assert.ErrorIs(t, err, ytime.ErrInvalidFormat, "ParseSeconds should reject %q", input)
	}
}

func TestParseDelta_Errors(t *testing.T) {
	for _, input := range []string{"", "1 days", "1 day 2 seconds", "x days 2 seconds", "1 days y seconds"} {
		_, err := ytime.ParseDelta(input)
		assert.ErrorIs(t, err, ytime.ErrInvalidFormat, "ParseDelta should reject %q", input)
	}
}

package ytime

import (
	"fmt"
	"github.com/davejbax/go-ytime/internal/calendar"
	"github.com/davejbax/go-ytime/internal/leapfile"
	"io"
	"os"
	"sort"
)

// LeapSecond is a single entry of a leap second table. Date is the first day on which Count leap seconds have been
// inserted in total; the leap second itself is 23:59:60 on the day before.
type LeapSecond struct {
	Date  Date
	Count uint32
}

// builtinLeapSeconds lists every leap second announced up to and including the one at the end of 2016
var builtinLeapSeconds = []LeapSecond{
	{Date{1972, 7, 1}, 1},
	{Date{1973, 1, 1}, 2},
	{Date{1974, 1, 1}, 3},
	{Date{1975, 1, 1}, 4},
	{Date{1976, 1, 1}, 5},
	{Date{1977, 1, 1}, 6},
	{Date{1978, 1, 1}, 7},
	{Date{1979, 1, 1}, 8},
	{Date{1980, 1, 1}, 9},
	{Date{1981, 7, 1}, 10},
	{Date{1982, 7, 1}, 11},
	{Date{1983, 7, 1}, 12},
	{Date{1985, 7, 1}, 13},
	{Date{1988, 1, 1}, 14},
	{Date{1990, 1, 1}, 15},
	{Date{1991, 1, 1}, 16},
	{Date{1992, 7, 1}, 17},
	{Date{1993, 7, 1}, 18},
	{Date{1994, 7, 1}, 19},
	{Date{1996, 1, 1}, 20},
	{Date{1997, 7, 1}, 21},
	{Date{1999, 1, 1}, 22},
	{Date{2006, 1, 1}, 23},
	{Date{2009, 1, 1}, 24},
	{Date{2012, 7, 1}, 25},
	{Date{2015, 7, 1}, 26},
	{Date{2017, 1, 1}, 27},
}

var defaultLeapSecondTable = mustNewLeapSecondTable(builtinLeapSeconds)

type leapSecondRecord struct {
	// instant is the packed value of 00:00:00 on the entry's date, i.e. the instant right after the leap second
	instant PackedDateTime
	day     int64
	count   uint32
}

// LeapSecondTable is an immutable, chronologically sorted list of leap second insertions. It is safe for concurrent
// use.
type LeapSecondTable struct {
	records []leapSecondRecord
}

// NewLeapSecondTable builds a table from entries in chronological order. The entries must be valid dates no earlier
// than 1582, strictly increasing, and their counts must start at 1 and go up by one per entry. An empty table is
// allowed and describes a calendar without leap seconds.
func NewLeapSecondTable(entries []LeapSecond) (*LeapSecondTable, error) {
	records := make([]leapSecondRecord, 0, len(entries))

	for i, entry := range entries {
		if err := validateDate(entry.Date); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s): %w", ErrInvalidLeapSecondTable, i, entry.Date, err)
		}

		if entry.Count != uint32(i+1) {
			return nil, fmt.Errorf("%w: entry %d (%s) has count %d, expected %d",
				ErrInvalidLeapSecondTable, i, entry.Date, entry.Count, i+1)
		}

		day := calendar.DaysSinceEpoch(entry.Date.Year, entry.Date.Month, entry.Date.Day)
		record := leapSecondRecord{
			instant: packDaysMicroseconds(day, uint64(entry.Count)*calendar.MicrosecondsPerSecond),
			day:     day,
			count:   entry.Count,
		}

		if i > 0 {
			prev := records[i-1]
			if record.day <= prev.day || record.instant <= prev.instant {
				return nil, fmt.Errorf("%w: entry %d (%s) is not after the previous entry",
					ErrInvalidLeapSecondTable, i, entry.Date)
			}
		}

		records = append(records, record)
	}

	return &LeapSecondTable{records: records}, nil
}

func mustNewLeapSecondTable(entries []LeapSecond) *LeapSecondTable {
	table, err := NewLeapSecondTable(entries)
	if err != nil {
		panic(fmt.Sprintf("built-in leap second table is invalid: %v", err))
	}

	return table
}

// DefaultLeapSecondTable returns the built-in table of historical leap seconds
func DefaultLeapSecondTable() *LeapSecondTable {
	return defaultLeapSecondTable
}

// TableFormat is the document format of a leap second table file
type TableFormat = leapfile.Format

const (
	TableFormatYAML = leapfile.FormatYAML
	TableFormatTOML = leapfile.FormatTOML
)

// LoadLeapSecondTable reads a leap second table document from r. See [NewLeapSecondTable] for the rules that the
// entries must follow.
func LoadLeapSecondTable(r io.Reader, format TableFormat) (*LeapSecondTable, error) {
	entries, err := leapfile.Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("could not read leap second table: %w", err)
	}

	leapSeconds := make([]LeapSecond, 0, len(entries))
	for _, entry := range entries {
		leapSeconds = append(leapSeconds, LeapSecond{
			Date:  Date{Year: entry.Date.Year, Month: entry.Date.Month, Day: entry.Date.Day},
			Count: entry.Count,
		})
	}

	return NewLeapSecondTable(leapSeconds)
}

// LoadLeapSecondTableFile reads a leap second table from a file, choosing the format from its extension
func LoadLeapSecondTableFile(path string) (*LeapSecondTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open leap second table '%s': %w", path, err)
	}
	defer f.Close()

	table, err := LoadLeapSecondTable(f, leapfile.DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}

	return table, nil
}

// Len returns the number of leap seconds in the table
func (t *LeapSecondTable) Len() int {
	return len(t.records)
}

// Entries returns a copy of the table's entries in chronological order
func (t *LeapSecondTable) Entries() []LeapSecond {
	entries := make([]LeapSecond, 0, len(t.records))
	for _, record := range t.records {
		year, month, day := calendar.FromDaysSinceEpoch(record.day)
		entries = append(entries, LeapSecond{Date: Date{year, month, day}, Count: record.count})
	}

	return entries
}

// LeapSeconds returns the number of leap seconds inserted before instant. During a leap second, that leap second is
// not yet counted.
func (t *LeapSecondTable) LeapSeconds(instant PackedDateTime) uint32 {
	// First record strictly after instant
	i := sort.Search(len(t.records), func(i int) bool {
		return t.records[i].instant > instant
	})

	if i == 0 {
		return 0
	}

	return t.records[i-1].count
}

// IsLeapSecond reports whether instant lies within a leap second, i.e. whether it unpacks to 23:59:60.
func (t *LeapSecondTable) IsLeapSecond(instant PackedDateTime) bool {
	// First record at or after instant
	i := sort.Search(len(t.records), func(i int) bool {
		return t.records[i].instant >= instant
	})

	if i == len(t.records) {
		return false
	}

	next := t.records[i].instant
	return instant < next && instant+calendar.MicrosecondsPerSecond >= next
}

// LeapSecondsOnDate returns the number of leap seconds inserted before the start of date
func (t *LeapSecondTable) LeapSecondsOnDate(date Date) uint32 {
	day := calendar.DaysSinceEpoch(date.Year, date.Month, date.Day)

	i := sort.Search(len(t.records), func(i int) bool {
		return t.records[i].day > day
	})

	if i == 0 {
		return 0
	}

	return t.records[i-1].count
}

// HasLeapSecond reports whether date ends with a leap second
func (t *LeapSecondTable) HasLeapSecond(date Date) bool {
	next := calendar.DaysSinceEpoch(date.Year, date.Month, date.Day) + 1

	i := sort.Search(len(t.records), func(i int) bool {
		return t.records[i].day >= next
	})

	return i < len(t.records) && t.records[i].day == next
}

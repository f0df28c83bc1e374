// Package leapfile decodes leap-second table documents. A document lists, for each inserted leap second, the first
// day on which it is counted and the cumulative number of leap seconds from that day on:
//
//	leap_seconds:
//	  - date: 1972-07-01
//	    count: 1
//
// The same structure is accepted as TOML, using a [[leap_seconds]] array of tables.
package leapfile

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

var (
	ErrUnsupportedFormat = errors.New("unsupported leap second table format")
	ErrInvalidDate       = errors.New("invalid leap second date; expected YYYY-MM-DD")
	ErrEmptyTable        = errors.New("leap second table has no entries")
)

// Date is a calendar date as written in a table document
type Date struct {
	Year, Month, Day int
}

// Entry is a single leap second insertion
type Entry struct {
	Date  Date   `yaml:"date" toml:"date"`
	Count uint32 `yaml:"count" toml:"count"`
}

type document struct {
	LeapSeconds []Entry `yaml:"leap_seconds" toml:"leap_seconds"`
}

// DetectFormat picks a format from a file name's extension. Files that are neither .yaml, .yml nor .toml are
// assumed to be YAML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Decode reads a whole table document from r. Entries are returned in document order; checking that they are sorted
// is left to the caller.
func Decode(r io.Reader, format Format) ([]Entry, error) {
	var doc document

	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML leap second table: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode TOML leap second table: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if len(doc.LeapSeconds) == 0 {
		return nil, ErrEmptyTable
	}

	return doc.LeapSeconds, nil
}

var _ yaml.Unmarshaler = &Date{}
var _ toml.Unmarshaler = &Date{}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d is not a scalar", ErrInvalidDate, node.Line)
	}

	parsed, err := parseDate(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*d = parsed
	return nil
}

// UnmarshalTOML accepts both quoted dates and TOML local dates
func (d *Date) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		parsed, err := parseDate(v)
		if err != nil {
			return err
		}

		*d = parsed
	case time.Time:
		*d = Date{Year: v.Year(), Month: int(v.Month()), Day: v.Day()}
	default:
		return fmt.Errorf("%w: got %T", ErrInvalidDate, value)
	}

	return nil
}

func parseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	var fields [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}

		fields[i] = n
	}

	return Date{Year: fields[0], Month: fields[1], Day: fields[2]}, nil
}

package ytime

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"github.com/davejbax/go-ytime/internal/wire"
	"io"
)

var errInvalidLength = errors.New("binary data has the wrong length")

var (
	_ encoding.BinaryMarshaler   = PackedDateTime(0)
	_ encoding.BinaryUnmarshaler = (*PackedDateTime)(nil)
	_ io.WriterTo                = PackedDateTime(0)

	_ encoding.BinaryMarshaler   = DateTime{}
	_ encoding.BinaryUnmarshaler = (*DateTime)(nil)
	_ encoding.TextMarshaler     = DateTime{}
	_ encoding.TextUnmarshaler   = (*DateTime)(nil)
	_ io.WriterTo                = DateTime{}

	_ encoding.BinaryMarshaler   = Delta{}
	_ encoding.BinaryUnmarshaler = (*Delta)(nil)
	_ encoding.TextMarshaler     = Delta{}
	_ encoding.TextUnmarshaler   = (*Delta)(nil)
	_ io.WriterTo                = Delta{}
)

func marshalRecord(record io.WriterTo, size int) ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, size))
	if _, err := record.WriteTo(buff); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

func unmarshalRecord(data []byte, size int, record any) error {
	if len(data) != size {
		return fmt.Errorf("%w: expected %d bytes, got %d", errInvalidLength, size, len(data))
	}

	return wire.Read(bytes.NewReader(data), record)
}

// WriteTo writes p as an 8 byte big endian integer
func (p PackedDateTime) WriteTo(w io.Writer) (int64, error) {
	return wire.Packed{Value: uint64(p)}.WriteTo(w)
}

func (p PackedDateTime) MarshalBinary() ([]byte, error) {
	return marshalRecord(p, wire.PackedSize)
}

func (p *PackedDateTime) UnmarshalBinary(data []byte) error {
	var record wire.Packed
	if err := unmarshalRecord(data, wire.PackedSize, &record); err != nil {
		return fmt.Errorf("could not decode packed date-time: %w", err)
	}

	*p = PackedDateTime(record.Value)
	return nil
}

func (dt DateTime) civil() wire.Civil {
	return wire.Civil{
		Year:        int32(dt.Date.Year),
		Month:       uint8(dt.Date.Month),
		Day:         uint8(dt.Date.Day),
		Hour:        uint8(dt.Time.Hour),
		Minute:      uint8(dt.Time.Minute),
		Second:      uint8(dt.Time.Second),
		Microsecond: uint32(dt.Time.Microsecond),
	}
}

// WriteTo writes dt field by field in 13 bytes. Unlike [PackedDateTime], the encoding doesn't depend on a leap
// second table.
func (dt DateTime) WriteTo(w io.Writer) (int64, error) {
	return dt.civil().WriteTo(w)
}

func (dt DateTime) MarshalBinary() ([]byte, error) {
	return marshalRecord(dt, wire.CivilSize)
}

func (dt *DateTime) UnmarshalBinary(data []byte) error {
	var record wire.Civil
	if err := unmarshalRecord(data, wire.CivilSize, &record); err != nil {
		return fmt.Errorf("could not decode date-time: %w", err)
	}

	*dt = DateTime{
		Date: Date{Year: int(record.Year), Month: int(record.Month), Day: int(record.Day)},
		Time: Time{
			Hour:        int(record.Hour),
			Minute:      int(record.Minute),
			Second:      int(record.Second),
			Microsecond: int(record.Microsecond),
		},
	}

	return nil
}

func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText accepts any form understood by [ParseDateTime]. The result is not validated.
func (dt *DateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}

	*dt = parsed
	return nil
}

// WriteTo writes the days and total microseconds of d as two 8 byte big endian integers
func (d Delta) WriteTo(w io.Writer) (int64, error) {
	return wire.Delta{Days: d.days, Microseconds: d.microseconds}.WriteTo(w)
}

func (d Delta) MarshalBinary() ([]byte, error) {
	return marshalRecord(d, wire.DeltaSize)
}

func (d *Delta) UnmarshalBinary(data []byte) error {
	var record wire.Delta
	if err := unmarshalRecord(data, wire.DeltaSize, &record); err != nil {
		return fmt.Errorf("could not decode delta: %w", err)
	}

	*d = NewDelta(record.Days, record.Microseconds)
	return nil
}

func (d Delta) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Delta) UnmarshalText(text []byte) error {
	parsed, err := ParseDelta(string(text))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

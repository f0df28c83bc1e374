// Package wire defines the fixed-size binary layouts used to store packed instants, deltas and civil date-times.
//
// All records are big endian and are encoded by the [struc] library.
package wire

import (
	"errors"
	"fmt"
	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
	"io"
)

// Sizes of the encoded records, in bytes
const (
	PackedSize = 8
	DeltaSize  = 16
	CivilSize  = 13
)

var ErrShortRecord = errors.New("not enough data for record")

// Packed is a packed instant: microseconds since the epoch, leap seconds included
type Packed struct {
	Value uint64 `struc:"uint64,big"`
}

// Delta is a signed day and microsecond offset
type Delta struct {
	Days         int64 `struc:"int64,big"`
	Microseconds int64 `struc:"int64,big"`
}

// Civil is a calendar date and time of day as separate fields. Unlike [Packed], it can hold values that don't
// correspond to any instant.
type Civil struct {
	Year        int32 `struc:"int32,big"`
	Month       uint8
	Day         uint8
	Hour        uint8
	Minute      uint8
	Second      uint8
	Microsecond uint32 `struc:"uint32,big"`
}

// Ensure records implement [io.WriterTo]
var (
	_ io.WriterTo = Packed{}
	_ io.WriterTo = Delta{}
	_ io.WriterTo = Civil{}
)

func (p Packed) WriteTo(w io.Writer) (int64, error) {
	return writeRecord(w, &p)
}

func (d Delta) WriteTo(w io.Writer) (int64, error) {
	return writeRecord(w, &d)
}

func (c Civil) WriteTo(w io.Writer) (int64, error) {
	return writeRecord(w, &c)
}

func writeRecord(w io.Writer, record any) (int64, error) {
	cw := counter.NewWriter(w)
	if err := struc.Pack(cw, record); err != nil {
		return cw.Count(), fmt.Errorf("failed to pack record: %w", err)
	}

	return cw.Count(), nil
}

// Read decodes a single record from r into record, which must be a pointer to one of the record types in this
// package.
func Read(r io.Reader, record any) error {
	if err := struc.Unpack(r, record); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrShortRecord
		}

		return fmt.Errorf("failed to unpack record: %w", err)
	}

	return nil
}

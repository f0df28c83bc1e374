package wire_test

import (
	"bytes"
	"github.com/davejbax/go-ytime/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPacked_WriteTo(t *testing.T) {
	var buff bytes.Buffer

	written, err := wire.Packed{Value: 0x0102030405060708}.WriteTo(&buff)
	require.NoError(t, err, "WriteTo should not return an error for a packed record")
	assert.EqualValues(t, wire.PackedSize, written, "WriteTo should report the record size")
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buff.Bytes(), "Packed record should be big endian")

	var decoded wire.Packed
	require.NoError(t, wire.Read(&buff, &decoded))
	assert.Equal(t, uint64(0x0102030405060708), decoded.Value)
}

func TestDelta_WriteTo(t *testing.T) {
	var buff bytes.Buffer

	written, err := wire.Delta{Days: -1, Microseconds: 2}.WriteTo(&buff)
	require.NoError(t, err, "WriteTo should not return an error for a delta record")
	assert.EqualValues(t, wire.DeltaSize, written, "WriteTo should report the record size")
	assert.Equal(t, []byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02,
	}, buff.Bytes(), "Delta record should hold two big endian two's complement integers")

	var decoded wire.Delta
	require.NoError(t, wire.Read(&buff, &decoded))
	assert.Equal(t, wire.Delta{Days: -1, Microseconds: 2}, decoded)
}

func TestCivil_WriteTo(t *testing.T) {
	var buff bytes.Buffer

	record := wire.Civil{Year: 2015, Month: 6, Day: 30, Hour: 23, Minute: 59, Second: 60, Microsecond: 123456}

	written, err := record.WriteTo(&buff)
	require.NoError(t, err, "WriteTo should not return an error for a civil record")
	assert.EqualValues(t, wire.CivilSize, written, "WriteTo should report the record size")
	assert.Equal(t, []byte{
		0x00, 0x00, 0x07, 0xDF,
		0x06, 0x1E, 0x17, 0x3B, 0x3C,
		0x00, 0x01, 0xE2, 0x40,
	}, buff.Bytes(), "Civil record should encode each field in order")

	var decoded wire.Civil
	require.NoError(t, wire.Read(&buff, &decoded))
	assert.Equal(t, record, decoded)
}

func TestRead_ShortInput(t *testing.T) {
	var decoded wire.Packed
	assert.Error(t, wire.Read(bytes.NewReader([]byte{0x01, 0x02}), &decoded), "Read should fail when the input is shorter than the record")
}

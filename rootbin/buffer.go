package rootbin

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/rootreader/rootreader/rerrs"
)

// Buffer is a cursor over a contiguous event blob plus its event-offset
// table. It is constructed once per decode session by the driver and
// advanced by the reader tree as it consumes bytes.
//
// Note: Buffer is NOT thread-safe. Each decode session must use its own
// Buffer instance from a single goroutine.
//
// Note: Buffer is NOT reusable across decode sessions. Create a new Buffer
// for each call to driver.ReadData.
type Buffer struct {
	data    []byte
	offsets []uint32
	cursor  int
	event   int
}

// New creates a Buffer over data, with offsets giving the byte position of
// the start of each of len(offsets)-1 events (offsets[0] == 0,
// offsets[len(offsets)-1] == len(data), strictly non-decreasing).
//
// The cursor starts at offsets[0].
func New(data []byte, offsets []uint32) (*Buffer, error) {
	if len(offsets) < 1 {
		return nil, fmt.Errorf("%w: offsets must have at least one entry", rerrs.ErrInvalidOffsetTable)
	}
	if offsets[0] != 0 {
		return nil, fmt.Errorf("%w: offsets[0] must be 0, got %d", rerrs.ErrInvalidOffsetTable, offsets[0])
	}
	if int(offsets[len(offsets)-1]) != len(data) {
		return nil, fmt.Errorf("%w: last offset %d does not match data length %d",
			rerrs.ErrInvalidOffsetTable, offsets[len(offsets)-1], len(data))
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, fmt.Errorf("%w: offsets not non-decreasing at index %d", rerrs.ErrInvalidOffsetTable, i)
		}
	}

	return &Buffer{data: data, offsets: offsets}, nil
}

// Cursor returns the current byte position within the blob.
func (b *Buffer) Cursor() int { return b.cursor }

// Len returns the total length of the underlying blob.
func (b *Buffer) Len() int { return len(b.data) }

// Remaining returns the number of unread bytes in the blob.
func (b *Buffer) Remaining() int { return len(b.data) - b.cursor }

// EventCount returns the number of events described by the offset table.
func (b *Buffer) EventCount() int { return len(b.offsets) - 1 }

// EventIndex returns the index of the event currently being decoded, as
// last set by SeekEvent.
func (b *Buffer) EventIndex() int { return b.event }

// SeekEvent positions the cursor at the start of event i and records it as
// the current event, for later use by EventEnd / CArray's dynamic sizing.
func (b *Buffer) SeekEvent(i int) error {
	if i < 0 || i >= b.EventCount() {
		return fmt.Errorf("%w: event index %d out of range [0,%d)", rerrs.ErrInvalidOffsetTable, i, b.EventCount())
	}
	b.event = i
	b.cursor = int(b.offsets[i])

	return nil
}

// EventBounds returns the [start, end) byte range of event i.
func (b *Buffer) EventBounds(i int) (start, end int) {
	return int(b.offsets[i]), int(b.offsets[i+1])
}

// EventEnd returns the byte offset one past the end of the current event
// (as set by SeekEvent). This backs CArray's dynamic flat_size <= 0 mode
// (spec §4.5, §9 "Per-event end discovery for CArray"): it returns
// offsets[i+1] for the current event i, looked up directly rather than by
// scanning the offset table from the cursor.
func (b *Buffer) EventEnd() int {
	return int(b.offsets[b.event+1])
}

// require advances the cursor by n after checking bounds, returning the
// byte range [start, start+n) that must be read.
func (b *Buffer) require(n int) (int, error) {
	start := b.cursor
	if start+n > len(b.data) {
		return 0, fmt.Errorf("%w: need %d bytes at offset %d, have %d", rerrs.ErrShortBuffer, n, start, len(b.data))
	}
	b.cursor = start + n

	return start, nil
}

// Skip advances the cursor by n bytes without interpreting them.
func (b *Buffer) Skip(n int) error {
	_, err := b.require(n)
	return err
}

// ReadBytes returns the next n raw bytes and advances the cursor. The
// returned slice aliases the underlying blob; callers must not retain it
// past the decode session or mutate it.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	start, err := b.require(n)
	if err != nil {
		return nil, err
	}

	return b.data[start : start+n], nil
}

// ReadUint8 reads one unsigned byte.
func (b *Buffer) ReadUint8() (uint8, error) {
	start, err := b.require(1)
	if err != nil {
		return 0, err
	}

	return b.data[start], nil
}

// ReadInt8 reads one signed byte.
func (b *Buffer) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()
	return int8(v), err //nolint:gosec
}

// ReadBool reads one byte, truthy iff non-zero.
func (b *Buffer) ReadBool() (bool, error) {
	v, err := b.ReadUint8()
	return v != 0, err
}

// ReadUint16 reads a big-endian unsigned 16-bit value.
func (b *Buffer) ReadUint16() (uint16, error) {
	start, err := b.require(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b.data[start : start+2]), nil
}

// ReadInt16 reads a big-endian signed 16-bit value.
func (b *Buffer) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err //nolint:gosec
}

// ReadUint32 reads a big-endian unsigned 32-bit value.
func (b *Buffer) ReadUint32() (uint32, error) {
	start, err := b.require(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b.data[start : start+4]), nil
}

// ReadInt32 reads a big-endian signed 32-bit value.
func (b *Buffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err //nolint:gosec
}

// ReadUint64 reads a big-endian unsigned 64-bit value.
func (b *Buffer) ReadUint64() (uint64, error) {
	start, err := b.require(8)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(b.data[start : start+8]), nil
}

// ReadInt64 reads a big-endian signed 64-bit value.
func (b *Buffer) ReadInt64() (int64, error) {
	v, err := b.ReadUint64()
	return int64(v), err //nolint:gosec
}

// ReadFloat32 reads a big-endian IEEE-754 32-bit float.
func (b *Buffer) ReadFloat32() (float32, error) {
	v, err := b.ReadUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// ReadFloat64 reads a big-endian IEEE-754 64-bit float.
func (b *Buffer) ReadFloat64() (float64, error) {
	v, err := b.ReadUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// ReadPrimitiveWidth reads a primitive of the given byte width and returns
// its bits as a uint64, for use by generic primitive readers that decode
// their concrete type from a byte width known only at construction time.
// Only widths 1, 2, 4, and 8 are supported (spec §4.1).
func (b *Buffer) ReadPrimitiveWidth(width int) (uint64, error) {
	switch width {
	case 1:
		v, err := b.ReadUint8()
		return uint64(v), err
	case 2:
		v, err := b.ReadUint16()
		return uint64(v), err
	case 4:
		v, err := b.ReadUint32()
		return uint64(v), err
	case 8:
		return b.ReadUint64()
	default:
		return 0, fmt.Errorf("%w: width %d", rerrs.ErrUnsupportedTypeWidth, width)
	}
}

// ReadVersion reads ROOT's fVersion field: a signed 16-bit big-endian
// value.
func (b *Buffer) ReadVersion() (int16, error) {
	return b.ReadInt16()
}

// ReadNBytes reads ROOT's fNBytes byte-count field: a 32-bit big-endian
// value whose high bit (KByteCountMask) must be set. Returns the value with
// that bit cleared, or ErrInvalidFraming if the marker bit is absent.
func (b *Buffer) ReadNBytes() (uint32, error) {
	raw, err := b.ReadUint32()
	if err != nil {
		return 0, err
	}
	if raw&KByteCountMask == 0 {
		return 0, fmt.Errorf("%w: fNBytes=0x%08X at offset %d", rerrs.ErrInvalidFraming, raw, b.cursor-4)
	}

	return raw &^ KByteCountMask, nil
}

// ReadCString reads bytes up to and including the first zero byte and
// returns the string with the trailing zero excluded (Open Question in
// spec §9, decided in DESIGN.md: exclude the terminator, matching Go's
// non-NUL-terminated string convention).
func (b *Buffer) ReadCString() (string, error) {
	start := b.cursor
	for i := start; i < len(b.data); i++ {
		if b.data[i] == 0 {
			b.cursor = i + 1
			return string(b.data[start:i]), nil
		}
	}

	return "", fmt.Errorf("%w: unterminated string starting at offset %d", rerrs.ErrShortBuffer, start)
}

// ReadObjectHeader reads fNBytes, then a 32-bit tag. If the tag equals
// KNewClassTag, it also reads a null-terminated class name and returns it;
// otherwise the returned class name is empty. The returned nBytes excludes
// the byte-count marker bit, per ReadNBytes.
func (b *Buffer) ReadObjectHeader() (nBytes uint32, className string, err error) {
	nBytes, err = b.ReadNBytes()
	if err != nil {
		return 0, "", err
	}

	tag, err := b.ReadUint32()
	if err != nil {
		return 0, "", err
	}

	if tag == KNewClassTag {
		className, err = b.ReadCString()
		if err != nil {
			return 0, "", err
		}
	}

	return nBytes, className, nil
}

// TObjectBits wraps a TObject's fBits status word.
type TObjectBits uint32

// HasReferenced reports whether the kIsReferenced bit is set, meaning a
// trailing 2-byte process-ID index (PIDF) follows fBits.
func (bits TObjectBits) HasReferenced() bool {
	return bits&KIsReferenced != 0
}

// SkipTObject advances over a standard TObject header: fVersion (2 bytes),
// fUniqueID (4 bytes), fBits (4 bytes), and, if kIsReferenced is set in
// fBits, an additional 2-byte PIDF index.
func (b *Buffer) SkipTObject() error {
	if err := b.Skip(2); err != nil { // fVersion
		return err
	}

	if err := b.Skip(4); err != nil { // fUniqueID
		return err
	}

	bits, err := b.ReadUint32() // fBits
	if err != nil {
		return err
	}

	if TObjectBits(bits).HasReferenced() {
		return b.Skip(2) // PIDF
	}

	return nil
}

// ReadTObject behaves like SkipTObject but additionally returns the
// fUniqueID and fBits fields, for readers constructed with keepData=true
// (spec §4.2, §9 Open Question on TObject's legacy keep_data flag).
func (b *Buffer) ReadTObject() (uniqueID uint32, bits uint32, pidf uint16, hasPIDF bool, err error) {
	if err = b.Skip(2); err != nil { // fVersion
		return 0, 0, 0, false, err
	}

	uniqueID, err = b.ReadUint32()
	if err != nil {
		return 0, 0, 0, false, err
	}

	bits, err = b.ReadUint32()
	if err != nil {
		return 0, 0, 0, false, err
	}

	if TObjectBits(bits).HasReferenced() {
		pidf, err = b.ReadUint16()
		if err != nil {
			return 0, 0, 0, false, err
		}

		return uniqueID, bits, pidf, true, nil
	}

	return uniqueID, bits, 0, false, nil
}

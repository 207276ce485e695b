package rootbin

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/rootreader/rootreader/rerrs"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesOffsets(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		buf, err := New([]byte{1, 2, 3, 4}, []uint32{0, 2, 4})
		require.NoError(t, err)
		require.Equal(t, 2, buf.EventCount())
	})

	t.Run("first offset not zero", func(t *testing.T) {
		_, err := New([]byte{1, 2}, []uint32{1, 2})
		require.ErrorIs(t, err, rerrs.ErrInvalidOffsetTable)
	})

	t.Run("last offset mismatches data length", func(t *testing.T) {
		_, err := New([]byte{1, 2}, []uint32{0, 3})
		require.ErrorIs(t, err, rerrs.ErrInvalidOffsetTable)
	})

	t.Run("non-monotonic offsets", func(t *testing.T) {
		_, err := New([]byte{1, 2, 3}, []uint32{0, 2, 1, 3})
		require.ErrorIs(t, err, rerrs.ErrInvalidOffsetTable)
	})

	t.Run("empty offsets", func(t *testing.T) {
		_, err := New(nil, nil)
		require.ErrorIs(t, err, rerrs.ErrInvalidOffsetTable)
	})
}

func TestSeekEventAndBounds(t *testing.T) {
	buf, err := New([]byte{1, 2, 3, 4, 5, 6}, []uint32{0, 2, 6})
	require.NoError(t, err)

	require.NoError(t, buf.SeekEvent(0))
	require.Equal(t, 0, buf.Cursor())
	start, end := buf.EventBounds(0)
	require.Equal(t, 0, start)
	require.Equal(t, 2, end)
	require.Equal(t, 2, buf.EventEnd())

	require.NoError(t, buf.SeekEvent(1))
	require.Equal(t, 2, buf.Cursor())
	require.Equal(t, 6, buf.EventEnd())

	require.Error(t, buf.SeekEvent(2))
	require.Error(t, buf.SeekEvent(-1))
}

func TestPrimitiveReads(t *testing.T) {
	var raw []byte
	raw = append(raw, 0xFF)                                  // int8 -1
	raw = binary.BigEndian.AppendUint16(raw, 0xFFFE)          // int16 -2
	raw = binary.BigEndian.AppendUint32(raw, 0xFFFFFFFD)      // int32 -3
	raw = binary.BigEndian.AppendUint64(raw, ^uint64(3))      // int64 -4
	raw = binary.BigEndian.AppendUint32(raw, 0x3F800000)      // float32 1.0
	raw = binary.BigEndian.AppendUint64(raw, 0x3FF0000000000000) // float64 1.0
	raw = append(raw, 1)                                      // bool true

	buf, err := New(raw, []uint32{0, uint32(len(raw))})
	require.NoError(t, err)
	require.NoError(t, buf.SeekEvent(0))

	i8, err := buf.ReadInt8()
	require.NoError(t, err)
	require.EqualValues(t, -1, i8)

	i16, err := buf.ReadInt16()
	require.NoError(t, err)
	require.EqualValues(t, -2, i16)

	i32, err := buf.ReadInt32()
	require.NoError(t, err)
	require.EqualValues(t, -3, i32)

	i64, err := buf.ReadInt64()
	require.NoError(t, err)
	require.EqualValues(t, -4, i64)

	f32, err := buf.ReadFloat32()
	require.NoError(t, err)
	require.InDelta(t, 1.0, f32, 1e-9)

	f64, err := buf.ReadFloat64()
	require.NoError(t, err)
	require.InDelta(t, 1.0, f64, 1e-9)

	bl, err := buf.ReadBool()
	require.NoError(t, err)
	require.True(t, bl)

	require.Equal(t, buf.Len(), buf.Cursor())
}

func TestReadShortBuffer(t *testing.T) {
	buf, err := New([]byte{1, 2}, []uint32{0, 2})
	require.NoError(t, err)
	require.NoError(t, buf.SeekEvent(0))

	_, err = buf.ReadUint32()
	require.ErrorIs(t, err, rerrs.ErrShortBuffer)
}

func TestReadPrimitiveWidth(t *testing.T) {
	raw := []byte{0xAB}
	buf, err := New(raw, []uint32{0, 1})
	require.NoError(t, err)
	require.NoError(t, buf.SeekEvent(0))

	v, err := buf.ReadPrimitiveWidth(1)
	require.NoError(t, err)
	require.EqualValues(t, 0xAB, v)

	_, err = New(raw, []uint32{0, 1})
	require.NoError(t, err)
}

func TestReadPrimitiveWidthUnsupported(t *testing.T) {
	buf, err := New([]byte{0, 0, 0}, []uint32{0, 3})
	require.NoError(t, err)
	require.NoError(t, buf.SeekEvent(0))

	_, err = buf.ReadPrimitiveWidth(3)
	require.ErrorIs(t, err, rerrs.ErrUnsupportedTypeWidth)
}

func TestReadNBytes(t *testing.T) {
	t.Run("valid marker", func(t *testing.T) {
		raw := binary.BigEndian.AppendUint32(nil, KByteCountMask|10)
		buf, err := New(raw, []uint32{0, uint32(len(raw))})
		require.NoError(t, err)
		require.NoError(t, buf.SeekEvent(0))

		n, err := buf.ReadNBytes()
		require.NoError(t, err)
		require.EqualValues(t, 10, n)
	})

	t.Run("missing marker", func(t *testing.T) {
		raw := binary.BigEndian.AppendUint32(nil, 10)
		buf, err := New(raw, []uint32{0, uint32(len(raw))})
		require.NoError(t, err)
		require.NoError(t, buf.SeekEvent(0))

		_, err = buf.ReadNBytes()
		require.ErrorIs(t, err, rerrs.ErrInvalidFraming)
	})
}

func TestReadCString(t *testing.T) {
	raw := []byte("hello\x00world")
	buf, err := New(raw, []uint32{0, uint32(len(raw))})
	require.NoError(t, err)
	require.NoError(t, buf.SeekEvent(0))

	s, err := buf.ReadCString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)
	require.Equal(t, 6, buf.Cursor())
}

func TestReadCStringUnterminated(t *testing.T) {
	raw := []byte("nozero")
	buf, err := New(raw, []uint32{0, uint32(len(raw))})
	require.NoError(t, err)
	require.NoError(t, buf.SeekEvent(0))

	_, err = buf.ReadCString()
	require.True(t, errors.Is(err, rerrs.ErrShortBuffer))
}

func TestReadObjectHeaderWithNewClassTag(t *testing.T) {
	var body []byte
	body = binary.BigEndian.AppendUint32(body, KNewClassTag)
	body = append(body, []byte("MyClass\x00")...)

	var raw []byte
	raw = binary.BigEndian.AppendUint32(raw, KByteCountMask|uint32(len(body)))
	raw = append(raw, body...)

	buf, err := New(raw, []uint32{0, uint32(len(raw))})
	require.NoError(t, err)
	require.NoError(t, buf.SeekEvent(0))

	nBytes, className, err := buf.ReadObjectHeader()
	require.NoError(t, err)
	require.EqualValues(t, len(body), nBytes)
	require.Equal(t, "MyClass", className)
}

func TestReadObjectHeaderWithoutNewClassTag(t *testing.T) {
	var body []byte
	body = binary.BigEndian.AppendUint32(body, 42) // arbitrary non-sentinel tag

	var raw []byte
	raw = binary.BigEndian.AppendUint32(raw, KByteCountMask|uint32(len(body)))
	raw = append(raw, body...)

	buf, err := New(raw, []uint32{0, uint32(len(raw))})
	require.NoError(t, err)
	require.NoError(t, buf.SeekEvent(0))

	_, className, err := buf.ReadObjectHeader()
	require.NoError(t, err)
	require.Empty(t, className)
}

func TestTObjectBitsHasReferenced(t *testing.T) {
	require.True(t, TObjectBits(KIsReferenced).HasReferenced())
	require.False(t, TObjectBits(0).HasReferenced())
}

func TestSkipTObjectAndReadTObject(t *testing.T) {
	t.Run("without referenced bit", func(t *testing.T) {
		var raw []byte
		raw = binary.BigEndian.AppendUint16(raw, 1) // fVersion
		raw = binary.BigEndian.AppendUint32(raw, 7) // fUniqueID
		raw = binary.BigEndian.AppendUint32(raw, 0) // fBits

		buf, err := New(raw, []uint32{0, uint32(len(raw))})
		require.NoError(t, err)
		require.NoError(t, buf.SeekEvent(0))

		uid, bits, _, hasPIDF, err := buf.ReadTObject()
		require.NoError(t, err)
		require.EqualValues(t, 7, uid)
		require.EqualValues(t, 0, bits)
		require.False(t, hasPIDF)
		require.Equal(t, buf.Len(), buf.Cursor())
	})

	t.Run("with referenced bit", func(t *testing.T) {
		var raw []byte
		raw = binary.BigEndian.AppendUint16(raw, 1)
		raw = binary.BigEndian.AppendUint32(raw, 7)
		raw = binary.BigEndian.AppendUint32(raw, KIsReferenced)
		raw = binary.BigEndian.AppendUint16(raw, 99) // PIDF

		buf, err := New(raw, []uint32{0, uint32(len(raw))})
		require.NoError(t, err)
		require.NoError(t, buf.SeekEvent(0))

		_, _, pidf, hasPIDF, err := buf.ReadTObject()
		require.NoError(t, err)
		require.True(t, hasPIDF)
		require.EqualValues(t, 99, pidf)
	})

	t.Run("skip consumes same span", func(t *testing.T) {
		var raw []byte
		raw = binary.BigEndian.AppendUint16(raw, 1)
		raw = binary.BigEndian.AppendUint32(raw, 7)
		raw = binary.BigEndian.AppendUint32(raw, 0)

		buf, err := New(raw, []uint32{0, uint32(len(raw))})
		require.NoError(t, err)
		require.NoError(t, buf.SeekEvent(0))

		require.NoError(t, buf.SkipTObject())
		require.Equal(t, buf.Len(), buf.Cursor())
	})
}

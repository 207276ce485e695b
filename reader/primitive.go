package reader

import (
	"fmt"

	"github.com/rootreader/rootreader/rootbin"
)

// PrimitiveValue enumerates the 11 primitive specializations spec §4.2
// requires: 8 signed/unsigned integer widths, 32/64-bit float, and bool.
type PrimitiveValue interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool
}

// Primitive reads one fixed-width primitive value per occurrence and
// appends it to a single owned column (spec §4.2).
type Primitive[T PrimitiveValue] struct {
	name   string
	values []T
	read   func(buf *rootbin.Buffer) (T, error)
}

var _ Element = (*Primitive[int32])(nil)

func newPrimitive[T PrimitiveValue](name string, read func(*rootbin.Buffer) (T, error)) *Primitive[T] {
	return &Primitive[T]{name: name, read: read}
}

// NewInt8 creates a reader for ROOT's signed 8-bit integer ('c' in the
// element-type catalog).
func NewInt8(name string) *Primitive[int8] {
	return newPrimitive(name, func(b *rootbin.Buffer) (int8, error) { return b.ReadInt8() })
}

// NewUint8 creates a reader for ROOT's unsigned 8-bit integer.
func NewUint8(name string) *Primitive[uint8] {
	return newPrimitive(name, func(b *rootbin.Buffer) (uint8, error) { return b.ReadUint8() })
}

// NewInt16 creates a reader for ROOT's signed 16-bit integer ('s').
func NewInt16(name string) *Primitive[int16] {
	return newPrimitive(name, func(b *rootbin.Buffer) (int16, error) { return b.ReadInt16() })
}

// NewUint16 creates a reader for ROOT's unsigned 16-bit integer.
func NewUint16(name string) *Primitive[uint16] {
	return newPrimitive(name, func(b *rootbin.Buffer) (uint16, error) { return b.ReadUint16() })
}

// NewInt32 creates a reader for ROOT's signed 32-bit integer ('i').
func NewInt32(name string) *Primitive[int32] {
	return newPrimitive(name, func(b *rootbin.Buffer) (int32, error) { return b.ReadInt32() })
}

// NewUint32 creates a reader for ROOT's unsigned 32-bit integer.
func NewUint32(name string) *Primitive[uint32] {
	return newPrimitive(name, func(b *rootbin.Buffer) (uint32, error) { return b.ReadUint32() })
}

// NewInt64 creates a reader for ROOT's signed 64-bit integer ('l').
func NewInt64(name string) *Primitive[int64] {
	return newPrimitive(name, func(b *rootbin.Buffer) (int64, error) { return b.ReadInt64() })
}

// NewUint64 creates a reader for ROOT's unsigned 64-bit integer.
func NewUint64(name string) *Primitive[uint64] {
	return newPrimitive(name, func(b *rootbin.Buffer) (uint64, error) { return b.ReadUint64() })
}

// NewFloat32 creates a reader for ROOT's 32-bit float ('f').
func NewFloat32(name string) *Primitive[float32] {
	return newPrimitive(name, func(b *rootbin.Buffer) (float32, error) { return b.ReadFloat32() })
}

// NewFloat64 creates a reader for ROOT's 64-bit float ('d').
func NewFloat64(name string) *Primitive[float64] {
	return newPrimitive(name, func(b *rootbin.Buffer) (float64, error) { return b.ReadFloat64() })
}

// NewBool creates a reader for ROOT's bool, stored on the wire as a single
// byte, truthy iff non-zero.
func NewBool(name string) *Primitive[bool] {
	return newPrimitive(name, func(b *rootbin.Buffer) (bool, error) { return b.ReadBool() })
}

// Name implements Element.
func (p *Primitive[T]) Name() string { return p.name }

// Read implements Element: consumes one primitive value and appends it.
func (p *Primitive[T]) Read(buf *rootbin.Buffer) error {
	v, err := p.read(buf)
	if err != nil {
		return fmt.Errorf("reader %q: %w", p.name, err)
	}
	p.values = append(p.values, v)

	return nil
}

// ReadN implements BulkReadable by calling Read n times; primitive reads
// have no cheaper bulk path than the per-element loop since each value must
// still be individually byte-order-converted.
func (p *Primitive[T]) ReadN(buf *rootbin.Buffer, n int) error {
	for range n {
		if err := p.Read(buf); err != nil {
			return err
		}
	}

	return nil
}

// Data implements Element.
func (p *Primitive[T]) Data() any {
	return PrimitiveData[T]{Values: p.values}
}

// Len returns the number of values accumulated so far.
func (p *Primitive[T]) Len() int { return len(p.values) }

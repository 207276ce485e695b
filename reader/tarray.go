package reader

import (
	"fmt"

	"github.com/rootreader/rootreader/rootbin"
)

// TArrayValue enumerates the element types ROOT's TArray family supports:
// c/s/i/l/f/d (spec §4.2).
type TArrayValue interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// TArray reads ROOT's TArray wire layout: a 32-bit fSize length prefix
// followed by fSize elements of the parameterized type. Each occurrence
// appends one entry to the offsets column and fSize elements to the data
// column (spec §4.2).
type TArray[T TArrayValue] struct {
	name    string
	offsets []uint32
	data    []T
	read    func(buf *rootbin.Buffer) (T, error)
}

var _ Element = (*TArray[int32])(nil)

func newTArray[T TArrayValue](name string, read func(*rootbin.Buffer) (T, error)) *TArray[T] {
	return &TArray[T]{name: name, offsets: []uint32{0}, read: read}
}

// NewTArrayC creates a TArrayC (int8 element) reader.
func NewTArrayC(name string) *TArray[int8] {
	return newTArray(name, func(b *rootbin.Buffer) (int8, error) { return b.ReadInt8() })
}

// NewTArrayS creates a TArrayS (int16 element) reader.
func NewTArrayS(name string) *TArray[int16] {
	return newTArray(name, func(b *rootbin.Buffer) (int16, error) { return b.ReadInt16() })
}

// NewTArrayI creates a TArrayI (int32 element) reader.
func NewTArrayI(name string) *TArray[int32] {
	return newTArray(name, func(b *rootbin.Buffer) (int32, error) { return b.ReadInt32() })
}

// NewTArrayL creates a TArrayL (int64 element) reader.
func NewTArrayL(name string) *TArray[int64] {
	return newTArray(name, func(b *rootbin.Buffer) (int64, error) { return b.ReadInt64() })
}

// NewTArrayF creates a TArrayF (float32 element) reader.
func NewTArrayF(name string) *TArray[float32] {
	return newTArray(name, func(b *rootbin.Buffer) (float32, error) { return b.ReadFloat32() })
}

// NewTArrayD creates a TArrayD (float64 element) reader.
func NewTArrayD(name string) *TArray[float64] {
	return newTArray(name, func(b *rootbin.Buffer) (float64, error) { return b.ReadFloat64() })
}

// Name implements Element.
func (a *TArray[T]) Name() string { return a.name }

// Read implements Element.
func (a *TArray[T]) Read(buf *rootbin.Buffer) error {
	size, err := buf.ReadUint32()
	if err != nil {
		return fmt.Errorf("reader %q: fSize: %w", a.name, err)
	}

	a.offsets = append(a.offsets, a.offsets[len(a.offsets)-1]+size)

	for range size {
		v, err := a.read(buf)
		if err != nil {
			return fmt.Errorf("reader %q: element: %w", a.name, err)
		}
		a.data = append(a.data, v)
	}

	return nil
}

// Data implements Element.
func (a *TArray[T]) Data() any {
	return JaggedData[T]{Offsets: a.offsets, Data: a.data}
}

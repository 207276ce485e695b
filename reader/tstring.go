package reader

import (
	"fmt"

	"github.com/rootreader/rootreader/rootbin"
)

// tstringEscapeLength is the sentinel one-byte length value that signals a
// following 32-bit length field (spec §4.2), grounded on the same
// length-prefixed-string idiom as the teacher's VarStringEncoder
// (encoding/varstring.go) but extended with ROOT's escape path, which the
// teacher's hard 255-byte cap does not need since mebo controls both ends
// of its own wire format.
const tstringEscapeLength = 255

// TString reads ROOT's TString wire layout: a one-byte length, escaping to
// a 32-bit length when the byte equals 255, followed by that many raw
// bytes. Each occurrence appends an end-offset to the offsets column and
// the string's bytes to the data column (spec §4.2).
type TString struct {
	name    string
	offsets []uint32
	data    []byte
}

var _ Element = (*TString)(nil)

// NewTString creates a TString reader.
func NewTString(name string) *TString {
	return &TString{name: name, offsets: []uint32{0}}
}

// Name implements Element.
func (s *TString) Name() string { return s.name }

// Read implements Element.
func (s *TString) Read(buf *rootbin.Buffer) error {
	size, err := s.readLength(buf)
	if err != nil {
		return err
	}

	chunk, err := buf.ReadBytes(int(size))
	if err != nil {
		return fmt.Errorf("reader %q: data: %w", s.name, err)
	}
	s.data = append(s.data, chunk...)
	s.offsets = append(s.offsets, s.offsets[len(s.offsets)-1]+size)

	return nil
}

func (s *TString) readLength(buf *rootbin.Buffer) (uint32, error) {
	fSize, err := buf.ReadUint8()
	if err != nil {
		return 0, fmt.Errorf("reader %q: fSize: %w", s.name, err)
	}
	if fSize != tstringEscapeLength {
		return uint32(fSize), nil
	}

	size, err := buf.ReadUint32()
	if err != nil {
		return 0, fmt.Errorf("reader %q: escaped fSize: %w", s.name, err)
	}

	return size, nil
}

// Data implements Element.
func (s *TString) Data() any {
	return JaggedData[byte]{Offsets: s.offsets, Data: s.data}
}

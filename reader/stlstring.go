package reader

import (
	"fmt"

	"github.com/rootreader/rootreader/rootbin"
)

// STLString reads a std::string element: an optional fNBytes+fVersion
// header, then the same one-byte-length-with-255-escape layout as TString
// (spec §4.3). It is a distinct type from TString because it can appear
// framed inside STLSeq/STLMap without an enclosing NBytesVersion wrapper.
type STLString struct {
	name       string
	withHeader bool
	offsets    []uint32
	data       []byte
}

var _ Element = (*STLString)(nil)

// NewSTLString creates an STLString reader.
func NewSTLString(name string, withHeader bool) *STLString {
	return &STLString{name: name, withHeader: withHeader, offsets: []uint32{0}}
}

// Name implements Element.
func (s *STLString) Name() string { return s.name }

// Read implements Element.
func (s *STLString) Read(buf *rootbin.Buffer) error {
	if s.withHeader {
		if _, err := buf.ReadNBytes(); err != nil {
			return fmt.Errorf("reader %q: fNBytes: %w", s.name, err)
		}
		if _, err := buf.ReadVersion(); err != nil {
			return fmt.Errorf("reader %q: fVersion: %w", s.name, err)
		}
	}

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

func (s *STLString) readLength(buf *rootbin.Buffer) (uint32, error) {
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
func (s *STLString) Data() any {
	return JaggedData[byte]{Offsets: s.offsets, Data: s.data}
}

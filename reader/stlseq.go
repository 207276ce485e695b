package reader

import (
	"fmt"

	"github.com/rootreader/rootreader/rootbin"
)

// STLSeq reads a sequential STL container (std::vector, std::list,
// std::set) with a homogeneous element type. When withHeader is set, an
// fNBytes+fVersion pair is consumed first (spec §4.3), grounded on the
// same length-prefixed-sequence idiom the teacher applies to
// varint-counted string sequences (encoding/tag.go), generalized here to a
// framed 32-bit count over an arbitrary child reader.
type STLSeq struct {
	name       string
	withHeader bool
	child      Element
	offsets    []uint32
}

var _ Element = (*STLSeq)(nil)

// NewSTLSeq creates an STLSeq reader wrapping child. withHeader selects
// whether an fNBytes+fVersion header precedes the fSize count.
func NewSTLSeq(name string, child Element, withHeader bool) *STLSeq {
	return &STLSeq{name: name, withHeader: withHeader, child: child, offsets: []uint32{0}}
}

// Name implements Element.
func (s *STLSeq) Name() string { return s.name }

// Read implements Element.
func (s *STLSeq) Read(buf *rootbin.Buffer) error {
	if s.withHeader {
		if _, err := buf.ReadNBytes(); err != nil {
			return fmt.Errorf("reader %q: fNBytes: %w", s.name, err)
		}
		if _, err := buf.ReadVersion(); err != nil {
			return fmt.Errorf("reader %q: fVersion: %w", s.name, err)
		}
	}

	size, err := buf.ReadUint32()
	if err != nil {
		return fmt.Errorf("reader %q: fSize: %w", s.name, err)
	}
	s.offsets = append(s.offsets, s.offsets[len(s.offsets)-1]+size)

	if bulk, ok := s.child.(BulkReadable); ok {
		if err := bulk.ReadN(buf, int(size)); err != nil {
			return fmt.Errorf("reader %q: child %q: %w", s.name, s.child.Name(), err)
		}

		return nil
	}

	for range size {
		if err := s.child.Read(buf); err != nil {
			return fmt.Errorf("reader %q: child %q: %w", s.name, s.child.Name(), err)
		}
	}

	return nil
}

// Data implements Element, returning the accumulated offsets alongside the
// child reader's full accumulated output (spec §6: SeqData).
func (s *STLSeq) Data() any {
	return SeqData{Offsets: s.offsets, Child: s.child.Data()}
}

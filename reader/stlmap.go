package reader

import (
	"fmt"

	"github.com/rootreader/rootreader/rootbin"
)

// STLMap reads an STL associative container (std::map, std::unordered_map)
// laid out object-wise: each of fSize iterations reads one key immediately
// followed by its value, per spec §4.3 and the Open Question decision
// recorded in DESIGN.md (the member-wise layout — all keys, then all
// values — is out of scope). withHeader consumes an fNBytes+fVersion pair
// first; with legacySkip8 set, the header is instead fNBytes followed by 8
// skipped bytes (the legacy framing). legacySkip8 has no effect without
// withHeader.
type STLMap struct {
	name        string
	withHeader  bool
	legacySkip8 bool
	keyChild    Element
	valueChild  Element
	offsets     []uint32
}

var _ Element = (*STLMap)(nil)

// NewSTLMap creates an STLMap reader wrapping keyChild/valueChild.
func NewSTLMap(name string, keyChild, valueChild Element, withHeader, legacySkip8 bool) *STLMap {
	return &STLMap{
		name:        name,
		withHeader:  withHeader,
		legacySkip8: legacySkip8,
		keyChild:    keyChild,
		valueChild:  valueChild,
		offsets:     []uint32{0},
	}
}

// Name implements Element.
func (m *STLMap) Name() string { return m.name }

// Read implements Element.
func (m *STLMap) Read(buf *rootbin.Buffer) error {
	if m.withHeader {
		if _, err := buf.ReadNBytes(); err != nil {
			return fmt.Errorf("reader %q: fNBytes: %w", m.name, err)
		}
		if m.legacySkip8 {
			if err := buf.Skip(8); err != nil {
				return fmt.Errorf("reader %q: legacy padding: %w", m.name, err)
			}
		} else if _, err := buf.ReadVersion(); err != nil {
			return fmt.Errorf("reader %q: fVersion: %w", m.name, err)
		}
	}

	size, err := buf.ReadUint32()
	if err != nil {
		return fmt.Errorf("reader %q: fSize: %w", m.name, err)
	}
	m.offsets = append(m.offsets, m.offsets[len(m.offsets)-1]+size)

	for i := uint32(0); i < size; i++ {
		if err := m.keyChild.Read(buf); err != nil {
			return fmt.Errorf("reader %q: key %d: %w", m.name, i, err)
		}
		if err := m.valueChild.Read(buf); err != nil {
			return fmt.Errorf("reader %q: value %d: %w", m.name, i, err)
		}
	}

	return nil
}

// Data implements Element, returning offsets plus the keys' and values'
// full accumulated output (spec §6: MapData).
func (m *STLMap) Data() any {
	return MapData{Offsets: m.offsets, Keys: m.keyChild.Data(), Values: m.valueChild.Data()}
}

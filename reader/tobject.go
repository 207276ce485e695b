package reader

import (
	"fmt"

	"github.com/rootreader/rootreader/rootbin"
)

// TObject reads ROOT's universal TObject header: fVersion, fUniqueID,
// fBits, and an optional trailing PIDF index. Per spec §4.2/§9's Open
// Question, whether to retain fUniqueID/fBits/PIDF is a constructor flag:
// the canonical variant (keepData=false) discards them, the legacy variant
// (keepData=true) accumulates them as columns.
type TObject struct {
	name     string
	keepData bool

	uniqueID    []uint32
	bits        []uint32
	pidf        []uint16
	pidfOffsets []uint32
}

var _ Element = (*TObject)(nil)

// NewTObject creates a TObject reader. When keepData is true, the reader
// retains fUniqueID, fBits, and per-record PIDF offsets (legacy behavior);
// when false, it emits no output (canonical behavior).
func NewTObject(name string, keepData bool) *TObject {
	t := &TObject{name: name, keepData: keepData}
	if keepData {
		t.pidfOffsets = []uint32{0}
	}

	return t
}

// Name implements Element.
func (t *TObject) Name() string { return t.name }

// Read implements Element.
func (t *TObject) Read(buf *rootbin.Buffer) error {
	if !t.keepData {
		if err := buf.SkipTObject(); err != nil {
			return fmt.Errorf("reader %q: %w", t.name, err)
		}

		return nil
	}

	uniqueID, bits, pidf, hasPIDF, err := buf.ReadTObject()
	if err != nil {
		return fmt.Errorf("reader %q: %w", t.name, err)
	}

	t.uniqueID = append(t.uniqueID, uniqueID)
	t.bits = append(t.bits, bits)

	delta := uint32(0)
	if hasPIDF {
		t.pidf = append(t.pidf, pidf)
		delta = 1
	}
	t.pidfOffsets = append(t.pidfOffsets, t.pidfOffsets[len(t.pidfOffsets)-1]+delta)

	return nil
}

// Data implements Element. Returns nil for the canonical (keepData=false)
// variant, or TObjectData for the legacy variant.
func (t *TObject) Data() any {
	if !t.keepData {
		return nil
	}

	return TObjectData{
		UniqueID:    t.uniqueID,
		Bits:        t.bits,
		PIDF:        t.pidf,
		PIDFOffsets: t.pidfOffsets,
	}
}

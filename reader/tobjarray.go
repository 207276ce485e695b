package reader

import (
	"fmt"

	"github.com/rootreader/rootreader/rootbin"
)

// TObjArray composes the common ROOT TObjArray layout: fSize, fLowerBound,
// then fSize entries each framed with an object header, wrapping a single
// homogeneous element reader (spec §9, grounded on
// original_source/example/my_reader/TObjArrayFactory.py, which builds this
// exact composition by hand for every array-of-object branch it touches).
// NewTObjArray folds that boilerplate into one constructor.
func NewTObjArray(name string, elem Element) Element {
	return &tObjArray{name: name, elem: NewObjectHeader(name+".entry", elem), offsets: []uint32{0}}
}

type tObjArray struct {
	name    string
	elem    *ObjectHeader
	offsets []uint32
}

var _ Element = (*tObjArray)(nil)

// Name implements Element.
func (t *tObjArray) Name() string { return t.name }

// Read implements Element.
func (t *tObjArray) Read(buf *rootbin.Buffer) error {
	size, err := buf.ReadInt32()
	if err != nil {
		return fmt.Errorf("reader %q: fSize: %w", t.name, err)
	}
	if _, err := buf.ReadInt32(); err != nil {
		return fmt.Errorf("reader %q: fLowerBound: %w", t.name, err)
	}

	t.offsets = append(t.offsets, t.offsets[len(t.offsets)-1]+uint32(size))

	for range size {
		if err := t.elem.Read(buf); err != nil {
			return fmt.Errorf("reader %q: entry: %w", t.name, err)
		}
	}

	return nil
}

// Data implements Element.
func (t *tObjArray) Data() any {
	return SeqData{Offsets: t.offsets, Child: t.elem.Data()}
}

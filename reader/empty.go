package reader

import "github.com/rootreader/rootreader/rootbin"

// Empty is a stub reader that consumes nothing and produces no output. It
// is used as a placeholder child for branches the caller wants to skip
// structurally without hand-editing the reader tree (spec §4.6).
type Empty struct {
	name string
}

var _ Element = (*Empty)(nil)

// NewEmpty creates an Empty reader.
func NewEmpty(name string) *Empty { return &Empty{name: name} }

// Name implements Element.
func (e *Empty) Name() string { return e.name }

// Read implements Element and is a no-op.
func (e *Empty) Read(buf *rootbin.Buffer) error { return nil }

// Data implements Element, always returning nil.
func (e *Empty) Data() any { return nil }

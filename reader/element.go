// Package reader implements the composable tree of ROOT streamer element
// readers described by the core deserializer: leaf readers for primitives
// and ROOT-supplied types, STL container readers, byte-count framing
// readers, and composite readers that describe object headers and C-style
// arrays.
//
// Every reader is a stateful accumulator: it owns typed output columns that
// grow across the lifetime of a decode session, and is driven exactly once
// per logical occurrence by its parent (or by the driver, for the root
// reader). See package driver for the per-event loop that walks a reader
// tree.
package reader

import "github.com/rootreader/rootreader/rootbin"

// Element is the capability every reader in the tree presents: identify
// itself, consume one logical occurrence from the buffer, and expose its
// accumulated output.
//
// This is the interface form of spec.md §9's "capability-style proxy
// facade with three operations" — chosen over a closed tagged-sum type
// because the reader tree is assembled dynamically by an external planner
// that is not compiled into this module (see DESIGN.md, Open Question 5).
type Element interface {
	// Name identifies this reader, for diagnostics and error messages.
	Name() string

	// Read consumes exactly one logical occurrence from buf, appending to
	// this reader's owned output columns (and recursing into any child
	// readers). It returns an error immediately on any framing violation;
	// on error, output columns may be partially grown (the session is
	// expected to abort).
	Read(buf *rootbin.Buffer) error

	// Data returns this reader's accumulated output. The concrete shape
	// depends on the reader kind (see the *Data types in this package).
	// Ownership of the returned value transfers to the caller; Data must
	// only be called after the decode session completes.
	Data() any
}

// Named is implemented by readers that carry a ROOT class name, letting a
// planner substitute an override reader for a specific class without the
// core needing any built-in notion of class registration (spec_full.md §9
// item 2, grounded on original_source's OverrideStreamerFactory).
type Named interface {
	Element
	ClassName() string
}

// BulkReadable is implemented by leaf readers that can decode a run of N
// occurrences more efficiently than N calls to Read. CArray uses this when
// available and falls back to calling Read in a loop otherwise (spec §4.5:
// "calling child.read per element, or a bulk variant; behavior must be
// equivalent").
type BulkReadable interface {
	Element
	ReadN(buf *rootbin.Buffer, n int) error
}

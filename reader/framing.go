package reader

import (
	"fmt"

	"github.com/rootreader/rootreader/rerrs"
	"github.com/rootreader/rootreader/rootbin"
)

// NBytesVersion wraps a child reader with ROOT's fNBytes+fVersion framing:
// it reads fNBytes=K, reads fVersion, computes the expected end cursor as
// start+4+K (the byte count excludes the 4-byte fNBytes field itself but
// includes the version field that follows it), invokes the child, then
// verifies the cursor lands exactly on the expected end (spec §4.4).
type NBytesVersion struct {
	name  string
	child Element
}

var _ Element = (*NBytesVersion)(nil)

// NewNBytesVersion creates an NBytesVersion framing reader around child.
func NewNBytesVersion(name string, child Element) *NBytesVersion {
	return &NBytesVersion{name: name, child: child}
}

// Name implements Element.
func (r *NBytesVersion) Name() string { return r.name }

// Read implements Element.
func (r *NBytesVersion) Read(buf *rootbin.Buffer) error {
	start := buf.Cursor()

	k, err := buf.ReadNBytes()
	if err != nil {
		return fmt.Errorf("reader %q: %w", r.name, err)
	}

	if _, err := buf.ReadVersion(); err != nil {
		return fmt.Errorf("reader %q: fVersion: %w", r.name, err)
	}

	expectedEnd := start + 4 + int(k)

	if err := r.child.Read(buf); err != nil {
		return fmt.Errorf("reader %q: child %q: %w", r.name, r.child.Name(), err)
	}

	if buf.Cursor() != expectedEnd {
		return fmt.Errorf("%w: reader %q expected end %d, got %d",
			rerrs.ErrFramingLengthMismatch, r.name, expectedEnd, buf.Cursor())
	}

	return nil
}

// Data implements Element by passing the child's output straight through.
func (r *NBytesVersion) Data() any { return r.child.Data() }

// ObjectHeader wraps a child reader with ROOT's full object-header framing:
// fNBytes=K, a 32-bit tag (reading a null-terminated class name when the
// tag is the new-class sentinel), then the child, verifying the cursor
// lands exactly at start+4+K, where K is measured from just after the
// 4-byte fNBytes field to the end of the region (spec §4.4).
type ObjectHeader struct {
	name      string
	child     Element
	className string
}

var (
	_ Element = (*ObjectHeader)(nil)
	_ Named   = (*ObjectHeader)(nil)
)

// NewObjectHeader creates an ObjectHeader framing reader around child.
func NewObjectHeader(name string, child Element) *ObjectHeader {
	return &ObjectHeader{name: name, child: child}
}

// Name implements Element.
func (r *ObjectHeader) Name() string { return r.name }

// ClassName implements Named, returning the class name observed on the
// most recently read occurrence (empty if no new-class tag has been seen
// yet, or if the object stream never uses new-class tags).
func (r *ObjectHeader) ClassName() string { return r.className }

// Read implements Element.
func (r *ObjectHeader) Read(buf *rootbin.Buffer) error {
	start := buf.Cursor()

	k, className, err := buf.ReadObjectHeader()
	if err != nil {
		return fmt.Errorf("reader %q: %w", r.name, err)
	}
	if className != "" {
		r.className = className
	}

	expectedEnd := start + 4 + int(k)

	if err := r.child.Read(buf); err != nil {
		return fmt.Errorf("reader %q: child %q: %w", r.name, r.child.Name(), err)
	}

	if buf.Cursor() != expectedEnd {
		return fmt.Errorf("%w: reader %q expected end %d, got %d",
			rerrs.ErrFramingLengthMismatch, r.name, expectedEnd, buf.Cursor())
	}

	return nil
}

// Data implements Element by passing the child's output straight through.
func (r *ObjectHeader) Data() any { return r.child.Data() }

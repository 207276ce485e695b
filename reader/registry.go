package reader

import (
	"sync"

	"github.com/rootreader/rootreader/internal/fingerprint"
)

// Registry interns Element instances so that a reader tree with shared
// substructure (the same branch's leaf list reused under several parent
// containers) can reference one physical reader instead of duplicating
// state, per spec §9's arena guidance. Interning is keyed by a caller-
// supplied fingerprint, not by structural inspection of the Element
// itself: callers that build equivalent subtrees are responsible for
// deriving equal keys (typically via fingerprint.Of over the branch's
// class name, member name, and type descriptor).
type Registry struct {
	mu      sync.Mutex
	entries map[uint64]Element
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uint64]Element)}
}

// Intern returns the previously registered Element for key, or registers
// and returns fresh if key has not been seen before.
func (r *Registry) Intern(key uint64, fresh Element) Element {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[key]; ok {
		return existing
	}
	r.entries[key] = fresh

	return fresh
}

// KeyOf derives a Registry key from a class name and member name, the
// combination spec §9 identifies as uniquely determining a branch's reader
// shape within one file.
func KeyOf(className, memberName string) uint64 {
	return fingerprint.Of(className, memberName)
}

// Len returns the number of distinct readers currently interned.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Package fingerprint computes stable content hashes used to key the
// reader registry's arena of shared children.
//
// Generalized from a single "hash a metric name" helper into "hash an
// arbitrary tuple of identity parts" so it can key reader identity
// (name + kind + child fingerprints) rather than just a metric name string.
package fingerprint

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Of computes a 64-bit fingerprint over parts, using a length-prefixed
// encoding so that ("ab", "c") and ("a", "bc") never collide.
func Of(parts ...string) uint64 {
	d := xxhash.New()

	var lenBuf [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(p)))
		_, _ = d.Write(lenBuf[:])
		_, _ = d.Write([]byte(p))
	}

	return d.Sum64()
}

// OfString computes a 64-bit fingerprint of a single string. Equivalent to
// mebo's internal/hash.ID, kept as a fast path for the common single-string
// case.
func OfString(s string) uint64 {
	return xxhash.Sum64String(s)
}

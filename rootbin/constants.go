// Package rootbin provides a cursor-based binary reader over a contiguous
// event blob, implementing ROOT's wire-level framing primitives.
//
// The wire format is always big-endian, matching ROOT's on-disk convention.
// A Buffer is constructed once per decode session over a byte blob plus its
// event-offset table and is not safe for concurrent use or reuse across
// sessions.
package rootbin

// Bit masks and sentinel values from ROOT's framing format.
//
// These mirror the constants a ROOT reader needs to recognize byte-count
// prefixes, class tags, and version fields embedded in the wire format.
const (
	// KNewClassTag marks an object header's class tag as "new class,
	// name follows as a null-terminated string".
	KNewClassTag = 0xFFFFFFFF

	// KClassMask isolates the class-tag bit of an object tag word.
	KClassMask = 0x80000000

	// KByteCountMask is the high bit that must be set on any fNBytes
	// byte-count word; ReadNBytes fails with ErrInvalidFraming if absent.
	KByteCountMask = 0x40000000

	// KMaxMapCount bounds the size field of STL map/seq containers.
	KMaxMapCount = 0x3FFFFFFE

	// KByteCountVMask marks a byte-count word embedded in a 16-bit version
	// field (used by some legacy streamers, not otherwise exercised here).
	KByteCountVMask = 0x4000

	// KMaxVersion is the largest valid fVersion value.
	KMaxVersion = 0x3FFF

	// KIsReferenced is the TObject fBits flag indicating a trailing
	// 2-byte process-ID index follows fBits.
	KIsReferenced = 1 << 4
)

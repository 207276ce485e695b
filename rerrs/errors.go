// Package rerrs defines the sentinel error taxonomy shared by rootbin,
// reader, and driver.
//
// Every error surfaced by a decode session wraps one of these sentinels via
// fmt.Errorf's %w verb, so callers can classify failures with errors.Is
// without parsing message strings.
package rerrs

import "errors"

var (
	// ErrInvalidFraming is returned when an expected fNBytes byte-count
	// word lacks the 0x40000000 marker bit.
	ErrInvalidFraming = errors.New("rootbin: invalid framing: missing byte-count marker")

	// ErrFramingLengthMismatch is returned when a region-scoped reader's
	// child did not consume exactly the declared region.
	ErrFramingLengthMismatch = errors.New("reader: framed region length mismatch")

	// ErrEventLengthMismatch is returned by the driver when the number of
	// bytes consumed for an event does not match the input offset table.
	ErrEventLengthMismatch = errors.New("driver: event length mismatch")

	// ErrUnsupportedOperation is returned when a composite reader is asked
	// to perform an operation it forbids (e.g. bulk-read on a CArray from
	// outside its own Read).
	ErrUnsupportedOperation = errors.New("reader: unsupported operation")

	// ErrUnsupportedTypeWidth is returned when a primitive read is
	// requested at a byte width other than 1, 2, 4, or 8.
	ErrUnsupportedTypeWidth = errors.New("rootbin: unsupported primitive type width")

	// ErrShortBuffer is returned when a read would advance the cursor
	// past the end of the blob.
	ErrShortBuffer = errors.New("rootbin: short buffer")

	// ErrInvalidOffsetTable is returned when the event-offset table is
	// malformed (not strictly non-decreasing, wrong length, or bounds
	// exceeding the data blob).
	ErrInvalidOffsetTable = errors.New("driver: invalid event offset table")
)

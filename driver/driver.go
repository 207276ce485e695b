// Package driver runs a reader.Element tree over a full column of raw
// event bytes, materializing the per-event columnar output the tree
// accumulates (spec §4.7). It mirrors the teacher's staged Decode()
// pipeline (blob/numeric_decoder.go): validate framing up front, then loop
// with per-stage error wrapping and a fatal-error log line before
// returning.
package driver

import (
	"fmt"

	"github.com/rootreader/rootreader/reader"
	"github.com/rootreader/rootreader/rerrs"
	"github.com/rootreader/rootreader/rootbin"
)

// ReadData runs root over every event delimited by offsets within data,
// returning root.Data() once all events have been consumed. Each event
// must be fully consumed by root.Read: if the reader's cursor does not
// land exactly on the event's end offset, ReadData returns
// rerrs.ErrEventLengthMismatch wrapping the offending event index.
func ReadData(data []byte, offsets []uint32, root reader.Element) (any, error) {
	return ReadDataWithOptions(data, offsets, root)
}

// ReadDataWithOptions behaves like ReadData but accepts Options, e.g.
// WithLogger to attribute decode diagnostics to a caller-supplied logger.
func ReadDataWithOptions(data []byte, offsets []uint32, root reader.Element, opts ...Option) (any, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}

	buf, err := rootbin.New(data, offsets)
	if err != nil {
		cfg.logger.Error("invalid offset table", "error", err)
		return nil, fmt.Errorf("driver: %w", err)
	}

	for i := range buf.EventCount() {
		if err := buf.SeekEvent(i); err != nil {
			cfg.logger.Error("seek event failed", "event", i, "error", err)
			return nil, fmt.Errorf("driver: event %d: %w", i, err)
		}

		start, end := buf.EventBounds(i)

		if err := root.Read(buf); err != nil {
			cfg.logger.Error("read failed", "event", i, "reader", root.Name(), "error", err)
			return nil, fmt.Errorf("driver: event %d: reader %q: %w", i, root.Name(), err)
		}

		if buf.Cursor() != end {
			cfg.logger.Error("event length mismatch",
				"event", i, "expected_end", end, "start", start, "got", buf.Cursor())
			return nil, fmt.Errorf("%w: event %d expected end %d, got %d",
				rerrs.ErrEventLengthMismatch, i, end, buf.Cursor())
		}
	}

	return root.Data(), nil
}

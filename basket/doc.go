// Package basket provides an optional decompression front-end for ROOT
// basket payloads, plus a small self-contained ".rootbasket" fixture
// format used by the test suite and cmd/rootdump to store event blobs
// without depending on a full ROOT file reader. Decoding the raw event
// bytes handed to driver.ReadData never depends on this package; ROOT's
// own basket/TKey compression and file layout are explicitly out of scope
// for the core decode path (spec Non-goals), but the codec abstraction
// itself is retained here as opt-in tooling, grounded on the teacher's
// compress package (compress/codec.go).
package basket

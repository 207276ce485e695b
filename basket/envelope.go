package basket

import (
	"fmt"

	"github.com/rootreader/rootreader/endian"
)

// envelopeEngine is the byte order used for the .rootbasket fixture's own
// header framing. It is independent of rootbin's hardcoded big-endian ROOT
// wire format, which is why this package keeps the endian package's
// configurable EndianEngine rather than reusing rootbin's fixed choice.
var envelopeEngine = endian.GetBigEndianEngine()

// envelopeMagic identifies a .rootbasket fixture: a self-contained,
// single-branch capture of raw event bytes plus its offset table, used by
// tests and cmd/rootdump so a driver.ReadData run can be reproduced
// without a full ROOT file reader (spec §9 tooling, out of the core decode
// path per spec Non-goals on file I/O).
var envelopeMagic = [4]byte{'R', 'B', 'S', 'K'}

const envelopeVersion = 1

// Envelope is the decoded form of a .rootbasket fixture: an event-offset
// table plus the (possibly compressed) flat event bytes it delimits.
type Envelope struct {
	Compression Compression
	Offsets     []uint32
	Data        []byte
}

// Marshal encodes e into the .rootbasket wire format:
//
//	magic(4) version(1) compression(1) numOffsets(4) offsets(4*n) dataLen(4) data(dataLen)
//
// Data is compressed with the codec named by e.Compression before writing.
func Marshal(e Envelope) ([]byte, error) {
	codec, err := GetCodec(e.Compression)
	if err != nil {
		return nil, fmt.Errorf("basket: marshal: %w", err)
	}

	compressed, err := codec.Compress(e.Data)
	if err != nil {
		return nil, fmt.Errorf("basket: marshal: compress: %w", err)
	}

	out := make([]byte, 0, 4+1+1+4+4*len(e.Offsets)+4+len(compressed))
	out = append(out, envelopeMagic[:]...)
	out = append(out, envelopeVersion)
	out = append(out, byte(e.Compression))
	out = envelopeEngine.AppendUint32(out, uint32(len(e.Offsets)))
	for _, off := range e.Offsets {
		out = envelopeEngine.AppendUint32(out, off)
	}
	out = envelopeEngine.AppendUint32(out, uint32(len(compressed)))
	out = append(out, compressed...)

	return out, nil
}

// Unmarshal decodes a .rootbasket fixture produced by Marshal.
func Unmarshal(raw []byte) (Envelope, error) {
	if len(raw) < 6 || [4]byte(raw[:4]) != envelopeMagic {
		return Envelope{}, fmt.Errorf("basket: unmarshal: bad magic")
	}
	if raw[4] != envelopeVersion {
		return Envelope{}, fmt.Errorf("basket: unmarshal: unsupported version %d", raw[4])
	}

	compression := Compression(raw[5])
	pos := 6

	if pos+4 > len(raw) {
		return Envelope{}, fmt.Errorf("basket: unmarshal: truncated offset count")
	}
	numOffsets := int(envelopeEngine.Uint32(raw[pos:]))
	pos += 4

	if pos+4*numOffsets > len(raw) {
		return Envelope{}, fmt.Errorf("basket: unmarshal: truncated offset table")
	}
	offsets := make([]uint32, numOffsets)
	for i := range offsets {
		offsets[i] = envelopeEngine.Uint32(raw[pos:])
		pos += 4
	}

	if pos+4 > len(raw) {
		return Envelope{}, fmt.Errorf("basket: unmarshal: truncated data length")
	}
	dataLen := int(envelopeEngine.Uint32(raw[pos:]))
	pos += 4

	if pos+dataLen > len(raw) {
		return Envelope{}, fmt.Errorf("basket: unmarshal: truncated payload")
	}

	codec, err := GetCodec(compression)
	if err != nil {
		return Envelope{}, fmt.Errorf("basket: unmarshal: %w", err)
	}

	data, err := codec.Decompress(raw[pos : pos+dataLen])
	if err != nil {
		return Envelope{}, fmt.Errorf("basket: unmarshal: decompress: %w", err)
	}

	return Envelope{Compression: compression, Offsets: offsets, Data: data}, nil
}

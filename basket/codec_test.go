package basket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecsRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated for compressibility, " +
		"the quick brown fox jumps over the lazy dog, repeated for compressibility")

	for _, compression := range []Compression{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestCodecsEmptyInput(t *testing.T) {
	for _, compression := range []Compression{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestGetCodecUnsupported(t *testing.T) {
	_, err := GetCodec(Compression(99))
	require.Error(t, err)
}

func TestStatsRatioAndSavings(t *testing.T) {
	s := Stats{OriginalSize: 100, CompressedSize: 25}
	require.InDelta(t, 0.25, s.Ratio(), 1e-9)
	require.InDelta(t, 75.0, s.SpaceSavings(), 1e-9)
}

func TestStatsRatioZeroOriginal(t *testing.T) {
	s := Stats{OriginalSize: 0, CompressedSize: 0}
	require.Equal(t, 0.0, s.Ratio())
}

func TestEnvelopeRoundTrip(t *testing.T) {
	env := Envelope{
		Compression: CompressionZstd,
		Offsets:     []uint32{0, 4, 10, 10},
		Data:        []byte("abcdefghij"),
	}

	raw, err := Marshal(env)
	require.NoError(t, err)

	decoded, err := Unmarshal(raw)
	require.NoError(t, err)
	require.Equal(t, env.Compression, decoded.Compression)
	require.Equal(t, env.Offsets, decoded.Offsets)
	require.Equal(t, env.Data, decoded.Data)
}

func TestUnmarshalBadMagic(t *testing.T) {
	_, err := Unmarshal([]byte("nope!!"))
	require.Error(t, err)
}

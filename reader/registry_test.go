package reader_test

import (
	"testing"

	"github.com/rootreader/rootreader/reader"
	"github.com/stretchr/testify/require"
)

func TestRegistryInternReusesInstance(t *testing.T) {
	r := reader.NewRegistry()
	key := reader.KeyOf("TLeafI", "fRun")

	first := r.Intern(key, reader.NewInt32("fRun"))
	second := r.Intern(key, reader.NewInt32("fRun-should-not-win"))

	require.Same(t, first, second)
	require.Equal(t, 1, r.Len())
}

func TestRegistryInternDistinctKeys(t *testing.T) {
	r := reader.NewRegistry()

	a := r.Intern(reader.KeyOf("TLeafI", "fRun"), reader.NewInt32("fRun"))
	b := r.Intern(reader.KeyOf("TLeafF", "fWeight"), reader.NewFloat32("fWeight"))

	require.NotSame(t, a, b)
	require.Equal(t, 2, r.Len())
}

func TestKeyOfIsDeterministicAndDistinguishesArgOrder(t *testing.T) {
	require.Equal(t, reader.KeyOf("TLeafI", "fRun"), reader.KeyOf("TLeafI", "fRun"))
	require.NotEqual(t, reader.KeyOf("TLeafI", "fRun"), reader.KeyOf("fRun", "TLeafI"))
}

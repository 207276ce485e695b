package reader_test

import (
	"testing"

	"github.com/rootreader/rootreader/reader"
	"github.com/stretchr/testify/require"
)

func TestGroupedMapViewBucketsByExternalKey(t *testing.T) {
	m := reader.MapData{
		Offsets: []uint32{0, 4},
		Keys:    reader.PrimitiveData[int32]{Values: []int32{1, 1, 2, 1}},
		Values:  reader.PrimitiveData[float32]{Values: []float32{10, 20, 30, 40}},
	}

	groups := reader.GroupedMapView(m, func(values any, i int) int {
		return int(values.(reader.PrimitiveData[int32]).Values[i])
	})

	require.ElementsMatch(t, []uint32{0, 1, 3}, groups[1].Offsets)
	require.ElementsMatch(t, []uint32{2}, groups[2].Offsets)
	require.Equal(t, m.Keys, groups[1].Keys)
	require.Equal(t, m.Values, groups[1].Values)
}

func TestGroupedMapViewEmpty(t *testing.T) {
	m := reader.MapData{Offsets: []uint32{0}}

	groups := reader.GroupedMapView(m, func(values any, i int) int { return 0 })
	require.Empty(t, groups)
}

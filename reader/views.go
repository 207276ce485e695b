package reader

// GroupedMapView re-buckets a flattened MapData by an externally supplied
// grouping key, grounded on original_source/uproot_custom/AsGroupedMap.py,
// which regroups a decoded map's flat key/value columns by a leading
// composite-key field (there, an event or run identifier) after the fact
// rather than during decode. keyIndex receives m's Keys container (as
// returned by the key reader's Data()) and the flat entry index, and
// returns the group each entry belongs to.
//
// The returned map's MapData entries share the same Keys/Values containers
// as m, but each one's Offsets holds the flat entry indices that belong to
// that group, in ascending order; Keys/Values themselves are not copied, so
// callers index into the original containers using those indices.
func GroupedMapView(m MapData, keyIndex func(keys any, entryIndex int) int) map[int]MapData {
	indices := make(map[int][]uint32)

	entries := 0
	if len(m.Offsets) > 0 {
		entries = int(m.Offsets[len(m.Offsets)-1])
	}

	for i := range entries {
		g := keyIndex(m.Keys, i)
		indices[g] = append(indices[g], uint32(i))
	}

	groups := make(map[int]MapData, len(indices))
	for g, offs := range indices {
		groups[g] = MapData{Offsets: offs, Keys: m.Keys, Values: m.Values}
	}

	return groups
}

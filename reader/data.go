package reader

// PrimitiveData is the output shape of a fixed-width primitive reader
// (spec §6): one flat column of length N, one entry per occurrence.
type PrimitiveData[T any] struct {
	Values []T
}

// JaggedData is the output shape shared by TArray, TString, and STLString
// readers (spec §6): a length-N+1 offsets column plus a flat data column,
// the standard jagged-array convention (spec §3).
type JaggedData[T any] struct {
	Offsets []uint32
	Data    []T
}

// SeqData is the output shape of an STLSeq reader, and of a CArray reader
// operating in dynamic (flat_size <= 0) mode: an offsets column plus the
// child reader's own accumulated output.
type SeqData struct {
	Offsets []uint32
	Child   any
}

// MapData is the output shape of an STLMap reader: an offsets column plus
// the key and value readers' own accumulated outputs.
type MapData struct {
	Offsets []uint32
	Keys    any
	Values  any
}

// GroupData is the output shape of Group and Object readers: the ordered
// list of each child reader's own accumulated output.
type GroupData struct {
	Children []any
}

// TObjectData is the output shape of a TObject reader constructed with
// keepData=true (the legacy behavior described in spec §4.2/§9): the
// fUniqueID and fBits columns plus a jagged PIDF column for records that
// carried the kIsReferenced bit.
type TObjectData struct {
	UniqueID    []uint32
	Bits        []uint32
	PIDF        []uint16
	PIDFOffsets []uint32
}

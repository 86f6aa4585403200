package flatbuffers

// Struct wraps a byte slice and provides read access to its data.
//
// Structs do not have a vtable: every field lives at a fixed offset from Pos
// and is always present.
type Struct struct {
	Table
}

package flatbuffers

import "golang.org/x/xerrors"

// Errors reported by the checked reader (GetRoot, Table.Check, the *Field
// accessors and Vector). Match them with errors.Is; the returned errors wrap
// them with the position that failed.
var (
	// ErrIndexOutOfRange is returned for a vector index < 0 or >= Len().
	ErrIndexOutOfRange = xerrors.New("flatbuffers: index out of range")

	// ErrMalformedBuffer is returned when an offset, vtable, vector or
	// field points outside the buffer or has an impossible size.
	ErrMalformedBuffer = xerrors.New("flatbuffers: malformed buffer")

	// ErrFieldAbsent is returned by accessors whose field type has no
	// schema default (vectors, strings, tables, structs). It is the normal
	// result of reading a buffer written by an older schema.
	ErrFieldAbsent = xerrors.New("flatbuffers: field absent")
)

func malformed(format string, args ...interface{}) error {
	return xerrors.Errorf(format+": %w", append(args, ErrMalformedBuffer)...)
}

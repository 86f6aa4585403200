package asset

import (
	"os"

	"golang.org/x/xerrors"
)

var (
	// ErrNotFound is returned when a named asset does not exist.
	//
	// It maps to os.ErrNotExist so errors.Is(err, fs.ErrNotExist) also holds.
	ErrNotFound = os.ErrNotExist

	// ErrBadMagic is returned when data does not start with the frame magic.
	ErrBadMagic = xerrors.New("asset: bad magic")

	// ErrUnsupportedVersion is returned for a frame written by a newer format.
	ErrUnsupportedVersion = xerrors.New("asset: unsupported frame version")

	// ErrUnknownCompression is returned for an unknown compression id.
	ErrUnknownCompression = xerrors.New("asset: unknown compression")

	// ErrChecksumMismatch is returned when the decoded payload does not match
	// the CRC32-C recorded in the header.
	ErrChecksumMismatch = xerrors.New("asset: checksum mismatch")

	// ErrCorruptFrame is returned when the payload cannot be decompressed to
	// the recorded length.
	ErrCorruptFrame = xerrors.New("asset: corrupt frame")

	// ErrInvalidName is returned for asset names that are empty or contain
	// a path separator.
	ErrInvalidName = xerrors.New("asset: invalid name")
)

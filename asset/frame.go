package asset

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// A frame wraps one finished buffer for storage:
//
//	[magic "FLTC" 4][version u8][compression u8][reserved u16]
//	[raw length u32][crc32c(raw) u32][payload]
//
// All integers are little-endian. The checksum covers the decoded buffer,
// so it also catches a decompressor that silently produced wrong bytes.
const (
	frameVersion    = 1
	frameHeaderSize = 16

	// MaxRawSize bounds the decoded size a header may announce.
	MaxRawSize = 1 << 30
)

var frameMagic = []byte("FLTC")

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// Header is the fixed part of a frame.
type Header struct {
	Version     uint8
	Compression Compression
	RawLen      uint32
	Checksum    uint32
}

// IsFramed reports whether data starts with the frame magic.
func IsFramed(data []byte) bool {
	return len(data) >= len(frameMagic) && bytes.Equal(data[:len(frameMagic)], frameMagic)
}

// Encode frames buf, compressing the payload with c when that saves at
// least a tenth of its size.
func Encode(buf []byte, c Compression) ([]byte, error) {
	if len(buf) > MaxRawSize {
		return nil, xerrors.Errorf("buffer of %d bytes exceeds %d", len(buf), MaxRawSize)
	}
	payload, used, err := compress(buf, c)
	if err != nil {
		return nil, err
	}
	if used != c {
		Logger().Debug("stored uncompressed",
			zap.Stringer("requested", c),
			zap.Int("size", len(buf)))
	}

	out := make([]byte, frameHeaderSize+len(payload))
	copy(out, frameMagic)
	out[4] = frameVersion
	out[5] = byte(used)
	binary.LittleEndian.PutUint16(out[6:], 0)
	binary.LittleEndian.PutUint32(out[8:], uint32(len(buf)))
	binary.LittleEndian.PutUint32(out[12:], crc32.Checksum(buf, crc32cTable))
	copy(out[frameHeaderSize:], payload)
	return out, nil
}

// ReadHeader parses and checks the fixed part of a frame.
func ReadHeader(frame []byte) (Header, error) {
	if len(frame) < frameHeaderSize || !IsFramed(frame) {
		return Header{}, ErrBadMagic
	}
	h := Header{
		Version:     frame[4],
		Compression: Compression(frame[5]),
		RawLen:      binary.LittleEndian.Uint32(frame[8:]),
		Checksum:    binary.LittleEndian.Uint32(frame[12:]),
	}
	if h.Version != frameVersion {
		return h, xerrors.Errorf("version %d: %w", h.Version, ErrUnsupportedVersion)
	}
	if _, ok := compressionNames[h.Compression]; !ok {
		return h, xerrors.Errorf("compression %d: %w", h.Compression, ErrUnknownCompression)
	}
	if h.RawLen > MaxRawSize {
		return h, xerrors.Errorf("raw length %d exceeds %d: %w", h.RawLen, MaxRawSize, ErrCorruptFrame)
	}
	return h, nil
}

// Decode unwraps a frame and returns the finished buffer it carries. For an
// uncompressed frame the result aliases frame.
func Decode(frame []byte) ([]byte, error) {
	h, err := ReadHeader(frame)
	if err != nil {
		return nil, err
	}
	buf, err := decompress(frame[frameHeaderSize:], h.Compression, int(h.RawLen))
	if err != nil {
		return nil, err
	}
	if sum := crc32.Checksum(buf, crc32cTable); sum != h.Checksum {
		return nil, xerrors.Errorf("crc32c %08x, header says %08x: %w", sum, h.Checksum, ErrChecksumMismatch)
	}
	return buf, nil
}

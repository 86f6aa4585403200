package asset

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressible() []byte {
	return bytes.Repeat([]byte("vertex data compresses well "), 512)
}

func incompressible() []byte {
	b := make([]byte, 4096)
	rand.New(rand.NewSource(7)).Read(b)
	return b
}

func TestFrameRoundtrip(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd, CompressionSnappy} {
		t.Run(c.String(), func(t *testing.T) {
			raw := compressible()
			frame, err := Encode(raw, c)
			require.NoError(t, err)
			assert.True(t, IsFramed(frame))

			h, err := ReadHeader(frame)
			require.NoError(t, err)
			assert.Equal(t, c, h.Compression)
			assert.Equal(t, uint32(len(raw)), h.RawLen)
			if c != CompressionNone {
				assert.Less(t, len(frame), len(raw))
			}

			got, err := Decode(frame)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}
}

func TestFrameStoresRawWhenCompressionDoesNotHelp(t *testing.T) {
	for _, c := range []Compression{CompressionLZ4, CompressionZstd, CompressionSnappy} {
		t.Run(c.String(), func(t *testing.T) {
			raw := incompressible()
			frame, err := Encode(raw, c)
			require.NoError(t, err)

			h, err := ReadHeader(frame)
			require.NoError(t, err)
			assert.Equal(t, CompressionNone, h.Compression)
			assert.Equal(t, frameHeaderSize+len(raw), len(frame))

			got, err := Decode(frame)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}
}

func TestFrameEmpty(t *testing.T) {
	frame, err := Encode(nil, CompressionZstd)
	require.NoError(t, err)
	assert.Len(t, frame, frameHeaderSize)

	got, err := Decode(frame)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFrameErrors(t *testing.T) {
	good, err := Encode(compressible(), CompressionNone)
	require.NoError(t, err)

	tests := []struct {
		name   string
		frame  func() []byte
		target error
	}{
		{"empty", func() []byte { return nil }, ErrBadMagic},
		{"short", func() []byte { return good[:frameHeaderSize-1] }, ErrBadMagic},
		{"magic", func() []byte {
			b := bytes.Clone(good)
			b[0] = 'X'
			return b
		}, ErrBadMagic},
		{"version", func() []byte {
			b := bytes.Clone(good)
			b[4] = 2
			return b
		}, ErrUnsupportedVersion},
		{"compression id", func() []byte {
			b := bytes.Clone(good)
			b[5] = 9
			return b
		}, ErrUnknownCompression},
		{"flipped payload byte", func() []byte {
			b := bytes.Clone(good)
			b[len(b)-1] ^= 0xff
			return b
		}, ErrChecksumMismatch},
		{"truncated payload", func() []byte { return good[:len(good)-1] }, ErrCorruptFrame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.frame())
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestFrameTruncatedCompressedPayload(t *testing.T) {
	for _, c := range []Compression{CompressionLZ4, CompressionZstd, CompressionSnappy} {
		t.Run(c.String(), func(t *testing.T) {
			frame, err := Encode(compressible(), c)
			require.NoError(t, err)

			_, err = Decode(frame[:len(frame)-8])
			assert.ErrorIs(t, err, ErrCorruptFrame)
		})
	}
}

func TestFrameZstdLargerThanAnnounced(t *testing.T) {
	frame, err := Encode(compressible(), CompressionZstd)
	require.NoError(t, err)
	h, err := ReadHeader(frame)
	require.NoError(t, err)
	require.Equal(t, CompressionZstd, h.Compression)

	// announce far fewer bytes than the payload expands to
	binary.LittleEndian.PutUint32(frame[8:], 16)
	_, err = Decode(frame)
	assert.ErrorIs(t, err, ErrCorruptFrame)
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression("ZSTD")
	require.NoError(t, err)
	assert.Equal(t, CompressionZstd, c)

	c, err = ParseCompression("none")
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, c)

	_, err = ParseCompression("brotli")
	assert.ErrorIs(t, err, ErrUnknownCompression)
	assert.Equal(t, "unknown", Compression(42).String())
}

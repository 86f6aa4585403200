package asset

import (
	"strings"
	"sync"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/xerrors"
)

// Compression identifies the algorithm applied to a frame payload.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 is LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZstd is zstd (better ratio, good for cold data).
	CompressionZstd Compression = 2
	// CompressionSnappy is snappy block compression.
	CompressionSnappy Compression = 3
)

var compressionNames = map[Compression]string{
	CompressionNone:   "none",
	CompressionLZ4:    "lz4",
	CompressionZstd:   "zstd",
	CompressionSnappy: "snappy",
}

func (c Compression) String() string {
	if s, ok := compressionNames[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCompression maps a name as printed by String back to a Compression.
func ParseCompression(s string) (Compression, error) {
	for c, name := range compressionNames {
		if strings.EqualFold(s, name) {
			return c, nil
		}
	}
	return 0, xerrors.Errorf("%q: %w", s, ErrUnknownCompression)
}

// worthIt is the largest compressed/raw ratio still stored compressed.
const worthIt = 0.9

// zstd encoder/decoder pools
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(MaxRawSize))
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress returns the compressed form of data and the algorithm actually
// used. When compression does not shrink data below worthIt the raw bytes
// are returned with CompressionNone.
func compress(data []byte, c Compression) ([]byte, Compression, error) {
	if c == CompressionNone || len(data) == 0 {
		return data, CompressionNone, nil
	}

	var out []byte
	switch c {
	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, dst, nil)
		if err != nil {
			return nil, 0, xerrors.Errorf("lz4: %w", err)
		}
		out = dst[:n] // n == 0 means incompressible
	case CompressionZstd:
		enc := getZstdEncoder()
		out = enc.EncodeAll(data, nil)
		putZstdEncoder(enc)
	case CompressionSnappy:
		out = snappy.Encode(nil, data)
	default:
		return nil, 0, xerrors.Errorf("compression %d: %w", c, ErrUnknownCompression)
	}

	if len(out) == 0 || float64(len(out)) > float64(len(data))*worthIt {
		return data, CompressionNone, nil
	}
	return out, c, nil
}

// decompress expands payload, which must decode to exactly rawLen bytes.
func decompress(payload []byte, c Compression, rawLen int) ([]byte, error) {
	switch c {
	case CompressionNone:
		if len(payload) != rawLen {
			return nil, xerrors.Errorf("payload of %d bytes, want %d: %w", len(payload), rawLen, ErrCorruptFrame)
		}
		return payload, nil

	case CompressionLZ4:
		out := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, xerrors.Errorf("lz4: %v: %w", err, ErrCorruptFrame)
		}
		if n != rawLen {
			return nil, xerrors.Errorf("lz4 decoded %d bytes, want %d: %w", n, rawLen, ErrCorruptFrame)
		}
		return out, nil

	case CompressionZstd:
		// 解压前先核对帧头里的 content size ，避免恶意数据膨胀到远超 rawLen 。
		var zh zstd.Header
		if err := zh.Decode(payload); err != nil {
			return nil, xerrors.Errorf("zstd header: %v: %w", err, ErrCorruptFrame)
		}
		if zh.HasFCS && zh.FrameContentSize != uint64(rawLen) {
			return nil, xerrors.Errorf("zstd frame holds %d bytes, want %d: %w", zh.FrameContentSize, rawLen, ErrCorruptFrame)
		}
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)
		out, err := dec.DecodeAll(payload, make([]byte, 0, rawLen))
		if err != nil {
			return nil, xerrors.Errorf("zstd: %v: %w", err, ErrCorruptFrame)
		}
		if len(out) != rawLen {
			return nil, xerrors.Errorf("zstd decoded %d bytes, want %d: %w", len(out), rawLen, ErrCorruptFrame)
		}
		return out, nil

	case CompressionSnappy:
		n, err := snappy.DecodedLen(payload)
		if err != nil {
			return nil, xerrors.Errorf("snappy: %v: %w", err, ErrCorruptFrame)
		}
		if n != rawLen {
			return nil, xerrors.Errorf("snappy length %d, want %d: %w", n, rawLen, ErrCorruptFrame)
		}
		out, err := snappy.Decode(make([]byte, rawLen), payload)
		if err != nil {
			return nil, xerrors.Errorf("snappy: %v: %w", err, ErrCorruptFrame)
		}
		return out, nil
	}
	return nil, xerrors.Errorf("compression %d: %w", c, ErrUnknownCompression)
}

package asset

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Store keeps finished buffers under flat names. Put frames the buffer
// (see Encode) and Get verifies and unwraps it again, so callers only ever
// see finished buffers.
//
// Implementations are safe for concurrent use.
type Store interface {
	// Put stores buf under name, replacing any previous value atomically.
	Put(ctx context.Context, name string, buf []byte) error
	// Get returns the buffer stored under name, or an error satisfying
	// errors.Is(err, ErrNotFound).
	Get(ctx context.Context, name string) ([]byte, error)
	// List returns the stored names with the given prefix in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
	// Delete removes name. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
}

type options struct {
	logger      *zap.Logger
	compression Compression
	bucket      []byte
}

// Option configures a store.
type Option func(*options)

// WithLogger sets the logger a store reports to. Defaults to Logger().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCompression sets the payload compression used by Put. Defaults to
// CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = c }
}

// WithBucket sets the bbolt bucket a BoltStore keeps its assets in.
// Defaults to "models". Other stores ignore it.
func WithBucket(name string) Option {
	return func(o *options) { o.bucket = []byte(name) }
}

func newOptions(opts []Option) options {
	o := options{
		logger:      Logger(),
		compression: CompressionNone,
		bucket:      []byte("models"),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, tmpPrefix) {
		return xerrors.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}

// MemoryStore is an in-memory Store, used by tests and as a cache.
type MemoryStore struct {
	opts options

	mu     sync.RWMutex
	frames map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{
		opts:   newOptions(opts),
		frames: make(map[string][]byte),
	}
}

func (m *MemoryStore) Put(ctx context.Context, name string, buf []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}
	frame, err := Encode(buf, m.opts.compression)
	if err != nil {
		return xerrors.Errorf("put %q: %w", name, err)
	}
	m.mu.Lock()
	m.frames[name] = frame
	m.mu.Unlock()

	m.opts.logger.Debug("put asset", zap.String("name", name), zap.Int("frame", len(frame)))
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkName(name); err != nil {
		return nil, err
	}
	m.mu.RLock()
	frame, ok := m.frames[name]
	m.mu.RUnlock()
	if !ok {
		return nil, xerrors.Errorf("get %q: %w", name, ErrNotFound)
	}

	buf, err := Decode(frame)
	if err != nil {
		return nil, xerrors.Errorf("get %q: %w", name, err)
	}
	// 未压缩时 buf 与存储的 frame 共享内存，返回副本防止调用方修改。
	return slices.Clone(buf), nil
}

func (m *MemoryStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	names := make([]string, 0, len(m.frames))
	for name := range m.frames {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	m.mu.RUnlock()

	slices.Sort(names)
	return names, nil
}

func (m *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.frames, name)
	m.mu.Unlock()
	return nil
}

var _ Store = (*MemoryStore)(nil)

package asset

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// tmpPrefix marks files a LocalStore is still writing.
const tmpPrefix = ".tmp-"

// LocalStore implements Store on a directory of the local file system, one
// file per asset.
type LocalStore struct {
	root string
	opts options
}

// NewLocalStore creates a LocalStore rooted at dir, creating dir if needed.
func NewLocalStore(dir string, opts ...Option) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, xerrors.Errorf("create store dir: %w", err)
	}
	return &LocalStore{root: dir, opts: newOptions(opts)}, nil
}

// Put writes the frame to a temporary file in the store directory and
// renames it into place, so readers never observe a partial asset.
func (s *LocalStore) Put(ctx context.Context, name string, buf []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}
	frame, err := Encode(buf, s.opts.compression)
	if err != nil {
		return xerrors.Errorf("put %q: %w", name, err)
	}

	f, err := os.CreateTemp(s.root, tmpPrefix+name+"-*")
	if err != nil {
		return xerrors.Errorf("put %q: %w", name, err)
	}
	tmp := f.Name()
	_, err = f.Write(frame)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, filepath.Join(s.root, name))
	}
	if err != nil {
		_ = os.Remove(tmp)
		return xerrors.Errorf("put %q: %w", name, err)
	}

	s.opts.logger.Debug("put asset",
		zap.String("name", name),
		zap.Int("size", len(buf)),
		zap.Int("frame", len(frame)))
	return nil
}

func (s *LocalStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkName(name); err != nil {
		return nil, err
	}
	frame, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		// *PathError wraps os.ErrNotExist, which is ErrNotFound.
		return nil, xerrors.Errorf("get %q: %w", name, err)
	}
	buf, err := Decode(frame)
	if err != nil {
		s.opts.logger.Warn("corrupt asset", zap.String("name", name), zap.Error(err))
		return nil, xerrors.Errorf("get %q: %w", name, err)
	}
	return buf, nil
}

func (s *LocalStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, xerrors.Errorf("list: %w", err)
	}
	// ReadDir returns entries sorted by filename.
	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || strings.HasPrefix(name, tmpPrefix) {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}

func (s *LocalStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !os.IsNotExist(err) {
		return xerrors.Errorf("delete %q: %w", name, err)
	}
	return nil
}

var _ Store = (*LocalStore)(nil)

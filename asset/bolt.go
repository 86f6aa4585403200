package asset

import (
	"bytes"
	"context"
	"slices"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// BoltStore implements Store on a single bbolt database file, all assets in
// one bucket. Values are frames, so a store can be moved between backends
// with a plain byte copy.
type BoltStore struct {
	db     *bbolt.DB
	bucket []byte
	opts   options
}

// OpenBoltStore opens or creates the database at path.
func OpenBoltStore(path string, opts ...Option) (*BoltStore, error) {
	o := newOptions(opts)
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, xerrors.Errorf("open %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(o.bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, xerrors.Errorf("create bucket %q: %w", o.bucket, err)
	}

	o.logger.Debug("opened bolt store", zap.String("path", path), zap.ByteString("bucket", o.bucket))
	return &BoltStore{db: db, bucket: o.bucket, opts: o}, nil
}

// Close releases the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Put(ctx context.Context, name string, buf []byte) error {
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

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(name), frame)
	})
	if err != nil {
		return xerrors.Errorf("put %q: %w", name, err)
	}
	s.opts.logger.Debug("put asset", zap.String("name", name), zap.Int("frame", len(frame)))
	return nil
}

func (s *BoltStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkName(name); err != nil {
		return nil, err
	}

	var buf []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(s.bucket).Get([]byte(name))
		if value == nil {
			return ErrNotFound
		}
		// value is only valid inside the transaction.
		decoded, err := Decode(value)
		if err != nil {
			return err
		}
		buf = slices.Clone(decoded)
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("get %q: %w", name, err)
	}
	return buf, nil
}

func (s *BoltStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()
		p := []byte(prefix)
		// keys are kept in byte order, which is lexical order for names.
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			names = append(names, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("list: %w", err)
	}
	return names, nil
}

func (s *BoltStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(name))
	})
	if err != nil {
		return xerrors.Errorf("delete %q: %w", name, err)
	}
	return nil
}

var _ Store = (*BoltStore)(nil)

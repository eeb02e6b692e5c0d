// Package store persists rendered artifacts in rocksdb: SVG bytes and the
// JSON metadata sidecar per seed, plus a running artifact count. Since
// generation is deterministic the store is a cache, not a source of truth;
// a lost database is rebuilt by regenerating.
package store

import (
	"errors"
	"math/big"
	"strconv"
	"sync"

	"github.com/tecbot/gorocksdb"
)

var ErrNotFound = errors.New("store: artifact not found")

type ArtifactStore struct {
	db *gorocksdb.DB
	ro *gorocksdb.ReadOptions
	wo *gorocksdb.WriteOptions

	// Serializes Put: the count maintenance is a read-modify-write and
	// gallery workers share one store.
	mu sync.Mutex
}

func Open(path string) (*ArtifactStore, error) {
	opts := gorocksdb.NewDefaultOptions()
	opts.SetCreateIfMissing(true)

	db, err := gorocksdb.OpenDb(opts, path)
	if err != nil {
		return nil, err
	}

	return &ArtifactStore{
		db: db,
		ro: gorocksdb.NewDefaultReadOptions(),
		wo: gorocksdb.NewDefaultWriteOptions(),
	}, nil
}

func (s *ArtifactStore) Close() {
	if s.ro != nil {
		s.ro.Destroy()
	}
	if s.wo != nil {
		s.wo.Destroy()
	}
	if s.db != nil {
		s.db.Close()
	}
}

// Put writes SVG and metadata atomically and bumps the count when the seed
// is new. Re-putting the same seed overwrites (the bytes are identical by
// determinism anyway) without double counting. Safe for concurrent use:
// the has-check, count read and batch write happen under one lock, so two
// workers inserting fresh seeds cannot both observe count n and both write
// n+1.
func (s *ArtifactStore) Put(seed *big.Int, svg, meta []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.Has(seed)
	if err != nil {
		return err
	}

	wb := gorocksdb.NewWriteBatch()
	defer wb.Destroy()

	wb.Put(KeySVG(seed), svg)
	wb.Put(KeyMeta(seed), meta)

	if !exists {
		n, err := s.Count()
		if err != nil {
			return err
		}
		wb.Put(KeyCount(), []byte(strconv.FormatInt(n+1, 10)))
	}

	return s.db.Write(s.wo, wb)
}

func (s *ArtifactStore) Has(seed *big.Int) (bool, error) {
	val, err := s.db.Get(s.ro, KeySVG(seed))
	if err != nil {
		return false, err
	}
	defer val.Free()
	return val.Exists(), nil
}

func (s *ArtifactStore) GetSVG(seed *big.Int) ([]byte, error) {
	return s.get(KeySVG(seed))
}

func (s *ArtifactStore) GetMeta(seed *big.Int) ([]byte, error) {
	return s.get(KeyMeta(seed))
}

func (s *ArtifactStore) get(key []byte) ([]byte, error) {
	val, err := s.db.Get(s.ro, key)
	if err != nil {
		return nil, err
	}
	defer val.Free()

	if !val.Exists() {
		return nil, ErrNotFound
	}
	// val.Data() is rocksdb-owned memory, gone after Free; copy out.
	b := append([]byte(nil), val.Data()...)
	return b, nil
}

func (s *ArtifactStore) Count() (int64, error) {
	val, err := s.db.Get(s.ro, KeyCount())
	if err != nil {
		return 0, err
	}
	defer val.Free()

	if !val.Exists() {
		return 0, nil // empty store
	}
	return strconv.ParseInt(string(val.Data()), 10, 64)
}

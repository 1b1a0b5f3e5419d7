// internal/store/store.go
package store

import (
	"fmt"
	"io"
	"os"
	"time"

	"faseek-core/faidx"
	"faseek-core/seq"
	"faseek/internal/cache"
)

// Options tunes how a Store locates and persists its sidecar index.
type Options struct {
	NoCache  bool   // never read or write the sidecar index
	CacheDir string // sidecar location override (for read-only FASTA dirs)
}

// Store is one read session over an indexed FASTA file: a single open
// handle plus the immutable index built or loaded for it. All methods
// are read-only; independent Stores over the same file may be used
// concurrently. The file must not be rewritten while a Store is open;
// staleness is only detected across sessions, via the sidecar's
// recorded modification time.
type Store struct {
	path      string
	f         *os.File
	idx       *faidx.Index
	opts      Options
	cachePath string
	cached    bool  // index came from a fresh sidecar snapshot
	cacheErr  error // last non-fatal sidecar write failure
}

// Query names one fetch in a batch.
type Query struct {
	Name        string
	Start, Stop int64
}

// Info is the fetch-free metadata view of one record.
type Info struct {
	Name        string
	Description string
	Length      int64
}

// Open opens path and loads its index, preferring a fresh sidecar
// snapshot and falling back to a full scan (which then refreshes the
// sidecar). Compressed inputs are rejected.
func Open(path string, opts Options) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path, f: f, opts: opts, cachePath: cache.PathFor(path, opts.CacheDir)}
	if err := s.load(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	if err := rejectCompressed(s.f, s.path); err != nil {
		return err
	}
	mtime, err := s.mtime()
	if err != nil {
		return err
	}
	if !s.opts.NoCache {
		if idx, ok := cache.Load(s.cachePath, mtime); ok {
			s.idx, s.cached = idx, true
			return nil
		}
	}
	return s.rebuild(mtime)
}

// Rebuild discards the current index, rescans the file, and refreshes
// the sidecar. The previous index is never patched.
func (s *Store) Rebuild() error {
	mtime, err := s.mtime()
	if err != nil {
		return err
	}
	return s.rebuild(mtime)
}

func (s *Store) rebuild(mtime time.Time) error {
	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	idx, err := faidx.Build(s.f)
	if err != nil {
		return fmt.Errorf("%s: %w", s.path, err)
	}
	s.idx, s.cached, s.cacheErr = idx, false, nil
	if !s.opts.NoCache {
		// A failed sidecar write is not fatal; the index is usable and
		// the next session simply rebuilds. The caller may surface
		// CacheErr as a warning.
		s.cacheErr = cache.Save(s.cachePath, idx, mtime)
	}
	return nil
}

func (s *Store) mtime() (time.Time, error) {
	fi, err := s.f.Stat()
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

// rejectCompressed sniffs the gzip magic so a compressed file fails
// loudly instead of being indexed as garbage.
func rejectCompressed(f *os.File, path string) error {
	var sig [2]byte
	n, _ := f.ReadAt(sig[:], 0)
	if n == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		return fmt.Errorf("%s: compressed input is not supported", path)
	}
	return nil
}

// Fetch returns positions [start, stop] of name, 1-based inclusive,
// uppercased and free of line terminators.
func (s *Store) Fetch(name string, start, stop int64) (string, error) {
	b, err := s.idx.Fetch(s.f, name, start, stop)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FetchRC is Fetch followed by reverse complement.
func (s *Store) FetchRC(name string, start, stop int64) (string, error) {
	b, err := s.idx.Fetch(s.f, name, start, stop)
	if err != nil {
		return "", err
	}
	return string(seq.RevComp(b)), nil
}

// FetchAll returns the entire sequence for name ("" for a record with
// no sequence lines).
func (s *Store) FetchAll(name string) (string, error) {
	rec, ok := s.idx.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", faidx.ErrNotFound, name)
	}
	if rec.Length == 0 {
		return "", nil
	}
	b, err := faidx.Extract(s.f, rec, 1, rec.Length)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FetchMany resolves queries in order; the first failure aborts the
// batch.
func (s *Store) FetchMany(queries []Query) ([]string, error) {
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		sub, err := s.Fetch(q.Name, q.Start, q.Stop)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

// Names lists the sequence names in file order.
func (s *Store) Names() []string { return s.idx.Names() }

// Record returns the layout record for name.
func (s *Store) Record(name string) (faidx.Record, bool) { return s.idx.Get(name) }

// Records returns all layout records in file order.
func (s *Store) Records() []faidx.Record { return s.idx.Records() }

// Length returns the number of sequence characters in name.
func (s *Store) Length(name string) (int64, error) {
	rec, ok := s.idx.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", faidx.ErrNotFound, name)
	}
	return rec.Length, nil
}

// Description returns the header text of name (minus the marker).
func (s *Store) Description(name string) (string, error) {
	rec, ok := s.idx.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", faidx.ErrNotFound, name)
	}
	return rec.Description, nil
}

// Info returns the metadata view of name without touching sequence data.
func (s *Store) Info(name string) (Info, error) {
	rec, ok := s.idx.Get(name)
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", faidx.ErrNotFound, name)
	}
	return Info{Name: rec.Name, Description: rec.Description, Length: rec.Length}, nil
}

// Path returns the FASTA path this session reads from.
func (s *Store) Path() string { return s.path }

// Cached reports whether the index was loaded from a fresh sidecar.
func (s *Store) Cached() bool { return s.cached }

// CachePath returns where the sidecar index lives for this session.
func (s *Store) CachePath() string { return s.cachePath }

// CacheErr returns the last non-fatal sidecar write failure, if any.
func (s *Store) CacheErr() error { return s.cacheErr }

// DeleteCache removes the sidecar index; deleting an absent sidecar is
// not an error.
func (s *Store) DeleteCache() error {
	err := os.Remove(s.cachePath)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close releases the underlying file handle.
func (s *Store) Close() error { return s.f.Close() }

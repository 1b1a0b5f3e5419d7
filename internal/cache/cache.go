// internal/cache/cache.go
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"faseek-core/faidx"
)

// Ext is appended to a FASTA path to name its sidecar index file.
const Ext = ".fidx"

// formatVersion guards against older snapshot layouts; bump on any
// schema change.
const formatVersion = 1

type snapshot struct {
	Version    int     `json:"version"`
	FastaMtime int64   `json:"fasta_mtime_ns"`
	Sequences  []entry `json:"sequences"`
}

// entry mirrors faidx.Record; kept separate so the on-disk schema can
// only change deliberately.
type entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Length      int64  `json:"length"`
	LineBases   int64  `json:"line_bases"`
	LineBytes   int64  `json:"line_bytes"`
	Offset      int64  `json:"offset"`
}

// PathFor returns the sidecar path for a FASTA file. A non-empty
// cacheDir overrides the FASTA's own directory (useful when that
// directory is read-only).
func PathFor(fastaPath, cacheDir string) string {
	if cacheDir == "" {
		return fastaPath + Ext
	}
	return filepath.Join(cacheDir, filepath.Base(fastaPath)+Ext)
}

// Load reads the snapshot at path and reconstructs the index, provided
// it was written for a source file with exactly the given modification
// time (nanosecond equality). Any miss (absent file, corrupt JSON,
// version or mtime mismatch) returns ok == false and the caller
// rebuilds from the FASTA itself.
func Load(path string, mtime time.Time) (idx *faidx.Index, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false
	}
	if snap.Version != formatVersion || snap.FastaMtime != mtime.UnixNano() {
		return nil, false
	}
	recs := make([]faidx.Record, 0, len(snap.Sequences))
	for _, e := range snap.Sequences {
		recs = append(recs, faidx.Record{
			Name:        e.Name,
			Description: e.Description,
			Length:      e.Length,
			LineBases:   e.LineBases,
			LineBytes:   e.LineBytes,
			Offset:      e.Offset,
		})
	}
	idx, err = faidx.NewIndex(recs)
	if err != nil {
		return nil, false
	}
	return idx, true
}

// Save persists idx and the source file's modification time to path.
// The write goes through a temp file and rename so a crashed writer
// never leaves a truncated snapshot behind.
func Save(path string, idx *faidx.Index, mtime time.Time) error {
	snap := snapshot{Version: formatVersion, FastaMtime: mtime.UnixNano()}
	for _, r := range idx.Records() {
		snap.Sequences = append(snap.Sequences, entry{
			Name:        r.Name,
			Description: r.Description,
			Length:      r.Length,
			LineBases:   r.LineBases,
			LineBytes:   r.LineBytes,
			Offset:      r.Offset,
		})
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

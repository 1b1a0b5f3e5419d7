// core/faidx/fetch.go
package faidx

import (
	"bytes"
	"fmt"
	"io"
)

// Extract reads the sequence characters at 1-based inclusive positions
// [start, stop] of rec from r. The result is exactly stop-start+1
// characters, uppercased, with every line-terminator byte removed.
// Coordinates outside 1..rec.Length fail with ErrCoordinate.
//
// r is only read, never written; an *os.File satisfies io.ReaderAt and
// independent extracts over the same file may run concurrently.
func Extract(r io.ReaderAt, rec Record, start, stop int64) ([]byte, error) {
	if err := rec.check(start, stop); err != nil {
		return nil, err
	}
	zstart, zstop := start-1, stop-1

	if !rec.Wrapped() {
		// Single physical line: the span is contiguous.
		out := make([]byte, stop-start+1)
		if _, err := r.ReadAt(out, rec.Offset+zstart); err != nil {
			return nil, err
		}
		return bytes.ToUpper(out), nil
	}

	// Logical position p lives on line p/LineBases at column
	// p%LineBases; both ends of the span are sequence characters, so
	// the raw read never runs past the last data byte of the record.
	first := rec.Offset + (zstart/rec.LineBases)*rec.LineBytes + zstart%rec.LineBases
	last := rec.Offset + (zstop/rec.LineBases)*rec.LineBytes + zstop%rec.LineBases
	raw := make([]byte, last-first+1)
	if _, err := r.ReadAt(raw, first); err != nil {
		return nil, err
	}

	// Strip the terminator columns (LineBases..LineBytes-1) that recur
	// wherever the span crosses a line boundary.
	out := raw[:0]
	col := zstart % rec.LineBases
	for _, b := range raw {
		if col < rec.LineBases {
			out = append(out, b)
		}
		col++
		if col == rec.LineBytes {
			col = 0
		}
	}
	if int64(len(out)) != stop-start+1 {
		return nil, fmt.Errorf("%w: record %q: layout does not cover %d-%d", ErrMalformed, rec.Name, start, stop)
	}
	return bytes.ToUpper(out), nil
}

func (r Record) check(start, stop int64) error {
	switch {
	case start < 1:
		return fmt.Errorf("%w: start %d < 1 for %q", ErrCoordinate, start, r.Name)
	case stop < start:
		return fmt.Errorf("%w: stop %d < start %d for %q", ErrCoordinate, stop, start, r.Name)
	case stop > r.Length:
		return fmt.Errorf("%w: stop %d > length %d of %q", ErrCoordinate, stop, r.Length, r.Name)
	}
	return nil
}

// Fetch looks name up in the index and extracts [start, stop] from r.
// An unknown name fails with ErrNotFound.
func (x *Index) Fetch(r io.ReaderAt, name string, start, stop int64) ([]byte, error) {
	rec, ok := x.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return Extract(r, rec, start, stop)
}

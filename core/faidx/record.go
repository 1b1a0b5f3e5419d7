// core/faidx/record.go
package faidx

import "fmt"

// Record describes the byte layout of one FASTA sequence, enabling
// offset arithmetic without re-scanning the file.
type Record struct {
	Name        string // first whitespace-delimited token of the header
	Description string // header text after '>', line ending stripped
	Length      int64  // sequence characters, excluding line terminators
	LineBases   int64  // characters per wrapped line; 0 marks an unwrapped record
	LineBytes   int64  // bytes per wrapped line including its terminator
	Offset      int64  // absolute byte offset of the first sequence character
}

// Wrapped reports whether the record's sequence spans multiple
// physical lines.
func (r Record) Wrapped() bool { return r.LineBases > 0 }

// Index is an ordered, read-only set of Records keyed by name.
// An Index is built once per file and never patched in place; a stale
// index is discarded and rebuilt wholesale.
type Index struct {
	names  []string
	byName map[string]Record
}

// NewIndex assembles an Index from records in the given order.
// A duplicate name fails with ErrMalformed.
func NewIndex(recs []Record) (*Index, error) {
	idx := newIndex(len(recs))
	for _, r := range recs {
		if err := idx.add(r); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func newIndex(capacity int) *Index {
	return &Index{byName: make(map[string]Record, capacity)}
}

func (x *Index) add(r Record) error {
	if _, dup := x.byName[r.Name]; dup {
		return fmt.Errorf("%w: duplicate sequence name %q", ErrMalformed, r.Name)
	}
	x.byName[r.Name] = r
	x.names = append(x.names, r.Name)
	return nil
}

// Len returns the number of records.
func (x *Index) Len() int { return len(x.names) }

// Get returns the layout record for name.
func (x *Index) Get(name string) (Record, bool) {
	r, ok := x.byName[name]
	return r, ok
}

// Names returns the sequence names in file order.
func (x *Index) Names() []string {
	return append([]string(nil), x.names...)
}

// Records returns copies of all layout records in file order.
func (x *Index) Records() []Record {
	out := make([]Record, 0, len(x.names))
	for _, n := range x.names {
		out = append(out, x.byName[n])
	}
	return out
}

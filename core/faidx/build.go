// core/faidx/build.go
package faidx

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const headerMark = '>'

// Build scans a FASTA stream once, line by line, and returns the index
// of its byte layout. The stream is consumed to EOF. An empty stream
// yields an empty index; any structural fault aborts the build with an
// error wrapping ErrMalformed that names the offending record and line.
//
// Inside one record, every data line except the last must have the
// same character count and terminator width as the first; the last may
// be shorter (and may lack a terminator at end of file).
func Build(r io.Reader) (*Index, error) {
	br := bufio.NewReaderSize(r, 1<<16)
	idx := newIndex(0)

	var (
		cur    Record
		open   bool  // header seen, cur is accumulating
		lines  int64 // data lines seen for cur
		short  bool  // cur already ended with a short line
		offset int64 // absolute byte offset of the line being read
		lineno int64
	)

	flush := func() error {
		if !open {
			return nil
		}
		if lines == 1 {
			// One physical line: wrapping geometry is meaningless.
			cur.LineBases, cur.LineBytes = 0, 0
		}
		open = false
		return idx.add(cur)
	}

	for {
		line, rerr := br.ReadBytes('\n')
		if len(line) == 0 {
			if rerr == io.EOF {
				break
			}
			if rerr != nil {
				return nil, rerr
			}
		}
		lineno++
		width := int64(len(line)) // full byte width including terminator
		chars := trimEOL(line)

		switch {
		case len(chars) > 0 && chars[0] == headerMark:
			if err := flush(); err != nil {
				return nil, err
			}
			name, desc := parseHeader(chars[1:])
			if name == "" {
				return nil, fmt.Errorf("%w: unreadable header at line %d", ErrMalformed, lineno)
			}
			cur = Record{Name: name, Description: desc, Offset: offset + width}
			open, lines, short = true, 0, false

		case !open:
			return nil, fmt.Errorf("%w: sequence data before first header at line %d", ErrMalformed, lineno)

		default:
			if short {
				return nil, fmt.Errorf("%w: record %q: inconsistent line length at line %d", ErrMalformed, cur.Name, lineno)
			}
			n := int64(len(chars))
			switch {
			case lines == 0:
				cur.LineBases, cur.LineBytes = n, width
			case n > cur.LineBases || width > cur.LineBytes:
				return nil, fmt.Errorf("%w: record %q: inconsistent line length at line %d", ErrMalformed, cur.Name, lineno)
			case n < cur.LineBases || width < cur.LineBytes:
				// Shorter characters, or the same characters with a
				// narrower terminator: legal only as the final line.
				short = true
			}
			cur.Length += n
			lines++
		}

		offset += width
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, rerr
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return idx, nil
}

// trimEOL strips one trailing "\n" or "\r\n" from a physical line.
func trimEOL(line []byte) []byte {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return line[:n]
}

// parseHeader splits the text after '>' into the name token and the
// full description. The description is the whole header line minus the
// marker; the name is its first whitespace-delimited word.
func parseHeader(b []byte) (name, description string) {
	description = string(b)
	if i := bytes.IndexAny(b, " \t"); i >= 0 {
		return string(b[:i]), description
	}
	return description, description
}

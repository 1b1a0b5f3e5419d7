// internal/region/region.go
package region

import (
	"fmt"
	"strconv"
	"strings"
)

// Region is a 1-based inclusive slice of one named sequence.
// Stop == 0 means "through the end of the sequence"; Start == 0 means
// the whole sequence was requested by bare name.
type Region struct {
	Name  string
	Start int64
	Stop  int64
}

// Whole reports whether the region names an entire sequence.
func (r Region) Whole() bool { return r.Start == 0 }

func (r Region) String() string {
	switch {
	case r.Whole():
		return r.Name
	case r.Stop == 0:
		return fmt.Sprintf("%s:%d-", r.Name, r.Start)
	default:
		return fmt.Sprintf("%s:%d-%d", r.Name, r.Start, r.Stop)
	}
}

// Parse accepts "name", "name:start-stop", "name:start-" or
// "name:start" (open-ended). Positions are 1-based inclusive and may
// contain comma separators ("chr1:1,000-2,000"). The split is at the
// last colon, so names containing colons keep working.
func Parse(s string) (Region, error) {
	if s == "" {
		return Region{}, fmt.Errorf("empty region")
	}
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return Region{Name: s}, nil
	}
	name, span := s[:i], s[i+1:]
	if name == "" || span == "" {
		return Region{}, fmt.Errorf("region %q: bad syntax", s)
	}

	var startTxt, stopTxt string
	if j := strings.IndexByte(span, '-'); j >= 0 {
		startTxt, stopTxt = span[:j], span[j+1:]
	} else {
		startTxt = span
	}

	start, err := parsePos(startTxt)
	if err != nil {
		return Region{}, fmt.Errorf("region %q: %v", s, err)
	}
	r := Region{Name: name, Start: start}
	if stopTxt != "" {
		if r.Stop, err = parsePos(stopTxt); err != nil {
			return Region{}, fmt.Errorf("region %q: %v", s, err)
		}
	}
	return r, nil
}

// ParseAll parses a list of region strings, failing on the first bad one.
func ParseAll(specs []string) ([]Region, error) {
	out := make([]Region, 0, len(specs))
	for _, s := range specs {
		r, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parsePos(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad position %q", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("position %d is not 1-based", n)
	}
	return n, nil
}

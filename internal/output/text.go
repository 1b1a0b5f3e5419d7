// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"faseek/pkg/api"
)

// TSVHeader is the canonical header row for text/TSV region output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "name\tstart\tstop\tlength\tseq"

// WriteTSV prints one tab-delimited line per fetched region.
func WriteTSV(w io.Writer, list []api.RegionV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
			r.Name, r.Start, r.Stop, r.Length, r.Seq,
		); err != nil {
			return err
		}
	}
	return nil
}

// InfoTableHeader is the header row for index metadata listings; the
// columns after name mirror the samtools .fai layout.
const InfoTableHeader = "name\tlength\toffset\tline_bases\tline_bytes"

// WriteInfoTable prints one tab-delimited line per indexed sequence.
func WriteInfoTable(w io.Writer, list []api.SequenceInfoV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, InfoTableHeader); err != nil {
			return err
		}
	}
	for _, s := range list {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
			s.Name, s.Length, s.Offset, s.LineBases, s.LineBytes,
		); err != nil {
			return err
		}
	}
	return nil
}

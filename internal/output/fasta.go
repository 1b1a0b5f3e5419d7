package output

import (
	"fmt"
	"io"

	"faseek/pkg/api"
)

// WriteFASTA writes fetched regions as FASTA records, re-wrapping each
// sequence at the given width (0 = one physical line per record).
func WriteFASTA(w io.Writer, list []api.RegionV1, width int) error {
	for _, r := range list {
		header := fmt.Sprintf(">%s:%d-%d len=%d", r.Name, r.Start, r.Stop, r.Length)
		if r.RevComp {
			header += " rc"
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		if err := writeWrapped(w, r.Seq, width); err != nil {
			return err
		}
	}
	return nil
}

func writeWrapped(w io.Writer, seq string, width int) error {
	if seq == "" {
		return nil
	}
	if width <= 0 || width >= len(seq) {
		_, err := fmt.Fprintln(w, seq)
		return err
	}
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		if _, err := fmt.Fprintln(w, seq[i:end]); err != nil {
			return err
		}
	}
	return nil
}

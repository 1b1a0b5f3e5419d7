// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"faseek/pkg/api"
)

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes a single JSON array of v1 regions (pretty-indented).
func WriteJSON(w io.Writer, list []api.RegionV1) error {
	if list == nil {
		list = []api.RegionV1{}
	}
	return encodePretty(w, list)
}

// WriteInfoJSON writes a single JSON array of v1 sequence metadata.
func WriteInfoJSON(w io.Writer, list []api.SequenceInfoV1) error {
	if list == nil {
		list = []api.SequenceInfoV1{}
	}
	return encodePretty(w, list)
}

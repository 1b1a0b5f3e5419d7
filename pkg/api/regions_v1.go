// pkg/api/regions_v1.go
package api

// RegionV1 is the stable JSON/JSONL schema for fetched subsequences.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RegionV1 struct {
	Name    string `json:"name"`
	Start   int64  `json:"start"`
	Stop    int64  `json:"stop"`
	Length  int64  `json:"length"`
	RevComp bool   `json:"revcomp,omitempty"`
	Seq     string `json:"seq"`
}

// SequenceInfoV1 is the stable schema for index metadata listings.
type SequenceInfoV1 struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Length      int64  `json:"length"`
	Offset      int64  `json:"offset"`
	LineBases   int64  `json:"line_bases,omitempty"`
	LineBytes   int64  `json:"line_bytes,omitempty"`
}

// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"faseek/internal/app"
	"faseek/internal/indexapp"
	"faseek/pkg/api"
)

const genome = ">chr1 test contig\nACGTACGTAC\nGTACGTACGT\nACGT\n>chr2 second\nggggccccaa\n"

func write(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "itest.fa")
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestEndToEndFasta(t *testing.T) {
	fa := write(t, genome)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{fa, "chr1:9-12"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	want := ">chr1:9-12 len=4\nACGT\n"
	if out.String() != want {
		t.Fatalf("output %q, want %q", out.String(), want)
	}
}

func TestEndToEndJSON(t *testing.T) {
	fa := write(t, genome)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--output", "json", fa, "chr2:1-4", "chr1"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	var rows []api.RegionV1
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 2 || rows[0].Seq != "GGGG" {
		t.Fatalf("rows: %+v", rows)
	}
	if rows[1].Name != "chr1" || rows[1].Start != 1 || rows[1].Stop != 24 || int64(len(rows[1].Seq)) != 24 {
		t.Fatalf("whole-sequence row: %+v", rows[1])
	}
}

func TestEndToEndReverseComplement(t *testing.T) {
	fa := write(t, genome)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--rc", "--output", "text", "--no-header", fa, "chr2:1-4"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if got := strings.TrimSpace(out.String()); got != "chr2\t1\t4\t4\tCCCC" {
		t.Fatalf("rc row: %q", got)
	}
}

func TestEndToEndErrors(t *testing.T) {
	fa := write(t, genome)

	cases := map[string][]string{
		"unknown name":   {fa, "nope:1-4"},
		"stop too large": {fa, "chr1:1-25"},
		"inverted span":  {fa, "chr1:10-5"},
	}
	for label, argv := range cases {
		var out, errBuf bytes.Buffer
		if code := app.Run(argv, &out, &errBuf); code != 1 {
			t.Fatalf("%s: exit %d, err=%s", label, code, errBuf.String())
		}
		if errBuf.Len() == 0 {
			t.Fatalf("%s: expected a diagnostic on stderr", label)
		}
	}

	var out, errBuf bytes.Buffer
	if code := app.Run([]string{fa}, &out, &errBuf); code != 2 {
		t.Fatalf("missing region should be a usage error, got %d", code)
	}
}

func TestEndToEndIndexTool(t *testing.T) {
	fa := write(t, genome)

	var out, errBuf bytes.Buffer
	code := indexapp.Run([]string{"--quiet", "--output", "table", fa}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("index exit %d, err=%s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("table output: %q", out.String())
	}
	if lines[1] != "chr1\t24\t18\t10\t11" {
		t.Fatalf("chr1 row: %q", lines[1])
	}
	if _, err := os.Stat(fa + ".fidx"); err != nil {
		t.Fatalf("sidecar not written: %v", err)
	}

	// Second run hits the fresh sidecar.
	out.Reset()
	errBuf.Reset()
	code = indexapp.Run([]string{"--quiet", fa}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("second index run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "fresh") {
		t.Fatalf("expected fresh-index summary, got %q", out.String())
	}
}

func TestIndexThenFetchUsesSidecar(t *testing.T) {
	fa := write(t, genome)

	var out, errBuf bytes.Buffer
	if code := indexapp.Run([]string{"--quiet", fa}, &out, &errBuf); code != 0 {
		t.Fatalf("index exit %d, err=%s", code, errBuf.String())
	}

	out.Reset()
	errBuf.Reset()
	code := app.Run([]string{"--output", "text", "--no-header", fa, "chr1:21-24"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("fetch exit %d, err=%s", code, errBuf.String())
	}
	if got := strings.TrimSpace(out.String()); got != "chr1\t21\t24\t4\tACGT" {
		t.Fatalf("row: %q", got)
	}
}

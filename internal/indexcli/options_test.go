package indexcli

import (
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("faseek-index")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParse(t *testing.T) {
	opt, err := parse(t, "--force", "--output", "table", "genome.fa")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.FastaFile != "genome.fa" || !opt.Force || opt.Output != "table" || !opt.Header {
		t.Fatalf("options: %+v", opt)
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string][]string{
		"no fasta":       {},
		"two fastas":     {"a.fa", "b.fa"},
		"compressed":     {"genome.fa.gz"},
		"unknown output": {"--output", "yaml", "genome.fa"},
	}
	for label, argv := range cases {
		if _, err := parse(t, argv...); err == nil {
			t.Fatalf("%s: argv %v should fail", label, argv)
		}
	}
}

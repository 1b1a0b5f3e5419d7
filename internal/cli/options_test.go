package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("faseek")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParsePositionals(t *testing.T) {
	opt, err := parse(t, "genome.fa", "chr1:1-10", "chr2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.FastaFile != "genome.fa" {
		t.Fatalf("fasta: %q", opt.FastaFile)
	}
	if len(opt.Regions) != 2 || opt.Regions[0] != "chr1:1-10" || opt.Regions[1] != "chr2" {
		t.Fatalf("regions: %v", opt.Regions)
	}
	if opt.Output != "fasta" || opt.Wrap != 60 || !opt.Header {
		t.Fatalf("defaults: %+v", opt)
	}
}

func TestParseRegionFlagAndPositionalsMerge(t *testing.T) {
	opt, err := parse(t, "--region", "chr1:1-10", "-r", "chr2:5-9", "genome.fa", "chr3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(opt.Regions) != 3 {
		t.Fatalf("regions: %v", opt.Regions)
	}
}

func TestParseValidation(t *testing.T) {
	cases := map[string][]string{
		"no fasta":         {},
		"no regions":       {"genome.fa"},
		"compressed input": {"genome.fa.gz", "chr1"},
		"bad wrap":         {"--wrap", "-1", "genome.fa", "chr1"},
		"bad format":       {"--output", "xml", "genome.fa", "chr1"},
	}
	for label, argv := range cases {
		if _, err := parse(t, argv...); err == nil {
			t.Fatalf("%s: argv %v should fail", label, argv)
		}
	}
}

func TestParseHelpAndVersion(t *testing.T) {
	if _, err := parse(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	opt, err := parse(t, "--version")
	if err != nil || !opt.Version {
		t.Fatalf("version parse: %+v err=%v", opt, err)
	}
}

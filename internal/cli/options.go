// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"faseek/internal/version"
)

// Options holds all CLI flags and arguments for the faseek tool.
type Options struct {
	// Input
	FastaFile string
	Regions   []string

	// Fetch behavior
	RevComp bool

	// Cache
	NoCache  bool
	CacheDir string

	// Output
	Output string // fasta | text | json
	Wrap   int    // fasta line width; 0 = single line
	Header bool   // true unless --no-header

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: indexed random access to FASTA files

Version: %s

Usage:
  %s [options] <fasta> [region ...]

Regions are 1-based inclusive: "chr1", "chr1:100-200", "chr1:100-".

Options:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var regions stringSlice
	fs.Var(&regions, "region", "region to fetch, name[:start-stop] (repeatable)")
	fs.Var(&regions, "r", "alias of --region")

	fs.BoolVar(&opt.RevComp, "rc", false, "emit the reverse complement of each region [false]")

	fs.BoolVar(&opt.NoCache, "no-cache", false, "never read or write the sidecar index [false]")
	fs.StringVar(&opt.CacheDir, "cache-dir", "", "directory for the sidecar index (default: beside the FASTA)")

	fs.StringVar(&opt.Output, "output", "fasta", "output format: fasta | text | json [fasta]")
	fs.StringVar(&opt.Output, "o", "fasta", "alias of --output")
	fs.IntVar(&opt.Wrap, "wrap", 60, "FASTA output line width (0 = single line) [60]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// First positional is the FASTA file, the rest are regions.
	pos := fs.Args()
	if len(pos) > 0 {
		opt.FastaFile = pos[0]
		regions = append(regions, pos[1:]...)
	}
	opt.Regions = regions
	opt.Header = !noHeader

	// Validation
	if opt.FastaFile == "" {
		return opt, errors.New("a FASTA file is required")
	}
	if strings.HasSuffix(opt.FastaFile, ".gz") {
		return opt, errors.New("compressed FASTA input is not supported")
	}
	if len(opt.Regions) == 0 {
		return opt, errors.New("at least one region is required")
	}
	if opt.Wrap < 0 {
		return opt, errors.New("--wrap must be ≥ 0")
	}
	if opt.Output != "fasta" && opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

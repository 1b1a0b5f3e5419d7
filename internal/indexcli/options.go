// internal/indexcli/options.go
package indexcli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"faseek/internal/version"
)

// Options holds all CLI flags and arguments for the faseek-index tool.
type Options struct {
	FastaFile string

	Force    bool   // rebuild even when the sidecar is fresh
	NoWrite  bool   // scan only, never write the sidecar
	CacheDir string // sidecar location override

	Output string // summary | table | json
	Header bool

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: build and inspect sidecar indexes for FASTA files

Version: %s

Usage:
  %s [options] <fasta>

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

	fs.BoolVar(&opt.Force, "force", false, "rebuild even when the sidecar is fresh [false]")
	fs.BoolVar(&opt.Force, "f", false, "alias of --force")
	fs.BoolVar(&opt.NoWrite, "no-write", false, "scan only, do not write the sidecar [false]")
	fs.StringVar(&opt.CacheDir, "cache-dir", "", "directory for the sidecar index (default: beside the FASTA)")

	fs.StringVar(&opt.Output, "output", "summary", "output: summary | table | json [summary]")
	fs.StringVar(&opt.Output, "o", "summary", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in table output [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress the progress bar and warnings [false]")
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

	switch pos := fs.Args(); len(pos) {
	case 0:
	case 1:
		opt.FastaFile = pos[0]
	default:
		return opt, fmt.Errorf("unexpected arguments: %s", strings.Join(pos[1:], " "))
	}
	opt.Header = !noHeader

	if opt.FastaFile == "" {
		return opt, errors.New("a FASTA file is required")
	}
	if strings.HasSuffix(opt.FastaFile, ".gz") {
		return opt, errors.New("compressed FASTA input is not supported")
	}
	if opt.Output != "summary" && opt.Output != "table" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

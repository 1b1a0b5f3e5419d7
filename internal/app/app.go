// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"faseek/internal/cli"
	"faseek/internal/cmdutil"
	"faseek/internal/output"
	"faseek/internal/region"
	"faseek/internal/store"
	"faseek/internal/version"
	"faseek/pkg/api"
)

// RunContext drives the faseek tool: open (or index) the FASTA, fetch
// every requested region, and write the results. Exit codes: 0 ok,
// 1 runtime failure, 2 usage error, 3 output write failure, 130 when
// the context was cancelled mid-run.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("faseek")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "faseek version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	regs, err := region.ParseAll(opts.Regions)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	s, err := store.Open(opts.FastaFile, store.Options{NoCache: opts.NoCache, CacheDir: opts.CacheDir})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = s.Close() }()
	if werr := s.CacheErr(); werr != nil {
		cmdutil.Warnf(stderr, opts.Quiet, "cannot write index sidecar: %v", werr)
	}

	rows := make([]api.RegionV1, 0, len(regs))
	for _, reg := range regs {
		select {
		case <-parent.Done():
			return 130
		default:
		}
		row, err := fetchRegion(s, reg, opts.RevComp)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		rows = append(rows, row)
	}

	switch opts.Output {
	case "text":
		err = output.WriteTSV(outw, rows, opts.Header)
	case "json":
		err = output.WriteJSON(outw, rows)
	default:
		err = output.WriteFASTA(outw, rows, opts.Wrap)
	}
	if output.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr)
}

// fetchRegion resolves open-ended regions against the record length
// and performs the fetch.
func fetchRegion(s *store.Store, reg region.Region, rc bool) (api.RegionV1, error) {
	start, stop := reg.Start, reg.Stop
	if reg.Whole() || stop == 0 {
		n, err := s.Length(reg.Name)
		if err != nil {
			return api.RegionV1{}, err
		}
		if reg.Whole() {
			start = 1
		}
		stop = n
	}

	var sub string
	var err error
	switch {
	case reg.Whole() && stop == 0:
		// Record with no sequence lines: nothing to read.
		start, stop, sub = 1, 0, ""
	case rc:
		sub, err = s.FetchRC(reg.Name, start, stop)
	default:
		sub, err = s.Fetch(reg.Name, start, stop)
	}
	if err != nil {
		return api.RegionV1{}, err
	}
	return api.RegionV1{
		Name:    reg.Name,
		Start:   start,
		Stop:    stop,
		Length:  int64(len(sub)),
		RevComp: rc,
		Seq:     sub,
	}, nil
}

func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// internal/indexapp/app.go
package indexapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"faseek-core/faidx"
	"faseek/internal/cache"
	"faseek/internal/cmdutil"
	"faseek/internal/indexcli"
	"faseek/internal/output"
	"faseek/internal/version"
	"faseek/pkg/api"
)

// RunContext drives the faseek-index tool: scan the FASTA (with a
// progress bar on stderr), refresh the sidecar index, and report what
// was indexed. Exit codes match the faseek tool.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := indexcli.NewFlagSet("faseek-index")
	fs.SetOutput(io.Discard)

	opts, err := indexcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "faseek-index version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	code := run(parent, opts, outw, stderr)
	if code != 0 {
		return code
	}
	return flushCode(outw, stderr)
}

func run(ctx context.Context, opts indexcli.Options, outw io.Writer, stderr io.Writer) int {
	f, err := os.Open(opts.FastaFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if err := rejectCompressed(f, opts.FastaFile); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	sidecar := cache.PathFor(opts.FastaFile, opts.CacheDir)

	var idx *faidx.Index
	fresh := false
	if !opts.Force {
		idx, fresh = cache.Load(sidecar, fi.ModTime())
	}
	if !fresh {
		if ctx.Err() != nil {
			return 130
		}
		idx, err = scan(f, fi.Size(), opts.Quiet, stderr)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "%s: %v\n", opts.FastaFile, err)
			return 1
		}
		if !opts.NoWrite {
			if err := cache.Save(sidecar, idx, fi.ModTime()); err != nil {
				cmdutil.Warnf(stderr, opts.Quiet, "cannot write index sidecar: %v", err)
			}
		}
	}

	switch opts.Output {
	case "table":
		err = output.WriteInfoTable(outw, toInfos(idx), opts.Header)
	case "json":
		err = output.WriteInfoJSON(outw, toInfos(idx))
	default:
		err = summarize(outw, idx, fi.Size(), sidecar, fresh)
	}
	if output.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// scan builds the index from f, showing byte progress on stderr.
func scan(f *os.File, size int64, quiet bool, stderr io.Writer) (*faidx.Index, error) {
	var src io.Reader = f
	if !quiet {
		bar := progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetDescription("indexing"),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
		src = io.TeeReader(f, bar)
	}
	return faidx.Build(src)
}

func summarize(w io.Writer, idx *faidx.Index, size int64, sidecar string, fresh bool) error {
	var bases int64
	for _, r := range idx.Records() {
		bases += r.Length
	}
	state := "indexed"
	if fresh {
		state = "index is fresh:"
	}
	_, err := fmt.Fprintf(w, "%s %d sequences, %s bases, %s scanned (%s)\n",
		state, idx.Len(), humanize.Comma(bases), humanize.IBytes(uint64(size)), sidecar)
	return err
}

func toInfos(idx *faidx.Index) []api.SequenceInfoV1 {
	recs := idx.Records()
	out := make([]api.SequenceInfoV1, 0, len(recs))
	for _, r := range recs {
		out = append(out, api.SequenceInfoV1{
			Name:        r.Name,
			Description: r.Description,
			Length:      r.Length,
			Offset:      r.Offset,
			LineBases:   r.LineBases,
			LineBytes:   r.LineBytes,
		})
	}
	return out
}

func rejectCompressed(f *os.File, path string) error {
	var sig [2]byte
	n, _ := f.ReadAt(sig[:], 0)
	if n == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		return fmt.Errorf("%s: compressed input is not supported", path)
	}
	return nil
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

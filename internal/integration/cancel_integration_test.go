// internal/integration/cancel_integration_test.go
package integration

import (
	"bytes"
	"context"
	"testing"

	"faseek/internal/app"
	"faseek/internal/indexapp"
)

// A context cancelled before any region is fetched must end the run
// with exit code 130, the way an interrupted terminal session would.
func TestFetchCancelledExit130(t *testing.T) {
	fa := write(t, genome)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errBuf bytes.Buffer
	code := app.RunContext(ctx, []string{"--no-cache", fa, "chr1:1-4", "chr2:1-4"}, &out, &errBuf)
	if code != 130 {
		t.Fatalf("cancelled fetch exit %d, want 130 (err=%s)", code, errBuf.String())
	}
}

func TestIndexCancelledExit130(t *testing.T) {
	fa := write(t, genome)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errBuf bytes.Buffer
	code := indexapp.RunContext(ctx, []string{"--quiet", fa}, &out, &errBuf)
	if code != 130 {
		t.Fatalf("cancelled index exit %d, want 130 (err=%s)", code, errBuf.String())
	}
}

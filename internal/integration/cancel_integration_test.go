package integration

import (
	"context"
	"io"
	"strings"
	"testing"

	"seqsa/internal/app"
)

func TestCanceledRunExits130(t *testing.T) {
	fn := write(t, "cancel_big.fa", ">chr1\n"+strings.Repeat("ACGTACGTAC\n", 1<<14))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{fn, "ACGTACGT"}, io.Discard, io.Discard)
	if code != app.ExitInterrupted {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}

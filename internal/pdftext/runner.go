package pdftext

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// Runner executes an external text extractor. Tests replace it with a fake.
type Runner interface {
	Run(ctx context.Context, name string, logger *slog.Logger, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

const stderrLogLimit = 4 << 10

func (execRunner) Run(ctx context.Context, name string, logger *slog.Logger, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	attrs := []any{"bin", name, "args", args, "elapsed_ms", time.Since(start).Milliseconds()}
	if err != nil {
		msg := stderr.String()
		if len(msg) > stderrLogLimit {
			msg = msg[:stderrLogLimit]
		}
		logger.Warn("pdftext.exec.failed", append(attrs, "error", err, "stderr", msg)...)
	} else {
		logger.Debug("pdftext.exec.ok", append(attrs, "stdout_bytes", stdout.Len())...)
	}
	return stdout.Bytes(), stderr.Bytes(), err
}

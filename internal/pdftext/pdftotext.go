package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// popplerSource shells out to poppler's pdftotext.
type popplerSource struct {
	bin    string
	runner Runner
	logger *slog.Logger
}

func (popplerSource) Name() string { return "pdftotext" }

// FirstPage runs pdftotext on page 1: -raw keeps content-stream order, -layout keeps
// the physical layout and tolerates wider gaps.
func (p popplerSource) FirstPage(ctx context.Context, path string, loose bool) (string, error) {
	mode := "-raw"
	if loose {
		mode = "-layout"
	}
	// pdftotext -f 1 -l 1 <mode> -enc UTF-8 -eol unix <path> -
	out, errb, err := p.runner.Run(ctx, p.bin, p.logger, "-f", "1", "-l", "1", mode, "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("%s: %w: %s", p.bin, err, strings.TrimSpace(string(errb)))
	}
	return string(out), nil
}

// Package pdftext pulls first-page text out of invoice PDFs.
package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/payout-recon/internal/common"
)

const (
	MethodNative    = "native"
	MethodPdftotext = "pdftotext"
)

type Config struct {
	Method    string // MethodNative | MethodPdftotext; empty -> native
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Validate  bool   // run pdfcpu structural validation first
}

type Result struct {
	Text     string
	Pages    int    // 0 when validation is off
	Method   string // "native" | "pdftotext"
	Pass     string // "tight" | "loose"
	Duration time.Duration
}

type source interface {
	Name() string
	FirstPage(ctx context.Context, path string, loose bool) (string, error)
}

type Reader struct {
	cfg     Config
	src     source
	inspect func(path string) (int, error)
	logger  *slog.Logger
}

func NewReader(cfg Config, logger *slog.Logger) *Reader {
	return newReader(cfg, execRunner{}, logger)
}

func newReader(cfg Config, runner Runner, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	var src source = nativeSource{}
	if cfg.Method == MethodPdftotext {
		src = popplerSource{bin: cfg.Pdftotext, runner: runner, logger: logger}
	}
	return &Reader{cfg: cfg, src: src, inspect: inspect, logger: logger}
}

// FirstPageText returns the normalized text of page 1, trying the tight pass first
// and the loose pass only when the tight one yields nothing.
func (r *Reader) FirstPageText(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	name := filepath.Base(path)
	res := Result{Method: r.src.Name()}

	if r.cfg.Validate {
		pages, err := r.inspect(path)
		if err != nil {
			return res, common.NewAppError(common.CodePDFInvalid, name, err)
		}
		res.Pages = pages
	}

	var lastErr error
	for _, pass := range []struct {
		name  string
		loose bool
	}{{"tight", false}, {"loose", true}} {
		text, err := r.readPass(ctx, path, pass.loose)
		if err != nil {
			r.logger.Debug("pdftext.pass.failed", "file", name, "pass", pass.name, "error", err)
			lastErr = err
			continue
		}
		if text = Normalize(text); strings.TrimSpace(text) != "" {
			res.Text = text
			res.Pass = pass.name
			res.Duration = time.Since(start)
			r.logger.Debug("pdftext.ok", "file", name, "method", res.Method, "pass", pass.name, "bytes", len(text))
			return res, nil
		}
	}
	res.Duration = time.Since(start)
	cause := common.ErrNoText
	if lastErr != nil {
		cause = fmt.Errorf("%w: %w", common.ErrNoText, lastErr)
	}
	return res, common.NewAppError(common.CodePDFNoText, name, cause)
}

// readPass runs one extraction pass. PDF content streams the reader cannot decode
// can panic deep inside it; that fails the pass, not the document.
func (r *Reader) readPass(ctx context.Context, path string, loose bool) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s reader panic: %v", r.src.Name(), p)
		}
	}()
	return r.src.FirstPage(ctx, path, loose)
}

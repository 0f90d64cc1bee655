// Package core runs the two batch pipelines end to end.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/payout-recon/constants"
	"github.com/joseph-ayodele/payout-recon/internal/annexure"
	"github.com/joseph-ayodele/payout-recon/internal/batch"
	"github.com/joseph-ayodele/payout-recon/internal/export"
)

// Outcome is what a pipeline run reports back to the command.
type Outcome struct {
	Report batch.Report
	Output string // empty when nothing was written
}

// AnnexureRunner consolidates a folder of payout annexures into one workbook.
type AnnexureRunner struct {
	extractor *annexure.Extractor
	driver    *batch.Driver
	prefix    string
	now       func() time.Time
	logger    *slog.Logger
}

func NewAnnexureRunner(extractor *annexure.Extractor, driver *batch.Driver, prefix string, logger *slog.Logger) *AnnexureRunner {
	if logger == nil {
		logger = slog.Default()
	}
	if prefix == "" {
		prefix = constants.AnnexurePrefix
	}
	return &AnnexureRunner{extractor: extractor, driver: driver, prefix: prefix, now: time.Now, logger: logger}
}

// Run extracts every annexure in dir and writes the consolidated workbook to outDir.
// A file counts as processed when its summary was read. Order tables of files whose
// summary failed are still consolidated.
func (r *AnnexureRunner) Run(ctx context.Context, dir, outDir string) (Outcome, error) {
	var acc export.Consolidation
	filter := batch.Filter{Prefix: r.prefix, Ext: constants.XLSXExt}

	rep, err := r.driver.Run(ctx, dir, filter, func(_ context.Context, path string) error {
		doc, err := r.extractor.Extract(path)
		for _, w := range doc.Warnings {
			fmt.Fprintf(r.driver.Out, "Warning: %s: %s\n", doc.FileName, w)
		}
		acc.Add(doc.Summary, doc.Breakup, doc.Orders)
		return err
	})
	if err != nil {
		return Outcome{Report: rep}, err
	}

	out := filepath.Join(outDir, export.ConsolidatedFileName(r.now()))
	if err := export.WriteTables(out, acc.Tables(), r.logger); err != nil {
		return Outcome{Report: rep}, err
	}
	r.driver.PrintSummary(rep, out)
	return Outcome{Report: rep, Output: out}, nil
}

package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/payout-recon/constants"
	"github.com/joseph-ayodele/payout-recon/internal/batch"
	"github.com/joseph-ayodele/payout-recon/internal/entity"
	"github.com/joseph-ayodele/payout-recon/internal/export"
	"github.com/joseph-ayodele/payout-recon/internal/invoice"
)

// InvoiceRunner turns a folder of commission-invoice PDFs into register rows.
type InvoiceRunner struct {
	extractor *invoice.Extractor
	writer    *export.RegisterWriter
	driver    *batch.Driver
	logger    *slog.Logger
}

func NewInvoiceRunner(extractor *invoice.Extractor, writer *export.RegisterWriter, driver *batch.Driver, logger *slog.Logger) *InvoiceRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceRunner{extractor: extractor, writer: writer, driver: driver, logger: logger}
}

// Run extracts every PDF in dir and writes the register to output. When no PDF
// yields a record the register is left untouched.
func (r *InvoiceRunner) Run(ctx context.Context, dir, output string) (Outcome, error) {
	var invoices []entity.Invoice
	rep, err := r.driver.Run(ctx, dir, batch.Filter{Ext: constants.PDFExt}, func(ctx context.Context, path string) error {
		inv, err := r.extractor.Extract(ctx, path)
		if err != nil {
			return err
		}
		invoices = append(invoices, inv)
		return nil
	})
	if err != nil {
		return Outcome{Report: rep}, err
	}

	if len(invoices) == 0 {
		r.logger.Warn("invoices.none_extracted", "dir", dir, "matched", rep.Stats.Matched)
		fmt.Fprintln(r.driver.Out, "No PDFs processed successfully")
		r.driver.PrintSummary(rep, "")
		return Outcome{Report: rep}, nil
	}
	if err := r.writer.Write(output, invoices); err != nil {
		return Outcome{Report: rep}, err
	}
	r.driver.PrintSummary(rep, output)
	return Outcome{Report: rep, Output: output}, nil
}

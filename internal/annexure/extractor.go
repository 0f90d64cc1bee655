package annexure

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/joseph-ayodele/payout-recon/constants"
	"github.com/joseph-ayodele/payout-recon/internal/common"
	"github.com/joseph-ayodele/payout-recon/internal/entity"
	"github.com/joseph-ayodele/payout-recon/internal/workbook"
)

// Document is everything extracted from one annexure file.
type Document struct {
	FileName string
	Status   constants.DocumentStatus
	Summary  *entity.Summary
	Breakup  []entity.BreakupLine
	Orders   *entity.OrderTable
	Warnings []string
}

// Extractor reads annexure workbooks into Documents.
type Extractor struct {
	layout Layout
	rules  []Rule
	logger *slog.Logger
}

func NewExtractor(layout Layout, kw Keywords, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{layout: layout, rules: SummaryRules(kw), logger: logger}
}

// Extract reads the three sheets of the annexure at path. Each sheet fails on its own.
// The returned error is non-nil when the file cannot be opened or its summary cannot
// be read; the Document then still holds any order table that was extracted, but no
// breakup lines since those cannot be joined.
func (x *Extractor) Extract(path string) (Document, error) {
	name := filepath.Base(path)
	doc := Document{FileName: name, Status: constants.DocumentFailed}

	wb, err := workbook.Open(path, x.logger)
	if err != nil {
		return doc, err
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			x.logger.Warn("annexure.close.failed", "file", name, "error", cerr)
		}
	}()

	summary, sumErr := x.summary(wb, name)
	if sumErr == nil {
		doc.Summary = &summary
		doc.Breakup = x.breakup(wb, summary, &doc)
	} else {
		doc.Warnings = append(doc.Warnings, fmt.Sprintf("Summary: %v", sumErr))
	}
	doc.Orders = x.orders(wb, doc.Summary, &doc)

	switch {
	case doc.Summary == nil:
		doc.Status = constants.DocumentFailed
	case len(doc.Breakup) == 0 || doc.Orders.Len() == 0:
		doc.Status = constants.DocumentPartial
	default:
		doc.Status = constants.DocumentOK
	}
	x.logger.Info("annexure.extract.done",
		"file", name,
		"status", doc.Status,
		"breakup_rows", len(doc.Breakup),
		"order_rows", doc.Orders.Len(),
	)
	if sumErr != nil {
		return doc, fmt.Errorf("%w: %w", common.ErrSummaryUnavailable, sumErr)
	}
	return doc, nil
}

func (x *Extractor) summary(wb *workbook.Workbook, name string) (entity.Summary, error) {
	sh, err := wb.Sheet(constants.SheetSummary)
	if err != nil {
		return entity.Summary{}, err
	}
	s, found := LocateSummary(sh.Grid, x.layout.SummaryLabelCol, x.rules, name)
	x.logger.Debug("annexure.summary.ok", "file", name, "fields", found, "res_id", s.RestaurantID)
	return s, nil
}

func (x *Extractor) breakup(wb *workbook.Workbook, summary entity.Summary, doc *Document) []entity.BreakupLine {
	sh, err := wb.Sheet(constants.SheetPayoutBreakup)
	if err != nil {
		x.logger.Warn("annexure.breakup.unreadable", "file", doc.FileName, "error", err)
		doc.Warnings = append(doc.Warnings, fmt.Sprintf("Payout Breakup: %v", err))
		return nil
	}
	lines, skipped, found := BreakupTable(sh.Grid, x.layout, summary)
	if !found {
		x.logger.Warn("annexure.breakup.no_anchor", "file", doc.FileName, "anchor", x.layout.BreakupAnchor)
		return nil
	}
	if skipped > 0 {
		x.logger.Warn("annexure.breakup.rows_skipped", "file", doc.FileName, "skipped", skipped)
	}
	return lines
}

func (x *Extractor) orders(wb *workbook.Workbook, summary *entity.Summary, doc *Document) *entity.OrderTable {
	sh, err := wb.Sheet(constants.SheetOrderLevel)
	if err != nil {
		x.logger.Warn("annexure.orders.unreadable", "file", doc.FileName, "error", err)
		doc.Warnings = append(doc.Warnings, fmt.Sprintf("Order Level: %v", err))
		return nil
	}
	t := OrderTable(sh, x.layout, summary, doc.FileName)
	if t == nil {
		x.logger.Warn("annexure.orders.no_header", "file", doc.FileName, "anchor", x.layout.OrderAnchor)
	}
	return t
}

package export

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/payout-recon/constants"
	"github.com/joseph-ayodele/payout-recon/internal/common"
	"github.com/joseph-ayodele/payout-recon/internal/entity"
	"github.com/joseph-ayodele/payout-recon/internal/normalize"
)

const extractedAtLayout = "2006-01-02 15:04:05"

// RegisterColumns is the header written when the register sheet starts out blank.
var RegisterColumns = []string{
	"Payout Period", "File Name", "Financial Year", "Year", "Month", "Reverse Charge",
	"Supplier GSTIN", "Recipient GSTIN", "Line No", "Description", "SAC Code", "UQC",
	"Quantity", "Taxable Value", "Discount", "Net Taxable Value", "CGST Rate", "CGST Amount",
	"SGST Rate", "SGST Amount", "IGST Rate", "IGST Amount", "Cess Rate", "Cess Amount",
	"TCS Rate", "TCS Amount", "Invoice Value", "Round Off", "Total Invoice Value", "Brand ID",
	"Recipient PAN", "Invoice Date", "Invoice Number", "Place Of Supply", "Document Type",
	"Remarks", "Extracted At",
}

// RegisterRow lays out one invoice in register column order.
func RegisterRow(p common.RegisterProfile, inv entity.Invoice) []any {
	half := p.HalfRatePercent()
	tax := normalize.Round2(inv.BaseAmount.Mul(half).Div(decimal.NewFromInt(100)))
	base := normalize.Float(inv.BaseAmount)
	grand := normalize.Float(inv.GrandTotal)
	rate := normalize.Float(half)
	return []any{
		inv.PayoutPeriod, inv.SourceFileName, p.FiscalYear, p.Year, p.Month,
		"", p.SupplierGSTIN, p.RecipientGSTIN, 1, inv.Description,
		p.SACCode, "OTH", 1, base, 0, base,
		rate, normalize.Float(tax), rate, normalize.Float(tax),
		0, 0, 0, 0, 0, 0, grand,
		0, grand, inv.BrandID, p.RecipientPAN,
		p.InvoiceDate, inv.InvoiceNumber, "", "INV", "",
		inv.ExtractedAt.Format(extractedAtLayout),
	}
}

// RegisterWriter fills the register sheet of a template workbook.
type RegisterWriter struct {
	profile common.RegisterProfile
	logger  *slog.Logger
}

func NewRegisterWriter(p common.RegisterProfile, logger *slog.Logger) *RegisterWriter {
	if logger == nil {
		logger = slog.Default()
	}
	if p.SheetName == "" {
		p.SheetName = constants.SheetCommissionInvoice
	}
	return &RegisterWriter{profile: p, logger: logger}
}

// Write loads the template (or starts a blank workbook when there is none), replaces
// every row below the header of the register sheet with invoices and saves to path.
// The template itself is never modified.
func (w *RegisterWriter) Write(path string, invoices []entity.Invoice) error {
	start := time.Now()
	f, fromTemplate, err := w.open()
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := w.profile.SheetName
	created := false
	if idx, _ := f.GetSheetIndex(sheet); idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return common.NewAppError(common.CodeOutput, "create sheet "+sheet, err)
		}
		created = true
	}
	if created && !fromTemplate {
		_ = f.DeleteSheet(constants.DefaultSheet)
	}

	cleared, err := clearBody(f, sheet)
	if err != nil {
		return common.NewAppError(common.CodeOutput, "clear sheet "+sheet, err)
	}
	if cleared < 0 {
		header := make([]any, len(RegisterColumns))
		for i, c := range RegisterColumns {
			header[i] = c
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return common.NewAppError(common.CodeOutput, "write header", err)
		}
	}

	for i, inv := range invoices {
		row := RegisterRow(w.profile, inv)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return common.NewAppError(common.CodeOutput, fmt.Sprintf("write row for %s", inv.SourceFileName), err)
		}
	}
	if idx, _ := f.GetSheetIndex(sheet); idx >= 0 {
		f.SetActiveSheet(idx)
	}
	if err := f.SaveAs(path); err != nil {
		return common.NewAppError(common.CodeOutput, "save "+path, err)
	}

	w.logger.Info("export.register.ok",
		"file", filepath.Base(path),
		"template", fromTemplate,
		"rows", len(invoices),
		"cleared", max(cleared, 0),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (w *RegisterWriter) open() (*excelize.File, bool, error) {
	tpl := w.profile.TemplatePath
	if tpl == "" {
		return excelize.NewFile(), false, nil
	}
	f, err := excelize.OpenFile(tpl)
	if err == nil {
		return f, true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		w.logger.Warn("export.register.no_template", "template", tpl)
		return excelize.NewFile(), false, nil
	}
	return nil, false, common.NewAppError(common.CodeWorkbookOpen, tpl, err)
}

// clearBody removes every row below the header and reports how many it removed,
// or -1 when the sheet has no rows at all.
func clearBody(f *excelize.File, sheet string) (int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return -1, nil
	}
	for r := len(rows); r >= 2; r-- {
		if err := f.RemoveRow(sheet, r); err != nil {
			return 0, err
		}
	}
	return len(rows) - 1, nil
}

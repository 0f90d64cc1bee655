package invoice

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/payout-recon/internal/common"
	"github.com/joseph-ayodele/payout-recon/internal/entity"
	"github.com/joseph-ayodele/payout-recon/internal/pdftext"
)

// TextReader is the first-page text source; *pdftext.Reader satisfies it.
type TextReader interface {
	FirstPageText(ctx context.Context, path string) (pdftext.Result, error)
}

// Config holds the run-level values stamped on every record.
type Config struct {
	PayoutPeriod string
	Description  string
	TaxRate      decimal.Decimal
	Now          func() time.Time
}

type Extractor struct {
	cfg    Config
	reader TextReader
	logger *slog.Logger
}

func NewExtractor(cfg Config, reader TextReader, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Description == "" {
		cfg.Description = "Service Fee"
	}
	return &Extractor{cfg: cfg, reader: reader, logger: logger}
}

// Extract reads one invoice PDF. The grand total is mandatory: without it no record
// is produced. A missing brand id falls back to entity.BrandIDUnknown.
func (x *Extractor) Extract(ctx context.Context, path string) (entity.Invoice, error) {
	name := filepath.Base(path)
	res, err := x.reader.FirstPageText(ctx, path)
	if err != nil {
		return entity.Invoice{}, err
	}

	total, matched, ok := LocateGrandTotal(res.Text)
	if !ok {
		return entity.Invoice{}, common.NewAppError(common.CodeGrandTotalMissing, name, common.ErrGrandTotalNotFound)
	}
	inv := entity.Invoice{
		PayoutPeriod:   x.cfg.PayoutPeriod,
		SourceFileName: name,
		BrandID:        LocateBrandID(res.Text),
		Description:    x.cfg.Description,
		BaseAmount:     BaseAmount(total, x.cfg.TaxRate),
		GrandTotal:     total,
		InvoiceNumber:  InvoiceNumber(name),
		ExtractedAt:    x.cfg.Now(),
	}
	x.logger.Info("invoice.extract.ok",
		"file", name,
		"brand_id", inv.BrandID,
		"grand_total", inv.GrandTotal.StringFixed(2),
		"pattern", matched,
		"text_pass", res.Pass,
	)
	return inv, nil
}

// InvoiceNumber is the last underscore-separated part of the file name, without ".pdf".
func InvoiceNumber(fileName string) string {
	parts := strings.Split(fileName, "_")
	return strings.ReplaceAll(parts[len(parts)-1], ".pdf", "")
}

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/payout-recon/internal/batch"
	"github.com/joseph-ayodele/payout-recon/internal/common"
	"github.com/joseph-ayodele/payout-recon/internal/core"
	"github.com/joseph-ayodele/payout-recon/internal/export"
	"github.com/joseph-ayodele/payout-recon/internal/invoice"
	"github.com/joseph-ayodele/payout-recon/internal/pdftext"
)

func newInvoicesCmd(a *app) *cobra.Command {
	var dir, profile, template, out, period, method string
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Fill the commission invoice register from a folder of invoice PDFs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			inv := a.cfg.Invoice
			if flags.Changed("dir") {
				inv.Dir = dir
			}
			if flags.Changed("profile") {
				inv.ProfilePath = profile
			}
			if flags.Changed("template") {
				inv.TemplatePath = template
			}
			if flags.Changed("out") {
				inv.OutputFile = out
			}
			if flags.Changed("payout-period") {
				inv.PayoutPeriod = period
			}
			a.cfg.Invoice = inv
			if flags.Changed("method") {
				a.cfg.PDF.Method = strings.ToLower(method)
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			p, err := common.LoadRegisterProfile(inv.ProfilePath, inv)
			if err != nil {
				return err
			}
			reader := pdftext.NewReader(pdftext.Config{
				Method:    a.cfg.PDF.Method,
				Pdftotext: a.cfg.PDF.Pdftotext,
				Validate:  a.cfg.PDF.Validate,
			}, a.logger)
			x := invoice.NewExtractor(invoice.Config{
				PayoutPeriod: p.PayoutPeriod,
				Description:  p.Description,
				TaxRate:      p.TaxRate,
			}, reader, a.logger)
			runner := core.NewInvoiceRunner(x, export.NewRegisterWriter(p, a.logger), batch.NewDriver(os.Stdout, a.logger), a.logger)

			a.logger.Info("invoices.run.start",
				"dir", inv.Dir,
				"method", a.cfg.PDF.Method,
				"payout_period", p.PayoutPeriod,
				"tax_rate", p.TaxRate.String(),
			)
			_, err = runner.Run(cmd.Context(), inv.Dir, p.OutputFile)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&dir, "dir", "", "folder holding the invoice PDFs (env INVOICE_DIR)")
	f.StringVar(&profile, "profile", "", "register profile JSON (env INVOICE_PROFILE)")
	f.StringVar(&template, "template", "", "register template workbook (env INVOICE_TEMPLATE)")
	f.StringVar(&out, "out", "", "register output workbook (env INVOICE_OUTPUT)")
	f.StringVar(&period, "payout-period", "", "payout period stamped on every row (env INVOICE_PAYOUT_PERIOD)")
	f.StringVar(&method, "method", "", "text extraction: native or pdftotext (env PDF_TEXT_METHOD)")
	return cmd
}

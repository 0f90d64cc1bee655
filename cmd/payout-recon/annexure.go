package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/payout-recon/internal/annexure"
	"github.com/joseph-ayodele/payout-recon/internal/batch"
	"github.com/joseph-ayodele/payout-recon/internal/core"
)

func newAnnexureCmd(a *app) *cobra.Command {
	var dir, out string
	cmd := &cobra.Command{
		Use:   "annexure",
		Short: "Merge invoice_Annexure_*.xlsx files into one consolidated workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Annexure
			if cmd.Flags().Changed("dir") {
				cfg.Dir = dir
			}
			if cmd.Flags().Changed("out") {
				cfg.OutputDir = out
			}
			a.cfg.Annexure = cfg
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			kw := annexure.Keywords{
				Brand:    cfg.BrandKeywords,
				Location: cfg.LocationKeywords,
				City:     cfg.CityKeywords,
			}
			x := annexure.NewExtractor(annexure.DefaultLayout(), kw, a.logger)
			runner := core.NewAnnexureRunner(x, batch.NewDriver(os.Stdout, a.logger), cfg.FilePrefix, a.logger)

			a.logger.Info("annexure.run.start", "dir", cfg.Dir, "out", cfg.OutputDir)
			_, err := runner.Run(cmd.Context(), cfg.Dir, cfg.OutputDir)
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "folder holding the annexure workbooks (env ANNEXURE_DIR)")
	cmd.Flags().StringVar(&out, "out", "", "folder for the consolidated workbook (env ANNEXURE_OUTPUT_DIR)")
	return cmd
}

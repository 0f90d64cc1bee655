package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/payout-recon/internal/common"
)

// app carries what every subcommand needs once the root has parsed its flags.
type app struct {
	cfg    *common.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:           "payout-recon",
		Short:         "Consolidate payout annexures and commission invoices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.cfg = common.LoadConfig()
			if cmd.Flags().Changed("log-level") {
				a.cfg.Log.Level = strings.ToLower(logLevel)
			}
			if cmd.Flags().Changed("log-format") {
				a.cfg.Log.Format = strings.ToLower(logFormat)
			}
			a.logger = common.NewLogger(os.Stderr, a.cfg.Log, uuid.New())
			slog.SetDefault(a.logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error (env LOG_LEVEL)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: json or text (env LOG_FORMAT)")

	root.AddCommand(newAnnexureCmd(a), newInvoicesCmd(a))
	return root
}

// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/platestat/internal/config"
)

// app carries settings resolved once by the root command.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		a       app
	)
	root := &cobra.Command{
		Use:           "platestat",
		Short:         "Statistics over microplate well data",
		Long:          `platestat reads a YAML plate description and computes per-well or pooled statistics.`,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			decimal.DivisionPrecision = int(cfg.DecimalPrecision)
			a.cfg = cfg
			a.logger = cfg.NewLogger(cmd.ErrOrStderr())
			slog.SetDefault(a.logger)
			a.logger.Debug("configuration loaded",
				slog.String("log_level", cfg.LogLevel),
				slog.String("delimiter", cfg.Delimiter),
				slog.Int("decimal_precision", int(cfg.DecimalPrecision)),
			)

			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load instead of ./.env")

	root.AddCommand(newDescribeCmd(&a), newComputeCmd(&a))

	return root
}

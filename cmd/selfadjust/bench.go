package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bradenaw/selfadjust"
	"github.com/bradenaw/selfadjust/internal/config"
	"github.com/bradenaw/selfadjust/workload"
)

func newBenchCmd(root *rootOptions) *cobra.Command {
	var cfgFile string
	v := config.New()

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure average lookup cost under uniform and skewed access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := root.logger(cmd.ErrOrStderr())
			logger.Debug().
				Int("values", cfg.Values).
				Int("accesses", cfg.Accesses).
				Int64("seed", cfg.Seed).
				Msg("starting")

			report, err := workload.Run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "configuration file (toml, yaml or json)")
	if err := config.RegisterFlags(v, cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

func printReport(w io.Writer, report workload.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POLICY\tUNIFORM\tSKEWED")
	for _, res := range report.Results {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\n", res.Policy, res.Uniform, res.Skewed)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	comparisons := []struct{ policy, baseline selfadjust.Policy }{
		{selfadjust.MoveToFront, selfadjust.Transpose},
		{selfadjust.MoveToFront, selfadjust.Plain},
		{selfadjust.Transpose, selfadjust.Plain},
	}
	for _, c := range comparisons {
		savings, ok := report.Savings(c.policy, c.baseline)
		if !ok {
			continue
		}
		_, err := fmt.Fprintf(
			w,
			"%s examines %.2f fewer nodes per skewed lookup than %s\n",
			c.policy,
			savings,
			c.baseline,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

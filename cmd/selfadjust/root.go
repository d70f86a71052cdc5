package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	quiet   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "selfadjust",
		Short: "Compare self-adjusting list policies",
		Long: `selfadjust measures how many nodes plain, move-to-front and transpose lists examine
per lookup, and traces how each policy reorders a list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")

	cmd.AddCommand(newBenchCmd(opts))
	cmd.AddCommand(newTraceCmd())
	cmd.AddCommand(newBSTCmd())
	return cmd
}

func (o *rootOptions) logger(w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case o.quiet:
		level = zerolog.ErrorLevel
	case o.verbose:
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	diagram  bool
	logLevel string
	raw      bool
}

// Execute runs the command line in os.Args and returns the exit code.
func Execute() int {
	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "wrange",
		Short: "Compute with wrapping ranges",
		Long: `wrange evaluates intersections and unions of wrapping ranges.

Ranges are written as [low,high] with ( or ) for exclusive bounds, or as
empty and full. A low value above the high value wraps around: [22,2] holds
22 and everything above it, and 2 and everything below it. Sets of ranges
are written as {[0,5],[8,10]}.

With --diagram the operands are drawn instead, one column per value from 0:
o is an inclusive bound, x an exclusive bound, - a covered gap and a space
an uncovered gap.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(lvl)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&opts.diagram, "diagram", false, "read operands as diagrams over the values 0 to 255")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", logrus.WarnLevel.String(), "log level: trace, debug, info, warn or error")

	root.AddCommand(
		newIntersectCmd(opts),
		newUnionCmd(opts),
		newNormalizeCmd(opts),
		newContainsCmd(opts),
	)
	return root
}

func addRawFlag(fs *pflag.FlagSet, opts *options) {
	fs.BoolVar(&opts.raw, "raw", false, "print the result as computed, without normalizing it")
}

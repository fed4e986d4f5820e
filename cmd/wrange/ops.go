package main

import (
	"fmt"

	"github.com/henderiw/wrange/pkg/wrange"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"
)

func newIntersectCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "intersect SET SET...",
		Short:   "Print the points shared by all operands",
		Example: "  wrange intersect [6,1] [0,7]",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.diagram {
				return fold[uint8](cmd, args, wrange.ParseDiagramSet, wrange.Set[uint8].Intersection, opts.raw)
			}
			return fold[int64](cmd, args, wrange.ParseSet[int64], wrange.Set[int64].Intersection, opts.raw)
		},
	}
	addRawFlag(cmd.Flags(), opts)
	return cmd
}

func newUnionCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "union SET SET...",
		Short: "Print the members of all operands as one set",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.diagram {
				return fold[uint8](cmd, args, wrange.ParseDiagramSet, wrange.Set[uint8].Union, opts.raw)
			}
			return fold[int64](cmd, args, wrange.ParseSet[int64], wrange.Set[int64].Union, opts.raw)
		},
	}
	addRawFlag(cmd.Flags(), opts)
	return cmd
}

func newNormalizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize SET",
		Short: "Print the operand with every member normalized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.diagram {
				return fold[uint8](cmd, args, wrange.ParseDiagramSet, nil, false)
			}
			return fold[int64](cmd, args, wrange.ParseSet[int64], nil, false)
		},
	}
}

func newContainsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "contains SET VALUE",
		Short: "Print whether the value lies in the set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.diagram {
				return contains[uint8](cmd, args, wrange.ParseDiagramSet, wrange.ParseValue[uint8])
			}
			return contains[int64](cmd, args, wrange.ParseSet[int64], wrange.ParseValue[int64])
		},
	}
}

type parseFn[T constraints.Ordered] func(string) (wrange.Set[T], error)

func parseOperands[T constraints.Ordered](args []string, parse parseFn[T]) ([]wrange.Set[T], error) {
	sets := make([]wrange.Set[T], 0, len(args))
	for i, arg := range args {
		s, err := parse(arg)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		logrus.WithFields(logrus.Fields{"operand": i + 1, "set": s.String()}).Debug("parsed")
		sets = append(sets, s)
	}
	return sets, nil
}

// fold combines the operands left to right with op and prints the result. A
// nil op expects a single operand.
func fold[T constraints.Ordered](cmd *cobra.Command, args []string, parse parseFn[T], op func(a, b wrange.Set[T]) wrange.Set[T], raw bool) error {
	sets, err := parseOperands(args, parse)
	if err != nil {
		return err
	}
	result := sets[0]
	if op != nil {
		result = lo.Reduce(sets[1:], func(acc wrange.Set[T], s wrange.Set[T], _ int) wrange.Set[T] {
			return op(acc, s)
		}, sets[0])
	}
	if !raw {
		result = result.Normalized()
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}

func contains[T constraints.Integer](cmd *cobra.Command, args []string, parse parseFn[T], parseValue func(string) (T, error)) error {
	sets, err := parseOperands(args[:1], parse)
	if err != nil {
		return err
	}
	v, err := parseValue(args[1])
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[1], err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), sets[0].Contains(v))
	return nil
}

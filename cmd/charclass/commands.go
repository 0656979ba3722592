package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/phorward/charclass"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := newApp()
	cmd := &cobra.Command{
		Use:           "charclass",
		Short:         "Parse, combine and inspect character classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}
	a.bindFlags(cmd)

	cmd.AddCommand(
		a.reduceCmd("parse NOTATION", "Print the canonical form of a class", 1, 1, nil),
		a.reduceCmd("union CLASS...", "Values in any class", 1, -1, charclass.Class.Union),
		a.reduceCmd("intersect CLASS...", "Values in every class", 1, -1, charclass.Class.Intersect),
		a.reduceCmd("diff CLASS...", "Values in the first class and none of the others", 1, -1, charclass.Class.Difference),
		a.reduceCmd("xor CLASS...", "Values in an odd number of classes", 1, -1, charclass.Class.SymmetricDifference),
		a.negateCmd(),
		a.foldCmd(),
		a.countCmd(),
		a.containsCmd(),
		a.segmentsCmd(),
	)
	return cmd
}

// reduceCmd folds its operands left to right with op. A nil op only
// prints its single operand.
func (a *app) reduceCmd(use, short string, minArgs, maxArgs int, op func(charclass.Class, charclass.Class) charclass.Class) *cobra.Command {
	args := cobra.MinimumNArgs(minArgs)
	if maxArgs > 0 {
		args = cobra.RangeArgs(minArgs, maxArgs)
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := a.operands(args)
			if err != nil {
				return err
			}
			c := cs[0]
			for _, d := range cs[1:] {
				c = op(c, d)
			}
			return a.print(cmd.OutOrStdout(), c)
		},
	}
}

func (a *app) negateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "negate CLASS",
		Short: "Every scalar value not in the class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.operand(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), c.Complement())
		},
	}
}

func (a *app) foldCmd() *cobra.Command {
	var closure bool
	cmd := &cobra.Command{
		Use:   "fold CLASS",
		Short: "Add the simple case foldings of every value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.operand(args[0])
			if err != nil {
				return err
			}
			rounds := 1
			folded := c.Fold(charclass.SimpleFold)
			for closure && !folded.Equal(c) {
				c, folded = folded, folded.Fold(charclass.SimpleFold)
				rounds++
			}
			a.log.Printf("folded in %d round(s)", rounds)
			return a.print(cmd.OutOrStdout(), folded)
		},
	}
	cmd.Flags().BoolVar(&closure, "closure", false, "fold repeatedly until nothing changes")
	return cmd
}

func (a *app) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count CLASS",
		Short: "Number of scalar values in the class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.operand(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s values in %d ranges\n",
				humanize.Comma(int64(c.Count())), c.Len())
			return err
		},
	}
}

func (a *app) containsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains CLASS VALUE...",
		Short: "Test values for membership; a value is one character or U+XXXX",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.operand(args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				v, err := parseValue(arg)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%U\t%t\n", v, c.Contains(v)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) segmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segments CLASS...",
		Short: "Split the classes into disjoint segments, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := a.operands(args)
			if err != nil {
				return err
			}
			p := charclass.NewPartition()
			for _, c := range cs {
				p.Add(c)
			}
			segs := p.Segments()
			a.log.Printf("%d classes, %d segments", len(cs), len(segs))
			for _, seg := range segs {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), seg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func parseValue(arg string) (rune, error) {
	if hex, ok := strings.CutPrefix(strings.ToUpper(arg), "U+"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || v > uint64(charclass.MaxScalar) || !charclass.IsScalar(rune(v)) {
			return 0, errors.Errorf("invalid value %q", arg)
		}
		return rune(v), nil
	}
	if !utf8.ValidString(arg) || utf8.RuneCountInString(arg) != 1 {
		return 0, errors.Errorf("value %q is not a single character", arg)
	}
	v, _ := utf8.DecodeRuneInString(arg)
	return v, nil
}

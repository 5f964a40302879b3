package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/avl"
	"github.com/katalvlaran/lvtree/scenario"
)

// errFailed is returned by run when at least one scenario did not pass.
var errFailed = errors.New("one or more scenarios failed")

// flags shared by every subcommand.
type flags struct {
	verbose bool
	layout  string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	var cmdSeq = &cobra.Command{
		Use:   "seq [--] VALUE...",
		Short: "Insert integers into a new tree and print it",
		Long: `Seq builds a tree headed by the first value and inserts the others in order.
Every id is the decimal text of its value, so each value may appear only once.
Put -- before the values when any of them is negative: avlplay seq -- -5 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeq(cmd.OutOrStdout(), f, args)
		},
	}

	var cmdRun = &cobra.Command{
		Use:   "run FILE...",
		Short: "Replay scenario files and check their expectations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd.OutOrStdout(), f, args)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlplay version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avlplay",
		Short:         "Replay AVL insert sequences",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := layouts[f.layout]; !ok {
				return fmt.Errorf("unknown layout %q (want outline or levels)", f.layout)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "print every rotation as it happens")
	rootCmd.PersistentFlags().StringVar(&f.layout, "layout", "outline", "tree layout: outline or levels")
	rootCmd.AddCommand(cmdSeq, cmdRun, cmdVersion)

	return rootCmd
}

// options returns the tree options implied by the flags.
func (f *flags) options(w io.Writer) []avl.Option[string] {
	if !f.verbose {
		return nil
	}

	return []avl.Option[string]{avl.WithOnRotate(func(ev avl.RotationEvent[string]) {
		fmt.Fprintf(w, "  rotate: %s at %s (heavy %s), promoted %s", ev.Kind, ev.Pivot, ev.Heavy, ev.Promoted)
		if ev.RootChanged {
			fmt.Fprint(w, ", new head")
		}
		fmt.Fprintln(w)
	})}
}

func runSeq(w io.Writer, f *flags, args []string) error {
	vals := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("value #%d: %w", i+1, err)
		}
		vals[i] = v
	}

	t := avl.FromHead(args[0], vals[0], f.options(w)...)
	for i, v := range vals[1:] {
		if err := t.Insert(args[i+1], v); err != nil {
			return err
		}
	}

	if err := layouts[f.layout](w, t); err != nil {
		return err
	}
	summarize(w, t)

	return nil
}

func runScenarios(w io.Writer, f *flags, paths []string) error {
	failed := 0
	for _, path := range paths {
		s, err := scenario.Load(path)
		if err != nil {
			fmt.Fprintf(w, "FAIL %s\n  %v\n", path, err)
			failed++
			continue
		}

		t, err := s.Run(f.options(w)...)
		if err == nil {
			err = s.Check(t)
		}
		if err != nil {
			fmt.Fprintf(w, "FAIL %s\n  %v\n", s.Name, err)
			failed++
		} else {
			fmt.Fprintf(w, "PASS %s\n", s.Name)
		}
		if rerr := layouts[f.layout](w, t); rerr != nil {
			return rerr
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFailed, failed, len(paths))
	}

	return nil
}

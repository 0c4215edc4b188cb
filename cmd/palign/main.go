// Command palign aligns two sequences from the command line under a
// named substitution matrix, printing the score and optional
// statistics or DP table.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-parasail/align"
	"github.com/ajroetker/go-parasail/matrix"
	"github.com/ajroetker/go-parasail/presult"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		matrixName   string
		open, extend int32
		mode         string
		stats        bool
		table        bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "palign <seq1> <seq2>",
		Short: "Align two sequences with a vectorized DP kernel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)

			m, ok := matrix.Lookup(matrixName)
			if !ok {
				return fmt.Errorf("unknown matrix %q (available: %v)", matrixName, matrix.Names())
			}

			var opts []align.Option
			if stats {
				opts = append(opts, align.WithStats())
			}
			if table {
				opts = append(opts, align.WithTable())
			}

			s1, s2 := []byte(args[0]), []byte(args[1])
			logger.Debug("aligning", "mode", mode, "matrix", m.Name(), "open", open, "extend", extend,
				"s1_len", len(s1), "s2_len", len(s2))

			r, err := runMode(mode, s1, s2, open, extend, m, opts...)
			if err != nil {
				return err
			}

			fmt.Println(r)
			if stats {
				fmt.Printf("matches=%d similar=%d length=%d\n", r.Matches, r.Similar, r.Length)
			}
			if table {
				fmt.Print(r.DebugTable())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&matrixName, "matrix", "m", "blosum62", "substitution matrix name")
	cmd.Flags().Int32Var(&open, "open", 10, "gap open penalty")
	cmd.Flags().Int32Var(&extend, "extend", 1, "gap extend penalty")
	cmd.Flags().StringVar(&mode, "mode", "sw", "alignment mode: nw, sg, or sw")
	cmd.Flags().BoolVar(&stats, "stats", false, "report match/similar/length statistics")
	cmd.Flags().BoolVar(&table, "table", false, "print the full DP score table")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runMode(mode string, s1, s2 []byte, open, extend int32, m *matrix.Matrix, opts ...align.Option) (*presult.Result, error) {
	switch mode {
	case "nw":
		return align.NW(s1, s2, open, extend, m, opts...)
	case "sg":
		return align.SG(s1, s2, open, extend, m, opts...)
	case "sw":
		return align.SW(s1, s2, open, extend, m, opts...)
	default:
		return nil, fmt.Errorf("unknown mode %q (want nw, sg, or sw)", mode)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

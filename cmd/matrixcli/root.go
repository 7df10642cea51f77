// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AnonymouX47/matrix"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// roundLimit is shared by every subcommand via the persistent flag.
var roundLimit int

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "matrixcli",
		Short: "Dense decimal matrix algebra from the command line",
		Long: "matrixcli evaluates matrix operations on literals of the form\n" +
			"\"a,b;c,d\" (commas separate elements, semicolons separate rows).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// WithRoundLimit panics on nonsense; turn flag misuse into an error.
			if roundLimit < 0 || roundLimit > 100 {
				return fmt.Errorf("--round-limit must be in [0, 100], got %d", roundLimit)
			}
			return nil
		},
	}
	root.PersistentFlags().IntVar(&roundLimit, "round-limit", matrix.DefaultRoundLimit,
		"negligibility exponent: values below 10^-limit are treated as zero")

	root.AddCommand(newDetCmd(), newInvCmd(), newRankCmd(), newEchelonCmd(),
		newSolveCmd(), newRandCmd())

	return root
}

// parseMatrix turns an "a,b;c,d" literal into a Matrix. Rows of unequal
// length are rejected rather than padded, so typos surface immediately.
func parseMatrix(lit string) (*matrix.Matrix, error) {
	rowLits := strings.Split(strings.TrimSpace(lit), ";")
	rows := make([][]float64, len(rowLits))
	for i, rl := range rowLits {
		fields := strings.Split(rl, ",")
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, element %d: %q is not a number", i+1, j+1, f)
			}
			row[j] = v
		}
		rows[i] = row
	}

	return matrix.NewFromRows(rows, false)
}

func opts() []matrix.Option {
	return []matrix.Option{matrix.WithRoundLimit(roundLimit)}
}

func printMatrix(title string, m *matrix.Matrix) {
	fmt.Println(titleStyle.Render(title))
	fmt.Println(resultStyle.Render(m.String()))
}

func newDetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det <matrix>",
		Short: "Determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := parseMatrix(args[0])
			if err != nil {
				return err
			}
			d, err := m.Determinant(opts()...)
			if err != nil {
				return err
			}
			fmt.Println(resultStyle.Render(d.String()))
			return nil
		},
	}
}

func newInvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inv <matrix>",
		Short: "Inverse of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := parseMatrix(args[0])
			if err != nil {
				return err
			}
			inv, err := m.Inverse(opts()...)
			if err != nil {
				if errors.Is(err, matrix.ErrZeroDeterminant) {
					return errors.New("matrix is singular, no inverse exists")
				}
				return err
			}
			printMatrix("inverse:", inv)
			return nil
		},
	}
}

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank <matrix>",
		Short: "Rank of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := parseMatrix(args[0])
			if err != nil {
				return err
			}
			fmt.Println(resultStyle.Render(strconv.Itoa(m.Rank(opts()...))))
			return nil
		},
	}
}

func newEchelonCmd() *cobra.Command {
	var reduced bool
	cmd := &cobra.Command{
		Use:   "echelon <matrix>",
		Short: "Row echelon form (or reduced form with --reduced)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := parseMatrix(args[0])
			if err != nil {
				return err
			}
			if reduced {
				if err = m.ToReducedRowEchelon(opts()...); err != nil {
					return err
				}
			} else {
				m.ToRowEchelon(opts()...)
			}
			printMatrix("echelon form:", m)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reduced, "reduced", false, "normalize pivots and clear above them")

	return cmd
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <coefficients> <constants>",
		Short: "Solve the linear system A·x = b",
		Long: "Solve A·x = b where A is a square matrix literal and b is a\n" +
			"single-row literal (\"5,6\") interpreted as a column of constants.",
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := parseMatrix(args[0])
			if err != nil {
				return err
			}
			b, err := parseMatrix(strings.ReplaceAll(args[1], ",", ";"))
			if err != nil {
				return err
			}
			x, err := matrix.SolveLinearSystem(a, b, opts()...)
			if err != nil {
				if errors.Is(err, matrix.ErrNoUniqueSolution) {
					return errors.New("the system has no unique solution")
				}
				return err
			}
			for i, v := range x {
				fmt.Println(resultStyle.Render(fmt.Sprintf("x%d = %s", i+1, v)))
			}
			return nil
		},
	}
}

func newRandCmd() *cobra.Command {
	var (
		lo, hi   float64
		seed     int64
		useFloat bool
	)
	cmd := &cobra.Command{
		Use:   "rand <nrow> <ncol>",
		Short: "Generate a random matrix",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			nrow, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("nrow: %q is not an integer", args[0])
			}
			ncol, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("ncol: %q is not an integer", args[1])
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			var m *matrix.Matrix
			if useFloat {
				m, err = matrix.RandFloat(nrow, ncol, lo, hi, rng)
			} else {
				m, err = matrix.RandInt(nrow, ncol, int64(lo), int64(hi), rng)
			}
			if err != nil {
				return err
			}
			printMatrix(fmt.Sprintf("%dx%d random matrix:", nrow, ncol), m)
			return nil
		},
	}
	cmd.Flags().Float64Var(&lo, "lo", 0, "lower bound")
	cmd.Flags().Float64Var(&hi, "hi", 9, "upper bound")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 seeds from the clock)")
	cmd.Flags().BoolVar(&useFloat, "float", false, "draw floats instead of integers")

	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/orbital/laguerre"
	"github.com/katalvlaran/orbital/license"
	"github.com/katalvlaran/orbital/polynomial"
	"github.com/katalvlaran/orbital/radial"
	"github.com/katalvlaran/orbital/rootfind"
	"github.com/katalvlaran/orbital/table"
)

func (a *app) licenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "license [text|c|shell]",
		Short:     "Print the license notice",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"text", "c", "shell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			style, err := license.ParseStyle(name)
			if err != nil {
				a.logger.Warn("unknown license style, using text", zap.String("style", name))
			}
			out := cmd.OutOrStdout()
			for _, l := range license.Lines(style) {
				fmt.Fprintln(out, l)
			}

			return nil
		},
	}
}

func (a *app) tablesCmd() *cobra.Command {
	var (
		maxN    int
		workers int
		output  string
	)
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Generate the C++ radial data tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// flags override the configuration file
			if cmd.Flags().Changed("max-n") {
				a.cfg.MaxN = maxN
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Workers = workers
			}
			if cmd.Flags().Changed("out") {
				a.cfg.Output = output
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			tb, err := table.Generate(cmd.Context(), table.Options{
				MaxN:    a.cfg.MaxN,
				Workers: a.cfg.Workers,
				Header:  a.cfg.Header,
				Style:   a.cfg.Style(),
				Logger:  a.logger,
			})
			if err != nil {
				return err
			}

			return writeTables(cmd.OutOrStdout(), a.cfg.Output, tb, a.logger)
		},
	}
	cmd.Flags().IntVarP(&maxN, "max-n", "n", 16, "largest principal quantum number (default from config)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent cells (default from config, NumCPU)")
	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (default stdout)")

	return cmd
}

// writeTables sends tb to path, or to stdout when path is empty.
func writeTables(stdout io.Writer, path string, tb *table.Tables, log *zap.Logger) error {
	if path == "" {
		_, err := tb.WriteTo(stdout)

		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	n, err := tb.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Info("tables written", zap.String("path", path), zap.Int64("bytes", n))

	return nil
}

func (a *app) laguerreCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "laguerre N A",
		Short: "Print L_N^(A) and its roots",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, a1, err := parseInts(args[0], args[1])
			if err != nil {
				return err
			}
			p, err := laguerre.Build(n, a1)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "L_%d^(%d)(x) = %v\n", n, a1, p)

			roots := []float64{}
			if p.Degree() >= 1 {
				if roots, err = rootfind.Roots(p); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "roots:  %v\n", roots)

			if check {
				nodes, err := laguerre.Nodes(n, a1)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "eigen:  %v\n", nodes)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "also print the Golub-Welsch reference nodes")

	return cmd
}

func (a *app) rootsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roots c0 c1 ... cn",
		Short: "Print the real roots of c0 + c1·x + ... + cn·x^n",
		// Coefficients such as -6 would otherwise parse as shorthand flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			coeffs, help, verbose := splitRootsArgs(args)
			if help {
				return cmd.Help()
			}
			if verbose && !a.verbose {
				_ = a.logger.Sync()
				a.verbose = true
				if err := a.setup(); err != nil {
					return err
				}
			}
			if len(coeffs) == 0 {
				return errors.New("roots: at least one coefficient is required")
			}

			cs := make([]float64, len(coeffs))
			for i, s := range coeffs {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("coefficient %d: %w", i, err)
				}
				cs[i] = v
			}
			p := polynomial.FromCoefficients(cs...)
			a.logger.Debug("isolating roots", zap.Stringer("polynomial", p))

			roots, err := rootfind.Roots(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), roots)

			return nil
		},
	}
}

// splitRootsArgs separates the help and verbose flags from coefficients.
// A "--" separator is accepted and dropped.
func splitRootsArgs(args []string) (coeffs []string, help, verbose bool) {
	coeffs = make([]string, 0, len(args))
	for _, s := range args {
		switch s {
		case "-h", "--help":
			help = true
		case "-v", "--verbose":
			verbose = true
		case "--":
		default:
			coeffs = append(coeffs, s)
		}
	}

	return coeffs, help, verbose
}

func (a *app) radialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "radial N L",
		Short: "Print nodes, maxima and extents of orbital (N, L)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, L, err := parseInts(args[0], args[1])
			if err != nil {
				return err
			}
			nodes, err := radial.Nodes(n, L)
			if err != nil {
				return err
			}
			maxima, err := radial.Maxima(n, L)
			if err != nil {
				return err
			}
			ext, err := radial.Extent(n, L)
			if err != nil {
				return err
			}
			ext2, err := radial.Extent2(n, L)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes:   %v\n", nodes)
			fmt.Fprintf(out, "maxima:  %v\n", maxima)
			fmt.Fprintf(out, "extent:  %v\n", ext)
			fmt.Fprintf(out, "extent2: %v\n", ext2)

			return nil
		},
	}
}

// parseInts parses two decimal integer arguments.
func parseInts(s1, s2 string) (int, int, error) {
	v1, err := strconv.Atoi(s1)
	if err != nil {
		return 0, 0, err
	}
	v2, err := strconv.Atoi(s2)
	if err != nil {
		return 0, 0, err
	}

	return v1, v2, nil
}

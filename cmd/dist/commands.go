// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-statfn/statfn/elem"
	"github.com/go-statfn/statfn/stats"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/rand"
)

// env is the state shared by the subcommands of one root command.
type env struct {
	v    *viper.Viper
	conf *config
	d    distribution
	name string
}

func newRootCmd() *cobra.Command {
	e := &env{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:   "dist",
		Short: "Evaluate Student's t and F distributions",
		Long: `dist evaluates the density, cumulative distribution and quantile
functions of Student's t and F distributions over numbers read from
stdin, draws random variates, and describes distributions.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
	}
	addConfigFlags(rootCmd.PersistentFlags())
	if err := e.v.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(errors.Wrap(err, "binding flags"))
	}

	rootCmd.AddCommand(e.pdfCmd(), e.cdfCmd(), e.quantileCmd(), e.randCmd(), e.describeCmd())
	return rootCmd
}

func (e *env) setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	conf, err := loadConfig(e.v)
	if err != nil {
		return err
	}
	if conf.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	e.conf = conf
	e.d, e.name, err = conf.dist()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"dist": e.name, "command": cmd.Name()}).Debug("starting")
	return nil
}

func (e *env) pdfCmd() *cobra.Command {
	var logForm bool
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Print the probability density at each input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := e.d.PDF
			if logForm {
				f = e.d.LogPDF
			}
			return e.eachInput(cmd, f)
		},
	}
	cmd.Flags().BoolVar(&logForm, "log", false, "Print the natural logarithm of the density")
	return cmd
}

func (e *env) cdfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cdf",
		Short: "Print the cumulative probability at each input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.eachInput(cmd, e.d.CDF)
		},
	}
}

func (e *env) quantileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quantile",
		Short: "Print the quantile at each input probability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.eachInput(cmd, e.d.InvCDF)
		},
	}
}

func (e *env) randCmd() *cobra.Command {
	var (
		n    int
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print random variates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return errors.Errorf("--count must not be negative, got %d", n)
			}
			var r *rand.Rand
			if cmd.Flags().Changed("seed") {
				r = stats.NewRand(seed)
			}
			xs := make([]float64, n)
			stats.SampleInto(e.d, r, xs)
			log.WithFields(log.Fields{"n": n, "seeded": r != nil}).Debug("sampled")
			return e.print(cmd.OutOrStdout(), xs)
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "Number of variates")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default is system entropy)")
	return cmd
}

func (e *env) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the moments and quantiles of the distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			lo, hi := e.d.Bounds()
			fmt.Fprintf(w, "%s  mean %.6g  variance %.6g  bounds [%.6g, %.6g]\n",
				e.name, e.d.Mean(), e.d.Variance(), lo, hi)
			fmt.Fprintln(w)

			// Quartiles and tails.
			labels := map[int]string{0: "min", 50: "median", 100: "max"}
			for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
				label, ok := labels[p]
				if !ok {
					label = fmt.Sprintf("%d%%ile", p)
				}
				fmt.Fprintf(w, "%8s %.6g\n", label, e.d.InvCDF(float64(p)/100))
			}
			if math.IsInf(hi-lo, 0) {
				log.WithFields(log.Fields{"lo": lo, "hi": hi}).Debug("unbounded, not plotting density")
				return nil
			}
			fmt.Fprintln(w)
			return fprintPDF(w, e.d)
		},
	}
}

// eachInput applies f to each number read from the command's input
// and prints the results.
func (e *env) eachInput(cmd *cobra.Command, f func(float64) float64) error {
	xs, err := readInput(cmd.InOrStdin())
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"inputs": len(xs), "workers": e.conf.Workers}).Debug("evaluating")
	return e.print(cmd.OutOrStdout(), elem.MapConcurrent(xs, f, e.conf.Workers))
}

func (e *env) print(w io.Writer, xs []float64) error {
	bw := bufio.NewWriter(w)
	prec := e.conf.Digits
	if prec <= 0 {
		prec = -1
	}
	for _, x := range xs {
		bw.WriteString(strconv.FormatFloat(x, 'g', prec, 64))
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "writing output")
}

// readInput reads newline-separated numbers from r, skipping blank
// lines.
func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "input line %d", line)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return xs, nil
}

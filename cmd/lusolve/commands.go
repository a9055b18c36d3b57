// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lusolve/internal/app"
	"github.com/katalvlaran/lusolve/internal/config"
	"github.com/katalvlaran/lusolve/internal/prompt"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var rf rootFlags

	root := &cobra.Command{
		Use:   "lusolve",
		Short: "Solve Ax = b by LU decomposition with partial pivoting",
		Long: `lusolve factorizes A as PA = LU, refuses singular and ill-conditioned
matrices, and prints the solution x together with the factors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "config file (default ~/.lusolve/lusolve.yaml)")
	pf.StringVar(&rf.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	pf.StringVar(&rf.logFormat, "log-format", "", "log format: text|json (overrides config)")

	root.AddCommand(
		newSolveCmd(&rf, in, out, errOut),
		newLoadCmd(&rf, out, errOut),
		newHilbertCmd(&rf, out, errOut),
	)

	return root
}

// loadConfig resolves the config file and applies the logging flag overrides.
func (rf *rootFlags) loadConfig(errOut io.Writer) (config.Config, error) {
	path := rf.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Config{}, err
		}
	}
	cfg, created, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if created {
		fmt.Fprintf(errOut, "First run detected, created the config at %s\n", path)
	}
	if rf.logLevel != "" {
		cfg.Log.Level = rf.logLevel
	}
	if rf.logFormat != "" {
		cfg.Log.Format = rf.logFormat
	}

	return cfg, cfg.Validate()
}

func (rf *rootFlags) newApp(out, errOut io.Writer, p prompt.Prompter) (*app.App, error) {
	cfg, err := rf.loadConfig(errOut)
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log.Level, cfg.Log.Format, errOut)

	return app.New(out, logger, cfg, p), nil
}

// newPrompter returns an interactive form on a terminal and a line reader otherwise.
func newPrompter(in io.Reader, out io.Writer) prompt.Prompter {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return prompt.NewForm(in, out)
	}

	return prompt.NewLine(in, out)
}

func newSolveCmd(rf *rootFlags, in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		req    app.SolveRequest
		mode   string
		lo, hi int
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build a system from random data or manual entry and solve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mode != "" {
				m, err := prompt.ParseMode(mode)
				if err != nil {
					return err
				}
				req.Mode = m
			}
			if cmd.Flags().Changed("min") {
				req.Min = &lo
			}
			if cmd.Flags().Changed("max") {
				req.Max = &hi
			}
			a, err := rf.newApp(out, errOut, newPrompter(in, out))
			if err != nil {
				return err
			}
			return a.Solve(req)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&req.N, "size", "n", 0, "matrix size n (prompted when omitted)")
	f.StringVar(&mode, "mode", "", "random|manual (prompted when omitted)")
	f.Int64Var(&req.Seed, "seed", 0, "random seed (0 derives one from the clock and logs it)")
	f.IntVar(&lo, "min", 1, "smallest random entry")
	f.IntVar(&hi, "max", 9, "largest random entry")
	f.StringVar(&req.SavePath, "save", "", "write the system and its outcome to this JSON file")
	f.StringVar(&req.PlotPath, "plot", "", "write a chart of x and b to this image file (.png, .svg, .pdf, .html)")
	f.BoolVar(&req.ShowFactors, "show-factors", false, "print P, L and U")

	return cmd
}

func newLoadCmd(rf *rootFlags, out, errOut io.Writer) *cobra.Command {
	var showFactors bool
	cmd := &cobra.Command{
		Use:   "load file.json",
		Short: "Re-solve a system saved with solve --save",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := rf.newApp(out, errOut, nil)
			if err != nil {
				return err
			}
			return a.Load(args[0], showFactors)
		},
	}
	cmd.Flags().BoolVar(&showFactors, "show-factors", false, "print P, L and U")

	return cmd
}

func newHilbertCmd(rf *rootFlags, out, errOut io.Writer) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "hilbert",
		Short: "Check the n×n Hilbert system, the classic ill-conditioned family",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := rf.newApp(out, errOut, nil)
			if err != nil {
				return err
			}
			return a.Hilbert(n)
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", 8, "matrix size n")

	return cmd
}

// SPDX-License-Identifier: MIT

// Package app wires input, solving, display, persistence and plotting
// behind the lusolve commands.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lusolve/builder"
	"github.com/katalvlaran/lusolve/internal/config"
	"github.com/katalvlaran/lusolve/internal/plot"
	"github.com/katalvlaran/lusolve/internal/prompt"
	"github.com/katalvlaran/lusolve/internal/store"
	"github.com/katalvlaran/lusolve/internal/ux"
	"github.com/katalvlaran/lusolve/lu"
	"github.com/katalvlaran/lusolve/matrix"
)

// ErrNoPrompter is returned when an answer is missing and nobody can be asked.
var ErrNoPrompter = errors.New("app: input required but no prompter configured")

// App holds the collaborators shared by every command.
type App struct {
	out      io.Writer
	log      *slog.Logger
	cfg      config.Config
	prompter prompt.Prompter
	now      func() time.Time
}

// New returns an App. prompter may be nil when every answer comes from flags.
func New(out io.Writer, logger *slog.Logger, cfg config.Config, prompter prompt.Prompter) *App {
	return &App{out: out, log: logger, cfg: cfg, prompter: prompter, now: time.Now}
}

// SolveRequest carries the solve command's flags. Zero values defer to the
// prompter (N, Mode) or to the config (Seed, Min, Max).
type SolveRequest struct {
	N           int
	Mode        prompt.Mode
	Seed        int64
	Min, Max    *int
	SavePath    string
	PlotPath    string
	ShowFactors bool
}

// Solve builds a system as requested, solves it and reports the outcome.
// A refused system is displayed and then returned as a *lu.Failure.
//
// Stages:
//
//	Stage 1 (Ask):      resolve n and the mode, prompting for what is missing.
//	Stage 2 (Build):    random integers or manual entries.
//	Stage 3 (Solve):    display A and b, solve, display x or the refusal.
//	Stage 4 (Persist):  optional JSON document and chart.
func (a *App) Solve(req SolveRequest) error {
	// Stage 1: Ask
	n := req.N
	if n == 0 {
		if a.prompter == nil {
			return fmt.Errorf("size: %w", ErrNoPrompter)
		}
		var err error
		if n, err = a.prompter.Size(); err != nil {
			return err
		}
	}
	if n < 0 {
		return fmt.Errorf("size %d: %w", n, prompt.ErrNotPositive)
	}
	mode := req.Mode
	if mode == "" {
		if a.prompter == nil {
			mode = prompt.ModeRandom
		} else {
			var err error
			if mode, err = a.prompter.Mode(); err != nil {
				return err
			}
		}
	}

	// Stage 2: Build
	sys, err := a.build(n, mode, req)
	if err != nil {
		return err
	}

	// Stage 3 and 4
	return a.solveAndReport(sys.A, sys.B, req.ShowFactors || a.cfg.Output.ShowFactors, req.SavePath, req.PlotPath)
}

func (a *App) build(n int, mode prompt.Mode, req SolveRequest) (*builder.System, error) {
	switch mode {
	case prompt.ModeManual:
		if a.prompter == nil {
			return nil, fmt.Errorf("entries: %w", ErrNoPrompter)
		}
		rows, b, err := a.prompter.Entries(n)
		if err != nil {
			return nil, err
		}
		return builder.FromRows(rows, b)
	case prompt.ModeRandom:
		seed := req.Seed
		if seed == 0 {
			seed = a.cfg.Generator.Seed
		}
		if seed == 0 {
			seed = a.now().UnixNano()
		}
		lo, hi := a.cfg.Generator.Min, a.cfg.Generator.Max
		if req.Min != nil {
			lo = *req.Min
		}
		if req.Max != nil {
			hi = *req.Max
		}
		if lo > hi {
			return nil, fmt.Errorf("range [%d, %d]: %w", lo, hi, config.ErrInvalid)
		}
		a.log.Info("generating random system", "n", n, "seed", seed, "min", lo, "max", hi)
		return builder.RandomInteger(n, builder.WithSeed(seed), builder.WithRange(lo, hi))
	default:
		return nil, fmt.Errorf("mode %q: %w", mode, prompt.ErrMode)
	}
}

// Load re-solves a persisted system and displays it.
func (a *App) Load(path string, showFactors bool) error {
	rec, err := store.LoadFile(path)
	if err != nil {
		return err
	}
	a.log.Info("loaded system", "path", path, "id", rec.ID, "n", rec.N, "saved_verdict", rec.Verdict)
	m, b, err := rec.System()
	if err != nil {
		return err
	}

	return a.solveAndReport(m, b, showFactors || a.cfg.Output.ShowFactors, "", "")
}

// Hilbert reports the verdict for the n×n Hilbert system and solves it when usable.
func (a *App) Hilbert(n int) error {
	sys, err := builder.HilbertSystem(n)
	if err != nil {
		return err
	}
	rep, err := lu.Check(sys.A, a.solverOptions()...)
	if err != nil {
		return err
	}
	p := a.printer()
	p.Matrix(fmt.Sprintf("Hilbert H%d", n), sys.A)
	p.Verdict(rep)
	a.log.Info("hilbert verdict", "n", n, "verdict", rep.Verdict.String(), "cond", rep.Cond)
	if rep.Verdict != lu.Usable {
		return nil
	}
	sol, err := lu.Solve(sys.A, sys.B, a.solverOptions()...)
	if err != nil {
		return err
	}

	return p.Solution(sol, a.cfg.Output.ShowFactors)
}

func (a *App) solveAndReport(m *matrix.Dense, b []float64, showFactors bool, savePath, plotPath string) error {
	p := a.printer()
	p.System(m, b)

	sol, solveErr := lu.Solve(m, b, a.solverOptions()...)
	var failure *lu.Failure
	if solveErr != nil && !errors.As(solveErr, &failure) {
		return solveErr
	}

	if failure != nil {
		a.log.Warn("system refused", "verdict", failure.Verdict.String(), "cond", failure.Cond)
		p.Failure(failure)
	} else {
		a.log.Info("system solved", "n", len(b), "cond", sol.Cond, "residual", sol.Residual)
		if err := p.Solution(sol, showFactors); err != nil {
			return err
		}
	}

	if savePath != "" {
		rec := store.NewRecord(m, b, sol, solveErr, a.now())
		if err := store.SaveFile(savePath, rec); err != nil {
			return err
		}
		a.log.Info("system saved", "path", savePath, "id", rec.ID)
		p.Note("saved %s", savePath)
	}
	if plotPath != "" && sol != nil {
		if err := plot.SaveFile(plotPath, sol.X, b, a.plotOptions()); err != nil {
			return err
		}
		p.Note("plot written to %s", plotPath)
	}

	return solveErr
}

func (a *App) solverOptions() []lu.Option {
	opts := []lu.Option{
		lu.WithConditionThreshold(a.cfg.Solver.ConditionThreshold),
		lu.WithLogger(a.log),
	}
	if a.cfg.Solver.PivotTolerance > 0 {
		opts = append(opts, lu.WithPivotTolerance(a.cfg.Solver.PivotTolerance))
	}

	return opts
}

func (a *App) plotOptions() plot.Options {
	return plot.Options{
		Width:     vg.Length(a.cfg.Output.PlotWidthCM) * vg.Centimeter,
		Height:    vg.Length(a.cfg.Output.PlotHeightCM) * vg.Centimeter,
		Precision: a.cfg.Output.Precision,
	}
}

func (a *App) printer() *ux.Printer {
	return ux.NewPrinter(a.out, a.cfg.Output.Precision)
}

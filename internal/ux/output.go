// SPDX-License-Identifier: MIT

// Package ux renders systems, solutions and refusals for the terminal.
package ux

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lusolve/lu"
	"github.com/katalvlaran/lusolve/matrix"
)

// Palette.
var (
	ColorTitle   = lipgloss.Color("#2CD7C7")
	ColorBorder  = lipgloss.Color("#16858E")
	ColorMuted   = lipgloss.Color("#2C4A54")
	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

type styles struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Border   lipgloss.Style
	ErrorBox lipgloss.Style
	WarnBox  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Title:   r.NewStyle().Bold(true).Foreground(ColorTitle),
		Muted:   r.NewStyle().Foreground(ColorMuted),
		Success: r.NewStyle().Foreground(ColorSuccess),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Error:   r.NewStyle().Foreground(ColorError),
		Border:  r.NewStyle().Foreground(ColorBorder),
		ErrorBox: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Padding(0, 1),
		WarnBox: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorWarning).
			Padding(0, 1),
	}
}

// Printer writes styled output to one writer. Colors are chosen from the
// writer's terminal profile, so buffers and pipes receive plain text.
type Printer struct {
	w         io.Writer
	precision int
	st        styles
}

// NewPrinter returns a Printer formatting numbers with the given decimals.
func NewPrinter(w io.Writer, precision int) *Printer {
	if precision < 0 {
		precision = 0
	}

	return &Printer{w: w, precision: precision, st: newStyles(lipgloss.NewRenderer(w))}
}

func (p *Printer) num(v float64) string {
	return strconv.FormatFloat(v, 'f', p.precision, 64)
}

// Deque formats x the way the solution queue is shown: deque([x0, x1, ...]).
func Deque(x []float64, precision int) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'f', precision, 64)
	}

	return "deque([" + strings.Join(parts, ", ") + "])"
}

// Matrix prints a titled bordered table of m.
func (p *Printer) Matrix(title string, m *matrix.Dense) {
	rows := m.RowsSlice()
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = p.num(v)
		}
	}
	p.table(title, cells)
}

// Vector prints a titled single-column table of v.
func (p *Printer) Vector(title string, v []float64) {
	cells := make([][]string, len(v))
	for i, x := range v {
		cells[i] = []string{p.num(x)}
	}
	p.table(title, cells)
}

func (p *Printer) table(title string, cells [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.st.Border).
		Rows(cells...)
	fmt.Fprintln(p.w, p.st.Title.Render(title))
	fmt.Fprintln(p.w, t.Render())
}

// System prints A and b.
func (p *Printer) System(a *matrix.Dense, b []float64) {
	p.Matrix("Matrix A", a)
	p.Vector("Vector b", b)
}

// Solution prints the deque line, x and the diagnostics; P, L and U follow
// when showFactors is set.
func (p *Printer) Solution(sol *lu.Solution, showFactors bool) error {
	fmt.Fprintln(p.w, p.st.Title.Render("Solution queue x"))
	fmt.Fprintln(p.w, Deque(sol.X, p.precision))
	p.Vector("Solution x", sol.X)
	fmt.Fprintln(p.w, p.st.Muted.Render(fmt.Sprintf("det=%.6g  cond=%.3g  residual=%.3g", sol.Det, sol.Cond, sol.Residual)))

	if !showFactors || sol.Factors == nil {
		return nil
	}
	pm, err := sol.Factors.P.Matrix()
	if err != nil {
		return err
	}
	p.Matrix("Permutation P", pm)
	p.Matrix("Lower L", sol.Factors.L)
	p.Matrix("Upper U", sol.Factors.U)

	return nil
}

// Failure prints a boxed explanation of a refused system or any other error.
func (p *Printer) Failure(err error) {
	var f *lu.Failure
	switch {
	case errors.As(err, &f) && f.Verdict == lu.Singular:
		fmt.Fprintln(p.w, p.st.ErrorBox.Render(
			p.st.Error.Render("✗ Matrix A is not invertible.")+"\n"+
				"Please provide another matrix."))
	case errors.As(err, &f):
		fmt.Fprintln(p.w, p.st.WarnBox.Render(
			p.st.Warning.Render("⚠ Matrix A is ill-conditioned.")+"\n"+
				fmt.Sprintf("cond=%.3g exceeds the threshold; the solution would be unreliable.", f.Cond)))
	default:
		fmt.Fprintln(p.w, p.st.ErrorBox.Render(p.st.Error.Render("✗ "+err.Error())))
	}
}

// Verdict prints a one-line classification, used by the hilbert command.
func (p *Printer) Verdict(rep *lu.Report) {
	var label string
	switch rep.Verdict {
	case lu.Usable:
		label = p.st.Success.Render("✓ " + rep.Verdict.String())
	case lu.IllConditioned:
		label = p.st.Warning.Render("⚠ " + rep.Verdict.String())
	default:
		label = p.st.Error.Render("✗ " + rep.Verdict.String())
	}
	fmt.Fprintf(p.w, "%s  cond=%.3g\n", label, rep.Cond)
}

// Note prints a muted informational line.
func (p *Printer) Note(format string, args ...any) {
	fmt.Fprintln(p.w, p.st.Muted.Render(fmt.Sprintf(format, args...)))
}

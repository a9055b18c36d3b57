// SPDX-License-Identifier: MIT

package prompt

import (
	"bufio"
	"fmt"
	"io"
)

// Line prompts on plain text streams, re-asking after every invalid answer.
// It serves piped stdin where an interactive form cannot run.
type Line struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewLine reads answers from in and writes questions to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{sc: bufio.NewScanner(in), out: out}
}

func (l *Line) ask(question string) (string, error) {
	fmt.Fprint(l.out, question)
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("prompt: %q: %w", question, io.ErrUnexpectedEOF)
	}

	return l.sc.Text(), nil
}

// Size implements Prompter.
func (l *Line) Size() (int, error) {
	for {
		s, err := l.ask("Matrix size (n): ")
		if err != nil {
			return 0, err
		}
		n, err := ParseSize(s)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(l.out, err)
	}
}

// Mode implements Prompter.
func (l *Line) Mode() (Mode, error) {
	for {
		s, err := l.ask("Generate random data (A) or enter manually (M)? [default: A] ")
		if err != nil {
			return "", err
		}
		m, err := ParseMode(s)
		if err == nil {
			return m, nil
		}
		fmt.Fprintln(l.out, err)
	}
}

func (l *Line) entry(label string) (float64, error) {
	for {
		s, err := l.ask(label)
		if err != nil {
			return 0, err
		}
		v, err := ParseEntry(s)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(l.out, err)
	}
}

// Entries implements Prompter.
func (l *Line) Entries(n int) ([][]float64, []float64, error) {
	var err error
	rows := make([][]float64, n)
	fmt.Fprintln(l.out, "Enter the elements of matrix A:")
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if rows[i][j], err = l.entry(entryLabel(i, j)); err != nil {
				return nil, nil, err
			}
		}
	}
	b := make([]float64, n)
	fmt.Fprintln(l.out, "Enter the elements of vector b:")
	for i := range b {
		if b[i], err = l.entry(rhsLabel(i)); err != nil {
			return nil, nil, err
		}
	}

	return rows, b, nil
}

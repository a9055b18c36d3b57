// SPDX-License-Identifier: MIT

package prompt

import (
	"io"

	"github.com/charmbracelet/huh"
)

// Form prompts with interactive huh forms.
type Form struct {
	in  io.Reader
	out io.Writer
}

// NewForm returns a Form bound to the given terminal streams.
func NewForm(in io.Reader, out io.Writer) *Form {
	return &Form{in: in, out: out}
}

func (f *Form) run(groups ...*huh.Group) error {
	return huh.NewForm(groups...).
		WithInput(f.in).
		WithOutput(f.out).
		Run()
}

func validateWith[T any](parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := parse(s)
		return err
	}
}

// Size implements Prompter.
func (f *Form) Size() (int, error) {
	var s string
	err := f.run(huh.NewGroup(
		huh.NewInput().
			Title("Matrix size (n)").
			Value(&s).
			Validate(validateWith(ParseSize)),
	))
	if err != nil {
		return 0, err
	}

	return ParseSize(s)
}

// Mode implements Prompter.
func (f *Form) Mode() (Mode, error) {
	m := ModeRandom
	err := f.run(huh.NewGroup(
		huh.NewSelect[Mode]().
			Title("How should A and b be produced?").
			Options(
				huh.NewOption("Random data", ModeRandom),
				huh.NewOption("Manual entry", ModeManual),
			).
			Value(&m),
	))
	if err != nil {
		return "", err
	}

	return m, nil
}

// Entries implements Prompter. Each row of A is one page, followed by b.
func (f *Form) Entries(n int) ([][]float64, []float64, error) {
	raw := make([][]string, n+1)
	groups := make([]*huh.Group, 0, n+1)
	for i := 0; i <= n; i++ {
		raw[i] = make([]string, n)
		fields := make([]huh.Field, n)
		for j := 0; j < n; j++ {
			label := rhsLabel(j)
			if i < n {
				label = entryLabel(i, j)
			}
			fields[j] = huh.NewInput().
				Title(label).
				Value(&raw[i][j]).
				Validate(validateWith(ParseEntry))
		}
		g := huh.NewGroup(fields...)
		if i < n {
			g = g.Title("Matrix A")
		} else {
			g = g.Title("Vector b")
		}
		groups = append(groups, g)
	}
	if err := f.run(groups...); err != nil {
		return nil, nil, err
	}

	rows := make([][]float64, n)
	b := make([]float64, n)
	var err error
	for i := 0; i <= n; i++ {
		dst := b
		if i < n {
			rows[i] = make([]float64, n)
			dst = rows[i]
		}
		for j := range dst {
			if dst[j], err = ParseEntry(raw[i][j]); err != nil {
				return nil, nil, err
			}
		}
	}

	return rows, b, nil
}

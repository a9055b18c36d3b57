// SPDX-License-Identifier: MIT

// Package prompt collects the system size, input mode and manual entries.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how A and b are produced.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeManual Mode = "manual"
)

// User-facing validation messages.
var (
	ErrNotInteger  = errors.New("invalid input, please enter an integer")
	ErrNotPositive = errors.New("please enter a number greater than zero")
	ErrMode        = errors.New("please answer A (random) or M (manual)")
)

// Prompter asks the questions needed to build a system.
type Prompter interface {
	Size() (int, error)
	Mode() (Mode, error)
	Entries(n int) (rows [][]float64, b []float64, err error)
}

// ParseSize accepts a positive integer.
func ParseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotInteger
	}
	if n <= 0 {
		return 0, ErrNotPositive
	}

	return n, nil
}

// ParseEntry accepts one integer matrix or vector element.
func ParseEntry(s string) (float64, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotInteger
	}

	return float64(v), nil
}

// ParseMode maps A/random and M/manual, case-insensitively; empty means random.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a", "random":
		return ModeRandom, nil
	case "m", "manual":
		return ModeManual, nil
	default:
		return "", ErrMode
	}
}

func entryLabel(i, j int) string { return fmt.Sprintf("A[%d][%d] = ", i, j) }

func rhsLabel(i int) string { return fmt.Sprintf("b[%d] = ", i) }

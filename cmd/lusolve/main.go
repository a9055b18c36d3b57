// SPDX-License-Identifier: MIT

// Command lusolve solves dense linear systems by LU decomposition with
// partial pivoting, refusing singular and ill-conditioned matrices.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lusolve/lu"
)

// Exit codes.
const (
	exitOK      = 0
	exitError   = 1
	exitRefused = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit code.
// A refused system has already been displayed; only other errors are printed.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	root := newRootCmd(in, out, errOut)
	root.SetArgs(args)
	err := root.Execute()

	var f *lu.Failure
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &f):
		return exitRefused
	default:
		fmt.Fprintln(errOut, "Error:", err)
		return exitError
	}
}

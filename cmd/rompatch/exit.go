package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rompatch/rompatch/patchfmt"
	"github.com/scott-cotton/cli"
)

// Exit codes by failure kind, so scripts can tell a wrong base file
// from a damaged patch without parsing messages.
const (
	exitFormat         = 2
	exitCapacity       = 3
	exitSourceMismatch = 4
	exitCorrupt        = 5
)

// exitErr maps engine errors to their exit codes, printing the message
// itself; anything unrecognized is returned for the framework to report.
func exitErr(err error) error {
	if err == nil {
		return nil
	}
	var code int
	switch {
	case errors.Is(err, patchfmt.ErrCapacity):
		code = exitCapacity
	case errors.Is(err, patchfmt.ErrSourceMismatch):
		code = exitSourceMismatch
	case errors.Is(err, patchfmt.ErrCorrupt):
		code = exitCorrupt
	case errors.Is(err, patchfmt.ErrFormat):
		code = exitFormat
	default:
		return err
	}
	fmt.Fprintf(os.Stderr, "rompatch: %v\n", err)
	return cli.ExitCodeErr(code)
}

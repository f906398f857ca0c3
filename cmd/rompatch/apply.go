package main

import (
	"fmt"

	"github.com/rompatch/rompatch"

	"github.com/scott-cotton/cli"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: apply requires <original> <patch> <output>, got %v", cli.ErrUsage, args)
	}
	source, err := readFile(args[0])
	if err != nil {
		return err
	}
	patch, err := readFile(args[1])
	if err != nil {
		return err
	}
	out, err := rompatch.Apply(source, patch)
	if err != nil {
		return exitErr(fmt.Errorf("applying %s to %s: %w", args[1], args[0], err))
	}
	return writeFile(args[2], out)
}

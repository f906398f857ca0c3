package main

import (
	"fmt"

	"github.com/rompatch/rompatch"
	"github.com/rompatch/rompatch/bdiff"
	"github.com/rompatch/rompatch/patchfmt"

	"github.com/scott-cotton/cli"
)

func create(cfg *CreateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Create.Parse(cc, args)
	if err != nil {
		cfg.Create.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: create requires <original> <modified> <patch>, got %v", cli.ErrUsage, args)
	}
	f, err := patchfmt.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("%w: -f must be ips or delta", cli.ErrUsage)
	}
	source, err := readFile(args[0])
	if err != nil {
		return err
	}
	target, err := readFile(args[1])
	if err != nil {
		return err
	}
	var opts []bdiff.DiffOpt
	if cfg.Window > 0 {
		opts = append(opts, bdiff.Window(cfg.Window))
	}
	p, err := rompatch.Create(source, target, f, opts...)
	if err != nil {
		return exitErr(fmt.Errorf("creating %s: %w", args[2], err))
	}
	return writeFile(args[2], p)
}

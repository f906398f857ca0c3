package main

import (
	"fmt"

	"github.com/rompatch/rompatch/hexdiff"

	"github.com/scott-cotton/cli"
)

func compare(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		cfg.Compare.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compare requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readFile(args[0])
	if err != nil {
		return err
	}
	b, err := readFile(args[1])
	if err != nil {
		return err
	}
	differs, err := hexdiff.Write(cc.Out, a, b, cfg.colorize(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

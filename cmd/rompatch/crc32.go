package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/rompatch/rompatch/crc"

	"github.com/scott-cotton/cli"
)

func crcRun(cfg *CRCConfig, cc *cli.Context, args []string) error {
	args, err := cfg.CRC.Parse(cc, args)
	if err != nil {
		cfg.CRC.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		b, err := readFile(file)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%08x  %s  (%s)\n", crc.Sum(b), file, humanize.IBytes(uint64(len(b))))
	}
	return nil
}

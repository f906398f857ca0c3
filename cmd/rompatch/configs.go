package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

// colorize reports whether output to w should be colored: forced by
// the flag, otherwise only when w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CreateConfig struct {
	*MainConfig

	Format string `cli:"name=f aliases=format desc='patch format: ips or delta'"`
	Window int    `cli:"name=window desc='diff search window in bytes'"`

	Create *cli.Command
}

type ApplyConfig struct {
	*MainConfig

	Apply *cli.Command
}

type InspectConfig struct {
	*MainConfig

	Output string `cli:"name=o aliases=output desc='output: text, json, or yaml'"`
	Where  string `cli:"name=where desc='keep only patches whose metadata satisfies the expression'"`

	Inspect *cli.Command
}

type CompareConfig struct {
	*MainConfig

	Compare *cli.Command
}

type CRCConfig struct {
	*MainConfig

	CRC *cli.Command
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/rompatch/rompatch"
	"github.com/rompatch/rompatch/patchfmt"

	"github.com/scott-cotton/cli"
)

func inspect(cfg *InspectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Inspect.Parse(cc, args)
	if err != nil {
		cfg.Inspect.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: inspect requires at least one patch file", cli.ErrUsage)
	}
	switch cfg.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: -o must be text, json, or yaml", cli.ErrUsage)
	}
	var prog *vm.Program
	if cfg.Where != "" {
		prog, err = expr.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %v", cli.ErrUsage, err)
		}
	}
	shown := 0
	for _, file := range args {
		b, err := readFile(file)
		if err != nil {
			return err
		}
		md, err := rompatch.Inspect(b)
		if err != nil {
			return exitErr(fmt.Errorf("inspecting %s: %w", file, err))
		}
		if prog != nil {
			res, err := expr.Run(prog, exprEnv(md))
			if err != nil {
				return fmt.Errorf("evaluating -where for %s: %w", file, err)
			}
			if keep, ok := res.(bool); !ok || !keep {
				continue
			}
		}
		if shown > 0 && cfg.Output != "text" {
			if _, err := fmt.Fprintln(cc.Out, "---"); err != nil {
				return err
			}
		}
		if err := render(cfg, cc.Out, file, md); err != nil {
			return err
		}
		shown++
	}
	return nil
}

func exprEnv(md *patchfmt.Metadata) map[string]any {
	return map[string]any{
		"format":     md.Format.String(),
		"patchSize":  md.PatchSize,
		"sourceSize": md.SourceSize,
		"targetSize": md.TargetSize,
		"records":    md.Records,
		"truncated":  md.Truncated,
		"truncateTo": md.TruncateTo,
		"sourceCRC":  int64(md.SourceCRC),
		"targetCRC":  int64(md.TargetCRC),
	}
}

func render(cfg *InspectConfig, w io.Writer, file string, md *patchfmt.Metadata) error {
	switch cfg.Output {
	case "json":
		d, err := json.MarshalIndent(md, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(d))
		return err
	case "yaml":
		d, err := yaml.Marshal(md)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}

	name := file
	if cfg.colorize(w) {
		name = color.CyanString("%s", file)
	}
	fmt.Fprintf(w, "%s: %s patch, %s, %d records\n",
		name, md.Format, humanize.IBytes(uint64(md.PatchSize)), md.Records)
	fmt.Fprintf(w, "  source: %s\n", sizeStr(md.SourceSize))
	fmt.Fprintf(w, "  target: %s\n", sizeStr(md.TargetSize))
	if md.Truncated {
		fmt.Fprintf(w, "  truncates result to %d bytes\n", md.TruncateTo)
	}
	if md.Format == patchfmt.Delta {
		fmt.Fprintf(w, "  crc32: source %08x, target %08x, patch %08x\n",
			md.SourceCRC, md.TargetCRC, md.PatchCRC)
	}
	return nil
}

func sizeStr(n int64) string {
	if n < 0 {
		return "not declared"
	}
	return fmt.Sprintf("%s (%d bytes)", humanize.IBytes(uint64(n)), n)
}

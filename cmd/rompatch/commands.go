package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "rompatch").
		WithSynopsis("rompatch [opts] command [opts]").
		WithDescription("rompatch creates, applies, and inspects binary image patches.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rompatchMain(cfg, cc, args)
		}).
		WithSubs(
			CreateCommand(cfg),
			ApplyCommand(cfg),
			InspectCommand(cfg),
			CompareCommand(cfg),
			CRCCommand(cfg))
}

func CreateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CreateConfig{MainConfig: mainCfg, Format: "delta"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Create, "create").
		WithAliases("c", "cr").
		WithSynopsis("create [-f ips|delta] <original> <modified> <patch>").
		WithDescription("create a patch turning original into modified").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return create(cfg, cc, args)
		})
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a", "ap").
		WithSynopsis("apply <original> <patch> <output>").
		WithDescription("apply a patch to original, writing the result to output").
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func InspectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InspectConfig{MainConfig: mainCfg, Output: "text"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Inspect, "inspect").
		WithAliases("i", "in").
		WithSynopsis("inspect [-o text|json|yaml] [-where expr] <patch>...").
		WithDescription(inspectDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return inspect(cfg, cc, args)
		})
}

const inspectDescription = `inspect summarizes patch files without applying them: format, declared
sizes, record or action counts, and checksums.

With -where, only patches whose metadata satisfies the expression are
shown.  The expression sees these variables:

  format      "ips" or "delta"
  patchSize   patch file size in bytes
  sourceSize  declared source size, -1 when the format has none
  targetSize  declared target size
  records     record or action count
  truncated   whether the patch truncates its result
  truncateTo  declared truncation length
  sourceCRC   declared source checksum (delta only)
  targetCRC   declared target checksum (delta only)

For example: inspect -where 'format == "delta" && targetSize > 1048576' *.bdx`

func CompareCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompareConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Compare, "compare").
		WithAliases("cmp").
		WithSynopsis("compare <a> <b>").
		WithDescription("show the byte-level differences between two binaries").
		WithRun(func(cc *cli.Context, args []string) error {
			return compare(cfg, cc, args)
		})
}

func CRCCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CRCConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.CRC, "crc32").
		WithSynopsis("crc32 <file>...").
		WithDescription("print the CRC32 checksum of each file").
		WithRun(func(cc *cli.Context, args []string) error {
			return crcRun(cfg, cc, args)
		})
}

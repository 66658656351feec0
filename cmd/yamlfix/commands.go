package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "c",
		Aliases:     []string{"config"},
		Description: "configuration file (defaults apply when absent)",
		Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "yamlfix").
		WithSynopsis("yamlfix [opts] [files]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fixMain(cfg, cc, args)
		}).
		WithSubs(VersionCommand(cfg))
}

const mainDescription = `yamlfix normalizes YAML files in place.

With no file arguments it reads YAML from stdin and writes the
normalized result to stdout. A file argument of "-" does the same.
With -check it writes nothing and exits nonzero when any file would
change; with -diff it prints the changes instead of applying them.

Ansible vault payloads pass through untouched, and a leading shebang
or jinja2 directive line is kept as-is.`

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VersionConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Version, "version").
		WithAliases("v").
		WithSynopsis("version").
		WithDescription("print the yamlfix version").
		WithRun(func(cc *cli.Context, args []string) error {
			fmt.Fprintf(cc.Out, "yamlfix %s\n", version)
			return nil
		})
}

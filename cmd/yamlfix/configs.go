package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/lyz-code/yamlfix/config"
)

type MainConfig struct {
	Check bool `cli:"name=check aliases=dry-run desc='report files that would change, write nothing'"`
	Diff  bool `cli:"name=diff desc='print a unified view of the changes instead of writing them'"`
	Color bool `cli:"name=color desc='color diff output even when not writing to a terminal'"`

	ConfigFile string

	Main *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Version *cli.Command
}

func (cfg *MainConfig) configOpt(cc *cli.Context, a string) (any, error) {
	cfg.ConfigFile = a
	return nil, nil
}

// fixConfig resolves the normalization settings: built-in defaults,
// overridden by the -c file when one was given.
func (cfg *MainConfig) fixConfig() (*config.Config, error) {
	if cfg.ConfigFile == "" {
		return config.Default(), nil
	}
	return config.LoadFile(cfg.ConfigFile)
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

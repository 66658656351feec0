package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/lyz-code/yamlfix"
	"github.com/lyz-code/yamlfix/config"
)

func fixMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			err := sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}
	}
	fixCfg, err := cfg.fixConfig()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fixReader(cfg, fixCfg, cc.Out, cc.In, "<stdin>")
	}
	return fixFiles(cfg, fixCfg, cc, args)
}

func fixFiles(cfg *MainConfig, fixCfg *config.Config, cc *cli.Context, files []string) error {
	changed, failed := 0, 0
	for _, file := range files {
		didChange, err := fixFile(cfg, fixCfg, cc, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "yamlfix: %s: %v\n", file, err)
			failed++
			continue
		}
		if didChange {
			changed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "yamlfix: %d of %d files failed\n", failed, len(files))
		return cli.ExitCodeErr(2)
	}
	if cfg.Check && changed > 0 {
		fmt.Fprintf(os.Stderr, "yamlfix: %d of %d files would change\n", changed, len(files))
		return cli.ExitCodeErr(1)
	}
	return nil
}

func fixFile(cfg *MainConfig, fixCfg *config.Config, cc *cli.Context, file string) (bool, error) {
	if file == "-" {
		return false, fixReader(cfg, fixCfg, cc.Out, cc.In, "<stdin>")
	}
	info, err := os.Stat(file)
	if err != nil {
		return false, err
	}
	src, err := os.ReadFile(file)
	if err != nil {
		return false, err
	}
	out, err := yamlfix.Fix(string(src), fixCfg)
	if err != nil {
		return false, err
	}
	if out == string(src) {
		return false, nil
	}
	switch {
	case cfg.Diff:
		if err := printDiff(cfg, cc.Out, file, string(src), out); err != nil {
			return true, err
		}
	case cfg.Check:
		fmt.Fprintf(cc.Out, "would fix %s\n", file)
	default:
		if err := os.WriteFile(file, []byte(out), info.Mode().Perm()); err != nil {
			return true, err
		}
		fmt.Fprintf(cc.Out, "fixed %s\n", file)
	}
	return true, nil
}

func fixReader(cfg *MainConfig, fixCfg *config.Config, w io.Writer, r io.Reader, name string) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	out, err := yamlfix.Fix(string(src), fixCfg)
	if err != nil {
		return fmt.Errorf("error fixing %s: %w", name, err)
	}
	if cfg.Check {
		if out != string(src) {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	if cfg.Diff {
		return printDiff(cfg, w, name, string(src), out)
	}
	_, err = io.WriteString(w, out)
	return err
}

package main

import (
	"fmt"

	"github.com/signadot/xidx-format/go-xidx/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	from, err := loadDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	to, err := loadDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	lines, err := libdiff.Documents(from, to)
	if err != nil {
		return err
	}
	if !libdiff.Changed(lines) {
		return nil
	}
	fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n", args[0], args[1])
	err = libdiff.Format(cc.Out, lines,
		libdiff.Context(cfg.Context),
		libdiff.Color(cfg.colored(cc.Out)))
	if err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

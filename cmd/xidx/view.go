package main

import (
	"fmt"

	"github.com/signadot/xidx-format/go-xidx"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	for _, file := range inputs(args) {
		g, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if cfg.Write && file != "-" {
			if err := saveDoc(cfg.MainConfig, file, g); err != nil {
				return err
			}
			theLog.Debug("rewrote", "file", file)
			continue
		}
		if err := xidx.Encode(g, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

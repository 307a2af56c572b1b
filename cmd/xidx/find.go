package main

import (
	"fmt"

	"github.com/signadot/xidx-format/go-xidx/eval"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, file := range inputs(args[1:]) {
		g, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		ms, err := eval.Select(g, src)
		if err != nil {
			return err
		}
		for _, m := range ms {
			if cfg.Print == "" {
				fmt.Fprintln(cc.Out, m.Path)
				continue
			}
			s, err := eval.ExpandString(cfg.Print, m.Node)
			if err != nil {
				return fmt.Errorf("error expanding at %s: %w", m.Path, err)
			}
			fmt.Fprintln(cc.Out, s)
		}
	}
	return nil
}

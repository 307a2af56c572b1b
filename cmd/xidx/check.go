package main

import (
	"errors"
	"fmt"

	"github.com/signadot/xidx-format/go-xidx"

	"github.com/hashicorp/go-multierror"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range inputs(args) {
		problems := checkFile(cfg.MainConfig, cc, file)
		if len(problems) == 0 {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", file)
			}
			continue
		}
		failed++
		for _, p := range problems {
			fmt.Fprintf(cc.Out, "%s: %v\n", file, p)
		}
	}
	if failed != 0 {
		theLog.Debug("check failed", "files", failed)
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *MainConfig, cc *cli.Context, file string) []error {
	g, err := loadDoc(cfg, cc, file)
	if err != nil {
		return []error{err}
	}
	err = xidx.Validate(g)
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.Errors
	}
	return []error{err}
}

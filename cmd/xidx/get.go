package main

import (
	"fmt"

	"github.com/signadot/xidx-format/go-xidx/xnode"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a json path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	x, err := jp.ParseString(path)
	if err != nil {
		return fmt.Errorf("%w: invalid json path %q: %w", cli.ErrUsage, path, err)
	}
	for _, file := range inputs(args[1:]) {
		n, err := loadTree(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		d, err := xnode.ToJSON(n)
		if err != nil {
			return err
		}
		root, err := oj.Parse(d)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		for _, v := range x.Get(root) {
			out, err := oj.Marshal(v)
			if err != nil {
				return err
			}
			if err := writeJSON(cfg.MainConfig, cc.Out, out); err != nil {
				return err
			}
		}
	}
	return nil
}

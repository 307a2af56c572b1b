package main

import (
	"fmt"

	"github.com/signadot/xidx-format/go-xidx"
	"github.com/signadot/xidx-format/go-xidx/xnode"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/go-git/go-billy/v5/util"
	"github.com/scott-cotton/cli"
)

// patch applies a json patch to the element tree of a document and decodes
// the result, so a patch producing an invalid document is an error.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 && len(args) != 2 {
		return fmt.Errorf("%w: patch requires a patch and at most one file", cli.ErrUsage)
	}
	ops, err := getPatch(cfg, args[0])
	if err != nil {
		return err
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	n, err := loadTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	d, err := xnode.ToJSON(n)
	if err != nil {
		return err
	}
	d, err = ops.Apply(d)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	n, err = xnode.FromJSON(d)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	g, err := xidx.Unmarshal(n)
	if err != nil {
		return fmt.Errorf("patched %s: %w", file, err)
	}
	if err := xidx.Encode(g, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func getPatch(cfg *PatchConfig, arg string) (jsonpatch.Patch, error) {
	d := []byte(arg)
	if !cfg.String {
		fs, base := fsFor(arg)
		fd, err := util.ReadFile(fs, base)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		d = fd
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return ops, nil
}

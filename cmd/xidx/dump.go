package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/xidx-format/go-xidx/encode"
	"github.com/signadot/xidx-format/go-xidx/format"
	"github.com/signadot/xidx-format/go-xidx/xnode"

	"github.com/go-git/go-billy/v5/util"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	for _, file := range inputs(args) {
		n, err := loadTree(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if cfg.Write && file != "-" {
			if err := dumpFile(cfg.MainConfig, file, n); err != nil {
				return fmt.Errorf("error dumping %s: %w", file, err)
			}
			continue
		}
		if err := writeTree(cfg.MainConfig, cc.Out, n); err != nil {
			return fmt.Errorf("error dumping %s: %w", file, err)
		}
	}
	return nil
}

// dumpFile writes the dump of the document at file beside it.
func dumpFile(cfg *MainConfig, file string, n *xnode.Node) error {
	f := format.JSONFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	out := outputName(file, f)
	if out == file {
		return fmt.Errorf("%w: dump of %s would overwrite it", cli.ErrUsage, file)
	}
	var buf bytes.Buffer
	if err := writeTree(cfg, &buf, n); err != nil {
		return err
	}
	fs, base := fsFor(out)
	if err := util.WriteFile(fs, base, buf.Bytes(), 0o644); err != nil {
		return err
	}
	theLog.Debug("dumped", "file", file, "to", out)
	return nil
}

// writeTree writes n in the configured output format.  JSON output is
// the default for everything but xml.
func writeTree(cfg *MainConfig, w io.Writer, n *xnode.Node) error {
	if cfg.OutFormat != nil && cfg.OutFormat.IsXML() {
		return encode.Encode(n, w, cfg.encOpts(w)...)
	}
	d, err := xnode.ToJSON(n)
	if err != nil {
		return err
	}
	return writeJSON(cfg, w, d)
}

func writeJSON(cfg *MainConfig, w io.Writer, d []byte) error {
	if cfg.OutFormat != nil && cfg.OutFormat.IsYAML() {
		y, err := yaml.JSONToYAML(d)
		if err != nil {
			return err
		}
		_, err = w.Write(y)
		return err
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

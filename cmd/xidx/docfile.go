package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/signadot/xidx-format/go-xidx"
	"github.com/signadot/xidx-format/go-xidx/format"
	"github.com/signadot/xidx-format/go-xidx/parse"
	"github.com/signadot/xidx-format/go-xidx/xnode"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/scott-cotton/cli"
)

// loadDoc decodes the document at path, or from standard input when path
// is "-".
func loadDoc(cfg *MainConfig, cc *cli.Context, path string) (*xidx.Group, error) {
	if path == "-" {
		return xidx.DecodeReader(cc.In, cfg.parseOpts()...)
	}
	fs, base := fsFor(path)
	return xidx.Load(fs, base, cfg.fileOpts()...)
}

func saveDoc(cfg *MainConfig, path string, g *xidx.Group) error {
	fs, base := fsFor(path)
	return xidx.Save(fs, base, g, cfg.fileOpts()...)
}

// fsFor roots a filesystem at the directory of path.
func fsFor(path string) (billy.Filesystem, string) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return osfs.New(dir), base
}

// loadTree reads the element tree at path without decoding it into the
// object model.
func loadTree(cfg *MainConfig, cc *cli.Context, path string) (*xnode.Node, error) {
	var r io.Reader = cc.In
	if path != "-" {
		fs, base := fsFor(path)
		f, err := fs.Open(base)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	n, err := parse.ParseReader(r, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return n, nil
}

// outputName names the file holding the f form of the document at path.
func outputName(path string, f format.Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + f.Suffix()
}

func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

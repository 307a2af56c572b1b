package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/xidx-format/go-xidx"
	"github.com/signadot/xidx-format/go-xidx/encode"
	"github.com/signadot/xidx-format/go-xidx/format"
	"github.com/signadot/xidx-format/go-xidx/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Indent  int  `cli:"name=indent desc='indentation width'"`
	Space   bool `cli:"name=space desc='keep whitespace around text'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`
	Gops    bool `cli:"name=gops desc='run a gops diagnostics agent'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.KeepSpace(cfg.Space)}
}

func (cfg *MainConfig) fileOpts() []xidx.Option {
	return []xidx.Option{
		xidx.WithParseOptions(cfg.parseOpts()...),
		xidx.WithEncodeOptions(cfg.encOpts(nil)...),
	}
}

// colored reports whether output to w should be colored.  An explicit
// -color setting wins over terminal detection.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if w != nil && cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write the result back to the file'"`
	View  *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only report failures'"`
	Check *cli.Command
}

type InfoConfig struct {
	*MainConfig

	All  bool `cli:"name=a desc='list every node, not only domains and variables'"`
	Info *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Context int  `cli:"name=U desc='lines of context, negative for all'"`
	Diff    *cli.Command
}

type FindConfig struct {
	*MainConfig

	Print string `cli:"name=print desc='template printed per match, $[expr] is expanded'"`
	Find  *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write each dump next to its input, named by the output format'"`
	Dump  *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg as string'"`
	Patch  *cli.Command
}

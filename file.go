package xidx

import (
	"bytes"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/signadot/xidx-format/go-xidx/encode"
	"github.com/signadot/xidx-format/go-xidx/parse"
)

type fileOpts struct {
	enc   []encode.EncodeOption
	parse []parse.ParseOption
}

// Option configures Load and Save.
type Option func(*fileOpts)

func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(o *fileOpts) { o.enc = append(o.enc, opts...) }
}

func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(o *fileOpts) { o.parse = append(o.parse, opts...) }
}

func newFileOpts(opts []Option) *fileOpts {
	o := &fileOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load reads and decodes the document at path in fs.
func Load(fs billy.Filesystem, path string, opts ...Option) (*Group, error) {
	o := newFileOpts(opts)
	d, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	g, err := Decode(d, o.parse...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return g, nil
}

// Save encodes g and writes it to path in fs.
func Save(fs billy.Filesystem, path string, g *Group, opts ...Option) error {
	o := newFileOpts(opts)
	buf := bytes.NewBuffer(nil)
	if err := Encode(g, buf, o.enc...); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := util.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

package xidx

import (
	"bytes"
	"io"

	"github.com/signadot/xidx-format/go-xidx/encode"
	"github.com/signadot/xidx-format/go-xidx/parse"
	"github.com/signadot/xidx-format/go-xidx/xnode"
)

const (
	RootTag    = "Xidx"
	Version    = "2.0"
	DocTypeDTD = "Xidx.dtd"
	XIncludeNS = "http://www.w3.org/2001/XInclude"
)

// Marshal returns the document element for the tree rooted at g.
func Marshal(g *Group) *xnode.Node {
	root := xnode.New(RootTag).
		SetAttr("xmlns:xi", XIncludeNS).
		SetAttr("Version", Version)
	g.Serialize(root)
	return root
}

// Unmarshal decodes the top-level group of a document element.
func Unmarshal(root *xnode.Node) (*Group, error) {
	if !root.Is(RootTag) {
		return nil, mismatch(root, RootTag)
	}
	gn := root.First(groupTag)
	if gn == nil {
		return nil, missing(root, groupTag)
	}
	g := NewGroup("")
	if err := g.Deserialize(gn); err != nil {
		return nil, err
	}
	return g, nil
}

// Encode writes the document for g, with the XML declaration and the
// document type, followed by opts.
func Encode(g *Group, w io.Writer, opts ...encode.EncodeOption) error {
	all := append([]encode.EncodeOption{encode.Header(true), encode.DocType(DocTypeDTD)}, opts...)
	return encode.Encode(Marshal(g), w, all...)
}

func Decode(d []byte, opts ...parse.ParseOption) (*Group, error) {
	root, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return Unmarshal(root)
}

func DecodeReader(r io.Reader, opts ...parse.ParseOption) (*Group, error) {
	root, err := parse.ParseReader(r, opts...)
	if err != nil {
		return nil, err
	}
	return Unmarshal(root)
}

// MustString encodes g or panics.
func MustString(g *Group, opts ...encode.EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(g, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

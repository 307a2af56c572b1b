package encode

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>`

type EncState struct {
	indent  int
	header  bool
	docType string
	wire    bool

	Color func(ColorAttr, string) string

	w   io.Writer
	err error
}

func Encode(node *xnode.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		w:      w,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = colorNone
	}
	if es.header {
		es.write(PunctColor, xmlDecl)
		es.nl()
	}
	if es.docType != "" {
		es.write(PunctColor, "<!DOCTYPE ")
		es.write(TagColor, node.Tag)
		es.write(PunctColor, " SYSTEM ")
		es.write(AttrValueColor, `"`+escape(es.docType)+`"`)
		es.write(PunctColor, ">")
		es.nl()
	}
	es.encode(node, 0)
	es.writeRaw("\n")
	return es.err
}

func (es *EncState) encode(n *xnode.Node, depth int) {
	es.pad(depth)
	es.write(PunctColor, "<")
	es.write(TagColor, n.Tag)
	for _, a := range n.Attrs {
		es.writeRaw(" ")
		es.write(AttrNameColor, a.Name)
		es.write(PunctColor, "=")
		es.write(AttrValueColor, `"`+escape(a.Value)+`"`)
	}
	if n.Text == "" && len(n.Children) == 0 {
		es.write(PunctColor, "/>")
		return
	}
	es.write(PunctColor, ">")
	if n.Text != "" {
		es.write(TextColor, escape(n.Text))
	}
	if len(n.Children) != 0 {
		for _, c := range n.Children {
			es.nl()
			es.encode(c, depth+1)
		}
		es.nl()
		es.pad(depth)
	}
	es.write(PunctColor, "</")
	es.write(TagColor, n.Tag)
	es.write(PunctColor, ">")
}

func (es *EncState) pad(depth int) {
	if es.wire || es.indent <= 0 || depth == 0 {
		return
	}
	es.writeRaw(strings.Repeat(" ", depth*es.indent))
}

func (es *EncState) nl() {
	if es.wire {
		return
	}
	es.writeRaw("\n")
}

func (es *EncState) write(a ColorAttr, s string) {
	es.writeRaw(es.Color(a, s))
}

func (es *EncState) writeRaw(s string) {
	if es.err != nil {
		return
	}
	_, es.err = io.WriteString(es.w, s)
}

func escape(s string) string {
	buf := bytes.NewBuffer(nil)
	// writes to a bytes.Buffer do not fail
	_ = xml.EscapeText(buf, []byte(s))
	return buf.String()
}

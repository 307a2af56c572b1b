package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

type frame struct {
	node *xnode.Node
	text strings.Builder
}

func Parse(d []byte, opts ...ParseOption) (*xnode.Node, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*xnode.Node, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	dec := xml.NewDecoder(r)
	var (
		root  *xnode.Node
		stack []*frame
	)
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, posErr(dec, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := xnode.New(qname(t.Name))
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, xnode.Attr{Name: qname(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, posErr(dec, fmt.Errorf("%w: <%s>", ErrMultiRoot, n.Tag))
				}
				root = n
			} else {
				stack[len(stack)-1].node.AddChild(n)
			}
			stack = append(stack, &frame{node: n})
		case xml.EndElement:
			name := qname(t.Name)
			if len(stack) == 0 {
				return nil, posErr(dec, fmt.Errorf("%w: </%s> without start", ErrMismatch, name))
			}
			top := stack[len(stack)-1]
			if top.node.Tag != name {
				return nil, posErr(dec, fmt.Errorf("%w: <%s> closed by </%s>", ErrMismatch, top.node.Tag, name))
			}
			top.node.Text = top.text.String()
			if !po.keepSpace {
				top.node.Text = strings.TrimSpace(top.node.Text)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) != 0 {
					return nil, posErr(dec, ErrStrayChars)
				}
				continue
			}
			stack[len(stack)-1].text.Write(t)
		case xml.Comment, xml.ProcInst, xml.Directive:
		}
	}
	if len(stack) != 0 {
		return nil, posErr(dec, fmt.Errorf("%w: unexpected end of input inside <%s>", ErrParse, stack[len(stack)-1].node.Tag))
	}
	if root == nil {
		return nil, ErrEmpty
	}
	return root, nil
}

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func posErr(dec *xml.Decoder, err error) error {
	line, col := dec.InputPos()
	if errors.Is(err, ErrParse) {
		return fmt.Errorf("%d:%d: %w", line, col, err)
	}
	return fmt.Errorf("%w: %d:%d: %w", ErrParse, line, col, err)
}

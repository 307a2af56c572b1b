package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

func MustString(node *xnode.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/xidx-format/go-xidx/encode"
	"github.com/signadot/xidx-format/go-xidx/xnode"
)

type XML struct{ *xnode.Node }

func (x XML) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x.Node, buf); err != nil {
		return fmt.Sprintf("[raw *xnode.Node] %v", x.Node)
	}
	return buf.String()
}

// Logf writes to stderr, rendering *xnode.Node arguments as compact XML.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *xnode.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
				args[i] = fmt.Sprintf("[raw *xnode.Node] %v", x)
				continue
			}
			args[i] = bytes.TrimSpace(buf.Bytes())
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

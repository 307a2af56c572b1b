package xidx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/signadot/xidx-format/go-xidx/encode"
	"github.com/signadot/xidx-format/go-xidx/parse"
	"github.com/signadot/xidx-format/go-xidx/xnode"
)

var modelOpts = cmp.Options{
	cmpopts.IgnoreUnexported(
		Group{}, Variable{}, DataItem{}, DataSource{}, Attribute{},
		Topology{}, Geometry{}, DomainBase{},
	),
	cmpopts.EquateEmpty(),
}

// wire serializes n on its own and returns the single line XML.
func wire(n Node) string {
	return encode.MustString(n.Serialize(xnode.New("x")), encode.EncodeWire(true))
}

func mustParse(t *testing.T, s string) *xnode.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

// child returns the first element of the document s, so that decode
// errors carry a path below a root.
func child(t *testing.T, s string) *xnode.Node {
	t.Helper()
	return mustParse(t, "<x>"+s+"</x>").Children[0]
}

package xidx

import "github.com/signadot/xidx-format/go-xidx/xnode"

type Topology struct {
	link
	Type       TopologyType
	Dimensions []int
}

func NewTopology(t TopologyType, dims ...int) *Topology {
	return &Topology{Type: t, Dimensions: dims}
}

func (t *Topology) nodeName() string { return "" }
func (t *Topology) children() []Node { return nil }

func (t *Topology) Serialize(parent *xnode.Node) *xnode.Node {
	n := parent.NewChild(topologyTag).SetAttr("Type", t.Type.String())
	if len(t.Dimensions) != 0 {
		n.SetAttr("Dimensions", formatDims(t.Dimensions))
	}
	return n
}

func (t *Topology) Deserialize(n *xnode.Node) error {
	v, err := decodeTopology(n)
	if err != nil {
		return err
	}
	t.Type = v.Type
	t.Dimensions = v.Dimensions
	return nil
}

func decodeTopology(n *xnode.Node) (*Topology, error) {
	if !n.Is(topologyTag) {
		return nil, mismatch(n, topologyTag)
	}
	ts, ok := n.Attr("Type")
	if !ok {
		return nil, missing(n, "Type")
	}
	typ, err := ParseTopologyType(ts)
	if err != nil {
		return nil, wrapDecode(n, err)
	}
	var dims []int
	if ds, ok := n.Attr("Dimensions"); ok {
		if dims, err = parseDims(ds); err != nil {
			return nil, wrapDecode(n, err)
		}
	}
	return &Topology{Type: typ, Dimensions: dims}, nil
}

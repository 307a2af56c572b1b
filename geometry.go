package xidx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

type Geometry struct {
	link
	Type  GeometryType
	Items []*DataItem
}

// NewGeometry lays out origin and spacing as inline float items: a single
// item holding both for combined kinds, one item each otherwise.
func NewGeometry(t GeometryType, origin, spacing []float64) (*Geometry, error) {
	if len(origin) == 0 || len(origin) != len(spacing) {
		return nil, fmt.Errorf("%w: %s geometry with %d origin and %d spacing values",
			ErrInvalidValue, t, len(origin), len(spacing))
	}
	g := &Geometry{Type: t}
	if t.Combined() {
		g.AddItem(vectorItem(len(origin)*2, origin, spacing))
	} else {
		g.AddItem(vectorItem(len(origin), origin))
		g.AddItem(vectorItem(len(spacing), spacing))
	}
	return g, nil
}

func vectorItem(n int, vecs ...[]float64) *DataItem {
	d := NewTypedDataItem(XMLFormat, DataType{Number: FloatNumberType, Bits: 32, Components: 1}, []int{n}, nil)
	var b strings.Builder
	for _, vec := range vecs {
		for _, v := range vec {
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 32))
			b.WriteByte(' ')
		}
	}
	d.Text = strings.TrimSpace(b.String())
	return d
}

func (g *Geometry) AddItem(it *DataItem) *DataItem {
	it.SetParent(g)
	g.Items = append(g.Items, it)
	return it
}

func (g *Geometry) nodeName() string { return "" }
func (g *Geometry) children() []Node { return appendNodes(nil, g.Items) }

func (g *Geometry) Serialize(parent *xnode.Node) *xnode.Node {
	n := parent.NewChild(geometryTag).SetAttr("Type", g.Type.String())
	for _, it := range g.Items {
		it.Serialize(n)
	}
	return n
}

func (g *Geometry) Deserialize(n *xnode.Node) error {
	typ, items, err := g.decode(n)
	if err != nil {
		return err
	}
	g.Type = typ
	g.Items = items.commit()
	return nil
}

func (g *Geometry) decode(n *xnode.Node) (GeometryType, *itemMerge, error) {
	if !n.Is(geometryTag) {
		return 0, nil, mismatch(n, geometryTag)
	}
	ts, ok := n.Attr("Type")
	if !ok {
		return 0, nil, missing(n, "Type")
	}
	typ, err := ParseGeometryType(ts)
	if err != nil {
		return 0, nil, wrapDecode(n, err)
	}
	items, err := mergeItems(g, g.Items, n)
	if err != nil {
		return 0, nil, err
	}
	return typ, items, nil
}

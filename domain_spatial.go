package xidx

import (
	"fmt"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

// SpatialDomain is a mesh described by a topology and a geometry.
type SpatialDomain struct {
	DomainBase
	Topology *Topology
	Geometry *Geometry
}

func NewSpatialDomain(name string) *SpatialDomain {
	d := bind(&SpatialDomain{})
	d.Name = name
	return d
}

func (d *SpatialDomain) Type() DomainType { return SpatialDomainType }

func (d *SpatialDomain) SetTopology(t TopologyType, dims ...int) *Topology {
	d.Topology = NewTopology(t, dims...)
	d.Topology.SetParent(d)
	return d.Topology
}

func (d *SpatialDomain) SetGeometry(t GeometryType, origin, spacing []float64) (*Geometry, error) {
	g, err := NewGeometry(t, origin, spacing)
	if err != nil {
		return nil, err
	}
	g.SetParent(d)
	d.Geometry = g
	return g, nil
}

// Volume returns the number of points of the topology, 0 if there is none.
func (d *SpatialDomain) Volume() int {
	if d.Topology == nil {
		return 0
	}
	return product(d.Topology.Dimensions)
}

func (d *SpatialDomain) LinearizedIndexSpace() (IndexSpace, error) {
	return nil, fmt.Errorf("%w: spatial domain %q has no linear index space", ErrUnsupported, d.Name)
}

func (d *SpatialDomain) children() []Node {
	res := d.baseChildren()
	if d.Topology != nil {
		res = append(res, d.Topology)
	}
	if d.Geometry != nil {
		res = append(res, d.Geometry)
	}
	return res
}

func (d *SpatialDomain) Serialize(parent *xnode.Node) *xnode.Node {
	n := serializeDomain(d, parent, d.Items)
	if d.Topology != nil {
		d.Topology.Serialize(n)
	}
	if d.Geometry != nil {
		d.Geometry.Serialize(n)
	}
	return n
}

func (d *SpatialDomain) Deserialize(n *xnode.Node) error {
	p, err := decodeDomainBase(d, n, d.Items)
	if err != nil {
		return err
	}
	tn, err := single(n, topologyTag)
	if err != nil {
		return err
	}
	var topo *Topology
	if tn != nil {
		if topo, err = decodeTopology(tn); err != nil {
			return err
		}
	}
	gn, err := single(n, geometryTag)
	if err != nil {
		return err
	}
	var (
		geom      = d.Geometry
		geomType  GeometryType
		geomItems *itemMerge
	)
	if gn != nil {
		if geom == nil {
			geom = &Geometry{}
			geom.SetParent(d)
		}
		if geomType, geomItems, err = geom.decode(gn); err != nil {
			return err
		}
	}

	d.commit(p)
	switch {
	case topo == nil:
	case d.Topology == nil:
		topo.SetParent(d)
		d.Topology = topo
	default:
		d.Topology.Type = topo.Type
		d.Topology.Dimensions = topo.Dimensions
	}
	if gn != nil {
		geom.Type = geomType
		geom.Items = geomItems.commit()
		geom.SetParent(d)
		d.Geometry = geom
	}
	return nil
}

// single returns the only child of n with the given tag, or nil.
func single(n *xnode.Node, tag string) (*xnode.Node, error) {
	var res *xnode.Node
	for c := range n.Named(tag) {
		if res != nil {
			return nil, decodeErr(c, ErrStructuralMismatch, "more than one <%s>", tag)
		}
		res = c
	}
	return res, nil
}

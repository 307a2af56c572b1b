package xidx

import (
	"github.com/signadot/xidx-format/go-xidx/xnode"
)

// ListDomain is an explicit list of coordinates.  The values are written
// as the first data item of the domain; any further items follow it.
type ListDomain[T Value] struct {
	DomainBase
	Values []T
}

func NewListDomain[T Value](name string, values ...T) *ListDomain[T] {
	d := bind(&ListDomain[T]{})
	d.Name = name
	d.Values = values
	return d
}

func (d *ListDomain[T]) Type() DomainType { return ListDomainType }

func (d *ListDomain[T]) Volume() int {
	return len(d.Values) * d.DomainBase.Volume()
}

func (d *ListDomain[T]) LinearizedIndexSpace() (IndexSpace, error) {
	return toIndexSpace(d.Values), nil
}

func (d *ListDomain[T]) AddValue(v T) {
	d.Values = append(d.Values, v)
}

func (d *ListDomain[T]) children() []Node { return d.baseChildren() }

func (d *ListDomain[T]) Serialize(parent *xnode.Node) *xnode.Node {
	vals := valuesItem("", d.Values)
	vals.SetParent(d)
	return serializeDomain(d, parent, append([]*DataItem{vals}, d.Items...))
}

func (d *ListDomain[T]) Deserialize(n *xnode.Node) error {
	p, err := decodeDomainBase(d, n, append([]*DataItem{NewDataItem("")}, d.Items...))
	if err != nil {
		return err
	}
	if p.items.len() == 0 {
		return missing(n, dataItemTag)
	}
	vals, err := itemValues[T](p.items.decoded(0))
	if err != nil {
		return wrapDecode(n.First(dataItemTag), err)
	}
	p.items.drop(1)
	d.commit(p)
	d.Values = vals
	return nil
}

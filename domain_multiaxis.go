package xidx

import (
	"fmt"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

// MultiAxisDomain is a set of independent named axes, each an explicit
// list of coordinates.  Every data item of a multi-axis domain element is
// an axis; Items of the base are not written.
type MultiAxisDomain[T Value] struct {
	DomainBase
	Axes []*ListDomain[T]
}

// NewMultiAxisDomain returns a domain with one empty axis per name.
func NewMultiAxisDomain[T Value](name string, axes ...string) *MultiAxisDomain[T] {
	d := bind(&MultiAxisDomain[T]{})
	d.Name = name
	for _, a := range axes {
		d.AddAxis(NewListDomain[T](a))
	}
	return d
}

func (d *MultiAxisDomain[T]) Type() DomainType { return MultiAxisDomainType }

func (d *MultiAxisDomain[T]) AddAxis(axis *ListDomain[T]) *ListDomain[T] {
	axis.SetParent(d)
	d.Axes = append(d.Axes, axis)
	return axis
}

func (d *MultiAxisDomain[T]) SetAxis(i int, axis *ListDomain[T]) error {
	if i < 0 || i >= len(d.Axes) {
		return fmt.Errorf("%w: axis %d of %d", ErrNotFound, i, len(d.Axes))
	}
	axis.SetParent(d)
	d.Axes[i] = axis
	return nil
}

func (d *MultiAxisDomain[T]) Axis(i int) (*ListDomain[T], error) {
	if i < 0 || i >= len(d.Axes) {
		return nil, fmt.Errorf("%w: axis %d of %d", ErrNotFound, i, len(d.Axes))
	}
	return d.Axes[i], nil
}

func (d *MultiAxisDomain[T]) NumberOfAxes() int { return len(d.Axes) }

// Volume returns the product of the axis lengths.
func (d *MultiAxisDomain[T]) Volume() int {
	v := 1
	for _, a := range d.Axes {
		v *= len(a.Values)
	}
	return v
}

func (d *MultiAxisDomain[T]) AxisIndexSpace(i int) (IndexSpace, error) {
	a, err := d.Axis(i)
	if err != nil {
		return nil, err
	}
	return a.LinearizedIndexSpace()
}

// LinearizedIndexSpace is not defined across axes; use AxisIndexSpace.
func (d *MultiAxisDomain[T]) LinearizedIndexSpace() (IndexSpace, error) {
	return nil, fmt.Errorf("%w: multi-axis domain %q has no single index space", ErrUnsupported, d.Name)
}

func (d *MultiAxisDomain[T]) children() []Node {
	res := appendNodes(nil, d.Axes)
	return appendNodes(res, d.Attributes)
}

func (d *MultiAxisDomain[T]) Serialize(parent *xnode.Node) *xnode.Node {
	items := make([]*DataItem, len(d.Axes))
	for i, a := range d.Axes {
		items[i] = valuesItem(a.Name, a.Values)
		items[i].SetParent(d)
	}
	return serializeDomain(d, parent, items)
}

func (d *MultiAxisDomain[T]) Deserialize(n *xnode.Node) error {
	p, err := decodeDomainBase(d, n, nil)
	if err != nil {
		return err
	}
	axes := make([]*ListDomain[T], 0, p.items.len())
	i := 0
	for c := range n.Named(dataItemTag) {
		it := p.items.decoded(i)
		vals, err := itemValues[T](it)
		if err != nil {
			return wrapDecode(c, err)
		}
		axis := NewListDomain(it.Name, vals...)
		axis.SetParent(d)
		axes = append(axes, axis)
		i++
	}
	p.items = nil
	d.commit(p)
	d.Axes = axes
	return nil
}

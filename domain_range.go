package xidx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

// RangeDomain is the closed interval between the two values of its first
// data item.
type RangeDomain struct {
	DomainBase
}

func NewRangeDomain(name string, lo, hi float64) *RangeDomain {
	d := bind(&RangeDomain{})
	d.Name = name
	it := NewTypedDataItem(XMLFormat, DataType{Number: DoubleNumberType, Bits: 64, Components: 1}, []int{2}, nil)
	it.Text = strconv.FormatFloat(lo, 'g', -1, 64) + " " + strconv.FormatFloat(hi, 'g', -1, 64)
	d.AddItem(it)
	return d
}

func (d *RangeDomain) Type() DomainType { return RangeDomainType }

func (d *RangeDomain) Bounds() (lo, hi float64, err error) {
	if len(d.Items) == 0 {
		return 0, 0, fmt.Errorf("%w: range %q has no data item", ErrMissingRequiredField, d.Name)
	}
	it := d.Items[0]
	if it.Format != XMLFormat {
		return 0, 0, fmt.Errorf("%w: range %q in %s", ErrUnsupportedFormat, d.Name, it.Format)
	}
	f := strings.Fields(it.Text)
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("%w: range %q needs 2 bounds, got %q", ErrInvalidValue, d.Name, it.Text)
	}
	if lo, err = strconv.ParseFloat(f[0], 64); err != nil {
		return 0, 0, fmt.Errorf("%w: range lower bound: %v", ErrInvalidValue, err)
	}
	if hi, err = strconv.ParseFloat(f[1], 64); err != nil {
		return 0, 0, fmt.Errorf("%w: range upper bound: %v", ErrInvalidValue, err)
	}
	return lo, hi, nil
}

func (d *RangeDomain) LinearizedIndexSpace() (IndexSpace, error) {
	lo, hi, err := d.Bounds()
	if err != nil {
		return nil, err
	}
	return IndexSpace{lo, hi}, nil
}

func (d *RangeDomain) children() []Node { return d.baseChildren() }

func (d *RangeDomain) Serialize(parent *xnode.Node) *xnode.Node {
	return serializeDomain(d, parent, d.Items)
}

func (d *RangeDomain) Deserialize(n *xnode.Node) error {
	p, err := decodeDomainBase(d, n, d.Items)
	if err != nil {
		return err
	}
	d.commit(p)
	return nil
}

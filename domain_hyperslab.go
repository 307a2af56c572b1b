package xidx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

// HyperSlabDomain is a single regular axis described by a start, a stride
// and a count held in its first data item.
type HyperSlabDomain struct {
	DomainBase
}

func NewHyperSlabDomain(name string, start, stride float64, count int) *HyperSlabDomain {
	d := bind(&HyperSlabDomain{})
	d.Name = name
	d.SetSlab(start, stride, count)
	return d
}

func (d *HyperSlabDomain) Type() DomainType { return HyperSlabDomainType }

// SetSlab stores the axis in Items[0], replacing any previous one.
func (d *HyperSlabDomain) SetSlab(start, stride float64, count int) {
	it := NewTypedDataItem(XMLFormat, DataType{Number: DoubleNumberType, Bits: 64, Components: 1}, []int{3}, nil)
	it.Text = strings.Join([]string{
		strconv.FormatFloat(start, 'g', -1, 64),
		strconv.FormatFloat(stride, 'g', -1, 64),
		strconv.Itoa(count),
	}, " ")
	if len(d.Items) == 0 {
		d.AddItem(it)
		return
	}
	it.SetParent(d)
	d.Items[0] = it
}

func (d *HyperSlabDomain) Slab() (start, stride float64, count int, err error) {
	if len(d.Items) == 0 {
		return 0, 0, 0, fmt.Errorf("%w: hyperslab %q has no data item", ErrMissingRequiredField, d.Name)
	}
	it := d.Items[0]
	if it.Format != XMLFormat {
		return 0, 0, 0, fmt.Errorf("%w: hyperslab %q in %s", ErrUnsupportedFormat, d.Name, it.Format)
	}
	f := strings.Fields(it.Text)
	if len(f) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: hyperslab %q needs start, stride and count, got %q", ErrInvalidValue, d.Name, it.Text)
	}
	if start, err = strconv.ParseFloat(f[0], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: hyperslab start: %v", ErrInvalidValue, err)
	}
	if stride, err = strconv.ParseFloat(f[1], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: hyperslab stride: %v", ErrInvalidValue, err)
	}
	if count, err = strconv.Atoi(f[2]); err != nil || count < 0 {
		return 0, 0, 0, fmt.Errorf("%w: hyperslab count %q", ErrInvalidValue, f[2])
	}
	return start, stride, count, nil
}

func (d *HyperSlabDomain) LinearizedIndexSpace() (IndexSpace, error) {
	start, stride, count, err := d.Slab()
	if err != nil {
		return nil, err
	}
	res := make(IndexSpace, count)
	for i := range res {
		res[i] = start + float64(i)*stride
	}
	return res, nil
}

func (d *HyperSlabDomain) children() []Node { return d.baseChildren() }

func (d *HyperSlabDomain) Serialize(parent *xnode.Node) *xnode.Node {
	return serializeDomain(d, parent, d.Items)
}

func (d *HyperSlabDomain) Deserialize(n *xnode.Node) error {
	p, err := decodeDomainBase(d, n, d.Items)
	if err != nil {
		return err
	}
	d.commit(p)
	return nil
}

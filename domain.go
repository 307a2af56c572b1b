package xidx

import (
	"github.com/signadot/xidx-format/go-xidx/debug"
	"github.com/signadot/xidx-format/go-xidx/xnode"
)

type DomainType int

const (
	HyperSlabDomainType DomainType = iota
	ListDomainType
	MultiAxisDomainType
	SpatialDomainType
	RangeDomainType
)

var domainTypes = enumTable[DomainType]{
	{HyperSlabDomainType, "HyperSlab"},
	{ListDomainType, "List"},
	{MultiAxisDomainType, "MultiAxisDomain"},
	{SpatialDomainType, "Spatial"},
	{RangeDomainType, "Range"},
}

// domainKinds builds an empty domain for each variant.  List and
// multi-axis domains decode to float64 values.
var domainKinds = map[DomainType]func() Domain{
	HyperSlabDomainType: func() Domain { return bind(&HyperSlabDomain{}) },
	ListDomainType:      func() Domain { return bind(&ListDomain[float64]{}) },
	MultiAxisDomainType: func() Domain { return bind(&MultiAxisDomain[float64]{}) },
	SpatialDomainType:   func() Domain { return bind(&SpatialDomain{}) },
	RangeDomainType:     func() Domain { return bind(&RangeDomain{}) },
}

func ParseDomainType(s string) (DomainType, error) { return domainTypes.parse("domain type", s) }

func (t DomainType) String() string { return domainTypes.str(t) }

func (t DomainType) MarshalText() ([]byte, error) { return domainTypes.text("domain type", t) }

func (t *DomainType) UnmarshalText(d []byte) error {
	return unmarshalEnum(domainTypes, "domain type", t, d)
}

// Domain is an index or coordinate space.  The set of implementations is
// closed: HyperSlabDomain, ListDomain, MultiAxisDomain, SpatialDomain and
// RangeDomain.
type Domain interface {
	Node
	Type() DomainType
	Base() *DomainBase

	// Volume is an approximate element count of the domain.
	Volume() int
	LinearizedIndexSpace() (IndexSpace, error)
}

// DomainBase holds the state shared by all domains.
type DomainBase struct {
	link
	self Domain

	Name       string
	Items      []*DataItem
	Attributes []*Attribute
}

func bind[D Domain](d D) D {
	b := d.Base()
	b.self = d
	for _, it := range b.Items {
		it.SetParent(d)
	}
	for _, a := range b.Attributes {
		a.SetParent(d)
	}
	return d
}

func (b *DomainBase) Base() *DomainBase { return b }

func (b *DomainBase) nodeName() string { return b.Name }

func (b *DomainBase) owner() Node {
	if b.self == nil {
		return nil
	}
	return b.self
}

// Volume returns the product of every dimension of every item.
func (b *DomainBase) Volume() int {
	v := 1
	for _, it := range b.Items {
		v *= product(it.Dimensions)
	}
	return v
}

func (b *DomainBase) AddItem(it *DataItem) *DataItem {
	it.SetParent(b.owner())
	b.Items = append(b.Items, it)
	return it
}

// AddDataItem appends a new item typed by a compact descriptor.
func (b *DomainBase) AddDataItem(desc string) (*DataItem, error) {
	it, err := ParseDataItem(desc)
	if err != nil {
		return nil, err
	}
	return b.AddItem(it), nil
}

func (b *DomainBase) AddAttribute(name, value string) *Attribute {
	return addAttribute(b.owner(), &b.Attributes, name, value)
}

func (b *DomainBase) baseChildren() []Node {
	res := appendNodes(nil, b.Items)
	return appendNodes(res, b.Attributes)
}

func serializeDomain(d Domain, parent *xnode.Node, items []*DataItem) *xnode.Node {
	b := d.Base()
	n := parent.NewChild(domainTag).SetAttr("Type", d.Type().String())
	if b.Name != "" {
		n.SetAttr("Name", b.Name)
	}
	for _, it := range items {
		it.Serialize(n)
	}
	serializeAttributes(n, b.Attributes)
	if debug.Serialize() {
		debug.Logf("serialized %s domain %q\n", d.Type(), b.Name)
	}
	return n
}

type domainParts struct {
	name  string
	items *itemMerge
	atts  []*Attribute
}

// decodeDomainBase decodes the shared part of a domain element, merging
// its data items into placeholders.
func decodeDomainBase(d Domain, n *xnode.Node, placeholders []*DataItem) (*domainParts, error) {
	if !n.Is(domainTag) {
		return nil, mismatch(n, domainTag)
	}
	ts, ok := n.Attr("Type")
	if !ok {
		return nil, missing(n, "Type")
	}
	if t, err := ParseDomainType(ts); err != nil || t != d.Type() {
		return nil, decodeErr(n, ErrStructuralMismatch, "domain type %q, expected %q", ts, d.Type())
	}
	d.Base().self = d
	items, err := mergeItems(d, placeholders, n)
	if err != nil {
		return nil, err
	}
	atts, err := decodeAttributes(d, n)
	if err != nil {
		return nil, err
	}
	return &domainParts{name: n.AttrOr("Name", ""), items: items, atts: atts}, nil
}

func (b *DomainBase) commit(p *domainParts) {
	b.Name = p.name
	b.Items = p.items.commit()
	b.Attributes = p.atts
}

// DecodeDomain builds the domain variant named by the Type attribute of n
// and deserializes it.
func DecodeDomain(n *xnode.Node) (Domain, error) {
	return decodeDomain(nil, n)
}

func decodeDomain(parent Node, n *xnode.Node) (Domain, error) {
	if !n.Is(domainTag) {
		return nil, mismatch(n, domainTag)
	}
	ts, ok := n.Attr("Type")
	if !ok {
		return nil, missing(n, "Type")
	}
	t, err := ParseDomainType(ts)
	if err != nil {
		return nil, decodeErr(n, ErrStructuralMismatch, "unknown domain type %q", ts)
	}
	d := domainKinds[t]()
	d.SetParent(parent)
	if err := d.Deserialize(n); err != nil {
		return nil, err
	}
	return d, nil
}

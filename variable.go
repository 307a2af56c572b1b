package xidx

import (
	"fmt"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

// Variable is a named field sampled on a domain.  Domain names the domain
// the values are defined on; it is resolved by lookup, see ResolveDomain.
type Variable struct {
	link
	Name       string
	Center     CenterType
	Domain     string
	Items      []*DataItem
	Attributes []*Attribute
}

func NewVariable(name string) *Variable {
	return &Variable{Name: name, Center: CellCenter}
}

func (v *Variable) AddItem(it *DataItem) *DataItem {
	it.SetParent(v)
	v.Items = append(v.Items, it)
	return it
}

// AddDataItem appends a new item typed by a compact descriptor.
func (v *Variable) AddDataItem(desc string) (*DataItem, error) {
	it, err := ParseDataItem(desc)
	if err != nil {
		return nil, err
	}
	return v.AddItem(it), nil
}

func (v *Variable) AddAttribute(name, value string) *Attribute {
	return addAttribute(v, &v.Attributes, name, value)
}

// ResolveDomain returns the domain v is defined on: the domain named
// v.Domain in the nearest enclosing group having one, or when v.Domain is
// empty the first domain of the nearest group having any.
func (v *Variable) ResolveDomain() (Domain, error) {
	for p := v.Parent(); p != nil; p = p.Parent() {
		g, ok := p.(*Group)
		if !ok {
			continue
		}
		if v.Domain == "" {
			if len(g.Domains) != 0 {
				return g.Domains[0], nil
			}
			continue
		}
		if d := g.Domain(v.Domain); d != nil {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: domain %q of variable %q", ErrNotFound, v.Domain, v.Name)
}

func (v *Variable) nodeName() string { return v.Name }

func (v *Variable) children() []Node {
	res := appendNodes(nil, v.Items)
	return appendNodes(res, v.Attributes)
}

func (v *Variable) Serialize(parent *xnode.Node) *xnode.Node {
	n := parent.NewChild(variableTag).SetAttr("Name", v.Name)
	if v.Center != CellCenter {
		n.SetAttr("Center", v.Center.String())
	}
	if v.Domain != "" {
		n.SetAttr("Domain", v.Domain)
	}
	for _, it := range v.Items {
		it.Serialize(n)
	}
	serializeAttributes(n, v.Attributes)
	return n
}

func (v *Variable) Deserialize(n *xnode.Node) error {
	if !n.Is(variableTag) {
		return mismatch(n, variableTag)
	}
	name, ok := n.Attr("Name")
	if !ok {
		return missing(n, "Name")
	}
	center := CellCenter
	if err := enumAttr(n, "Center", &center); err != nil {
		return err
	}
	items, err := mergeItems(v, v.Items, n)
	if err != nil {
		return err
	}
	atts, err := decodeAttributes(v, n)
	if err != nil {
		return err
	}
	v.Name = name
	v.Center = center
	v.Domain = n.AttrOr("Domain", "")
	v.Items = items.commit()
	v.Attributes = atts
	return nil
}

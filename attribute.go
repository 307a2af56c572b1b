package xidx

import "github.com/signadot/xidx-format/go-xidx/xnode"

// Attribute is a free form name/value annotation.
type Attribute struct {
	link
	Name  string
	Value string
}

func NewAttribute(name, value string) *Attribute {
	return &Attribute{Name: name, Value: value}
}

func (a *Attribute) nodeName() string { return a.Name }
func (a *Attribute) children() []Node { return nil }

func (a *Attribute) Serialize(parent *xnode.Node) *xnode.Node {
	return parent.NewChild(attributeTag).
		SetAttr("Name", a.Name).
		SetAttr("Value", a.Value)
}

func (a *Attribute) Deserialize(n *xnode.Node) error {
	if !n.Is(attributeTag) {
		return mismatch(n, attributeTag)
	}
	name, ok := n.Attr("Name")
	if !ok {
		return missing(n, "Name")
	}
	a.Name = name
	a.Value = n.AttrOr("Value", "")
	return nil
}

func serializeAttributes(n *xnode.Node, atts []*Attribute) {
	for _, a := range atts {
		a.Serialize(n)
	}
}

// decodeAttributes decodes the Attribute children of n.
func decodeAttributes(owner Node, n *xnode.Node) ([]*Attribute, error) {
	var res []*Attribute
	for c := range n.Named(attributeTag) {
		a := &Attribute{}
		a.SetParent(owner)
		if err := a.Deserialize(c); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}

func addAttribute(owner Node, atts *[]*Attribute, name, value string) *Attribute {
	a := NewAttribute(name, value)
	a.SetParent(owner)
	*atts = append(*atts, a)
	return a
}

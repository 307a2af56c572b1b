package xidx

import (
	"github.com/signadot/xidx-format/go-xidx/debug"
	"github.com/signadot/xidx-format/go-xidx/xnode"
)

// Group is a named container of sub groups, domains, variables and
// attributes.  A tree of metadata is rooted at a Group.
type Group struct {
	link
	Name       string
	Groups     []*Group
	Domains    []Domain
	Variables  []*Variable
	Attributes []*Attribute
}

func NewGroup(name string) *Group {
	return &Group{Name: name}
}

func (g *Group) AddGroup(name string) *Group {
	sub := NewGroup(name)
	sub.SetParent(g)
	g.Groups = append(g.Groups, sub)
	return sub
}

// AddDomain adds d to g, which becomes the parent of d.
func (g *Group) AddDomain(d Domain) Domain {
	bind(d)
	d.SetParent(g)
	g.Domains = append(g.Domains, d)
	return d
}

func (g *Group) AddVariable(v *Variable) *Variable {
	v.SetParent(g)
	g.Variables = append(g.Variables, v)
	return v
}

func (g *Group) AddAttribute(name, value string) *Attribute {
	return addAttribute(g, &g.Attributes, name, value)
}

// Group returns the direct sub group with the given name, or nil.
func (g *Group) Group(name string) *Group {
	for _, sub := range g.Groups {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

func (g *Group) Domain(name string) Domain {
	for _, d := range g.Domains {
		if d.Base().Name == name {
			return d
		}
	}
	return nil
}

func (g *Group) Variable(name string) *Variable {
	for _, v := range g.Variables {
		if v.Name == name {
			return v
		}
	}
	return nil
}

func (g *Group) nodeName() string { return g.Name }

func (g *Group) children() []Node {
	res := appendNodes(nil, g.Groups)
	res = appendNodes(res, g.Domains)
	res = appendNodes(res, g.Variables)
	return appendNodes(res, g.Attributes)
}

func (g *Group) Serialize(parent *xnode.Node) *xnode.Node {
	n := parent.NewChild(groupTag)
	if g.Name != "" {
		n.SetAttr("Name", g.Name)
	}
	for _, sub := range g.Groups {
		sub.Serialize(n)
	}
	for _, d := range g.Domains {
		d.Serialize(n)
	}
	for _, v := range g.Variables {
		v.Serialize(n)
	}
	serializeAttributes(n, g.Attributes)
	return n
}

func (g *Group) Deserialize(n *xnode.Node) error {
	if !n.Is(groupTag) {
		return mismatch(n, groupTag)
	}
	var (
		groups []*Group
		doms   []Domain
		vars   []*Variable
		atts   []*Attribute
	)
	for c := range n.Elements() {
		switch c.Tag {
		case groupTag:
			sub := NewGroup("")
			sub.SetParent(g)
			if err := sub.Deserialize(c); err != nil {
				return err
			}
			groups = append(groups, sub)
		case domainTag:
			d, err := decodeDomain(g, c)
			if err != nil {
				return err
			}
			doms = append(doms, d)
		case variableTag:
			v := NewVariable("")
			v.SetParent(g)
			if err := v.Deserialize(c); err != nil {
				return err
			}
			vars = append(vars, v)
		case attributeTag:
			a := &Attribute{}
			a.SetParent(g)
			if err := a.Deserialize(c); err != nil {
				return err
			}
			atts = append(atts, a)
		default:
			if debug.Deserialize() {
				debug.Logf("skipping <%s> at %s\n", c.Tag, c.Path())
			}
		}
	}
	g.Name = n.AttrOr("Name", "")
	g.Groups = groups
	g.Domains = doms
	g.Variables = vars
	g.Attributes = atts
	return nil
}

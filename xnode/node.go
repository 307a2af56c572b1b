package xnode

import (
	"iter"
	"slices"
)

type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Node struct {
	Tag      string  `json:"tag"`
	Attrs    []Attr  `json:"attrs,omitempty"`
	Text     string  `json:"text,omitempty"`
	Children []*Node `json:"children,omitempty"`

	Parent *Node `json:"-"`
}

func New(tag string) *Node {
	return &Node{Tag: tag}
}

// NewChild appends a new element with the given tag and returns it.
func (n *Node) NewChild(tag string) *Node {
	return n.AddChild(New(tag))
}

// NewTextChild is NewChild followed by setting the character data.
func (n *Node) NewTextChild(tag, text string) *Node {
	c := n.NewChild(tag)
	c.Text = text
	return c
}

// AddChild appends c, taking it over from any previous parent.
func (n *Node) AddChild(c *Node) *Node {
	if c.Parent != nil && c.Parent != n {
		c.Parent.RemoveChild(c)
	}
	c.Parent = n
	n.Children = append(n.Children, c)
	return c
}

func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.Children, c)
	if i == -1 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	c.Parent = nil
	return true
}

func (n *Node) Is(tag string) bool {
	return n != nil && n.Tag == tag
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			return n.Attrs[i].Value, true
		}
	}
	return "", false
}

// AttrOr returns the named attribute or def when it is absent.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// SetAttr replaces the value of an existing attribute in place or appends a
// new one, so attribute order is creation order.
func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

func (n *Node) DelAttr(name string) bool {
	i := slices.IndexFunc(n.Attrs, func(a Attr) bool { return a.Name == name })
	if i == -1 {
		return false
	}
	n.Attrs = slices.Delete(n.Attrs, i, i+1)
	return true
}

// Elements iterates the element children in document order.
func (n *Node) Elements() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.Children {
			if !yield(c) {
				return
			}
		}
	}
}

// Named iterates the element children with the given tag in document order.
func (n *Node) Named(tag string) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.Children {
			if c.Tag != tag {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// First returns the first child with the given tag, or nil.
func (n *Node) First(tag string) *Node {
	for c := range n.Named(tag) {
		return c
	}
	return nil
}

func (n *Node) Clone() *Node {
	return n.CloneTo(&Node{})
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Tag = n.Tag
	dst.Text = n.Text
	dst.Parent = n.Parent
	dst.Attrs = slices.Clone(n.Attrs)
	dst.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		dc := c.CloneTo(&Node{})
		dc.Parent = dst
		dst.Children[i] = dc
	}
	return dst
}

// Root returns the top-most ancestor of n.
func (n *Node) Root() *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

package xidx

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

// Node is implemented by every element of the metadata tree.
//
// Parent links are plain back references: ownership flows from parents to
// children through the child slices only.  Serialize appends one element
// describing the current state of the node to parent and returns it.
// Deserialize populates the node from n.
type Node interface {
	Parent() Node
	SetParent(Node)
	Serialize(parent *xnode.Node) *xnode.Node
	Deserialize(n *xnode.Node) error

	nodeName() string
	children() []Node
}

type link struct {
	parent Node
}

func (l *link) Parent() Node { return l.parent }
func (l *link) SetParent(p Node) { l.parent = p }

// Path returns the names of the ancestors of n, starting from the root
// group and ending with n itself, joined with "/".  Unnamed nodes are
// skipped.  If the top-most ancestor is not a *Group, Path returns an
// error wrapping ErrDetached.
func Path(n Node) (string, error) {
	var names []string
	cur := n
	for {
		if name := cur.nodeName(); name != "" {
			names = append(names, name)
		}
		p := cur.Parent()
		if p == nil {
			break
		}
		cur = p
	}
	if _, ok := cur.(*Group); !ok {
		return "", fmt.Errorf("%w: top-most ancestor of %s is a %s", ErrDetached, Kind(n), Kind(cur))
	}
	slices.Reverse(names)
	return strings.Join(names, "/"), nil
}

// Name returns the name of n, or "" for nodes which have none.
func Name(n Node) string {
	return n.nodeName()
}

// Kind returns the element name of n.
func Kind(n Node) string {
	switch n.(type) {
	case *Group:
		return groupTag
	case Domain:
		return domainTag
	case *Variable:
		return variableTag
	case *DataItem:
		return dataItemTag
	case *DataSource:
		return dataSourceTag
	case *Attribute:
		return attributeTag
	case *Topology:
		return topologyTag
	case *Geometry:
		return geometryTag
	default:
		return fmt.Sprintf("%T", n)
	}
}

// Children returns the nodes directly owned by n in serialization order.
func Children(n Node) []Node {
	return n.children()
}

// Walk calls fn on n and then on every descendant of n in serialization
// order.  Walk stops at the first error returned by fn.
func Walk(n Node, fn func(Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range n.children() {
		if err := Walk(c, fn); err != nil {
			return err
		}
	}
	return nil
}

func ancestor[T Node](n Node) (T, bool) {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if t, ok := p.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func appendNodes[T Node](dst []Node, src []T) []Node {
	for _, n := range src {
		dst = append(dst, n)
	}
	return dst
}

const (
	groupTag      = "Group"
	domainTag     = "Domain"
	variableTag   = "Variable"
	dataItemTag   = "DataItem"
	dataSourceTag = "DataSource"
	attributeTag  = "Attribute"
	topologyTag   = "Topology"
	geometryTag   = "Geometry"
	includeTag    = "xi:include"
)

package xnode

import (
	"strconv"
	"strings"
)

// Path returns the location of n from the root element, for example
// "/Xidx/Group[0]/Domain[1]". The index counts preceding siblings with the
// same tag; the root element has no index.
func (n *Node) Path() string {
	if n.Parent == nil {
		return "/" + n.Tag
	}
	return n.Parent.Path() + "/" + n.Tag + "[" + strconv.Itoa(n.TagIndex()) + "]"
}

// TagIndex returns the position of n among its parent's children with the
// same tag, or 0 for a root.
func (n *Node) TagIndex() int {
	if n.Parent == nil {
		return 0
	}
	i := 0
	for _, c := range n.Parent.Children {
		if c == n {
			return i
		}
		if c.Tag == n.Tag {
			i++
		}
	}
	return i
}

// Prefix splits a qualified name into its namespace prefix and local part.
func Prefix(name string) (prefix, local string) {
	i := strings.IndexByte(name, ':')
	if i == -1 {
		return "", name
	}
	return name[:i], name[i+1:]
}

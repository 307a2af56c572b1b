// Package xnode provides the generic XML element tree used by go-xidx.
//
// # Overview
//
// A Node is one XML element: a tag, an ordered list of attributes, the
// character data directly under the element and its element children in
// document order. Comments, processing instructions and directives are not
// represented.
//
// Tags and attribute names keep their namespace prefix verbatim, so an
// XInclude pointer is a node with Tag "xi:include" and the root declares
// "xmlns:xi" as an ordinary attribute.
//
// # Creating Nodes
//
//	root := xnode.New("Xidx")
//	root.SetAttr("Version", "2.0")
//	item := root.NewTextChild("DataItem", "1 2 3")
//	item.SetAttr("Dimensions", "3")
//
// # Navigating Nodes
//
// Every child created with NewChild or AddChild has its Parent set. Use
// Elements or Named to iterate children in document order, and Path to get a
// location string such as "/Xidx/Group[0]/DataItem[1]", where the index counts
// siblings with the same tag.
//
// # JSON
//
// Nodes marshal to and from a JSON form
//
//	{"tag": "DataItem", "attrs": [{"name": "Dimensions", "value": "3"}], "text": "1 2 3", "children": []}
//
// which keeps attribute order, so JSON tooling (patches, path queries) can be
// applied and the result converted back without reordering the document.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation.
//
// # Related Packages
//
//   - github.com/signadot/xidx-format/go-xidx/parse - Parses XML text into nodes
//   - github.com/signadot/xidx-format/go-xidx/encode - Encodes nodes to XML text
package xnode

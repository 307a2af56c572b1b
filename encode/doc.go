// Package encode encodes xnode trees to XML text.
//
// # Usage
//
//	err := encode.Encode(root, w)
//
//	// with an XML declaration, a DOCTYPE and 4-space indentation
//	err := encode.Encode(root, w,
//	    encode.Header(true),
//	    encode.DocType("Xidx.dtd"),
//	    encode.Indent(4))
//
// Elements without character data or children are written self-closing.
// Character data is written directly after the start tag, so parse with its
// default trimming reads back exactly the text that was encoded.
//
// # Related Packages
//
//   - github.com/signadot/xidx-format/go-xidx/xnode - The tree representation
//   - github.com/signadot/xidx-format/go-xidx/parse - Parse text to trees
package encode

// Package format names the output formats of the xidx tool.
//
// XML is the document format itself; YAML and JSON render the xnode JSON form
// of a document for inspection and for JSON tooling.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//
// # Related Packages
//
//   - github.com/signadot/xidx-format/go-xidx/encode - XML encoding
//   - github.com/signadot/xidx-format/go-xidx/xnode - JSON form of a document
package format

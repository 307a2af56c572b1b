// Package parse reads XML text into xnode trees.
//
// # Usage
//
//	root, err := parse.Parse(data)
//	root, err := parse.ParseReader(r, parse.KeepSpace(true))
//
// Element and attribute names are kept with their namespace prefixes as
// written ("xi:include", "xmlns:xi"). Comments, processing instructions and
// directives such as the DOCTYPE are dropped. By default the character data of
// each element is trimmed of surrounding white space, which undoes the
// indentation added by encode.
//
// Errors wrap ErrParse and carry the line and column of the failure.
//
// # Related Packages
//
//   - github.com/signadot/xidx-format/go-xidx/xnode - The tree produced
//   - github.com/signadot/xidx-format/go-xidx/encode - The inverse operation
package parse

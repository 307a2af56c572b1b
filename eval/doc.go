// Package eval evaluates expr-lang expressions against the nodes of an
// XIDX metadata tree.
//
// Each node is presented to an expression as an environment of its
// properties (see [NodeEnv]), along with the functions whereami(),
// attr(name), indexspace() and getenv(name).  [Select] filters a tree by
// a boolean expression, and [ExpandString] interpolates $[...]
// expressions into text.
package eval

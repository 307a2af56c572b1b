package eval

import (
	"fmt"

	"github.com/signadot/xidx-format/go-xidx"
	"github.com/signadot/xidx-format/go-xidx/debug"

	"github.com/expr-lang/expr"
)

type Match struct {
	Node xidx.Node
	Path string
}

// Eval evaluates src with n as the current node.
func Eval(n xidx.Node, src string) (any, error) {
	prg, err := expr.Compile(src, exprOpts(n)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	res, err := expr.Run(prg, NodeEnv(n))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	return res, nil
}

// Select returns the nodes of the tree rooted at root for which the
// boolean expression src holds, in serialization order.  Properties a node
// does not have evaluate to nil.
func Select(root xidx.Node, src string) ([]Match, error) {
	var res []Match
	err := xidx.Walk(root, func(n xidx.Node) error {
		opts := append(exprOpts(n), expr.AsBool(), expr.AllowUndefinedVariables())
		prg, err := expr.Compile(src, opts...)
		if err != nil {
			return fmt.Errorf("error compiling %q: %w", src, err)
		}
		env := NodeEnv(n)
		out, err := expr.Run(prg, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q at %v: %w", src, env["Path"], err)
		}
		if debug.Eval() {
			debug.Logf("select %q on %s %v gave %v\n", src, env["Kind"], env["Path"], out)
		}
		if ok, _ := out.(bool); ok {
			res = append(res, Match{Node: n, Path: env["Path"].(string)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

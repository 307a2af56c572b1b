package eval

import (
	"os"

	"github.com/signadot/xidx-format/go-xidx"

	"github.com/expr-lang/expr"
)

func exprOpts(n xidx.Node) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			p, err := xidx.Path(n)
			if err != nil {
				return "", nil
			}
			return p, nil
		},
			new(func() string)),
		expr.Function("attr", func(params ...any) (any, error) {
			name := params[0].(string)
			for _, c := range xidx.Children(n) {
				if a, ok := c.(*xidx.Attribute); ok && a.Name == name {
					return a.Value, nil
				}
			}
			return "", nil
		},
			new(func(string) string)),
		expr.Function("indexspace", func(params ...any) (any, error) {
			d, ok := n.(xidx.Domain)
			if !ok {
				return []float64{}, nil
			}
			sp, err := d.LinearizedIndexSpace()
			if err != nil {
				return []float64{}, nil
			}
			return []float64(sp), nil
		},
			new(func() []float64)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

package eval

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/xidx-format/go-xidx"
	"github.com/signadot/xidx-format/go-xidx/debug"
)

// ExpandString expands $[...] expressions in v, evaluated with n as the
// current node.
//
// Within expressions, backslash escaping is supported:
//   - \] → literal ] (does not close the expression)
//   - \\ → literal \
//   - \x → x (for any character x)
//
// If an expression is not closed with an unescaped ], the text is treated
// as a literal string rather than an expression.
func ExpandString(v string, n xidx.Node) (string, error) {
	var (
		out       strings.Builder
		key       strings.Builder
		exprStart = -1
	)
	for i := 0; i < len(v); i++ {
		c := v[i]
		if exprStart == -1 {
			if c == '$' && i+1 < len(v) && v[i+1] == '[' {
				exprStart = i
				key.Reset()
				i++
				continue
			}
			out.WriteByte(c)
			continue
		}
		switch c {
		case '\\':
			if i+1 < len(v) {
				i++
				key.WriteByte(v[i])
			}
		case ']':
			src := strings.TrimSpace(key.String())
			x, err := Eval(n, src)
			if err != nil {
				return "", err
			}
			if debug.Eval() {
				debug.Logf("eval %q gave %#v\n", src, x)
			}
			s, err := anyToString(x)
			if err != nil {
				return "", fmt.Errorf("could not format evaluation results for %s: %w", src, err)
			}
			out.WriteString(s)
			exprStart = -1
		default:
			key.WriteByte(c)
		}
	}
	if exprStart != -1 {
		out.WriteString(v[exprStart:])
	}
	return out.String(), nil
}

func anyToString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
}

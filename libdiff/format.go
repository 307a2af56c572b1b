package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type formatOpts struct {
	context int
	color   bool
}

type FormatOption func(*formatOpts)

// Context limits output to n unchanged lines around each change.  A
// negative n prints every line.
func Context(n int) FormatOption {
	return func(o *formatOpts) { o.context = n }
}

func Color(v bool) FormatOption {
	return func(o *formatOpts) { o.color = v }
}

var (
	insertColor = color.RGB(0x48, 0xc7, 0x74).SprintfFunc()
	deleteColor = color.RGB(0xe0, 0x5a, 0x4f).SprintfFunc()
	hunkColor   = color.RGB(0x6c, 0x9e, 0xf8).SprintfFunc()
)

// Format writes ls with "+", "-" and " " prefixes.  Skipped runs of
// unchanged lines are marked with "@@".
func Format(w io.Writer, ls []Line, opts ...FormatOption) error {
	o := &formatOpts{context: 3}
	for _, opt := range opts {
		opt(o)
	}
	keep := make([]bool, len(ls))
	for i, l := range ls {
		if o.context < 0 || l.Op != Equal {
			keep[i] = true
			continue
		}
		for j := max(0, i-o.context); j <= min(len(ls)-1, i+o.context); j++ {
			if ls[j].Op != Equal {
				keep[i] = true
				break
			}
		}
	}
	skipped := false
	for i, l := range ls {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			if _, err := fmt.Fprintln(w, o.paint(Equal, "@@", true)); err != nil {
				return err
			}
			skipped = false
		}
		if _, err := fmt.Fprintln(w, o.paint(l.Op, l.Op.String()+" "+l.Text, false)); err != nil {
			return err
		}
	}
	if skipped {
		_, err := fmt.Fprintln(w, o.paint(Equal, "@@", true))
		return err
	}
	return nil
}

func (o *formatOpts) paint(op Op, s string, hunk bool) string {
	if !o.color {
		return s
	}
	switch {
	case hunk:
		return hunkColor("%s", s)
	case op == Insert:
		return insertColor("%s", s)
	case op == Delete:
		return deleteColor("%s", s)
	}
	return s
}

package xidx

import (
	"errors"
	"fmt"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

var (
	ErrStructuralMismatch   = errors.New("structural mismatch")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUnsupportedFormat    = errors.New("unsupported format")
	ErrAmbiguousParse       = errors.New("ambiguous parse")
	ErrInvalidValue         = errors.New("invalid value")
	ErrUnsupported          = errors.New("unsupported operation")
	ErrDetached             = errors.New("node is not attached to a root group")
	ErrNotFound             = errors.New("not found")
)

// DecodeError reports a failure to deserialize an element, with the element
// name and its location in the source document.
type DecodeError struct {
	Element string // Tag of the offending element
	Path    string // Location such as "/Xidx/Group[0]/DataItem[1]"
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding <%s> at %s: %v", e.Element, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(n *xnode.Node, kind error, format string, args ...any) error {
	return &DecodeError{
		Element: n.Tag,
		Path:    n.Path(),
		Err:     fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

func mismatch(n *xnode.Node, want string) error {
	return decodeErr(n, ErrStructuralMismatch, "expected <%s>", want)
}

func missing(n *xnode.Node, what string) error {
	return decodeErr(n, ErrMissingRequiredField, "%s", what)
}

// wrapDecode attaches element context to err unless it already has some.
func wrapDecode(n *xnode.Node, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Element: n.Tag, Path: n.Path(), Err: err}
}

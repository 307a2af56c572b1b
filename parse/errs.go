package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse      = errors.New("parse error")
	ErrEmpty      = fmt.Errorf("%w: no root element", ErrParse)
	ErrMismatch   = fmt.Errorf("%w: mismatched end element", ErrParse)
	ErrMultiRoot  = fmt.Errorf("%w: more than one root element", ErrParse)
	ErrStrayChars = fmt.Errorf("%w: character data outside the root element", ErrParse)
)

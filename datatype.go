package xidx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DataType is the element type of a data item, written in compact form
// as "<components>*<type><bits>", for example "1*float32".
type DataType struct {
	Number     NumberType
	Bits       int
	Components int
}

var dataTypeRE = regexp.MustCompile(`^([1-9][0-9]*)[*\\]([A-Za-z]+)([1-9][0-9]*)$`)

// ParseDataType parses a compact type descriptor.  The component count and
// the bit width must be positive decimal integers and the type name must
// match a number type, ignoring case.  Anything else is rejected with an
// error wrapping ErrAmbiguousParse.
func ParseDataType(desc string) (DataType, error) {
	m := dataTypeRE.FindStringSubmatch(desc)
	if m == nil {
		return DataType{}, fmt.Errorf("%w: type descriptor %q", ErrAmbiguousParse, desc)
	}
	comps, err := strconv.Atoi(m[1])
	if err != nil {
		return DataType{}, fmt.Errorf("%w: component count in %q: %v", ErrAmbiguousParse, desc, err)
	}
	nt, ok := numberTypes.valueFold(m[2])
	if !ok {
		return DataType{}, fmt.Errorf("%w: number type %q in %q", ErrAmbiguousParse, m[2], desc)
	}
	bits, err := strconv.Atoi(m[3])
	if err != nil {
		return DataType{}, fmt.Errorf("%w: bit precision in %q: %v", ErrAmbiguousParse, desc, err)
	}
	return DataType{Number: nt, Bits: bits, Components: comps}, nil
}

func (t DataType) String() string {
	return fmt.Sprintf("%d*%s%d", t.Components, strings.ToLower(t.Number.String()), t.Bits)
}

func (t DataType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *DataType) UnmarshalText(d []byte) error {
	v, err := ParseDataType(string(d))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

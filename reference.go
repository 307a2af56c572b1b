package xidx

import (
	"fmt"
	"strings"
)

const dataSourceStep = "/DataSource[0]"

// Reference is an unresolved cross-document reference, as carried by the
// xpointer attribute of an xi:include element.
type Reference struct {
	Target string
}

// DataSourceRef references the data source of the domain at domainPath.
func DataSourceRef(domainPath string) Reference {
	return Reference{Target: domainPath + dataSourceStep}
}

func (r Reference) IsZero() bool {
	return r.Target == ""
}

func (r Reference) XPointer() string {
	return "xpointer(" + r.Target + ")"
}

// DomainPath returns the path of the domain whose data source is
// referenced.
func (r Reference) DomainPath() (string, bool) {
	return strings.CutSuffix(r.Target, dataSourceStep)
}

func (r Reference) String() string {
	return r.XPointer()
}

func ParseXPointer(s string) (Reference, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), "xpointer(")
	if ok {
		rest, ok = strings.CutSuffix(rest, ")")
	}
	if !ok || rest == "" {
		return Reference{}, fmt.Errorf("%w: malformed xpointer %q", ErrInvalidValue, s)
	}
	return Reference{Target: rest}, nil
}

package xidx

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the tree rooted at g for problems that serialization
// would not report, and returns all of them.
func Validate(g *Group) error {
	var result *multierror.Error
	report := func(n Node, err error) {
		p, perr := Path(n)
		if perr != nil || p == "" {
			p = Kind(n)
		}
		result = multierror.Append(result, fmt.Errorf("%s: %w", p, err))
	}
	_ = Walk(g, func(n Node) error {
		switch x := n.(type) {
		case *Group:
			checkNames(x, report)
		case *DataItem:
			checkItem(x, report)
		case *Variable:
			if x.Name == "" {
				report(x, fmt.Errorf("%w: variable name", ErrMissingRequiredField))
			}
			if _, err := x.ResolveDomain(); err != nil {
				report(x, err)
			}
		case *HyperSlabDomain:
			if _, _, _, err := x.Slab(); err != nil {
				report(x, err)
			}
		case *RangeDomain:
			if _, _, err := x.Bounds(); err != nil {
				report(x, err)
			}
		case *SpatialDomain:
			if x.Topology == nil {
				report(x, fmt.Errorf("%w: topology", ErrMissingRequiredField))
			}
		case Domain:
			if x.Type() == MultiAxisDomainType && len(x.Base().Items) != 0 {
				report(x, fmt.Errorf("%w: %d items of a multi-axis domain are not written", ErrInvalidValue, len(x.Base().Items)))
			}
		}
		return nil
	})
	return result.ErrorOrNil()
}

func checkItem(d *DataItem, report func(Node, error)) {
	if len(d.Dimensions) == 0 && !d.Format.DefersShape() {
		report(d, fmt.Errorf("%w: Dimensions", ErrMissingRequiredField))
	}
	if _, err := d.DataType(); err != nil {
		report(d, err)
	}
	if !d.Format.External() || d.Source != nil || !d.Reference.IsZero() {
		return
	}
	if _, ok := ancestor[Domain](d); !ok {
		report(d, fmt.Errorf("%w: data source of %s item", ErrNotFound, d.Format))
	}
}

func checkNames(g *Group, report func(Node, error)) {
	seen := map[string]bool{}
	for _, c := range g.children() {
		if _, ok := c.(*Attribute); ok {
			continue
		}
		name := c.nodeName()
		if name == "" {
			continue
		}
		if seen[name] {
			report(c, fmt.Errorf("%w: duplicate name %q", ErrInvalidValue, name))
		}
		seen[name] = true
	}
}

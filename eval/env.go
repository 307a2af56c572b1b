package eval

import (
	"github.com/signadot/xidx-format/go-xidx"
)

type Env map[string]any

// NodeEnv returns the properties of n visible to expressions.  Kind, Name
// and Path are always present; the rest depend on the kind of node.
func NodeEnv(n xidx.Node) Env {
	env := Env{
		"Kind": xidx.Kind(n),
		"Name": xidx.Name(n),
	}
	if p, err := xidx.Path(n); err == nil {
		env["Path"] = p
	} else {
		env["Path"] = ""
	}
	switch x := n.(type) {
	case *xidx.Group:
		env["Groups"] = len(x.Groups)
		env["Domains"] = len(x.Domains)
		env["Variables"] = len(x.Variables)
	case xidx.Domain:
		env["Type"] = x.Type().String()
		env["Volume"] = x.Volume()
		env["Items"] = len(x.Base().Items)
		if s, ok := x.(*xidx.SpatialDomain); ok && s.Topology != nil {
			env["Topology"] = s.Topology.Type.String()
			env["Dims"] = s.Topology.Dimensions
		}
	case *xidx.Variable:
		env["Center"] = x.Center.String()
		env["Domain"] = x.Domain
		env["Items"] = len(x.Items)
	case *xidx.DataItem:
		env["Format"] = x.Format.String()
		env["NumberType"] = x.NumberType.String()
		env["BitPrecision"] = x.BitPrecision
		env["Components"] = x.ComponentNumber
		env["Endian"] = x.Endian.String()
		env["Dims"] = x.Dimensions
		env["Volume"] = x.Volume()
		env["Text"] = x.Text
		if x.Source != nil {
			env["URL"] = x.Source.URL
		}
	case *xidx.DataSource:
		env["URL"] = x.URL
	case *xidx.Attribute:
		env["Value"] = x.Value
	case *xidx.Topology:
		env["Type"] = x.Type.String()
		env["Dims"] = x.Dimensions
	case *xidx.Geometry:
		env["Type"] = x.Type.String()
		env["Items"] = len(x.Items)
	}
	return env
}

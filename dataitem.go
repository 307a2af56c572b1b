package xidx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/xidx-format/go-xidx/debug"
	"github.com/signadot/xidx-format/go-xidx/xnode"
)

const (
	DefaultNumberType      = FloatNumberType
	DefaultBitPrecision    = "32"
	DefaultComponentNumber = "1"
	DefaultEndian          = LittleEndian
	DefaultFormat          = XMLFormat
)

// DataItem describes a typed, shaped array.  Its payload is either Text,
// for the XML format, or held externally and located through Source or
// through the data source of the nearest enclosing domain.
type DataItem struct {
	link
	Name            string
	Dimensions      []int
	NumberType      NumberType
	BitPrecision    string
	ComponentNumber string
	Endian          EndianType
	Format          FormatType
	// Text is the inline payload.  Surrounding whitespace is not part of
	// the payload: it is trimmed when written and when read.
	Text            string
	Source          *DataSource
	Attributes      []*Attribute

	// Reference is the xi:include target read by Deserialize.  It is
	// only emitted again when no enclosing domain can be found.
	Reference Reference
}

func NewDataItem(name string) *DataItem {
	return &DataItem{
		Name:            name,
		NumberType:      DefaultNumberType,
		BitPrecision:    DefaultBitPrecision,
		ComponentNumber: DefaultComponentNumber,
		Endian:          DefaultEndian,
		Format:          DefaultFormat,
	}
}

// ParseDataItem returns a new unnamed data item typed by a compact
// descriptor such as "1*float32".
func ParseDataItem(desc string) (*DataItem, error) {
	dt, err := ParseDataType(desc)
	if err != nil {
		return nil, err
	}
	d := NewDataItem("")
	d.SetDataType(dt)
	return d, nil
}

// NewTypedDataItem returns a data item of the given format, type and
// shape.  src, if not nil, becomes owned by the new item.
func NewTypedDataItem(format FormatType, dt DataType, dims []int, src *DataSource) *DataItem {
	d := NewDataItem("")
	d.Format = format
	d.SetDataType(dt)
	d.Dimensions = dims
	if src != nil {
		d.SetSource(src)
	}
	return d
}

func (d *DataItem) SetDataType(dt DataType) {
	d.NumberType = dt.Number
	d.BitPrecision = strconv.Itoa(dt.Bits)
	d.ComponentNumber = strconv.Itoa(dt.Components)
}

// DataType returns the compact type of d.  It fails if BitPrecision or
// ComponentNumber is not a positive integer.
func (d *DataItem) DataType() (DataType, error) {
	bits, err := strconv.Atoi(d.BitPrecision)
	if err != nil || bits <= 0 {
		return DataType{}, fmt.Errorf("%w: BitPrecision %q", ErrInvalidValue, d.BitPrecision)
	}
	comps, err := strconv.Atoi(d.ComponentNumber)
	if err != nil || comps <= 0 {
		return DataType{}, fmt.Errorf("%w: ComponentNumber %q", ErrInvalidValue, d.ComponentNumber)
	}
	return DataType{Number: d.NumberType, Bits: bits, Components: comps}, nil
}

func (d *DataItem) SetSource(src *DataSource) {
	if src != nil {
		src.SetParent(d)
	}
	d.Source = src
}

func (d *DataItem) AddAttribute(name, value string) *Attribute {
	return addAttribute(d, &d.Attributes, name, value)
}

// Volume returns the number of elements described by Dimensions.
func (d *DataItem) Volume() int {
	if len(d.Dimensions) == 0 {
		return 0
	}
	return product(d.Dimensions)
}

func (d *DataItem) nodeName() string { return d.Name }

func (d *DataItem) children() []Node {
	var res []Node
	if d.Source != nil {
		res = append(res, d.Source)
	}
	return appendNodes(res, d.Attributes)
}

func (d *DataItem) Serialize(parent *xnode.Node) *xnode.Node {
	n := parent.NewTextChild(dataItemTag, strings.TrimSpace(d.Text))
	if d.Name != "" {
		n.SetAttr("Name", d.Name)
	}
	if d.Format != DefaultFormat {
		n.SetAttr("Format", d.Format.String())
	}
	n.SetAttr("NumberType", d.NumberType.String())
	if d.BitPrecision != DefaultBitPrecision || d.Format.External() {
		n.SetAttr("BitPrecision", d.BitPrecision)
	}
	if d.Endian != DefaultEndian {
		n.SetAttr("Endian", d.Endian.String())
	}
	if len(d.Dimensions) != 0 {
		n.SetAttr("Dimensions", formatDims(d.Dimensions))
	}
	n.SetAttr("ComponentNumber", d.ComponentNumber)

	switch {
	case d.Source != nil:
		d.Source.Serialize(n)
	case d.Format.External():
		if ref, ok := d.sourceRef(); ok {
			n.NewChild(includeTag).SetAttr("xpointer", ref.XPointer())
		}
	}
	serializeAttributes(n, d.Attributes)
	if debug.Serialize() {
		debug.Logf("serialized data item %q: %v\n", d.Name, n)
	}
	return n
}

// sourceRef computes the reference to the data source of the nearest
// enclosing domain.
func (d *DataItem) sourceRef() (Reference, bool) {
	dom, ok := ancestor[Domain](d)
	if ok {
		p, err := Path(dom)
		if err == nil {
			ref := DataSourceRef(p)
			if debug.Refs() {
				debug.Logf("data item %q references %s\n", d.Name, ref)
			}
			return ref, true
		}
		logger().Warn("cannot reference data source", "item", d.Name, "error", err)
	} else {
		logger().Warn("external data item has no enclosing domain", "item", d.Name, "format", d.Format.String())
	}
	if !d.Reference.IsZero() {
		return d.Reference, true
	}
	return Reference{}, false
}

func (d *DataItem) Deserialize(n *xnode.Node) error {
	v, err := d.decode(n)
	if err != nil {
		return err
	}
	d.assign(v)
	if debug.Deserialize() {
		debug.Logf("deserialized data item %q from %v\n", d.Name, n)
	}
	return nil
}

// decode returns the state n describes without changing d.  An existing
// data source is decoded into a copy.
func (d *DataItem) decode(n *xnode.Node) (*DataItem, error) {
	if !n.Is(dataItemTag) {
		return nil, mismatch(n, dataItemTag)
	}
	v := &DataItem{
		Name:            n.AttrOr("Name", ""),
		BitPrecision:    n.AttrOr("BitPrecision", DefaultBitPrecision),
		ComponentNumber: n.AttrOr("ComponentNumber", DefaultComponentNumber),
		NumberType:      DefaultNumberType,
		Endian:          DefaultEndian,
		Format:          DefaultFormat,
		Text:            strings.TrimSpace(n.Text),
		Source:          d.Source,
	}
	if err := enumAttr(n, "Format", &v.Format); err != nil {
		return nil, err
	}
	if err := enumAttr(n, "NumberType", &v.NumberType); err != nil {
		return nil, err
	}
	if err := enumAttr(n, "Endian", &v.Endian); err != nil {
		return nil, err
	}
	if dims, ok := n.Attr("Dimensions"); ok {
		ds, err := parseDims(dims)
		if err != nil {
			return nil, wrapDecode(n, err)
		}
		v.Dimensions = ds
	} else if !v.Format.DefersShape() {
		return nil, missing(n, "Dimensions")
	}

	if sn := n.First(dataSourceTag); sn != nil {
		src := &DataSource{}
		if d.Source != nil {
			*src = *d.Source
		}
		if err := src.Deserialize(sn); err != nil {
			return nil, err
		}
		v.Source = src
	}
	if in := n.First(includeTag); in != nil {
		ref, err := ParseXPointer(in.AttrOr("xpointer", ""))
		if err != nil {
			return nil, wrapDecode(in, err)
		}
		v.Reference = ref
	}
	atts, err := decodeAttributes(d, n)
	if err != nil {
		return nil, err
	}
	v.Attributes = atts
	return v, nil
}

// assign moves the decoded state v into d.  An existing data source keeps
// its identity.
func (d *DataItem) assign(v *DataItem) {
	src := v.Source
	if src != nil && d.Source != nil && src != d.Source {
		*d.Source = *src
		src = d.Source
	}
	if src != nil {
		src.SetParent(d)
	}
	d.Name = v.Name
	d.Dimensions = v.Dimensions
	d.NumberType = v.NumberType
	d.BitPrecision = v.BitPrecision
	d.ComponentNumber = v.ComponentNumber
	d.Endian = v.Endian
	d.Format = v.Format
	d.Text = v.Text
	d.Source = src
	d.Reference = v.Reference
	d.Attributes = v.Attributes
}

type textEnum interface {
	UnmarshalText([]byte) error
}

// enumAttr decodes an optional enumerated attribute, leaving dst
// untouched when the attribute is absent.
func enumAttr(n *xnode.Node, name string, dst textEnum) error {
	s, ok := n.Attr(name)
	if !ok {
		return nil
	}
	if err := dst.UnmarshalText([]byte(s)); err != nil {
		return wrapDecode(n, fmt.Errorf("attribute %s: %w", name, err))
	}
	return nil
}

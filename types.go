package xidx

type NumberType int

const (
	CharNumberType NumberType = iota
	ShortNumberType
	IntNumberType
	LongNumberType
	FloatNumberType
	DoubleNumberType
	UIntNumberType
)

var numberTypes = enumTable[NumberType]{
	{CharNumberType, "Char"},
	{ShortNumberType, "Short"},
	{IntNumberType, "Int"},
	{LongNumberType, "Long"},
	{FloatNumberType, "Float"},
	{DoubleNumberType, "Double"},
	{UIntNumberType, "UInt"},
}

func ParseNumberType(s string) (NumberType, error) { return numberTypes.parse("number type", s) }
func NumberTypes() []NumberType { return numberTypes.values() }

func (t NumberType) String() string { return numberTypes.str(t) }
func (t NumberType) MarshalText() ([]byte, error) { return numberTypes.text("number type", t) }
func (t *NumberType) UnmarshalText(d []byte) error { return unmarshalEnum(numberTypes, "number type", t, d) }

// FormatType is where the payload of a DataItem lives: inline in the
// document (XML) or in an external file.
type FormatType int

const (
	XMLFormat FormatType = iota
	HDFFormat
	BinaryFormat
	TIFFFormat
	IDXFormat
)

var formatTypes = enumTable[FormatType]{
	{XMLFormat, "XML"},
	{HDFFormat, "HDF"},
	{BinaryFormat, "Binary"},
	{TIFFFormat, "TIFF"},
	{IDXFormat, "IDX"},
}

func ParseFormatType(s string) (FormatType, error) { return formatTypes.parse("format", s) }
func FormatTypes() []FormatType { return formatTypes.values() }

func (f FormatType) String() string { return formatTypes.str(f) }
func (f FormatType) MarshalText() ([]byte, error) { return formatTypes.text("format", f) }
func (f *FormatType) UnmarshalText(d []byte) error { return unmarshalEnum(formatTypes, "format", f, d) }

// External reports whether the payload lives outside the document.
func (f FormatType) External() bool { return f != XMLFormat }

// DefersShape reports whether the external source, not the document, is
// authoritative for the array shape.
func (f FormatType) DefersShape() bool { return f == IDXFormat }

type EndianType int

const (
	LittleEndian EndianType = iota
	BigEndian
	NativeEndian
)

var endianTypes = enumTable[EndianType]{
	{LittleEndian, "Little"},
	{BigEndian, "Big"},
	{NativeEndian, "Native"},
}

func ParseEndianType(s string) (EndianType, error) { return endianTypes.parse("endianness", s) }

func (e EndianType) String() string { return endianTypes.str(e) }
func (e EndianType) MarshalText() ([]byte, error) { return endianTypes.text("endianness", e) }
func (e *EndianType) UnmarshalText(d []byte) error { return unmarshalEnum(endianTypes, "endianness", e, d) }

// CenterType is where a variable's values sit on its domain.
type CenterType int

const (
	CellCenter CenterType = iota
	NodeCenter
	GridCenter
	FaceCenter
	EdgeCenter
)

var centerTypes = enumTable[CenterType]{
	{CellCenter, "Cell"},
	{NodeCenter, "Node"},
	{GridCenter, "Grid"},
	{FaceCenter, "Face"},
	{EdgeCenter, "Edge"},
}

func ParseCenterType(s string) (CenterType, error) { return centerTypes.parse("center", s) }

func (c CenterType) String() string { return centerTypes.str(c) }
func (c CenterType) MarshalText() ([]byte, error) { return centerTypes.text("center", c) }
func (c *CenterType) UnmarshalText(d []byte) error { return unmarshalEnum(centerTypes, "center", c, d) }

type TopologyType int

const (
	PolyvertexTopology TopologyType = iota
	PolylineTopology
	PolygonTopology
	TriangleTopology
	QuadrilateralTopology
	TetrahedronTopology
	HexahedronTopology
	SMesh2DTopology
	RectMesh2DTopology
	CoRectMesh2DTopology
	SMesh3DTopology
	RectMesh3DTopology
	CoRectMesh3DTopology
)

var topologyTypes = enumTable[TopologyType]{
	{PolyvertexTopology, "Polyvertex"},
	{PolylineTopology, "Polyline"},
	{PolygonTopology, "Polygon"},
	{TriangleTopology, "Triangle"},
	{QuadrilateralTopology, "Quadrilateral"},
	{TetrahedronTopology, "Tetrahedron"},
	{HexahedronTopology, "Hexahedron"},
	{SMesh2DTopology, "2DSMesh"},
	{RectMesh2DTopology, "2DRectMesh"},
	{CoRectMesh2DTopology, "2DCoRectMesh"},
	{SMesh3DTopology, "3DSMesh"},
	{RectMesh3DTopology, "3DRectMesh"},
	{CoRectMesh3DTopology, "3DCoRectMesh"},
}

func ParseTopologyType(s string) (TopologyType, error) { return topologyTypes.parse("topology", s) }

func (t TopologyType) String() string { return topologyTypes.str(t) }
func (t TopologyType) MarshalText() ([]byte, error) { return topologyTypes.text("topology", t) }
func (t *TopologyType) UnmarshalText(d []byte) error { return unmarshalEnum(topologyTypes, "topology", t, d) }

type GeometryType int

const (
	XYZGeometry GeometryType = iota
	XYGeometry
	XYZSplitGeometry
	VxVyVzGeometry
	OriginDxDyDzGeometry
	OriginDxDyGeometry
	RectGeometry
)

var geometryTypes = enumTable[GeometryType]{
	{XYZGeometry, "XYZ"},
	{XYGeometry, "XY"},
	{XYZSplitGeometry, "X_Y_Z"},
	{VxVyVzGeometry, "VXVYVZ"},
	{OriginDxDyDzGeometry, "ORIGIN_DXDYDZ"},
	{OriginDxDyGeometry, "ORIGIN_DXDY"},
	{RectGeometry, "RECT"},
}

func ParseGeometryType(s string) (GeometryType, error) { return geometryTypes.parse("geometry", s) }

func (t GeometryType) String() string { return geometryTypes.str(t) }
func (t GeometryType) MarshalText() ([]byte, error) { return geometryTypes.text("geometry", t) }
func (t *GeometryType) UnmarshalText(d []byte) error { return unmarshalEnum(geometryTypes, "geometry", t, d) }

// Combined reports whether origin and spacing share a single data item.
func (t GeometryType) Combined() bool { return t == RectGeometry }

func unmarshalEnum[T comparable](t enumTable[T], kind string, dst *T, d []byte) error {
	v, err := t.parse(kind, string(d))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

package xidx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/xidx-format/go-xidx/xnode"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE Xidx SYSTEM "Xidx.dtd">
<Xidx xmlns:xi="http://www.w3.org/2001/XInclude" Version="2.0">
  <Group Name="root">
    <Group Name="time_series">
      <Domain Type="HyperSlab" Name="time">
        <DataItem NumberType="Double" BitPrecision="64" Dimensions="3" ComponentNumber="1">0 0.5 10</DataItem>
      </Domain>
    </Group>
    <Domain Type="Spatial" Name="grid">
      <DataItem Name="density" Format="IDX" NumberType="Float" BitPrecision="32" Dimensions="16 16 16" ComponentNumber="1">
        <xi:include xpointer="xpointer(root/grid/DataSource[0])"/>
      </DataItem>
      <Attribute Name="resolution" Value="0"/>
      <Topology Type="3DCoRectMesh" Dimensions="16 16 16"/>
      <Geometry Type="ORIGIN_DXDYDZ">
        <DataItem NumberType="Float" Dimensions="3" ComponentNumber="1">0 0 0</DataItem>
        <DataItem NumberType="Float" Dimensions="3" ComponentNumber="1">1 1 1</DataItem>
      </Geometry>
    </Domain>
    <Domain Type="List" Name="levels">
      <DataItem NumberType="Double" BitPrecision="64" Dimensions="3" ComponentNumber="1">1 2 3</DataItem>
    </Domain>
    <Domain Type="MultiAxisDomain" Name="axes">
      <DataItem Name="x" NumberType="Double" BitPrecision="64" Dimensions="2" ComponentNumber="1">0.5 1</DataItem>
    </Domain>
    <Variable Name="temperature" Domain="grid">
      <DataItem Format="HDF" NumberType="Double" BitPrecision="64" Dimensions="4096" ComponentNumber="1">
        <DataSource Url="temperature.h5"/>
      </DataItem>
      <Attribute Name="units" Value="K"/>
    </Variable>
    <Attribute Name="created" Value="2024-01-01"/>
  </Group>
</Xidx>
`

func sampleTree(t *testing.T) *Group {
	t.Helper()
	root := NewGroup("root")
	sub := root.AddGroup("time_series")
	sub.AddDomain(NewHyperSlabDomain("time", 0, 0.5, 10))

	space := NewSpatialDomain("grid")
	it, err := space.AddDataItem("1*float32")
	if err != nil {
		t.Fatal(err)
	}
	it.Name = "density"
	it.Format = IDXFormat
	it.Dimensions = []int{16, 16, 16}
	space.AddAttribute("resolution", "0")
	space.SetTopology(CoRectMesh3DTopology, 16, 16, 16)
	if _, err := space.SetGeometry(OriginDxDyDzGeometry, []float64{0, 0, 0}, []float64{1, 1, 1}); err != nil {
		t.Fatal(err)
	}
	root.AddDomain(space)
	root.AddDomain(NewListDomain[float64]("levels", 1, 2, 3))
	axes := NewMultiAxisDomain[float64]("axes", "x")
	axes.Axes[0].Values = []float64{0.5, 1}
	root.AddDomain(axes)

	v := root.AddVariable(NewVariable("temperature"))
	v.Domain = "grid"
	v.AddItem(NewTypedDataItem(HDFFormat, DataType{Number: DoubleNumberType, Bits: 64, Components: 1},
		[]int{4096}, NewDataSource("", "temperature.h5")))
	v.AddAttribute("units", "K")
	root.AddAttribute("created", "2024-01-01")
	return root
}

func TestEncodeDocument(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sampleTree(t), buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sampleDoc, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeDocument(t *testing.T) {
	got, err := Decode([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	want := sampleTree(t)
	want.Domain("grid").Base().Items[0].Reference = DataSourceRef("root/grid")
	if diff := cmp.Diff(want, got, modelOpts); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if MustString(got) != sampleDoc {
		t.Errorf("re-encoded document differs:\n%s", MustString(got))
	}

	// parent links are established throughout
	err = Walk(got, func(n Node) error {
		if n == Node(got) {
			return nil
		}
		_, err := Path(n)
		return err
	})
	if err != nil {
		t.Error(err)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tcs := []struct {
		in   string
		err  error
		path string
	}{
		{`<Xdmf><Group/></Xdmf>`, ErrStructuralMismatch, "/Xdmf"},
		{`<Xidx Version="2.0"/>`, ErrMissingRequiredField, "/Xidx"},
		{`<Xidx><Group Name="root"><Domain Type="Range" Name="r"><DataItem NumberType="Double">0 1</DataItem></Domain></Group></Xidx>`,
			ErrMissingRequiredField, "/Xidx/Group[0]/Domain[0]/DataItem[0]"},
		{`<Xidx><Group><Group><Domain Type="Cube"/></Group></Group></Xidx>`,
			ErrStructuralMismatch, "/Xidx/Group[0]/Group[0]/Domain[0]"},
	}
	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			g, err := Decode([]byte(tc.in))
			if !errors.Is(err, tc.err) {
				t.Fatalf("got %v, want %v", err, tc.err)
			}
			if g != nil {
				t.Errorf("got a group on error")
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("%v is not a *DecodeError", err)
			}
			if de.Path != tc.path {
				t.Errorf("path %s, want %s", de.Path, tc.path)
			}
		})
	}
}

func TestMarshalRoot(t *testing.T) {
	root := Marshal(NewGroup("g"))
	if diff := cmp.Diff([]xnode.Attr{
		{Name: "xmlns:xi", Value: XIncludeNS},
		{Name: "Version", Value: Version},
	}, root.Attrs); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if len(root.Children) != 1 || !root.Children[0].Is("Group") {
		t.Errorf("root children: %v", root.Children)
	}
}

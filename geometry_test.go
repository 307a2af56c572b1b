package xidx

import (
	"errors"
	"testing"
)

func TestNewGeometry(t *testing.T) {
	tcs := []struct {
		typ     GeometryType
		origin  []float64
		spacing []float64
		want    string
	}{
		{
			typ: RectGeometry, origin: []float64{0, 1}, spacing: []float64{0.5, 2},
			want: `<Geometry Type="RECT"><DataItem NumberType="Float" Dimensions="4" ComponentNumber="1">0 1 0.5 2</DataItem></Geometry>`,
		},
		{
			typ: OriginDxDyGeometry, origin: []float64{-1, 1}, spacing: []float64{0.1, 0.1},
			want: `<Geometry Type="ORIGIN_DXDY">` +
				`<DataItem NumberType="Float" Dimensions="2" ComponentNumber="1">-1 1</DataItem>` +
				`<DataItem NumberType="Float" Dimensions="2" ComponentNumber="1">0.1 0.1</DataItem></Geometry>`,
		},
		{
			typ: XYZGeometry, origin: []float64{1, 2, 3}, spacing: []float64{4, 5, 6},
			want: `<Geometry Type="XYZ">` +
				`<DataItem NumberType="Float" Dimensions="3" ComponentNumber="1">1 2 3</DataItem>` +
				`<DataItem NumberType="Float" Dimensions="3" ComponentNumber="1">4 5 6</DataItem></Geometry>`,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.typ.String(), func(t *testing.T) {
			g, err := NewGeometry(tc.typ, tc.origin, tc.spacing)
			if err != nil {
				t.Fatal(err)
			}
			if got := wire(g); got != tc.want {
				t.Errorf("got  %s\nwant %s", got, tc.want)
			}
			for _, it := range g.Items {
				if it.Parent() != g {
					t.Errorf("item not owned by geometry")
				}
			}
		})
	}
}

func TestNewGeometryErrors(t *testing.T) {
	if _, err := NewGeometry(XYGeometry, nil, nil); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got %v", err)
	}
	if _, err := NewGeometry(XYGeometry, []float64{1, 2}, []float64{1}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got %v", err)
	}
}

func TestGeometryMerge(t *testing.T) {
	g, err := NewGeometry(OriginDxDyDzGeometry, []float64{0, 0, 0}, []float64{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	origin := g.Items[0]
	in := `<Geometry Type="RECT"><DataItem Dimensions="6">0 0 0 2 2 2</DataItem></Geometry>`
	if err := g.Deserialize(child(t, in)); err != nil {
		t.Fatal(err)
	}
	if g.Type != RectGeometry || len(g.Items) != 1 || g.Items[0] != origin {
		t.Errorf("got %s with %d items", g.Type, len(g.Items))
	}
	if origin.Text != "0 0 0 2 2 2" {
		t.Errorf("item text %q", origin.Text)
	}
}

func TestTopology(t *testing.T) {
	topo := NewTopology(HexahedronTopology)
	if got, want := wire(topo), `<Topology Type="Hexahedron"/>`; got != want {
		t.Errorf("got %s", got)
	}
	got := &Topology{}
	if err := got.Deserialize(child(t, `<Topology Type="2DSMesh" Dimensions="3 4"/>`)); err != nil {
		t.Fatal(err)
	}
	if got.Type != SMesh2DTopology || len(got.Dimensions) != 2 || got.Dimensions[1] != 4 {
		t.Errorf("got %+v", got)
	}
	if err := got.Deserialize(child(t, `<Topology Type="Blob"/>`)); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got %v", err)
	}
	if err := got.Deserialize(child(t, `<Topology Type="Polygon" Dimensions="x"/>`)); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got %v", err)
	}
	if got.Type != SMesh2DTopology {
		t.Errorf("failed decode changed the topology")
	}
}

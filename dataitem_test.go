package xidx

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/xidx-format/go-xidx/parse"
)

func TestDataItemSerializeDefaults(t *testing.T) {
	d := NewDataItem("")
	d.Dimensions = []int{3}
	d.Text = "1 2 3"
	want := `<DataItem NumberType="Float" Dimensions="3" ComponentNumber="1">1 2 3</DataItem>`
	if got := wire(d); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestDataItemSerializeAll(t *testing.T) {
	d := NewTypedDataItem(HDFFormat, DataType{Number: DoubleNumberType, Bits: 64, Components: 3}, []int{2, 3},
		NewDataSource("f", "file:///x.h5"))
	d.Name = "v"
	d.Endian = BigEndian
	d.AddAttribute("units", "m")
	want := `<DataItem Name="v" Format="HDF" NumberType="Double" BitPrecision="64" Endian="Big" Dimensions="2 3" ComponentNumber="3">` +
		`<DataSource Name="f" Url="file:///x.h5"/><Attribute Name="units" Value="m"/></DataItem>`
	if got := wire(d); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
	if d.Source.Parent() != d {
		t.Errorf("data source parent not set")
	}
}

func TestDataItemExternalPrecision(t *testing.T) {
	d := NewTypedDataItem(BinaryFormat, DataType{Number: FloatNumberType, Bits: 32, Components: 1}, []int{4}, nil)
	got := wire(d)
	if !strings.Contains(got, `BitPrecision="32"`) {
		t.Errorf("external item elided default precision: %s", got)
	}
}

func TestDataItemInclude(t *testing.T) {
	root := NewGroup("root")
	sub := root.AddGroup("sub")
	dom := sub.AddDomain(NewSpatialDomain("grid"))
	d := dom.Base().AddItem(NewTypedDataItem(IDXFormat, DataType{Number: FloatNumberType, Bits: 32, Components: 1}, []int{4, 4}, nil))
	d.Name = "temp"
	want := `<DataItem Name="temp" Format="IDX" NumberType="Float" BitPrecision="32" Dimensions="4 4" ComponentNumber="1">` +
		`<xi:include xpointer="xpointer(root/sub/grid/DataSource[0])"/></DataItem>`
	if got := wire(d); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}

	// references are computed when serializing
	sub.Name = "renamed"
	if got := wire(d); !strings.Contains(got, "xpointer(root/renamed/grid/DataSource[0])") {
		t.Errorf("reference not recomputed: %s", got)
	}
}

func TestDataItemIncludeWithoutDomain(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	defer SetLogger(nil)

	d := NewTypedDataItem(HDFFormat, DataType{Number: IntNumberType, Bits: 32, Components: 1}, []int{2}, nil)
	d.Name = "lost"
	if got := wire(d); strings.Contains(got, "xi:include") {
		t.Errorf("include without reference: %s", got)
	}
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "item=lost") {
		t.Errorf("no warning logged: %q", buf.String())
	}

	d.Reference = Reference{Target: "a/b/DataSource[0]"}
	want := `<xi:include xpointer="xpointer(a/b/DataSource[0])"/>`
	if got := wire(d); !strings.Contains(got, want) {
		t.Errorf("loaded reference not reused: %s", got)
	}
}

func TestDataItemDeserialize(t *testing.T) {
	tcs := []struct {
		in   string
		want *DataItem
	}{
		{
			in: `<DataItem Dimensions="3">1 2 3</DataItem>`,
			want: &DataItem{
				Dimensions:      []int{3},
				NumberType:      FloatNumberType,
				BitPrecision:    "32",
				ComponentNumber: "1",
				Text:            "1 2 3",
			},
		},
		{
			in: `<DataItem Name="a" Format="HDF" NumberType="Double" BitPrecision="64" Endian="Big" Dimensions="2 3" ComponentNumber="3">` +
				`<DataSource Name="f" Url="file:///x.h5"/><Attribute Name="k" Value="v"/></DataItem>`,
			want: &DataItem{
				Name:            "a",
				Dimensions:      []int{2, 3},
				NumberType:      DoubleNumberType,
				BitPrecision:    "64",
				ComponentNumber: "3",
				Endian:          BigEndian,
				Format:          HDFFormat,
				Source:          &DataSource{Name: "f", URL: "file:///x.h5"},
				Attributes:      []*Attribute{{Name: "k", Value: "v"}},
			},
		},
		{
			in: `<DataItem Format="IDX" NumberType="Int"><xi:include xpointer="xpointer(root/d/DataSource[0])"/></DataItem>`,
			want: &DataItem{
				NumberType:      IntNumberType,
				BitPrecision:    "32",
				ComponentNumber: "1",
				Format:          IDXFormat,
				Reference:       Reference{Target: "root/d/DataSource[0]"},
			},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			got := NewDataItem("")
			if err := got.Deserialize(child(t, tc.in)); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got, modelOpts); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if got.Source != nil && got.Source.Parent() != got {
				t.Errorf("source parent not set")
			}
		})
	}
}

func TestDataItemDeserializeErrors(t *testing.T) {
	tcs := []struct {
		in   string
		err  error
		path string
	}{
		{`<DataItem NumberType="Float">1 2</DataItem>`, ErrMissingRequiredField, "/x/DataItem[0]"},
		{`<DataItem NumberType="Quad" Dimensions="2"/>`, ErrInvalidValue, "/x/DataItem[0]"},
		{`<DataItem Format="NetCDF" Dimensions="2"/>`, ErrInvalidValue, "/x/DataItem[0]"},
		{`<DataItem Endian="Middle" Dimensions="2"/>`, ErrInvalidValue, "/x/DataItem[0]"},
		{`<DataItem Dimensions="two"/>`, ErrInvalidValue, "/x/DataItem[0]"},
		{`<DataItem Dimensions="2"><DataSource Name="f"/></DataItem>`, ErrMissingRequiredField, "/x/DataItem[0]/DataSource[0]"},
		{`<DataItem Format="IDX"><xi:include xpointer="root/d"/></DataItem>`, ErrInvalidValue, "/x/DataItem[0]/xi:include[0]"},
		{`<DataItem Dimensions="2"><Attribute Value="v"/></DataItem>`, ErrMissingRequiredField, "/x/DataItem[0]/Attribute[0]"},
		{`<Item Dimensions="2"/>`, ErrStructuralMismatch, "/x/Item[0]"},
	}
	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			d := NewDataItem("keep")
			err := d.Deserialize(child(t, tc.in))
			if !errors.Is(err, tc.err) {
				t.Fatalf("got %v, want %v", err, tc.err)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("%v is not a *DecodeError", err)
			}
			if de.Path != tc.path {
				t.Errorf("path %s, want %s", de.Path, tc.path)
			}
			if d.Name != "keep" {
				t.Errorf("failed decode changed the item: %q", d.Name)
			}
		})
	}
}

func TestDataItemRoundTrip(t *testing.T) {
	root := NewGroup("root")
	dom := root.AddDomain(NewRangeDomain("r", 0, 1))
	items := []*DataItem{
		NewDataItem("plain"),
		NewTypedDataItem(TIFFFormat, DataType{Number: UIntNumberType, Bits: 16, Components: 4}, []int{8, 8}, nil),
		NewTypedDataItem(HDFFormat, DataType{Number: LongNumberType, Bits: 64, Components: 1}, []int{10}, NewDataSource("", "data.h5")),
	}
	items[0].Dimensions = []int{1}
	items[0].Text = "42"
	items[1].Endian = NativeEndian
	for _, it := range items {
		dom.Base().AddItem(it)
		n := it.Serialize(Marshal(root))
		got := NewDataItem("")
		if err := got.Deserialize(n); err != nil {
			t.Fatal(err)
		}
		want := *it
		if it.Format.External() && it.Source == nil {
			want.Reference = DataSourceRef("root/r")
		}
		if diff := cmp.Diff(&want, got, modelOpts); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	}
}

func TestParseDataType(t *testing.T) {
	ok := map[string]DataType{
		"1*float32":  {Number: FloatNumberType, Bits: 32, Components: 1},
		"3*FLOAT64":  {Number: FloatNumberType, Bits: 64, Components: 3},
		`2\int16`:    {Number: IntNumberType, Bits: 16, Components: 2},
		"1*Double64": {Number: DoubleNumberType, Bits: 64, Components: 1},
		"12*uint8":   {Number: UIntNumberType, Bits: 8, Components: 12},
	}
	for in, want := range ok {
		got, err := ParseDataType(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%s: got %+v want %+v", in, got, want)
		}
	}
	for _, in := range []string{
		"", "float32", "1*float", "*float32", "0*float32", "1*float0",
		"1*quad32", "1 * float32", "1*float32x", "-1*float32", "1*float-32",
	} {
		_, err := ParseDataType(in)
		if !errors.Is(err, ErrAmbiguousParse) {
			t.Errorf("%q: got %v, want ErrAmbiguousParse", in, err)
		}
		if d, err := ParseDataItem(in); d != nil || err == nil {
			t.Errorf("%q: ParseDataItem returned %v, %v", in, d, err)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	dt := DataType{Number: DoubleNumberType, Bits: 64, Components: 3}
	if got := dt.String(); got != "3*double64" {
		t.Errorf("got %s", got)
	}
	back, err := ParseDataType(dt.String())
	if err != nil || back != dt {
		t.Errorf("got %+v, %v", back, err)
	}
}

func TestDataItemDataType(t *testing.T) {
	d, err := ParseDataItem("4*int16")
	if err != nil {
		t.Fatal(err)
	}
	if d.BitPrecision != "16" || d.ComponentNumber != "4" || d.NumberType != IntNumberType {
		t.Errorf("got %+v", d)
	}
	d.BitPrecision = "sixteen"
	if _, err := d.DataType(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got %v", err)
	}
}

func TestDataItemFailedDecodeKeepsSource(t *testing.T) {
	d := NewDataItem("d")
	d.Dimensions = []int{2}
	src := &DataSource{Name: "f", URL: "a.h5"}
	d.SetSource(src)

	err := d.Deserialize(child(t, `<DataItem Dimensions="2"><DataSource Url="b.h5"/><Attribute Value="v"/></DataItem>`))
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("got %v", err)
	}
	if d.Source != src || src.Name != "f" || src.URL != "a.h5" {
		t.Errorf("failed decode changed the data source: %+v", *src)
	}

	if err := d.Deserialize(child(t, `<DataItem Dimensions="2"><DataSource Url="b.h5"/></DataItem>`)); err != nil {
		t.Fatal(err)
	}
	if d.Source != src || src.Name != "" || src.URL != "b.h5" {
		t.Errorf("data source not updated in place: %+v", *src)
	}
	if src.Parent() != d {
		t.Errorf("data source parent %v", src.Parent())
	}
}

func TestDataItemTextTrimmed(t *testing.T) {
	d := NewDataItem("d")
	d.Dimensions = []int{2}
	d.Text = " 1 2 \n"
	if got := wire(d); !strings.Contains(got, ">1 2</DataItem>") {
		t.Errorf("got %s", got)
	}

	root, err := parse.Parse([]byte(`<x><DataItem Dimensions="2"> 1 2 </DataItem></x>`), parse.KeepSpace(true))
	if err != nil {
		t.Fatal(err)
	}
	got := NewDataItem("")
	if err := got.Deserialize(root.First(dataItemTag)); err != nil {
		t.Fatal(err)
	}
	if got.Text != "1 2" {
		t.Errorf("got text %q", got.Text)
	}
}

package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/signadot/xidx-format/go-xidx/parse"
	"github.com/signadot/xidx-format/go-xidx/xnode"
)

func doc() *xnode.Node {
	root := xnode.New("Xidx")
	root.SetAttr("xmlns:xi", "http://www.w3.org/2001/XInclude")
	root.SetAttr("Version", "2.0")
	g := root.NewChild("Group").SetAttr("Name", "root")
	it := g.NewTextChild("DataItem", "0 0.5 10").SetAttr("Dimensions", "3")
	it.NewChild("Attribute").SetAttr("Name", "units").SetAttr("Value", `a<b & "c"`)
	g.NewChild("DataItem").SetAttr("Format", "IDX").
		NewChild("xi:include").SetAttr("xpointer", "xpointer(root/d/DataSource[0])")
	return root
}

func TestEncode(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc(), buf, Header(true), DocType("Xidx.dtd")); err != nil {
		t.Fatal(err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE Xidx SYSTEM "Xidx.dtd">
<Xidx xmlns:xi="http://www.w3.org/2001/XInclude" Version="2.0">
  <Group Name="root">
    <DataItem Dimensions="3">0 0.5 10
      <Attribute Name="units" Value="a&lt;b &amp; &#34;c&#34;"/>
    </DataItem>
    <DataItem Format="IDX">
      <xi:include xpointer="xpointer(root/d/DataSource[0])"/>
    </DataItem>
  </Group>
</Xidx>
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("encode (-want +got):\n%s", diff)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	for _, opts := range [][]EncodeOption{
		nil,
		{EncodeWire(true)},
		{Indent(4), Header(true)},
	} {
		in := doc()
		buf := bytes.NewBuffer(nil)
		if err := Encode(in, buf, opts...); err != nil {
			t.Fatal(err)
		}
		out, err := parse.Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("parse %s: %v", buf, err)
		}
		if diff := cmp.Diff(in, out, cmpopts.IgnoreFields(xnode.Node{}, "Parent")); diff != "" {
			t.Errorf("round trip (-want +got):\n%s", diff)
		}
	}
}

func TestEncodeWire(t *testing.T) {
	got := MustString(doc(), EncodeWire(true))
	if strings.Contains(got, "\n") {
		t.Errorf("wire output has newlines: %q", got)
	}
}

func TestEncodeColors(t *testing.T) {
	c := &Colors{
		Default: plain,
		Map: map[ColorAttr]func(string, ...any) string{
			TagColor: func(s string, _ ...any) string { return "[" + s + "]" },
		},
	}
	got := MustString(xnode.New("a"), EncodeColors(c))
	if got != "<[a]/>" {
		t.Errorf("colored = %q", got)
	}
}

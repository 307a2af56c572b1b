package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/xidx-format/go-xidx"
)

func TestLines(t *testing.T) {
	from := "a\nb\nc\nd\n"
	to := "a\nB\nc\nd\ne\n"
	want := []Line{
		{Equal, "a"},
		{Delete, "b"},
		{Insert, "B"},
		{Equal, "c"},
		{Equal, "d"},
		{Insert, "e"},
	}
	got := Lines(from, to)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Errorf("not changed")
	}
	if Changed(Lines(from, from)) {
		t.Errorf("identical input changed")
	}
}

func TestFormat(t *testing.T) {
	ls := []Line{
		{Equal, "1"}, {Equal, "2"}, {Equal, "3"}, {Equal, "4"},
		{Delete, "five"}, {Insert, "5"},
		{Equal, "6"}, {Equal, "7"}, {Equal, "8"},
	}
	buf := bytes.NewBuffer(nil)
	if err := Format(buf, ls, Context(1)); err != nil {
		t.Fatal(err)
	}
	want := "@@\n  4\n- five\n+ 5\n  6\n@@\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := Format(buf, ls, Context(-1)); err != nil {
		t.Fatal(err)
	}
	if got := len(bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))); got != len(ls) {
		t.Errorf("full format printed %d lines", got)
	}
}

func TestDocuments(t *testing.T) {
	a := xidx.NewGroup("root")
	a.AddDomain(xidx.NewRangeDomain("r", 0, 1))
	b := xidx.NewGroup("root")
	b.AddDomain(xidx.NewRangeDomain("r", 0, 2))

	ls, err := Documents(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if Changed(ls) {
		t.Errorf("same document differs")
	}
	ls, err = Documents(a, b)
	if err != nil {
		t.Fatal(err)
	}
	var changed []Line
	for _, l := range ls {
		if l.Op != Equal {
			changed = append(changed, l)
		}
	}
	want := []Line{
		{Delete, `      <DataItem NumberType="Double" BitPrecision="64" Dimensions="2" ComponentNumber="1">0 1</DataItem>`},
		{Insert, `      <DataItem NumberType="Double" BitPrecision="64" Dimensions="2" ComponentNumber="1">0 2</DataItem>`},
	}
	if diff := cmp.Diff(want, changed); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

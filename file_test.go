package xidx

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/xidx-format/go-xidx/encode"
	"github.com/signadot/xidx-format/go-xidx/parse"
)

func TestSaveLoad(t *testing.T) {
	fs := memfs.New()
	g := sampleTree(t)
	require.NoError(t, Save(fs, "data/sample.xidx", g))

	d, err := util.ReadFile(fs, "data/sample.xidx")
	require.NoError(t, err)
	assert.Equal(t, sampleDoc, string(d))

	back, err := Load(fs, "data/sample.xidx")
	require.NoError(t, err)
	assert.Equal(t, MustString(g), MustString(back))
	require.NotNil(t, back.Group("time_series"))
	slab, ok := back.Group("time_series").Domain("time").(*HyperSlabDomain)
	require.True(t, ok)
	_, _, count, err := slab.Slab()
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}

func TestSaveOptions(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, Save(fs, "wire.xidx", sampleTree(t), WithEncodeOptions(encode.EncodeWire(true))))
	d, err := util.ReadFile(fs, "wire.xidx")
	require.NoError(t, err)
	// header, doctype and the single line document
	assert.Equal(t, 3, len(splitLines(string(d))))

	back, err := Load(fs, "wire.xidx", WithParseOptions(parse.KeepSpace(true)))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", back.Attributes[0].Value)
}

func TestLoadErrors(t *testing.T) {
	fs := memfs.New()
	_, err := Load(fs, "missing.xidx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.xidx")

	require.NoError(t, util.WriteFile(fs, "bad.xidx", []byte(`<Xidx><Group><Variable/></Group></Xidx>`), 0o644))
	g, err := Load(fs, "bad.xidx")
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "/Xidx/Group[0]/Variable[0]", de.Path)
}

func splitLines(s string) []string {
	var res []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			res = append(res, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		res = append(res, s[start:])
	}
	return res
}

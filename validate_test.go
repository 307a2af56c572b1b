package xidx

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSample(t *testing.T) {
	assert.NoError(t, Validate(sampleTree(t)))
}

func TestValidateProblems(t *testing.T) {
	root := NewGroup("root")
	root.AddGroup("dup")
	root.AddVariable(NewVariable("dup")).Domain = "nowhere"
	root.AddDomain(NewSpatialDomain("mesh"))
	root.AddDomain(bind(&HyperSlabDomain{}))
	multi := NewMultiAxisDomain[float64]("m", "x")
	multi.AddItem(NewDataItem("lost")).Dimensions = []int{1}
	root.AddDomain(multi)
	v := root.AddVariable(NewVariable("v"))
	v.Domain = "mesh"
	it := v.AddItem(NewDataItem("shapeless"))
	it.ComponentNumber = "zero"
	v.AddItem(NewTypedDataItem(HDFFormat, DataType{Number: FloatNumberType, Bits: 32, Components: 1}, []int{2}, nil))

	err := Validate(root)
	require.Error(t, err)
	var me *multierror.Error
	require.ErrorAs(t, err, &me)

	msgs := make([]string, len(me.Errors))
	for i, e := range me.Errors {
		msgs[i] = e.Error()
	}
	all := strings.Join(msgs, "\n")
	for _, want := range []string{
		`root/dup: invalid value: duplicate name "dup"`,
		`root/dup: not found: domain "nowhere"`,
		"root/mesh: missing required field: topology",
		"root: missing required field: hyperslab",
		"root/m: invalid value: 1 items of a multi-axis domain",
		"root/v/shapeless: missing required field: Dimensions",
		`root/v/shapeless: invalid value: ComponentNumber "zero"`,
		"root/v: not found: data source of HDF item",
	} {
		assert.Contains(t, all, want)
	}
	assert.Len(t, me.Errors, 8)
	assert.ErrorIs(t, err, ErrNotFound)
}

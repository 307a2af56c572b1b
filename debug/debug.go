package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Serialize   bool
	Deserialize bool
	Merge       bool
	Refs        bool
	Eval        bool
}

var d *debug

func init() {
	d = &debug{}
	d.Serialize = boolEnv("XIDX_DEBUG_SERIALIZE")
	d.Deserialize = boolEnv("XIDX_DEBUG_DESERIALIZE")
	d.Merge = boolEnv("XIDX_DEBUG_MERGE")
	d.Refs = boolEnv("XIDX_DEBUG_REFS")
	d.Eval = boolEnv("XIDX_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Serialize() bool {
	return d.Serialize
}
func Deserialize() bool {
	return d.Deserialize
}
func Merge() bool {
	return d.Merge
}
func Refs() bool {
	return d.Refs
}
func Eval() bool {
	return d.Eval
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}

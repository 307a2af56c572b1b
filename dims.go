package xidx

import (
	"fmt"
	"strconv"
	"strings"
)

func parseDims(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty dimensions", ErrInvalidValue)
	}
	res := make([]int, len(fields))
	for i, f := range fields {
		d, err := strconv.Atoi(f)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: dimension %q", ErrInvalidValue, f)
		}
		res[i] = d
	}
	return res, nil
}

func formatDims(dims []int) string {
	var b strings.Builder
	for i, d := range dims {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}

func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}

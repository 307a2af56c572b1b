package xidx

import (
	"fmt"
	"strings"
)

// enumTable is the single name mapping of an enumeration, used for both
// encoding and decoding.
type enumTable[T comparable] []enumEntry[T]

type enumEntry[T comparable] struct {
	v    T
	name string
}

func (t enumTable[T]) name(v T) (string, bool) {
	for _, e := range t {
		if e.v == v {
			return e.name, true
		}
	}
	return "", false
}

func (t enumTable[T]) value(name string) (T, bool) {
	for _, e := range t {
		if e.name == name {
			return e.v, true
		}
	}
	var zero T
	return zero, false
}

func (t enumTable[T]) valueFold(name string) (T, bool) {
	for _, e := range t {
		if strings.EqualFold(e.name, name) {
			return e.v, true
		}
	}
	var zero T
	return zero, false
}

func (t enumTable[T]) values() []T {
	res := make([]T, len(t))
	for i, e := range t {
		res[i] = e.v
	}
	return res
}

func (t enumTable[T]) parse(kind, name string) (T, error) {
	v, ok := t.value(name)
	if !ok {
		return v, fmt.Errorf("%w: unknown %s %q", ErrInvalidValue, kind, name)
	}
	return v, nil
}

func (t enumTable[T]) text(kind string, v T) ([]byte, error) {
	s, ok := t.name(v)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a %s", ErrInvalidValue, v, kind)
	}
	return []byte(s), nil
}

func (t enumTable[T]) str(v T) string {
	if s, ok := t.name(v); ok {
		return s
	}
	return "[Unknown]"
}

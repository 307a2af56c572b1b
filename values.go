package xidx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Value is the set of element types a list or multi-axis domain can hold.
type Value interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 |
		~float32 | ~float64
}

// IndexSpace is the linearized sequence of coordinates of a domain.
type IndexSpace []float64

// ValueType returns the data type a list of T serializes with.
func ValueType[T Value]() DataType {
	t := reflect.TypeFor[T]()
	dt := DataType{Components: 1, Bits: t.Bits()}
	switch t.Kind() {
	case reflect.Int8:
		dt.Number = CharNumberType
	case reflect.Int16:
		dt.Number = ShortNumberType
	case reflect.Int32:
		dt.Number = IntNumberType
	case reflect.Int64, reflect.Int:
		dt.Number = LongNumberType
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		dt.Number = UIntNumberType
	case reflect.Float32:
		dt.Number = FloatNumberType
	default:
		dt.Number = DoubleNumberType
	}
	return dt
}

func formatValues[T Value](vs []T) string {
	t := reflect.TypeFor[T]()
	bits := t.Bits()
	var b strings.Builder
	for i, v := range vs {
		if i != 0 {
			b.WriteByte(' ')
		}
		switch t.Kind() {
		case reflect.Float32, reflect.Float64:
			b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, bits))
		case reflect.Uint8, reflect.Uint16, reflect.Uint32:
			b.WriteString(strconv.FormatUint(uint64(v), 10))
		default:
			b.WriteString(strconv.FormatInt(int64(v), 10))
		}
	}
	return b.String()
}

func parseValues[T Value](fields []string) ([]T, error) {
	t := reflect.TypeFor[T]()
	bits := t.Bits()
	res := make([]T, len(fields))
	for i, f := range fields {
		switch t.Kind() {
		case reflect.Float32, reflect.Float64:
			v, err := strconv.ParseFloat(f, bits)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
			}
			res[i] = T(v)
		case reflect.Uint8, reflect.Uint16, reflect.Uint32:
			v, err := strconv.ParseUint(f, 10, bits)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
			}
			res[i] = T(v)
		default:
			v, err := strconv.ParseInt(f, 10, bits)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
			}
			res[i] = T(v)
		}
	}
	return res, nil
}

// valuesItem lays values out as a one dimensional inline data item.
func valuesItem[T Value](name string, values []T) *DataItem {
	d := NewTypedDataItem(XMLFormat, ValueType[T](), []int{len(values)}, nil)
	d.Name = name
	d.Text = formatValues(values)
	return d
}

// itemValues reads back the values of an inline one dimensional data item.
func itemValues[T Value](d *DataItem) ([]T, error) {
	if d.Format != XMLFormat {
		return nil, fmt.Errorf("%w: %s payload cannot be read inline", ErrUnsupportedFormat, d.Format)
	}
	if len(d.Dimensions) == 0 {
		return nil, fmt.Errorf("%w: Dimensions", ErrMissingRequiredField)
	}
	n := d.Dimensions[0]
	fields := strings.Fields(d.Text)
	if len(fields) < n {
		return nil, fmt.Errorf("%w: %d values for dimension %d", ErrInvalidValue, len(fields), n)
	}
	return parseValues[T](fields[:n])
}

func toIndexSpace[T Value](vs []T) IndexSpace {
	res := make(IndexSpace, len(vs))
	for i, v := range vs {
		res[i] = float64(v)
	}
	return res
}

package sim

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Value is a normalized attribute value.
// Numbers are kept as float64, lists as []interface{} and
// dicts as map[string]interface{}, recursively.
// A Value is immutable, Interface always returns a copy.
type Value struct {
	typ  DataType
	data interface{}
}

// NewValue infers the data type of v and normalizes it.
// Go numbers, strings, booleans, slices, arrays and maps with
// string keys are accepted. Everything else, including nil,
// NaN and infinite numbers, fails with ErrUnrecognizedValueType.
func NewValue(v interface{}) (Value, error) {
	t, d, err := normalize(v)
	if err != nil {
		return Value{}, err
	}
	return Value{typ: t, data: d}, nil
}

// TypeOf returns the data type inferred for a value.
func TypeOf(v interface{}) (DataType, error) {
	t, _, err := normalize(v)
	return t, err
}

func (v Value) DataType() DataType {
	return v.typ
}

func (v Value) IsValid() bool {
	return v.typ != ""
}

// Interface returns a deep copy of the normalized data.
func (v Value) Interface() interface{} {
	return copyData(v.data)
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.data)
}

func (v Value) String() string {
	data, err := json.Marshal(v.data)
	if err != nil {
		return fmt.Sprintf("%v", v.data)
	}
	return string(data)
}

func normalize(v interface{}) (DataType, interface{}, error) {
	switch x := v.(type) {
	case nil:
		return "", nil, errValue(v)
	case Value:
		if !x.IsValid() {
			return "", nil, errValue(v)
		}
		return x.typ, copyData(x.data), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return "", nil, errValue(v)
		}
		return number(f)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return BOOLEAN, rv.Bool(), nil
	case reflect.String:
		return STRING, rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return number(rv.Float())
	case reflect.Slice, reflect.Array:
		l := make([]interface{}, rv.Len())
		for i := range l {
			_, e, err := normalize(rv.Index(i).Interface())
			if err != nil {
				return "", nil, fmt.Errorf("list element %d: %w", i, err)
			}
			l[i] = e
		}
		return LIST, l, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return "", nil, errValue(v)
		}
		d := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			_, e, err := normalize(iter.Value().Interface())
			if err != nil {
				return "", nil, fmt.Errorf("dict entry %q: %w", k, err)
			}
			d[k] = e
		}
		return DICT, d, nil
	}
	return "", nil, errValue(v)
}

func number(f float64) (DataType, interface{}, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", nil, errValue(f)
	}
	return NUMBER, f, nil
}

func errValue(v interface{}) error {
	return fmt.Errorf("%w: %T(%v)", ErrUnrecognizedValueType, v, v)
}

func copyData(d interface{}) interface{} {
	switch x := d.(type) {
	case []interface{}:
		r := make([]interface{}, len(x))
		for i, e := range x {
			r[i] = copyData(e)
		}
		return r
	case map[string]interface{}:
		r := make(map[string]interface{}, len(x))
		for k, e := range x {
			r[k] = copyData(e)
		}
		return r
	default:
		return d
	}
}

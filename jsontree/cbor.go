package jsontree

import (
	"fmt"
	"math"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/moneta-go/value"
	"github.com/moneta-go/value/art"
	"github.com/moneta-go/value/deque"
)

var cborDec cbor.DecMode

var cborEnc cbor.EncMode

func init() {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any{}),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	cborDec = dm
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborEnc = em
}

// MarshalCBOR encodes the tree as canonical CBOR.
func (j *JSON) MarshalCBOR() ([]byte, error) {
	v, err := j.Any()
	if err != nil {
		return nil, err
	}
	return cborEnc.Marshal(v)
}

// UnmarshalCBOR replaces the contents of j with the decoded document.
// The previous children are destroyed.
func (j *JSON) UnmarshalCBOR(data []byte) error {
	decoded, err := FromCBOR(data)
	if err != nil {
		return err
	}
	if err := j.Destroy(); err != nil {
		decoded.Destroy()
		return err
	}
	*j = *decoded
	return nil
}

// FromCBOR decodes a CBOR map or array into a tree.
func FromCBOR(data []byte) (*JSON, error) {
	var v any
	if err := cborDec.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// Any converts the tree into map[string]any / []any with natural scalar types.
func (j *JSON) Any() (any, error) {
	if j.kind == KindObject {
		return objectAny(j.object)
	}
	return arrayAny(j.array)
}

func objectAny(a *art.ART) (map[string]any, error) {
	out := make(map[string]any, a.Size())
	var err error
	a.Walk(func(key string, v *value.Value) bool {
		var conv any
		conv, err = valueAny(v)
		out[key] = conv
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func arrayAny(d *deque.Deque) ([]any, error) {
	out := make([]any, 0, d.Size())
	it := d.Iterator()
	for it.Next() {
		conv, err := valueAny(it.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, conv)
	}
	return out, nil
}

func valueAny(v *value.Value) (any, error) {
	switch x := v.Interface().(type) {
	case *JSON:
		return x.Any()
	case *art.ART:
		return objectAny(x)
	case *deque.Deque:
		return arrayAny(x)
	case value.Slot, value.Formatter:
		return nil, fmt.Errorf("value type %s has no json form", v.Type())
	default:
		return x, nil
	}
}

// FromAny builds a tree from a map[string]any or []any as produced by
// encoding/json or CBOR decoding.
func FromAny(v any) (*JSON, error) {
	root, err := valueFromAny(v)
	if err != nil {
		return nil, err
	}
	j, ok := root.Data().(*JSON)
	if !ok {
		root.Destroy()
		return nil, ErrRoot
	}
	return j, nil
}

func valueFromAny(v any) (*value.Value, error) {
	switch x := v.(type) {
	case nil:
		return value.Create(value.ValueString, nil)
	case bool:
		return value.Create(value.ValueBool, x)
	case string:
		return value.Create(value.ValueString, x)
	case []byte:
		return value.Create(value.ValueString, x)
	case int, int8, int16, int32, int64:
		return value.Create(value.ValueInt64, x)
	case uint, uint8, uint16, uint32:
		return value.Create(value.ValueInt64, x)
	case uint64:
		if x > math.MaxInt64 {
			return value.Create(value.ValueUInt64, x)
		}
		return value.Create(value.ValueInt64, int64(x))
	case float32:
		return value.Create(value.ValueDouble, float64(x))
	case float64:
		return value.Create(value.ValueDouble, x)
	case map[string]any:
		j := NewObject()
		for key, elem := range x {
			child, err := valueFromAny(elem)
			if err == nil {
				err = j.PutValue(key, child)
			}
			if err != nil {
				j.Destroy()
				return nil, err
			}
		}
		return j.NewValue()
	case map[any]any:
		j := NewObject()
		for key, elem := range x {
			name, ok := key.(string)
			if !ok {
				j.Destroy()
				return nil, fmt.Errorf("object key %v is not a string", key)
			}
			child, err := valueFromAny(elem)
			if err == nil {
				err = j.PutValue(name, child)
			}
			if err != nil {
				j.Destroy()
				return nil, err
			}
		}
		return j.NewValue()
	case []any:
		j := NewArray()
		for _, elem := range x {
			child, err := valueFromAny(elem)
			if err != nil {
				j.Destroy()
				return nil, err
			}
			j.AppendValue(child)
		}
		return j.NewValue()
	default:
		return nil, fmt.Errorf("unsupported json value %T", v)
	}
}

package value

import (
	"fmt"
	"reflect"
)

// pack converts a scalar datum into the slot representation of t.
func pack(t Type, data any) (Slot, error) {
	switch d := data.(type) {
	case Slot:
		return truncate(t, uint64(d)), nil
	case bool:
		if t != ValueBool {
			return 0, mismatch(t, data)
		}
		if d {
			return 1, nil
		}
		return 0, nil
	case float32:
		switch t {
		case ValueFloat:
			return FromFloat(d), nil
		case ValueDouble:
			return FromDouble(float64(d)), nil
		}
		return 0, mismatch(t, data)
	case float64:
		switch t {
		case ValueFloat:
			return FromFloat(float32(d)), nil
		case ValueDouble:
			return FromDouble(d), nil
		}
		return 0, mismatch(t, data)
	}
	switch t {
	case ValueBool, ValueFloat, ValueDouble:
		return 0, mismatch(t, data)
	}
	u, ok := integerBits(data)
	if !ok {
		return 0, mismatch(t, data)
	}
	return truncate(t, u), nil
}

// integerBits returns the two's complement bits of any Go integer.
func integerBits(data any) (uint64, bool) {
	switch d := data.(type) {
	case int:
		return uint64(d), true
	case int8:
		return uint64(d), true
	case int16:
		return uint64(d), true
	case int32:
		return uint64(d), true
	case int64:
		return uint64(d), true
	case uint:
		return uint64(d), true
	case uint8:
		return uint64(d), true
	case uint16:
		return uint64(d), true
	case uint32:
		return uint64(d), true
	case uint64:
		return d, true
	case uintptr:
		return uint64(d), true
	default:
		return 0, false
	}
}

func truncate(t Type, u uint64) Slot {
	switch w := t.width(); w {
	case 1:
		if u != 0 {
			return 1
		}
		return 0
	case 8, 16, 32:
		return Slot(u & (1<<uint(w) - 1))
	default:
		return Slot(u)
	}
}

func mismatch(t Type, data any) error {
	return fmt.Errorf("%w: %s cannot hold %T", ErrInvalidDatum, t, data)
}

func isNil(x any) bool {
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// Interface returns the natural Go value held by v: a sized integer, float32,
// float64, bool, string (nil when absent) or the stored structure.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.typ {
	case ValueInt8:
		return int8(v.slot)
	case ValueUInt8:
		return uint8(v.slot)
	case ValueInt16:
		return int16(v.slot)
	case ValueUInt16:
		return uint16(v.slot)
	case ValueInt32:
		return int32(v.slot)
	case ValueUInt32:
		return uint32(v.slot)
	case ValueInt64:
		return int64(v.slot)
	case ValueUInt64:
		return uint64(v.slot)
	case ValueFloat:
		return ToFloat(v.slot)
	case ValueDouble:
		return ToDouble(v.slot)
	case ValueBool:
		return v.slot != 0
	case ValueString:
		if v.str == nil {
			return nil
		}
		return *v.str
	case ValueJSON, ValueDeque, ValueART, ValueVerifyEntry:
		return v.ref
	default:
		return v.slot
	}
}

func mustCreate(t Type, data any) *Value {
	v, err := Create(t, data)
	if err != nil {
		panic(err)
	}
	return v
}

// Typed constructors for scalars; they cannot fail with the default allocator.

func NewInt8(x int8) *Value      { return mustCreate(ValueInt8, x) }
func NewUInt8(x uint8) *Value    { return mustCreate(ValueUInt8, x) }
func NewInt16(x int16) *Value    { return mustCreate(ValueInt16, x) }
func NewUInt16(x uint16) *Value  { return mustCreate(ValueUInt16, x) }
func NewInt32(x int32) *Value    { return mustCreate(ValueInt32, x) }
func NewUInt32(x uint32) *Value  { return mustCreate(ValueUInt32, x) }
func NewInt64(x int64) *Value    { return mustCreate(ValueInt64, x) }
func NewUInt64(x uint64) *Value  { return mustCreate(ValueUInt64, x) }
func NewFloat(x float32) *Value  { return mustCreate(ValueFloat, x) }
func NewDouble(x float64) *Value { return mustCreate(ValueDouble, x) }
func NewBool(x bool) *Value      { return mustCreate(ValueBool, x) }

// NewString returns a ValueString holding a copy of s.
func NewString(s string) *Value { return mustCreate(ValueString, s) }

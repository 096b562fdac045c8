package value

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAllocation is returned by Create when the allocator refuses the record.
	ErrAllocation = errors.New("value allocation failed")
	// ErrInvalidDatum is returned by Create when the datum does not fit the tag.
	ErrInvalidDatum = errors.New("invalid datum for value type")
	// ErrDestroyed is returned by Destroy on a Value that was already destroyed.
	ErrDestroyed = errors.New("value already destroyed")
)

// Slot is the generic storage cell of a scalar Value. Integers and booleans
// are stored truncated to their width, floating point values by bit pattern.
type Slot uint64

// Formatter is the to-string entry point of a collaborator structure.
type Formatter interface {
	ToString(tag string, indent int) string
}

// Composite is a collaborator structure owned exclusively by a Value.
type Composite interface {
	Formatter
	Destroy() error
}

type (
	formatFunc  func(v *Value, tag string, indent int) string
	releaseFunc func(v *Value) error
)

// Value is a tagged container for one scalar or one owned structure.
// The formatter and destructor are bound once in Create.
type Value struct {
	typ     Type
	slot    Slot
	str     *string
	ref     any
	format  formatFunc
	release releaseFunc
	alloc   Allocator
	dead    bool
}

// Create builds a Value of type t from data.
//
// Scalar tags take a Slot or a Go number/bool. ValueString takes a string,
// *string, []byte or nil (absent) and stores an independent copy. Composite
// tags take a non-nil Composite, ValueVerifyEntry a Formatter. On error the
// caller keeps ownership of data.
func Create(t Type, data any, opts ...Option) (*Value, error) {
	cfg := config{alloc: heap{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		slot Slot
		src  *string
		ref  any
		err  error
	)
	switch {
	case t.IsScalar():
		slot, err = pack(t, data)
	case t == ValueString:
		src, err = stringSource(data)
	case t == ValueVerifyEntry:
		f, ok := data.(Formatter)
		if !ok || isNil(f) {
			err = fmt.Errorf("%w: %s needs a Formatter, got %T", ErrInvalidDatum, t, data)
		}
		ref = f
	case t.IsComposite():
		c, ok := data.(Composite)
		if !ok || isNil(c) {
			err = fmt.Errorf("%w: %s needs a Composite, got %T", ErrInvalidDatum, t, data)
		}
		ref = c
	default:
		if s, ok := data.(Slot); ok {
			slot = s
		}
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.alloc.Allocate(t); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAllocation, t, err)
	}

	v := &Value{
		typ:    t,
		slot:   slot,
		ref:    ref,
		format: formatterFor(t),
		alloc:  cfg.alloc,
	}

	switch t {
	case ValueString:
		if src != nil {
			cpy := strings.Clone(*src)
			v.str = &cpy
		}
		v.release = freeRelease
	case ValueVerifyEntry:
		v.release = freeRelease
	case ValueJSON, ValueDeque, ValueART:
		v.release = compositeRelease
	default:
		v.release = noopRelease
	}
	return v, nil
}

// Destroy releases everything the Value owns. A nil Value is a no-op.
func (v *Value) Destroy() error {
	if v == nil {
		return nil
	}
	if v.dead {
		return ErrDestroyed
	}
	v.dead = true
	err := v.release(v)
	v.slot, v.str, v.ref = 0, nil, nil
	v.alloc.Release(v.typ)
	return err
}

// Data returns the raw slot: a Slot for scalars, a *string for ValueString
// (nil when absent) and the stored structure for composites. A nil Value
// returns nil. Ownership stays with the Value.
func (v *Value) Data() any {
	if v == nil {
		return nil
	}
	switch {
	case v.typ == ValueString:
		return v.str
	case v.typ.IsComposite():
		return v.ref
	default:
		return v.slot
	}
}

// Type returns the tag of v. A nil Value reports the residual tag NoType.
func (v *Value) Type() Type {
	if v == nil {
		return NoType
	}
	return v.typ
}

// ToString renders v with indent leading spaces followed by tag. A nil Value
// renders as the empty string.
func (v *Value) ToString(tag string, indent int) string {
	if v == nil || v.format == nil {
		return ""
	}
	return v.format(v, tag, indent)
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return v.ToString("", 0)
}

func noopRelease(*Value) error {
	return nil
}

// freeRelease drops a flat allocation: the copied string or a verification record.
func freeRelease(v *Value) error {
	v.str = nil
	v.ref = nil
	return nil
}

func compositeRelease(v *Value) error {
	c, ok := v.ref.(Composite)
	if !ok {
		return nil
	}
	return c.Destroy()
}

func stringSource(data any) (*string, error) {
	switch d := data.(type) {
	case nil:
		return nil, nil
	case string:
		return &d, nil
	case *string:
		return d, nil
	case []byte:
		if d == nil {
			return nil, nil
		}
		s := string(d)
		return &s, nil
	default:
		return nil, fmt.Errorf("%w: string needs string, *string or []byte, got %T", ErrInvalidDatum, data)
	}
}

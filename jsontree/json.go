// Package jsontree is a JSON document tree built from Values. Objects keep
// their members in an art.ART, arrays their elements in a deque.Deque.
package jsontree

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/moneta-go/value"
	"github.com/moneta-go/value/art"
	"github.com/moneta-go/value/deque"
)

// Kind tells whether a JSON node is an object or an array.
type Kind uint8

const (
	KindObject Kind = iota
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

var (
	ErrNotObject = errors.New("json node is not an object")
	ErrNotArray  = errors.New("json node is not an array")
)

// JSON is an object or array node. It owns all of its children.
type JSON struct {
	kind   Kind
	object *art.ART
	array  *deque.Deque
}

// NewObject returns an empty object node.
func NewObject() *JSON {
	return &JSON{kind: KindObject, object: art.New()}
}

// NewArray returns an empty array node.
func NewArray() *JSON {
	return &JSON{kind: KindArray, array: deque.New()}
}

// Kind returns the node kind.
func (j *JSON) Kind() Kind {
	return j.kind
}

// Put stores a member created from t and data under key.
func (j *JSON) Put(key string, t value.Type, data any) error {
	if j.kind != KindObject {
		return fmt.Errorf("put %q: %w", key, ErrNotObject)
	}
	return j.object.Insert(key, t, data)
}

// PutValue stores v under key and takes ownership of it.
func (j *JSON) PutValue(key string, v *value.Value) error {
	if j.kind != KindObject {
		return fmt.Errorf("put %q: %w", key, ErrNotObject)
	}
	return j.object.InsertValue(key, v)
}

// Append adds an element created from t and data.
func (j *JSON) Append(t value.Type, data any) error {
	if j.kind != KindArray {
		return fmt.Errorf("append: %w", ErrNotArray)
	}
	return j.array.Add("", t, data)
}

// AppendValue adds v and takes ownership of it.
func (j *JSON) AppendValue(v *value.Value) error {
	if j.kind != KindArray {
		return fmt.Errorf("append: %w", ErrNotArray)
	}
	j.array.AddValue("", v)
	return nil
}

// Get returns the raw data and tag of the member stored under key.
func (j *JSON) Get(key string) (any, value.Type, bool) {
	if j.kind != KindObject {
		return nil, 0, false
	}
	return j.object.SearchTyped(key)
}

// Contains reports whether an object has a member named key.
func (j *JSON) Contains(key string) bool {
	return j.kind == KindObject && j.object.Contains(key)
}

// Len returns the number of members or elements.
func (j *JSON) Len() int {
	if j.kind == KindObject {
		return j.object.Size()
	}
	return j.array.Size()
}

// Each calls fn for every member (in key order) or element (in order) until
// fn returns false. Elements are passed with an empty key.
func (j *JSON) Each(fn func(key string, v *value.Value) bool) {
	if j.kind == KindObject {
		j.object.Walk(fn)
		return
	}
	it := j.array.Iterator()
	for it.Next() {
		if !fn("", it.Value) {
			return
		}
	}
}

// Destroy destroys every child.
func (j *JSON) Destroy() error {
	if j == nil {
		return nil
	}
	if j.kind == KindObject {
		return j.object.Destroy()
	}
	return j.array.Destroy()
}

// ToString renders the node indented, with quoted member names. Strings are
// quoted without escaping; use JSON for well-formed output.
func (j *JSON) ToString(tag string, indent int) string {
	if j.kind == KindObject {
		return j.object.Render(tag, indent, quotedKey)
	}
	return j.array.ToString(tag, indent)
}

func quotedKey(key string) string {
	return `"` + key + `": `
}

// NewValue wraps j in a ValueJSON. The Value takes ownership of j.
func (j *JSON) NewValue() (*value.Value, error) {
	return value.Create(value.ValueJSON, j)
}

// Package art is an ordered string-keyed map whose entries are owned Values.
// Keys are kept in a radix trie, so iteration is in byte-wise key order.
package art

import (
	iradix "github.com/hashicorp/go-immutable-radix"
	"go.uber.org/multierr"

	"github.com/moneta-go/value"
	"github.com/moneta-go/value/internal/textbuf"
)

// ART maps keys to Values. It owns every stored Value.
type ART struct {
	tree *iradix.Tree
}

// New returns an empty map.
func New() *ART {
	return &ART{tree: iradix.New()}
}

// Insert creates a Value of type t from data and stores it under key.
// A Value already stored under key is destroyed.
func (a *ART) Insert(key string, t value.Type, data any) error {
	v, err := value.Create(t, data)
	if err != nil {
		return err
	}
	return a.InsertValue(key, v)
}

// InsertValue stores v under key and takes ownership of it. Storing the Value
// already held under key is a no-op.
func (a *ART) InsertValue(key string, v *value.Value) error {
	tree, old, updated := a.tree.Insert([]byte(key), v)
	a.tree = tree
	if updated && old != v {
		return old.(*value.Value).Destroy()
	}
	return nil
}

// Search returns the raw data stored under key.
func (a *ART) Search(key string) (any, bool) {
	v, ok := a.Value(key)
	if !ok {
		return nil, false
	}
	return v.Data(), true
}

// SearchTyped returns the raw data stored under key with its tag.
func (a *ART) SearchTyped(key string) (any, value.Type, bool) {
	v, ok := a.Value(key)
	if !ok {
		return nil, 0, false
	}
	return v.Data(), v.Type(), true
}

// Value returns the Value stored under key. The map keeps ownership.
func (a *ART) Value(key string) (*value.Value, bool) {
	raw, ok := a.tree.Get([]byte(key))
	if !ok {
		return nil, false
	}
	return raw.(*value.Value), true
}

// Contains reports whether key is present.
func (a *ART) Contains(key string) bool {
	_, ok := a.tree.Get([]byte(key))
	return ok
}

// Delete removes key and destroys its Value.
func (a *ART) Delete(key string) (bool, error) {
	tree, old, ok := a.tree.Delete([]byte(key))
	if !ok {
		return false, nil
	}
	a.tree = tree
	return true, old.(*value.Value).Destroy()
}

// Size returns the number of entries.
func (a *ART) Size() int {
	if a == nil || a.tree == nil {
		return 0
	}
	return a.tree.Len()
}

// Walk calls fn for every entry in key order until fn returns false.
func (a *ART) Walk(fn func(key string, v *value.Value) bool) {
	a.tree.Root().Walk(func(k []byte, raw interface{}) bool {
		return !fn(string(k), raw.(*value.Value))
	})
}

// WalkPrefix is Walk restricted to keys starting with prefix.
func (a *ART) WalkPrefix(prefix string, fn func(key string, v *value.Value) bool) {
	a.tree.Root().WalkPrefix([]byte(prefix), func(k []byte, raw interface{}) bool {
		return !fn(string(k), raw.(*value.Value))
	})
}

// Keys returns all keys in order.
func (a *ART) Keys() []string {
	keys := make([]string, 0, a.Size())
	a.Walk(func(key string, _ *value.Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Destroy destroys every stored Value and empties the map.
func (a *ART) Destroy() error {
	if a == nil || a.tree == nil {
		return nil
	}
	var err error
	a.Walk(func(_ string, v *value.Value) bool {
		err = multierr.Append(err, v.Destroy())
		return true
	})
	a.tree = iradix.New()
	return err
}

// ToString renders the map as a brace block, one "key: value" line per entry.
func (a *ART) ToString(tag string, indent int) string {
	return a.Render(tag, indent, PlainKey)
}

// PlainKey labels an entry with its raw key.
func PlainKey(key string) string {
	return key + ": "
}

// Render is ToString with a custom entry label.
func (a *ART) Render(tag string, indent int, label func(key string) string) string {
	buf := textbuf.Indent(nil, tag, indent)
	size := a.Size()
	if size == 0 {
		return textbuf.String(textbuf.Append(buf, "{}"))
	}
	buf = textbuf.Append(buf, "{\n")
	i := 0
	a.Walk(func(key string, v *value.Value) bool {
		buf = textbuf.Append(buf, v.ToString(label(key), indent+textbuf.Step))
		i++
		if i < size {
			buf = textbuf.Append(buf, ",")
		}
		buf = textbuf.Append(buf, "\n")
		return true
	})
	buf = textbuf.Indent(buf, "", indent)
	return textbuf.String(textbuf.Append(buf, "}"))
}

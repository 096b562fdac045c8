package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/minio/simdjson-go"

	"github.com/moneta-go/value"
)

// ErrRoot is returned when a document's top level is not an object or array.
var ErrRoot = errors.New("json root must be an object or an array")

// Parse builds a tree from a JSON document. simdjson-go is used when the CPU
// supports it, encoding/json otherwise; both produce the same tree.
//
// Integers become ValueInt64 (ValueUInt64 above MaxInt64), other numbers
// ValueDouble, null an absent ValueString. Invalid UTF-8 in strings and
// member names becomes U+FFFD.
func Parse(data []byte) (*JSON, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("json input is empty")
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, ErrRoot
	}
	if !simdjson.SupportedCPU() {
		return parseStd(trimmed)
	}
	parsed, err := simdjson.Parse(trimmed, nil)
	if err != nil {
		return nil, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return nil, fmt.Errorf("json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return nil, err
	}
	v, err := valueFromIter(typ, root)
	if err != nil {
		return nil, err
	}
	j, ok := v.Data().(*JSON)
	if !ok {
		v.Destroy()
		return nil, ErrRoot
	}
	return j, nil
}

func valueFromIter(typ simdjson.Type, it *simdjson.Iter) (*value.Value, error) {
	switch typ {
	case simdjson.TypeNull:
		return value.Create(value.ValueString, nil)
	case simdjson.TypeBool:
		b, err := it.Bool()
		if err != nil {
			return nil, err
		}
		return value.Create(value.ValueBool, b)
	case simdjson.TypeInt:
		n, err := it.Int()
		if err != nil {
			return nil, err
		}
		return value.Create(value.ValueInt64, n)
	case simdjson.TypeUint:
		n, err := it.Uint()
		if err != nil {
			return nil, err
		}
		if n > math.MaxInt64 {
			return value.Create(value.ValueUInt64, n)
		}
		return value.Create(value.ValueInt64, int64(n))
	case simdjson.TypeFloat:
		f, err := it.Float()
		if err != nil {
			return nil, err
		}
		return value.Create(value.ValueDouble, f)
	case simdjson.TypeString:
		b, err := it.StringBytes()
		if err != nil {
			return nil, err
		}
		return value.Create(value.ValueString, validUTF8(b))
	case simdjson.TypeObject:
		obj, err := it.Object(nil)
		if err != nil {
			return nil, err
		}
		j := NewObject()
		var parseErr error
		err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
			if parseErr != nil {
				return
			}
			child, err := valueFromIter(elem.Type(), &elem)
			if err != nil {
				parseErr = err
				return
			}
			parseErr = j.PutValue(validUTF8(key), child)
		}, nil)
		if err == nil {
			err = parseErr
		}
		if err != nil {
			j.Destroy()
			return nil, err
		}
		return j.NewValue()
	case simdjson.TypeArray:
		arr, err := it.Array(nil)
		if err != nil {
			return nil, err
		}
		j := NewArray()
		iter := arr.Iter()
		for {
			t := iter.Advance()
			if t == simdjson.TypeNone {
				break
			}
			elem := iter
			child, err := valueFromIter(t, &elem)
			if err != nil {
				j.Destroy()
				return nil, err
			}
			j.AppendValue(child)
		}
		return j.NewValue()
	default:
		return nil, fmt.Errorf("unsupported json type: %v", typ)
	}
}

// validUTF8 replaces every byte that is not part of a valid UTF-8 sequence
// with U+FFFD, the same substitution encoding/json makes.
func validUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out := make([]byte, 0, len(b)+8)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			out = utf8.AppendRune(out, utf8.RuneError)
		} else {
			out = append(out, b[:size]...)
		}
		b = b[size:]
	}
	return string(out)
}

// parseStd walks the document with the encoding/json tokenizer.
func parseStd(data []byte) (*JSON, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	v, err := valueFromToken(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		v.Destroy()
		return nil, fmt.Errorf("invalid character after top-level value")
	}
	j, ok := v.Data().(*JSON)
	if !ok {
		v.Destroy()
		return nil, ErrRoot
	}
	return j, nil
}

func valueFromToken(dec *json.Decoder, tok json.Token) (*value.Value, error) {
	switch t := tok.(type) {
	case nil:
		return value.Create(value.ValueString, nil)
	case bool:
		return value.Create(value.ValueBool, t)
	case string:
		return value.Create(value.ValueString, t)
	case json.Number:
		return numberValue(t)
	case json.Delim:
		switch t {
		case '{':
			j := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					j.Destroy()
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					j.Destroy()
					return nil, fmt.Errorf("invalid object key %v", keyTok)
				}
				child, err := nextValue(dec)
				if err == nil {
					err = j.PutValue(key, child)
				}
				if err != nil {
					j.Destroy()
					return nil, err
				}
			}
			if _, err := dec.Token(); err != nil {
				j.Destroy()
				return nil, err
			}
			return j.NewValue()
		case '[':
			j := NewArray()
			for dec.More() {
				child, err := nextValue(dec)
				if err != nil {
					j.Destroy()
					return nil, err
				}
				j.AppendValue(child)
			}
			if _, err := dec.Token(); err != nil {
				j.Destroy()
				return nil, err
			}
			return j.NewValue()
		}
	}
	return nil, fmt.Errorf("unexpected json token %v", tok)
}

func nextValue(dec *json.Decoder) (*value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func numberValue(n json.Number) (*value.Value, error) {
	if i, err := n.Int64(); err == nil {
		return value.Create(value.ValueInt64, i)
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return value.Create(value.ValueUInt64, u)
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid json number: %s", n)
	}
	return value.Create(value.ValueDouble, f)
}

package jsontree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/moneta-go/value"
	"github.com/moneta-go/value/art"
	"github.com/moneta-go/value/deque"
)

// JSON encodes the tree as compact JSON with escaped strings. NaN and
// infinities, which JSON cannot carry, are written as null.
func (j *JSON) JSON() (string, error) {
	var sb strings.Builder
	if err := j.WriteJSON(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteJSON appends compact JSON for j to sb.
func (j *JSON) WriteJSON(sb *strings.Builder) error {
	if j.kind == KindObject {
		return writeObject(sb, j.object)
	}
	return writeArray(sb, j.array)
}

func writeObject(sb *strings.Builder, a *art.ART) error {
	sb.WriteByte('{')
	first := true
	var err error
	a.Walk(func(key string, v *value.Value) bool {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		writeJSONString(sb, key)
		sb.WriteByte(':')
		err = writeJSONValue(sb, v)
		return err == nil
	})
	if err != nil {
		return err
	}
	sb.WriteByte('}')
	return nil
}

func writeArray(sb *strings.Builder, d *deque.Deque) error {
	sb.WriteByte('[')
	it := d.Iterator()
	first := true
	for it.Next() {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		if err := writeJSONValue(sb, it.Value); err != nil {
			return err
		}
	}
	sb.WriteByte(']')
	return nil
}

func writeJSONValue(sb *strings.Builder, v *value.Value) error {
	if v == nil {
		sb.WriteString("null")
		return nil
	}
	switch x := v.Interface().(type) {
	case nil:
		sb.WriteString("null")
	case bool:
		if x {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case int8, int16, int32, int64:
		sb.WriteString(strconv.FormatInt(toInt64(x), 10))
	case uint8, uint16, uint32, uint64:
		sb.WriteString(strconv.FormatUint(toUint64(x), 10))
	case float32:
		writeJSONFloat(sb, float64(x), 32)
	case float64:
		writeJSONFloat(sb, x, 64)
	case string:
		writeJSONString(sb, x)
	case *JSON:
		return x.WriteJSON(sb)
	case *art.ART:
		return writeObject(sb, x)
	case *deque.Deque:
		return writeArray(sb, x)
	default:
		return fmt.Errorf("value type %s has no json form", v.Type())
	}
	return nil
}

func writeJSONFloat(sb *strings.Builder, f float64, bits int) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		sb.WriteString("null")
		return
	}
	sb.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
}

func toInt64(x any) int64 {
	switch n := x.(type) {
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	default:
		return n.(int64)
	}
}

func toUint64(x any) uint64 {
	switch n := x.(type) {
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	default:
		return n.(uint64)
	}
}

func writeJSONString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				sb.WriteString(`\ufffd`)
			} else {
				sb.WriteString(s[i : i+size])
			}
			i += size - 1
			continue
		}
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigit(c >> 4))
				sb.WriteByte(hexDigit(c & 0xF))
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
}

func hexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'A' + (n - 10)
}

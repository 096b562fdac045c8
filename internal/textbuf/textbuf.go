// Package textbuf holds the growable text buffer helpers shared by the
// ToString implementations of values and their collaborators.
package textbuf

import (
	"strconv"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// Append writes s to buf and returns it. A nil buf starts an empty pooled buffer.
func Append(buf *bytebufferpool.ByteBuffer, s string) *bytebufferpool.ByteBuffer {
	if buf == nil {
		buf = bytebufferpool.Get()
	}
	buf.WriteString(s)
	return buf
}

// Indent writes indent spaces and, when present, the tag label.
func Indent(buf *bytebufferpool.ByteBuffer, tag string, indent int) *bytebufferpool.ByteBuffer {
	if buf == nil {
		buf = bytebufferpool.Get()
	}
	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}
	if tag != "" {
		buf.WriteString(tag)
	}
	return buf
}

// AppendInt writes the decimal form of n.
func AppendInt(buf *bytebufferpool.ByteBuffer, n int64) *bytebufferpool.ByteBuffer {
	if buf == nil {
		buf = bytebufferpool.Get()
	}
	var tmp [24]byte
	buf.Write(strconv.AppendInt(tmp[:0], n, 10))
	return buf
}

// AppendUint writes the decimal form of n.
func AppendUint(buf *bytebufferpool.ByteBuffer, n uint64) *bytebufferpool.ByteBuffer {
	if buf == nil {
		buf = bytebufferpool.Get()
	}
	var tmp [24]byte
	buf.Write(strconv.AppendUint(tmp[:0], n, 10))
	return buf
}

// String copies the buffer contents out and returns buf to the pool.
func String(buf *bytebufferpool.ByteBuffer) string {
	if buf == nil {
		return ""
	}
	s := buf.String()
	bytebufferpool.Put(buf)
	return s
}

// Step is the number of spaces added per nesting level.
const Step = 2

package value

import (
	"math"
	"strconv"

	"github.com/moneta-go/value/internal/textbuf"
)

// formatterFor maps every tag to its formatter. Unrecognized tags print nothing.
func formatterFor(t Type) formatFunc {
	switch t {
	case ValueInt8:
		return int8Format
	case ValueUInt8:
		return uint8Format
	case ValueInt16:
		return int16Format
	case ValueUInt16:
		return uint16Format
	case ValueInt32:
		return int32Format
	case ValueUInt32:
		return uint32Format
	case ValueInt64:
		return int64Format
	case ValueUInt64:
		return uint64Format
	case ValueFloat:
		return floatFormat
	case ValueDouble:
		return doubleFormat
	case ValueBool:
		return boolFormat
	case ValueString:
		return stringFormat
	case ValueJSON, ValueDeque, ValueART, ValueVerifyEntry:
		return compositeFormat
	default:
		return noopFormat
	}
}

func noopFormat(*Value, string, int) string {
	return ""
}

func signedFormat(n int64, tag string, indent int) string {
	buf := textbuf.Indent(nil, tag, indent)
	return textbuf.String(textbuf.AppendInt(buf, n))
}

func unsignedFormat(n uint64, tag string, indent int) string {
	buf := textbuf.Indent(nil, tag, indent)
	return textbuf.String(textbuf.AppendUint(buf, n))
}

func int8Format(v *Value, tag string, indent int) string {
	return signedFormat(int64(int8(v.slot)), tag, indent)
}

func uint8Format(v *Value, tag string, indent int) string {
	return unsignedFormat(uint64(uint8(v.slot)), tag, indent)
}

func int16Format(v *Value, tag string, indent int) string {
	return signedFormat(int64(int16(v.slot)), tag, indent)
}

func uint16Format(v *Value, tag string, indent int) string {
	return unsignedFormat(uint64(uint16(v.slot)), tag, indent)
}

func int32Format(v *Value, tag string, indent int) string {
	return signedFormat(int64(int32(v.slot)), tag, indent)
}

func uint32Format(v *Value, tag string, indent int) string {
	return unsignedFormat(uint64(uint32(v.slot)), tag, indent)
}

func int64Format(v *Value, tag string, indent int) string {
	return signedFormat(int64(v.slot), tag, indent)
}

func uint64Format(v *Value, tag string, indent int) string {
	return unsignedFormat(uint64(v.slot), tag, indent)
}

func floatFormat(v *Value, tag string, indent int) string {
	buf := textbuf.Indent(nil, tag, indent)
	return textbuf.String(textbuf.Append(buf, fixed(float64(ToFloat(v.slot)))))
}

func doubleFormat(v *Value, tag string, indent int) string {
	buf := textbuf.Indent(nil, tag, indent)
	return textbuf.String(textbuf.Append(buf, fixed(ToDouble(v.slot))))
}

// fixed renders f like printf's %f.
func fixed(f float64) string {
	switch {
	case math.IsNaN(f):
		if math.Signbit(f) {
			return "-nan"
		}
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

func boolFormat(v *Value, tag string, indent int) string {
	buf := textbuf.Indent(nil, tag, indent)
	if v.slot != 0 {
		return textbuf.String(textbuf.Append(buf, "true"))
	}
	return textbuf.String(textbuf.Append(buf, "false"))
}

// stringFormat quotes the text without escaping.
func stringFormat(v *Value, tag string, indent int) string {
	buf := textbuf.Indent(nil, tag, indent)
	if v.str == nil {
		return textbuf.String(textbuf.Append(buf, "null"))
	}
	buf.WriteByte('"')
	buf.WriteString(*v.str)
	buf.WriteByte('"')
	return textbuf.String(buf)
}

// compositeFormat hands tag and indent to the collaborator, which writes its
// own prefix.
func compositeFormat(v *Value, tag string, indent int) string {
	f, ok := v.ref.(Formatter)
	if !ok {
		return ""
	}
	return f.ToString(tag, indent)
}

package value

import "strconv"

// Type is the tag identifying the payload kind held by a Value.
type Type uint8

const (
	ValueInt8 Type = iota
	ValueUInt8
	ValueInt16
	ValueUInt16
	ValueInt32
	ValueUInt32
	ValueInt64
	ValueUInt64
	ValueFloat
	ValueDouble
	ValueBool
	ValueString
	ValueJSON
	ValueDeque
	ValueART
	ValueVerifyEntry
)

// NoType is the residual tag reported for a nil Value.
const NoType Type = 255

var typeNames = [...]string{
	ValueInt8:        "int8",
	ValueUInt8:       "uint8",
	ValueInt16:       "int16",
	ValueUInt16:      "uint16",
	ValueInt32:       "int32",
	ValueUInt32:      "uint32",
	ValueInt64:       "int64",
	ValueUInt64:      "uint64",
	ValueFloat:       "float",
	ValueDouble:      "double",
	ValueBool:        "bool",
	ValueString:      "string",
	ValueJSON:        "json",
	ValueDeque:       "deque",
	ValueART:         "art",
	ValueVerifyEntry: "verify_entry",
}

// String returns the tag name, or "type(N)" for unrecognized tags.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// ParseType returns the tag whose name is s.
func ParseType(s string) (Type, bool) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), true
		}
	}
	return 0, false
}

// Known reports whether t is one of the defined tags.
func (t Type) Known() bool {
	return int(t) < len(typeNames)
}

// IsScalar reports whether the slot of t holds a value with no ownership.
func (t Type) IsScalar() bool {
	return t <= ValueBool
}

// IsComposite reports whether t refers to a collaborator structure.
func (t Type) IsComposite() bool {
	switch t {
	case ValueJSON, ValueDeque, ValueART, ValueVerifyEntry:
		return true
	default:
		return false
	}
}

// Owning reports whether a Value of this tag releases a resource on Destroy.
func (t Type) Owning() bool {
	return t == ValueString || t.IsComposite()
}

// width returns the slot width in bits used by scalar tags.
func (t Type) width() int {
	switch t {
	case ValueInt8, ValueUInt8:
		return 8
	case ValueInt16, ValueUInt16:
		return 16
	case ValueInt32, ValueUInt32, ValueFloat:
		return 32
	case ValueInt64, ValueUInt64, ValueDouble:
		return 64
	case ValueBool:
		return 1
	default:
		return 0
	}
}

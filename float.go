package value

import "math"

// FromFloat stores the bit pattern of f in the low 32 bits of a Slot.
func FromFloat(f float32) Slot {
	return Slot(math.Float32bits(f))
}

// ToFloat recovers the float32 whose bit pattern is held in the low 32 bits of s.
func ToFloat(s Slot) float32 {
	return math.Float32frombits(uint32(s))
}

// FromDouble stores the bit pattern of f in a Slot.
func FromDouble(f float64) Slot {
	return Slot(math.Float64bits(f))
}

// ToDouble recovers the float64 whose bit pattern is held in s.
func ToDouble(s Slot) float64 {
	return math.Float64frombits(uint64(s))
}

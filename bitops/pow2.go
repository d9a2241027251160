package bitops

// IsPowerOfTwoN reports whether exactly one bit is set in v.
// N is one of 8, 16, 32, 64.
func IsPowerOfTwo8(v uint8) bool   { return v != 0 && v&(v-1) == 0 }
func IsPowerOfTwo16(v uint16) bool { return v != 0 && v&(v-1) == 0 }
func IsPowerOfTwo32(v uint32) bool { return v != 0 && v&(v-1) == 0 }
func IsPowerOfTwo64(v uint64) bool { return v != 0 && v&(v-1) == 0 }

// IsPowerOfTwoIntN reports whether v is a positive power of two. The sign bit
// on its own is not a power of two of a signed type.
func IsPowerOfTwoInt8(v int8) bool   { return v > 0 && v&(v-1) == 0 }
func IsPowerOfTwoInt16(v int16) bool { return v > 0 && v&(v-1) == 0 }
func IsPowerOfTwoInt32(v int32) bool { return v > 0 && v&(v-1) == 0 }
func IsPowerOfTwoInt64(v int64) bool { return v > 0 && v&(v-1) == 0 }

// CeilPowerOfTwoN returns the smallest power of two that is >= v. 0 and 1
// both round to 1. If the result does not fit in N bits, it wraps to 0.
func CeilPowerOfTwo8(v uint8) uint8 {
	if v <= 1 {
		return 1
	}
	return HighBit8(v-1) << 1
}

func CeilPowerOfTwo16(v uint16) uint16 {
	if v <= 1 {
		return 1
	}
	return HighBit16(v-1) << 1
}

func CeilPowerOfTwo32(v uint32) uint32 {
	if v <= 1 {
		return 1
	}
	return HighBit32(v-1) << 1
}

func CeilPowerOfTwo64(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	return HighBit64(v-1) << 1
}

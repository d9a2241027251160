package bitops

var (
	highPos8Table [256]uint8
	reverse8Table [256]uint8
)

func init() {
	// highPos8Table[0] is NoBit8; NoBit8+1 wraps to 0 for highPos8Table[1].
	highPos8Table[0] = NoBit8
	for i := 1; i < 256; i++ {
		highPos8Table[i] = highPos8Table[i>>1] + 1
		reverse8Table[i] = reverse8Table[i>>1]>>1 | uint8(i&1)<<7
	}
}

// LowBitN returns v with only its least significant set bit retained.
// N is one of 8, 16, 32, 64. The result is 0 for v == 0.
func LowBit8(v uint8) uint8 { return v & -v }

// HighBitN returns v with only its most significant set bit retained.
// N is one of 8, 16, 32, 64. The result is 0 for v == 0.
func HighBit8(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return 1 << highPos8Table[v]
}

// LowBitPositionN returns the 0-based index of the least significant set bit
// in v. N is one of 8, 16, 32, 64. The result is NoBitN for v == 0.
func LowBitPosition8(v uint8) uint8 { return highPos8Table[v&-v] }

// HighBitPositionN returns the 0-based index of the most significant set bit
// in v. N is one of 8, 16, 32, 64. The result is NoBitN for v == 0.
func HighBitPosition8(v uint8) uint8 { return highPos8Table[v] }

// TrailingZeroBitsN returns the number of trailing zero bits in v.
// N is one of 8, 16, 32, 64. The result is N for v == 0.
func TrailingZeroBits8(v uint8) uint8 {
	if v == 0 {
		return 8
	}
	return LowBitPosition8(v)
}

// LeadingZeroBitsN returns the number of leading zero bits in v.
// N is one of 8, 16, 32, 64. The result is N for v == 0.
func LeadingZeroBits8(v uint8) uint8 {
	if v == 0 {
		return 8
	}
	return 7 - highPos8Table[v]
}

// BitCountN returns the number of set bits in v. N is one of 8, 16, 32, 64.
func BitCount8(v uint8) uint8 {
	v = v - ((v >> 1) & 0x55)
	v = (v & 0x33) + ((v >> 2) & 0x33)
	return (v + (v >> 4)) & 0x0F
}

// ReverseBitsN returns v with its bits in reversed order.
// N is one of 8, 16, 32, 64.
func ReverseBits8(v uint8) uint8 { return reverse8Table[v] }

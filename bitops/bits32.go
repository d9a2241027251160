package bitops

// deBruijn32 is the B(2, 5) De Bruijn sequence: multiplying it by an
// isolated bit 1<<i leaves a distinct 5-bit window in the top bits for
// every i.
const deBruijn32 = 0x077CB531

var deBruijn32Table [32]uint8

func init() {
	for i := uint(0); i < 32; i++ {
		deBruijn32Table[(uint32(1)<<i)*deBruijn32>>27] = uint8(i)
	}
}

func LowBit32(v uint32) uint32 { return v & -v }

func HighBit32(v uint32) uint32 {
	if v == 0 {
		return 0
	}
	return 1 << HighBitPosition32(v)
}

func LowBitPosition32(v uint32) uint32 {
	if v == 0 {
		return NoBit32
	}
	return uint32(deBruijn32Table[(v&-v)*deBruijn32>>27])
}

func HighBitPosition32(v uint32) uint32 {
	if hi := uint16(v >> 16); hi != 0 {
		return 16 + uint32(HighBitPosition16(hi))
	}
	if lo := uint16(v); lo != 0 {
		return uint32(HighBitPosition16(lo))
	}
	return NoBit32
}

func TrailingZeroBits32(v uint32) uint32 {
	if v == 0 {
		return 32
	}
	return LowBitPosition32(v)
}

func LeadingZeroBits32(v uint32) uint32 {
	if v == 0 {
		return 32
	}
	return 31 - HighBitPosition32(v)
}

func BitCount32(v uint32) uint32 {
	v = v - ((v >> 1) & 0x55555555)
	v = (v & 0x33333333) + ((v >> 2) & 0x33333333)
	return (((v + (v >> 4)) & 0x0F0F0F0F) * 0x01010101) >> 24
}

func ReverseBits32(v uint32) uint32 {
	return uint32(ReverseBits16(uint16(v)))<<16 | uint32(ReverseBits16(uint16(v>>16)))
}

package bitops

func LowBit64(v uint64) uint64 { return v & -v }

func HighBit64(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	return 1 << HighBitPosition64(v)
}

func LowBitPosition64(v uint64) uint64 {
	if lo := uint32(v); lo != 0 {
		return uint64(LowBitPosition32(lo))
	}
	if hi := uint32(v >> 32); hi != 0 {
		return 32 + uint64(LowBitPosition32(hi))
	}
	return NoBit64
}

func HighBitPosition64(v uint64) uint64 {
	if hi := uint32(v >> 32); hi != 0 {
		return 32 + uint64(HighBitPosition32(hi))
	}
	if lo := uint32(v); lo != 0 {
		return uint64(HighBitPosition32(lo))
	}
	return NoBit64
}

func TrailingZeroBits64(v uint64) uint64 {
	if v == 0 {
		return 64
	}
	return LowBitPosition64(v)
}

func LeadingZeroBits64(v uint64) uint64 {
	if v == 0 {
		return 64
	}
	return 63 - HighBitPosition64(v)
}

func BitCount64(v uint64) uint64 {
	v = v - ((v >> 1) & 0x5555555555555555)
	v = (v & 0x3333333333333333) + ((v >> 2) & 0x3333333333333333)
	return (((v + (v >> 4)) & 0x0F0F0F0F0F0F0F0F) * 0x0101010101010101) >> 56
}

func ReverseBits64(v uint64) uint64 {
	return uint64(ReverseBits32(uint32(v)))<<32 | uint64(ReverseBits32(uint32(v>>32)))
}

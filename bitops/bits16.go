package bitops

func LowBit16(v uint16) uint16 { return v & -v }

func HighBit16(v uint16) uint16 {
	if v == 0 {
		return 0
	}
	return 1 << HighBitPosition16(v)
}

func LowBitPosition16(v uint16) uint16 {
	if lo := uint8(v); lo != 0 {
		return uint16(LowBitPosition8(lo))
	}
	if hi := uint8(v >> 8); hi != 0 {
		return 8 + uint16(LowBitPosition8(hi))
	}
	return NoBit16
}

func HighBitPosition16(v uint16) uint16 {
	if hi := uint8(v >> 8); hi != 0 {
		return 8 + uint16(highPos8Table[hi])
	}
	if lo := uint8(v); lo != 0 {
		return uint16(highPos8Table[lo])
	}
	return NoBit16
}

func TrailingZeroBits16(v uint16) uint16 {
	if v == 0 {
		return 16
	}
	return LowBitPosition16(v)
}

func LeadingZeroBits16(v uint16) uint16 {
	if v == 0 {
		return 16
	}
	return 15 - HighBitPosition16(v)
}

func BitCount16(v uint16) uint16 {
	v = v - ((v >> 1) & 0x5555)
	v = (v & 0x3333) + ((v >> 2) & 0x3333)
	v = (v + (v >> 4)) & 0x0F0F
	return (v + (v >> 8)) & 0x1F
}

func ReverseBits16(v uint16) uint16 {
	return uint16(reverse8Table[uint8(v)])<<8 | uint16(reverse8Table[uint8(v>>8)])
}

package bitops

// The signed variants below reinterpret v as the unsigned type of the same
// width. Positions and counts are returned unsigned so that NoBitN and the
// zero-input counts are the same as for the unsigned functions.

func LowBitInt8(v int8) int8            { return int8(LowBit8(uint8(v))) }
func HighBitInt8(v int8) int8           { return int8(HighBit8(uint8(v))) }
func ReverseBitsInt8(v int8) int8       { return int8(ReverseBits8(uint8(v))) }
func LowBitPositionInt8(v int8) uint8   { return LowBitPosition8(uint8(v)) }
func HighBitPositionInt8(v int8) uint8  { return HighBitPosition8(uint8(v)) }
func TrailingZeroBitsInt8(v int8) uint8 { return TrailingZeroBits8(uint8(v)) }
func LeadingZeroBitsInt8(v int8) uint8  { return LeadingZeroBits8(uint8(v)) }
func BitCountInt8(v int8) uint8         { return BitCount8(uint8(v)) }

func LowBitInt16(v int16) int16            { return int16(LowBit16(uint16(v))) }
func HighBitInt16(v int16) int16           { return int16(HighBit16(uint16(v))) }
func ReverseBitsInt16(v int16) int16       { return int16(ReverseBits16(uint16(v))) }
func LowBitPositionInt16(v int16) uint16   { return LowBitPosition16(uint16(v)) }
func HighBitPositionInt16(v int16) uint16  { return HighBitPosition16(uint16(v)) }
func TrailingZeroBitsInt16(v int16) uint16 { return TrailingZeroBits16(uint16(v)) }
func LeadingZeroBitsInt16(v int16) uint16  { return LeadingZeroBits16(uint16(v)) }
func BitCountInt16(v int16) uint16         { return BitCount16(uint16(v)) }

func LowBitInt32(v int32) int32            { return int32(LowBit32(uint32(v))) }
func HighBitInt32(v int32) int32           { return int32(HighBit32(uint32(v))) }
func ReverseBitsInt32(v int32) int32       { return int32(ReverseBits32(uint32(v))) }
func LowBitPositionInt32(v int32) uint32   { return LowBitPosition32(uint32(v)) }
func HighBitPositionInt32(v int32) uint32  { return HighBitPosition32(uint32(v)) }
func TrailingZeroBitsInt32(v int32) uint32 { return TrailingZeroBits32(uint32(v)) }
func LeadingZeroBitsInt32(v int32) uint32  { return LeadingZeroBits32(uint32(v)) }
func BitCountInt32(v int32) uint32         { return BitCount32(uint32(v)) }

func LowBitInt64(v int64) int64            { return int64(LowBit64(uint64(v))) }
func HighBitInt64(v int64) int64           { return int64(HighBit64(uint64(v))) }
func ReverseBitsInt64(v int64) int64       { return int64(ReverseBits64(uint64(v))) }
func LowBitPositionInt64(v int64) uint64   { return LowBitPosition64(uint64(v)) }
func HighBitPositionInt64(v int64) uint64  { return HighBitPosition64(uint64(v)) }
func TrailingZeroBitsInt64(v int64) uint64 { return TrailingZeroBits64(uint64(v)) }
func LeadingZeroBitsInt64(v int64) uint64  { return LeadingZeroBits64(uint64(v)) }
func BitCountInt64(v int64) uint64         { return BitCount64(uint64(v)) }

/*
Package bitops provides bit queries and transforms over the fixed-width
integer types: lowest/highest set bit, their positions, leading and trailing
zero counts, population count, bit reversal and power-of-two tests.

There is one function per operation, width and signedness, named in the
style of math/bits:

	HighBitPosition8(v uint8) uint8
	HighBitPositionInt8(v int8) uint8
	...
	HighBitPosition64(v uint64) uint64
	HighBitPositionInt64(v int64) uint64

Signed variants reinterpret the bit pattern of the unsigned variant of the
same width. Position and count functions always return the unsigned type of
the same width, so the "no bit set" sentinel (NoBit8 .. NoBit64, the largest
value of that type) is identical for both signednesses and can never be
mistaken for a valid position.

Wider functions are composed from narrower ones rather than scanning bit by
bit: 8-bit positions and reversals come from 256-entry lookup tables, 16-bit
values are split into two 8-bit halves, the 32-bit lowest position uses a
De Bruijn multiplicative hash, and 64-bit values are split into 32-bit
halves.
*/
package bitops

// NoBitN is returned by LowBitPositionN and HighBitPositionN when no bit is
// set in the input.
const (
	NoBit8  = ^uint8(0)
	NoBit16 = ^uint16(0)
	NoBit32 = ^uint32(0)
	NoBit64 = ^uint64(0)
)

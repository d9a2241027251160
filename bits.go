package num

import "github.com/shabbyrobe/go-bitnum/bitops"

// The arithmetic core reaches the bit primitives only through these
// functions. highBitPos64 must not be called with 0.

func leadingZeros64(v uint64) uint  { return uint(bitops.LeadingZeroBits64(v)) }
func trailingZeros64(v uint64) uint { return uint(bitops.TrailingZeroBits64(v)) }
func highBitPos64(v uint64) uint    { return uint(bitops.HighBitPosition64(v)) }
func bitCount64(v uint64) uint      { return uint(bitops.BitCount64(v)) }
func isPowerOfTwo64(v uint64) bool  { return bitops.IsPowerOfTwo64(v) }

package num

// mul64to128 returns the full 128-bit product of u and v. Each operand is
// split into 32-bit halves and the four partial products are summed with
// their carries (Warren, Hacker's Delight, 8-2). None of the intermediate
// sums can exceed 64 bits.
func mul64to128(u, v uint64) (hi, lo uint64) {
	u0, u1 := u&0xffffffff, u>>32
	v0, v1 := v&0xffffffff, v>>32

	w0 := u0 * v0
	t := u1*v0 + (w0 >> 32)
	w1 := (t & 0xffffffff) + u0*v1
	w2 := t >> 32

	hi = u1*v1 + w2 + (w1 >> 32)
	lo = (w1 << 32) | (w0 & 0xffffffff)
	return hi, lo
}

// MulUint64 returns the exact product of two uint64s, which always fits in a
// U128.
func MulUint64(a, b uint64) U128 {
	hi, lo := mul64to128(a, b)
	return U128{hi: hi, lo: lo}
}

// Mul returns u*n, wrapping modulo 2^128 like Go's built-in unsigned types.
// See MulOverflow to detect when that happens.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = mul64to128(u.lo, n.lo)

	// Only the low halves of the cross products land below bit 128; the rest
	// of the true product is discarded.
	dest.hi += u.lo*n.hi + u.hi*n.lo
	return dest
}

func (u U128) Mul64(n uint64) (dest U128) {
	dest.hi, dest.lo = mul64to128(u.lo, n)
	dest.hi += u.hi * n
	return dest
}

func (u U128) Square() U128 { return u.Mul(u) }

// MulOverflow returns u*n modulo 2^128 and whether the true product needed
// more than 128 bits.
func (u U128) MulOverflow(n U128) (dest U128, overflow bool) {
	hi, lo := mul64to128(u.lo, n.lo)
	h1, l1 := mul64to128(u.lo, n.hi)
	h2, l2 := mul64to128(u.hi, n.lo)

	overflow = (u.hi != 0 && n.hi != 0) || h1 != 0 || h2 != 0

	t := hi + l1
	overflow = overflow || t < hi
	hi = t + l2
	overflow = overflow || hi < t

	return U128{hi: hi, lo: lo}, overflow
}

package num

import "errors"

// ErrDivisionByZero is the value every division and remainder method panics
// with when the divisor is zero.
var ErrDivisionByZero = errors.New("num: division by zero")

const (
	// When the high limb of the remainder is at most this many bits wider
	// than the divisor's, the quotient is below 1<<(divSubtractGap+1) and is
	// found by repeated subtraction.
	divSubtractGap = 3

	// Divisors whose high limb has more than this many significant bits get
	// their quotient estimate from a plain divide of the high limbs.
	divWideHighBits = 10

	// Narrow divisors are shifted down to this many significant bits before
	// estimating, leaving room to round them up by one.
	divNarrowBits = 32
)

// QuoRem32 returns the quotient and remainder of u/by. If by == 0, it panics
// with ErrDivisionByZero.
func (u U128) QuoRem32(by uint32) (q U128, r uint32) {
	if by == 0 {
		panic(ErrDivisionByZero)
	}
	q.hi, q.lo, r = quoRem128by32(u.hi, u.lo, by)
	return q, r
}

func (u U128) Quo32(by uint32) (q U128) {
	q, _ = u.QuoRem32(by)
	return q
}

func (u U128) Rem32(by uint32) (r uint32) {
	_, r = u.QuoRem32(by)
	return r
}

// QuoRem64 returns the quotient and remainder of u/by. If by == 0, it panics
// with ErrDivisionByZero.
func (u U128) QuoRem64(by uint64) (q U128, r uint64) {
	if by == 0 {
		panic(ErrDivisionByZero)
	}
	q.hi, q.lo, r = quoRem128by64(u.hi, u.lo, by)
	return q, r
}

func (u U128) Quo64(by uint64) (q U128) {
	q, _ = u.QuoRem64(by)
	return q
}

func (u U128) Rem64(by uint64) (r uint64) {
	_, r = u.QuoRem64(by)
	return r
}

// Quo returns the quotient u/by for by != 0. If by == 0, it panics with
// ErrDivisionByZero. Quo implements truncated division (like Go); see QuoRem
// for more details.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, it panics with
// ErrDivisionByZero.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, it
// panics with ErrDivisionByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by      with the result truncated to zero
//	r = u - by*q
//
// Divisors that fit in 64 bits are handed to QuoRem64.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 {
		if by.lo == 0 {
			panic(ErrDivisionByZero)
		}
		q.hi, q.lo, r.lo = quoRem128by64(u.hi, u.lo, by.lo)
		return q, r
	}

	if u.LessThan(by) {
		return q, u // it's 100% remainder
	}

	if by.lo == 0 && isPowerOfTwo64(by.hi) {
		q = u.Rsh(64 + trailingZeros64(by.hi))
		r = U128{hi: u.hi & (by.hi - 1), lo: u.lo}
		return q, r
	}

	return quoRem128by128(u, by)
}

// quoRem128by32 is schoolbook division of hi:lo by a single base-2^32 digit.
// After the high limb is divided, every partial dividend is below by<<32, so
// each step is one 64-bit divide with a 32-bit quotient digit.
func quoRem128by32(hi, lo uint64, by uint32) (qhi, qlo uint64, r uint32) {
	d := uint64(by)

	qhi = hi / d
	t := (hi%d)<<32 | lo>>32
	q1 := t / d
	t = (t%d)<<32 | lo&0xffffffff
	q0 := t / d

	return qhi, q1<<32 | q0, uint32(t % d)
}

func quoRem128by64(hi, lo, by uint64) (qhi, qlo, r uint64) {
	if hi == 0 {
		return 0, lo / by, lo % by
	}

	if isPowerOfTwo64(by) {
		q := U128{hi: hi, lo: lo}.Rsh(trailingZeros64(by))
		return q.hi, q.lo, lo & (by - 1)
	}

	if hi >= by {
		qhi, hi = hi/by, hi%by
	}
	qlo, r = divlu(hi, lo, by)
	return qhi, qlo, r
}

// divlu divides hi:lo by v, where hi < v so that the quotient fits in 64 bits.
// It is Knuth's Algorithm D for a two-digit divisor in base 2^32 (Warren,
// Hacker's Delight, 9-4, divlu).
//
// v is normalized so its top bit is set. Each quotient digit is then
// estimated from the top two dividend digits and the top divisor digit, and
// the estimate is at most 2 too large, so each correction loop runs at most
// twice.
func divlu(hi, lo, v uint64) (q, r uint64) {
	const b = 1 << 32

	s := leadingZeros64(v)
	v <<= s
	vn1, vn0 := v>>32, v&(b-1)

	// lo>>64 is 0 in Go, so s == 0 needs no special case.
	un32 := hi<<s | lo>>(64-s)
	un10 := lo << s
	un1, un0 := un10>>32, un10&(b-1)

	q1 := un32 / vn1
	rhat := un32 - q1*vn1
	for q1 >= b || q1*vn0 > rhat<<32|un1 {
		q1--
		rhat += vn1
		if rhat >= b {
			break
		}
	}

	un21 := un32<<32 + un1 - q1*v

	q0 := un21 / vn1
	rhat = un21 - q0*vn1
	for q0 >= b || q0*vn0 > rhat<<32|un0 {
		q0--
		rhat += vn1
		if rhat >= b {
			break
		}
	}

	return q1<<32 | q0, (un21<<32 + un0 - q0*v) >> s
}

// quoRem128by128 divides u by a divisor with a non-zero high limb; u must be
// >= by.
//
// Each round takes an estimate of r/by that is at least 1 and never larger
// than the true quotient, subtracts by*estimate from r and adds the estimate
// to q. r stays non-negative and strictly decreases every round, so the loop
// ends, with q exact, as soon as r < by.
func quoRem128by128(u, by U128) (q, r U128) {
	r = u
	byPos := highBitPos64(by.hi)

	for !r.LessThan(by) {
		// r >= by implies r.hi >= by.hi, so gap cannot underflow.
		gap := highBitPos64(r.hi) - byPos

		if gap <= divSubtractGap {
			for !r.LessThan(by) {
				r = r.Sub(by)
				q = q.Inc()
			}
			return q, r
		}

		var est U128
		if byPos >= divWideHighBits {
			// by < (by.hi+1)<<64 and r >= r.hi<<64, so this never overshoots.
			// gap > divSubtractGap keeps by.hi+1 from overflowing.
			est.lo = r.hi / (by.hi + 1)
		} else {
			est = quoEstimateNarrow(r, by, byPos)
		}

		q = q.Add(est)
		r = r.Sub(by.Mul(est))
	}
	return q, r
}

// quoEstimateNarrow estimates r/by for a divisor whose high limb is narrow.
// by is shifted down to its top divNarrowBits bits and rounded up, r is
// shifted by the same amount and then down again until it fits in 64 bits;
// one 64-bit divide gives the estimate, which is shifted back up.
//
// Rounding the divisor up and the dividend down means the result never
// exceeds r/by. With r at least 1<<(divSubtractGap+1) times by, the shifted
// dividend is always larger than the rounded divisor, so the result is never 0.
func quoEstimateNarrow(r, by U128, byPos uint) U128 {
	k := byPos + 65 - divNarrowBits
	d := by.Rsh(k).lo + 1

	n := r.Rsh(k)
	m := 64 - leadingZeros64(n.hi)
	return U128From64(n.Rsh(m).lo / d).Lsh(m)
}

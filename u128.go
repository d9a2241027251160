package num

import (
	"fmt"
	"math/big"
	"strconv"
)

// U128 is an unsigned 128-bit integer held as two 64-bit limbs.
//
// U128 is a value type. No method modifies its receiver (except the
// Unmarshal methods, which decode into their destination), so a U128 can be
// shared between goroutines without locking.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// U128FromString creates a U128 from a decimal string. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromString(s string) (out U128, accurate bool, err error) {
	if len(s) == 0 {
		return out, false, fmt.Errorf("num: u128 string %q invalid", s)
	}

	accurate = true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return U128{}, false, fmt.Errorf("num: u128 string %q invalid", s)
		}
		if !accurate {
			continue // keep validating the rest of the input
		}

		digit := uint64(c - '0')
		if out.GreaterThan(maxU128Div10) || (out == maxU128Div10 && digit > 5) {
			out, accurate = MaxU128, false
			continue
		}
		out = out.Mul64(10).Add64(digit)
	}
	return out, accurate, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'; negative numbers return 0 and 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}

	var shift uint
	for _, w := range v.Bits() {
		out = out.Or(U128From64(uint64(w)).Lsh(shift))
		shift += intSize
	}
	return out, true
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == ZeroU128 }

// High returns the most significant 64 bits of u.
func (u U128) High() uint64 { return u.hi }

// Low returns the least significant 64 bits of u.
func (u U128) Low() uint64 { return u.lo }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// IsUint64 reports whether u can be represented as a uint64, i.e. whether its
// high limb is zero.
func (u U128) IsUint64() bool { return u.hi == 0 }

// AsUint64 truncates the U128 to fit in a uint64. See IsUint64() if you want
// to check before you convert.
func (u U128) AsUint64() uint64 { return u.lo }

func (u U128) IntoBigInt(b *big.Int) {
	words := b.Bits()[:0]
	if intSize == 64 {
		words = append(words, big.Word(u.lo), big.Word(u.hi))
	} else {
		words = append(words,
			big.Word(u.lo), big.Word(u.lo>>32),
			big.Word(u.hi), big.Word(u.hi>>32))
	}
	b.SetBits(words)
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// String returns the decimal representation of u.
func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}

	// 39 digits at most: a leading group of up to two digits followed by two
	// zero-padded groups of 19.
	var buf = make([]byte, 0, 39)
	q, r0 := u.QuoRem64(pow10To19)
	if q.hi == 0 {
		buf = strconv.AppendUint(buf, q.lo, 10)
	} else {
		q, r1 := q.QuoRem64(pow10To19)
		buf = strconv.AppendUint(buf, q.lo, 10)
		buf = appendPadded19(buf, r1)
	}
	buf = appendPadded19(buf, r0)
	return string(buf)
}

func appendPadded19(dst []byte, v uint64) []byte {
	var digits [19]byte
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, digits[:]...)
}

// HexString returns u in lowercase hexadecimal without a prefix. Values that
// fit in 64 bits render the low limb alone; otherwise the low limb is
// zero-padded to 16 digits after the high limb.
func (u U128) HexString() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 16)
	}
	lo := strconv.FormatUint(u.lo, 16)
	buf := make([]byte, 0, 32)
	buf = strconv.AppendUint(buf, u.hi, 16)
	for i := len(lo); i < 16; i++ {
		buf = append(buf, '0')
	}
	return string(append(buf, lo...))
}

func (u U128) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	u.AsBigInt().Format(s, c)
}

func (u U128) Equal(n U128) bool { return u.hi == n.hi && u.lo == n.lo }

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool { return !u.LessThan(n) }

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool { return !u.GreaterThan(n) }

func (u U128) And(n U128) U128    { return U128{hi: u.hi & n.hi, lo: u.lo & n.lo} }
func (u U128) AndNot(n U128) U128 { return U128{hi: u.hi &^ n.hi, lo: u.lo &^ n.lo} }
func (u U128) Or(n U128) U128     { return U128{hi: u.hi | n.hi, lo: u.lo | n.lo} }
func (u U128) Xor(n U128) U128    { return U128{hi: u.hi ^ n.hi, lo: u.lo ^ n.lo} }
func (u U128) Not() U128          { return U128{hi: ^u.hi, lo: ^u.lo} }

// Lsh returns u<<n. Shifting by 128 or more yields 0, as it does for Go's
// unsigned integer types.
func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo << (n - 64)
	}
	return v
}

// Rsh returns u>>n. Shifting by 128 or more yields 0.
func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi >> (n - 64)
	}
	return v
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return leadingZeros64(u.lo) + 64
	}
	return leadingZeros64(u.hi)
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return trailingZeros64(u.hi) + 64
	}
	return trailingZeros64(u.lo)
}

// BitLen returns the number of bits required to represent u. The result is 0
// for u == 0.
func (u U128) BitLen() int { return 128 - int(u.LeadingZeros()) }

// BitCount returns the number of set bits in u.
func (u U128) BitCount() int { return int(bitCount64(u.hi) + bitCount64(u.lo)) }

// Bit returns the value of the i'th bit of u. Bits outside 0..127 are 0.
func (u U128) Bit(i int) uint {
	if i < 0 || i >= 128 {
		return 0
	}
	return uint(u.Rsh(uint(i)).lo & 1)
}

// IsPowerOfTwo reports whether exactly one bit of u is set.
func (u U128) IsPowerOfTwo() bool {
	if u.hi == 0 {
		return isPowerOfTwo64(u.lo)
	}
	return u.lo == 0 && isPowerOfTwo64(u.hi)
}

func (u U128) Inc() (v U128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if v.lo == 0 {
		v.hi++
	}
	return v
}

func (u U128) Dec() (v U128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo == 0 {
		v.hi--
	}
	return v
}

func (u U128) Add(n U128) (v U128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if v.lo < u.lo { // carry out of the low limb
		v.hi++
	}
	return v
}

func (u U128) Add64(n uint64) (v U128) {
	v.lo = u.lo + n
	v.hi = u.hi
	if v.lo < u.lo {
		v.hi++
	}
	return v
}

// AddOverflow returns u+n and whether the sum wrapped past MaxU128.
func (u U128) AddOverflow(n U128) (v U128, overflow bool) {
	v = u.Add(n)
	return v, v.LessThan(u)
}

func (u U128) Sub(n U128) (v U128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < n.lo { // borrow from the high limb
		v.hi--
	}
	return v
}

func (u U128) Sub64(n uint64) (v U128) {
	v.lo = u.lo - n
	v.hi = u.hi
	if u.lo < n {
		v.hi--
	}
	return v
}

// SubOverflow returns u-n and whether the difference wrapped below zero.
func (u U128) SubOverflow(n U128) (v U128, overflow bool) {
	return u.Sub(n), u.LessThan(n)
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

package main

import (
	"fmt"

	num "github.com/shabbyrobe/go-bitnum"
	"github.com/shabbyrobe/go-bitnum/bitops"
)

// Compilers replace division by a constant with a multiply by a precomputed
// reciprocal and a shift. The 'recip' op finds that reciprocal for a 64-bit
// divisor and uses it, which needs exactly the 128-bit division and the full
// 64x64 product this package provides.
//
// This follows libdivide's unsigned 64-bit algorithm: the reciprocal is
// 2^(64+floor(log2(d)))/d + 1, and divisors whose reciprocal would need 65
// bits use the "add" path instead.

type u64Divider struct {
	recip uint64
	shift uint
	add   bool
}

// divFindMulU64 computes the reciprocal for denom, which must not be 0.
// Powers of two need no multiply, so they get recip == 0 and only a shift.
func divFindMulU64(denom uint64) (div u64Divider) {
	floorLog2d := uint(bitops.HighBitPosition64(denom))

	if bitops.IsPowerOfTwo64(denom) {
		div.shift = floorLog2d
		return div
	}

	// The quotient is below 2^64 because denom is above 2^floorLog2d:
	proposedM, rem := num.OneU128.
		Lsh(floorLog2d).
		Lsh(64). // move into the hi bits of a 128-bit number
		QuoRem64(denom)

	if !proposedM.IsUint64() {
		panic(fmt.Errorf("reciprocal of %d overflows 64 bits", denom))
	}
	proposedM64 := proposedM.AsUint64()

	e := denom - rem
	if e < 1<<floorLog2d {
		div.shift = floorLog2d
	} else {
		// 65-bit reciprocal: double it, keep the top 64 bits, and restore the
		// missing bit in divMulU64 with the add step.
		proposedM64 += proposedM64
		twiceRem := rem + rem
		if twiceRem >= denom || twiceRem < rem {
			proposedM64++
		}
		div.shift = floorLog2d
		div.add = true
	}

	div.recip = 1 + proposedM64
	return div
}

func divMulU64(numer uint64, div u64Divider) uint64 {
	if div.recip == 0 {
		return numer >> div.shift
	}

	q := num.MulUint64(numer, div.recip).High()
	if div.add {
		t := ((numer - q) >> 1) + q
		return t >> div.shift
	}
	return q >> div.shift
}

func recipOp(numer, denom uint64) (result calcResult) {
	div := divFindMulU64(denom)
	q := divMulU64(numer, div)

	result.add(fmt.Sprintf("%d / %d == %d", numer, denom, q), q)
	result.add(fmt.Sprintf("recip:%#x shift:%d 65bit:%v", div.recip, div.shift, div.add), div)
	if want := numer / denom; q != want {
		result.add(fmt.Sprintf("MISMATCH: expected %d", want), want)
	}
	return result
}

/*
Package num provides U128, an unsigned 128-bit integer built entirely from
64-bit operations, with the bit primitives it relies on living in the bitops
subpackage.

U128 is a value type; all operations return new values and none mutate their
receiver, so values can be shared freely between goroutines.

Simple example:

	u1 := U128From64(math.MaxUint64)
	u2 := U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

U128 can be created from a variety of sources:

	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128From16(v uint16) U128
	U128From8(v uint8) U128
	MulUint64(a, b uint64) U128
	U128FromString(s string) (out U128, accurate bool, err error)
	U128FromBigInt(v *big.Int) (out U128, accurate bool)

Arithmetic wraps modulo 2^128 like Go's built-in unsigned types. AddOverflow,
SubOverflow and MulOverflow report when that happens.

Division comes in three widths, each picking the cheapest exact method for
its divisor:

	QuoRem32(by uint32) (q U128, r uint32)
	QuoRem64(by uint64) (q U128, r uint64)
	QuoRem(by U128) (q, r U128)

Dividing by zero panics with ErrDivisionByZero.

U128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num

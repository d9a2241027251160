package num

const (
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)

	// pow10To19 is the largest power of ten that fits in a uint64.
	pow10To19 = 10000000000000000000
)

var (
	ZeroU128 U128
	OneU128  = U128{lo: 1}
	MinU128  = U128{}
	MaxU128  = U128{hi: maxUint64, lo: maxUint64}

	// maxU128Div10 is MaxU128 / 10, used to detect overflow when parsing.
	// MaxU128 % 10 == 5.
	maxU128Div10 = U128{hi: 0x1999999999999999, lo: 0x9999999999999999}
)

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	num "github.com/shabbyrobe/go-bitnum"
	"github.com/shabbyrobe/go-bitnum/bitops"
)

const usage = `U128 calculator

Usage: u128calc [-dump] [-comma] <op> <a> [<b>]

Operands are decimal, or hex with a 0x prefix.

Ops:
  add, sub, mul     a + b, a - b, a * b (wrapping)
  quo, rem, quorem  a / b, a % b
  lsh, rsh          a << b, a >> b (b is a shift count)
  hex               a in hex
  bits              bit primitives of a (a must fit in 64 bits)
  recip             a / b for 64-bit a and b, via a multiplicative reciprocal
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	var dump, comma bool

	fs := flag.NewFlagSet("u128calc", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { fmt.Fprint(out, usage) }
	fs.BoolVar(&dump, "dump", false, "Dump the raw result values")
	fs.BoolVar(&comma, "comma", false, "Group decimal results with commas")
	if err := fs.Parse(args); err != nil {
		return err
	}

	args = fs.Args()
	if len(args) < 2 {
		fs.Usage()
		return fmt.Errorf("missing args")
	}

	c := calculator{format: num.U128.String}
	if comma {
		c.format = func(u num.U128) string { return humanize.BigComma(u.AsBigInt()) }
	}

	result, err := c.calc(args[0], args[1:])
	if err != nil {
		return err
	}

	for _, line := range result.lines {
		fmt.Fprintln(out, line)
	}
	if dump {
		spew.Fdump(out, result.values...)
	}
	return nil
}

type calcResult struct {
	lines  []string
	values []interface{}
}

type calculator struct {
	format func(u num.U128) string
}

func (c calculator) calc(op string, operands []string) (result calcResult, err error) {
	switch op {
	case "add", "sub", "mul", "quo", "rem", "quorem":
		a, b, err := parseU128Pair(operands)
		if err != nil {
			return result, err
		}
		if b.IsZero() && (op == "quo" || op == "rem" || op == "quorem") {
			return result, num.ErrDivisionByZero
		}
		return c.binaryOp(op, a, b), nil

	case "lsh", "rsh":
		if len(operands) != 2 {
			return result, fmt.Errorf("%s expects 2 operands, found %d", op, len(operands))
		}
		a, err := parseU128(operands[0])
		if err != nil {
			return result, err
		}
		n, err := strconv.ParseUint(operands[1], 10, 32)
		if err != nil {
			return result, fmt.Errorf("invalid shift %q: %v", operands[1], err)
		}
		v := a.Lsh(uint(n))
		if op == "rsh" {
			v = a.Rsh(uint(n))
		}
		result.add(c.format(v), v)
		return result, nil

	case "hex":
		a, err := parseU128(operands[0])
		if err != nil {
			return result, err
		}
		result.add(a.HexString(), a)
		return result, nil

	case "bits":
		a, err := parseU128(operands[0])
		if err != nil {
			return result, err
		}
		if !a.IsUint64() {
			return result, fmt.Errorf("bits operand %s does not fit in 64 bits", a)
		}
		return bitsOp(a.AsUint64()), nil

	case "recip":
		if len(operands) != 2 {
			return result, fmt.Errorf("%s expects 2 operands, found %d", op, len(operands))
		}
		numer, err := strconv.ParseUint(operands[0], 0, 64)
		if err != nil {
			return result, err
		}
		denom, err := strconv.ParseUint(operands[1], 0, 64)
		if err != nil {
			return result, err
		}
		if denom == 0 {
			return result, num.ErrDivisionByZero
		}
		return recipOp(numer, denom), nil

	default:
		return result, fmt.Errorf("unknown op %q", op)
	}
}

func (r *calcResult) add(line string, v interface{}) {
	r.lines = append(r.lines, line)
	r.values = append(r.values, v)
}

func (c calculator) binaryOp(op string, a, b num.U128) (result calcResult) {
	switch op {
	case "add":
		v, over := a.AddOverflow(b)
		result.add(c.format(v), v)
		if over {
			result.add("overflow", over)
		}
	case "sub":
		v, over := a.SubOverflow(b)
		result.add(c.format(v), v)
		if over {
			result.add("overflow", over)
		}
	case "mul":
		v, over := a.MulOverflow(b)
		result.add(c.format(v), v)
		if over {
			result.add("overflow", over)
		}
	case "quo":
		v := a.Quo(b)
		result.add(c.format(v), v)
	case "rem":
		v := a.Rem(b)
		result.add(c.format(v), v)
	case "quorem":
		q, r := a.QuoRem(b)
		result.add(c.format(q)+" r "+c.format(r), q)
		result.values = append(result.values, r)
	}
	return result
}

func bitsOp(v uint64) (result calcResult) {
	line := func(name string, val interface{}) {
		result.add(fmt.Sprintf("%-12s %v", name+":", val), val)
	}
	line("lowbit", fmt.Sprintf("%#x", bitops.LowBit64(v)))
	line("highbit", fmt.Sprintf("%#x", bitops.HighBit64(v)))
	line("lowpos", positionString(bitops.LowBitPosition64(v)))
	line("highpos", positionString(bitops.HighBitPosition64(v)))
	line("trailing", bitops.TrailingZeroBits64(v))
	line("leading", bitops.LeadingZeroBits64(v))
	line("count", bitops.BitCount64(v))
	line("reverse", fmt.Sprintf("%#x", bitops.ReverseBits64(v)))
	line("pow2", bitops.IsPowerOfTwo64(v))
	line("ceilpow2", fmt.Sprintf("%#x", bitops.CeilPowerOfTwo64(v)))
	return result
}

func positionString(pos uint64) string {
	if pos == bitops.NoBit64 {
		return "none"
	}
	return strconv.FormatUint(pos, 10)
}

func parseU128Pair(operands []string) (a, b num.U128, err error) {
	if len(operands) != 2 {
		return a, b, fmt.Errorf("expected 2 operands, found %d", len(operands))
	}
	if a, err = parseU128(operands[0]); err != nil {
		return a, b, err
	}
	if b, err = parseU128(operands[1]); err != nil {
		return a, b, err
	}
	return a, b, nil
}

func parseU128(s string) (num.U128, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		b, ok := new(big.Int).SetString(s[2:], 16)
		if !ok {
			return num.U128{}, fmt.Errorf("invalid hex operand %q", s)
		}
		u, accurate := num.U128FromBigInt(b)
		if !accurate {
			return num.U128{}, fmt.Errorf("operand %q overflows 128 bits", s)
		}
		return u, nil
	}

	u, accurate, err := num.U128FromString(s)
	if err != nil {
		return u, err
	}
	if !accurate {
		return u, fmt.Errorf("operand %q overflows 128 bits", s)
	}
	return u, nil
}

package wide

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// U128 is the unsigned 128-bit integer the two halves of a U256 are built
// from. It is a usable fixed-width type in its own right, with the same value
// semantics and the same wrapping arithmetic as its double-width parent.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{lo: uint64(v)} }

// U128FromI64 creates a U128 from a signed value using two's complement.
// Negative inputs are sign-extended across all 128 bits, so
// U128FromI64(-1) == MaxU128.
func U128FromI64(v int64) U128 {
	if v < 0 {
		return U128{hi: maxUint64, lo: uint64(v)}
	}
	return U128{lo: uint64(v)}
}

// U128FromBigInt creates a U128 from a big.Int. Values outside the range
// [0, MaxU128] are clamped to the nearest bound and inRange is set to
// 'false'.
func U128FromBigInt(v *big.Int) (out U128, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}
	var b [16]byte
	v.FillBytes(b[:])
	return U128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}, true
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// AsU256 zero-extends the U128 into the lower half of a U256.
func (u U128) AsU256() U256 {
	return U256{lo: u}
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) IntoBigInt(b *big.Int) {
	var buf [16]byte
	u.PutBigEndian(buf[:])
	b.SetBytes(buf[:])
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// PutBigEndian writes the U128 into the first 16 bytes of b in big-endian
// byte order, most significant byte first. It panics if b is shorter than 16
// bytes.
func (u U128) PutBigEndian(b []byte) {
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)
}

// Bytes16 returns the U128 as a fixed 16-byte big-endian array.
func (u U128) Bytes16() (b [16]byte) {
	u.PutBigEndian(b[:])
	return b
}

func (u U128) Inc() (v U128) {
	v.lo, v.hi = bits.Add64(u.lo, 1, 0)
	v.hi += u.hi
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u U128) Add64(n uint64) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u U128) Sub64(n uint64) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n, 0)
	v.hi = u.hi - borrow
	return v
}

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

func (u U128) Cmp64(n uint64) int {
	if u.hi > 0 || u.lo > n {
		return 1
	} else if u.lo < n {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) Equal64(n uint64) bool {
	return u.hi == 0 && u.lo == n
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U128) And(n U128) (out U128) {
	out.hi = u.hi & n.hi
	out.lo = u.lo & n.lo
	return out
}

func (u U128) AndNot(n U128) (out U128) {
	out.hi = u.hi &^ n.hi
	out.lo = u.lo &^ n.lo
	return out
}

func (u U128) Or(n U128) (out U128) {
	out.hi = u.hi | n.hi
	out.lo = u.lo | n.lo
	return out
}

func (u U128) Xor(n U128) (out U128) {
	out.hi = u.hi ^ n.hi
	out.lo = u.lo ^ n.lo
	return out
}

func (u U128) Not() (out U128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}
	return v
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// BitLen returns the length of the absolute value of u in bits. The bit
// length of 0 is 0.
func (u U128) BitLen() int {
	return 128 - int(u.LeadingZeros())
}

// Bit returns the value of the i'th bit of u, counting from the least
// significant bit. Bits beyond the width of the type read as 0. Bit panics
// if i is negative.
func (u U128) Bit(i int) uint {
	if i < 0 {
		panic("wide: negative bit index")
	} else if i >= 128 {
		return 0
	} else if i >= 64 {
		return uint(u.hi>>(uint(i)-64)) & 1
	}
	return uint(u.lo>>uint(i)) & 1
}

// SetBit returns a U128 with the i'th bit set to b (0 or 1). SetBit panics
// if i is outside the range [0,127] or if b is not 0 or 1.
func (u U128) SetBit(i int, b uint) (out U128) {
	if i < 0 || i >= 128 {
		panic("wide: bit index out of range")
	}
	if b != 0 && b != 1 {
		panic("wide: bit value not 0 or 1")
	}
	out = u
	if i >= 64 {
		if b == 0 {
			out.hi &^= 1 << (uint(i) - 64)
		} else {
			out.hi |= 1 << (uint(i) - 64)
		}
	} else {
		if b == 0 {
			out.lo &^= 1 << uint(i)
		} else {
			out.lo |= 1 << uint(i)
		}
	}
	return out
}

func (u U128) Mul(n U128) (v U128) {
	v.hi, v.lo = bits.Mul64(u.lo, n.lo)
	v.hi += u.hi*n.lo + u.lo*n.hi
	return v
}

func (u U128) Mul64(n uint64) (v U128) {
	v.hi, v.lo = bits.Mul64(u.lo, n)
	v.hi += u.hi * n
	return v
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by     with the result truncated to zero
//	r = u - by*q
//
// U128 does not support big.Int.DivMod()-style Euclidean division.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.IsZero() {
		panic("wide: division by zero")
	}

	if by.hi == 0 {
		var r64 uint64
		q, r64 = quorem128by64(u, by.lo)
		return q, U128From64(r64)
	}

	return quorem128by128(u, by)
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// quorem128by64 divides a 128-bit dividend by a non-zero 64-bit divisor
// using the long division intrinsic.
func quorem128by64(u U128, v uint64) (q U128, r uint64) {
	q.hi = u.hi / v
	rem := u.hi % v
	q.lo, r = bits.Div64(rem, u.lo, v)
	return q, r
}

// quorem128by128 handles divisors that use the full 128 bits: a trial
// quotient is formed from the divisor's top 64 bits and corrected, which it
// is guaranteed to need at most once.
func quorem128by128(u, by U128) (q, r U128) {
	n := uint(bits.LeadingZeros64(by.hi))
	by1 := by.Lsh(n)
	u1 := u.Rsh(1)

	tq, _ := bits.Div64(u1.hi, u1.lo, by1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	q = U128From64(tq)
	r = u.Sub(by.Mul64(tq))
	if r.GreaterOrEqualTo(by) {
		q = q.Inc()
		r = r.Sub(by)
	}
	return q, r
}

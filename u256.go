package wide

import (
	"encoding/binary"
	"math/big"
)

// U256 is an unsigned 256-bit integer assembled from an upper and a lower
// 128-bit half. The halves are opaque; every operation treats the pair as a
// single fixed-width value and wraps modulo 2^256.
type U256 struct {
	hi, lo U128
}

// U256FromRaw creates a U256 from an upper and a lower half. See Raw() for
// the counterpart.
func U256FromRaw(hi, lo U128) U256 { return U256{hi: hi, lo: lo} }

// U256FromRaw64 creates a U256 from four 64-bit words, most significant
// word first.
func U256FromRaw64(w3, w2, w1, w0 uint64) U256 {
	return U256{
		hi: U128{hi: w3, lo: w2},
		lo: U128{hi: w1, lo: w0},
	}
}

func U256From128(v U128) U256  { return U256{lo: v} }
func U256From64(v uint64) U256 { return U256{lo: U128{lo: v}} }
func U256From32(v uint32) U256 { return U256{lo: U128{lo: uint64(v)}} }
func U256From16(v uint16) U256 { return U256{lo: U128{lo: uint64(v)}} }
func U256From8(v uint8) U256   { return U256{lo: U128{lo: uint64(v)}} }

func U256FromBool(v bool) (out U256) {
	if v {
		out.lo.lo = 1
	}
	return out
}

// U256FromI64 creates a U256 from a signed value using two's complement.
// Negative inputs are sign-extended across all 256 bits, so
// U256FromI64(-1) == MaxU256.
func U256FromI64(v int64) U256 {
	if v < 0 {
		return U256{hi: MaxU128, lo: U128FromI64(v)}
	}
	return U256{lo: U128{lo: uint64(v)}}
}

// U256FromBigInt creates a U256 from a big.Int. Values outside the range
// [0, MaxU256] are clamped to the nearest bound and inRange is set to
// 'false'.
func U256FromBigInt(v *big.Int) (out U256, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 256 {
		return MaxU256, false
	}
	var b [32]byte
	v.FillBytes(b[:])
	return U256FromBigEndian(b[:]), true
}

// U256FromBigEndian creates a U256 from a big-endian byte sequence, most
// significant byte first. Sequences shorter than 32 bytes are zero-extended;
// for longer sequences only the trailing 32 bytes contribute, which is the
// value of the input modulo 2^256.
func U256FromBigEndian(b []byte) U256 {
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	return U256{
		hi: U128{
			hi: binary.BigEndian.Uint64(buf[0:8]),
			lo: binary.BigEndian.Uint64(buf[8:16]),
		},
		lo: U128{
			hi: binary.BigEndian.Uint64(buf[16:24]),
			lo: binary.BigEndian.Uint64(buf[24:32]),
		},
	}
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	return U256{hi: RandU128(source), lo: RandU128(source)}
}

func (u U256) IsZero() bool { return u == zeroU256 }

// Raw returns access to the U256 as a pair of U128 halves. See U256FromRaw()
// for the counterpart.
func (u U256) Raw() (hi, lo U128) { return u.hi, u.lo }

// AsU128 truncates the U256 to its lower half. See IsU128() if you want to
// check before you convert.
func (u U256) AsU128() U128 { return u.lo }

// IsU128 reports whether u can be represented as a U128.
func (u U256) IsU128() bool { return u.hi.IsZero() }

// AsUint64 truncates the U256 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.lo.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi.IsZero() && u.lo.hi == 0 }

// AsUint32 truncates the U256 to fit in a uint32.
func (u U256) AsUint32() uint32 { return uint32(u.lo.lo) }

// AsUint16 truncates the U256 to fit in a uint16.
func (u U256) AsUint16() uint16 { return uint16(u.lo.lo) }

// AsUint8 truncates the U256 to fit in a uint8.
func (u U256) AsUint8() uint8 { return uint8(u.lo.lo) }

// AsBool reports whether u is non-zero, the same as a C-style truth test.
func (u U256) AsBool() bool { return u != zeroU256 }

func (u U256) IntoBigInt(b *big.Int) {
	var buf [32]byte
	u.PutBigEndian(buf[:])
	b.SetBytes(buf[:])
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// PutBigEndian writes the U256 into the first 32 bytes of b in big-endian
// byte order, most significant byte first. It panics if b is shorter than 32
// bytes.
func (u U256) PutBigEndian(b []byte) {
	u.hi.PutBigEndian(b[:16])
	u.lo.PutBigEndian(b[16:32])
}

// Bytes32 returns the U256 as a fixed 32-byte big-endian array.
func (u U256) Bytes32() (b [32]byte) {
	u.PutBigEndian(b[:])
	return b
}

// Bytes returns the U256 as a minimal big-endian byte slice with leading
// zero bytes trimmed. The zero value yields an empty slice.
func (u U256) Bytes() []byte {
	b := u.Bytes32()
	i := 0
	for i < 32 && b[i] == 0 {
		i++
	}
	return b[i:]
}

func (u U256) Inc() (v U256) {
	v.lo = u.lo.Inc()
	v.hi = u.hi
	if u.lo.GreaterThan(v.lo) {
		v.hi = v.hi.Inc()
	}
	return v
}

func (u U256) Dec() (v U256) {
	v.lo = u.lo.Dec()
	v.hi = u.hi
	if u.lo.LessThan(v.lo) {
		v.hi = v.hi.Dec()
	}
	return v
}

func (u U256) Add(n U256) (v U256) {
	v.lo = u.lo.Add(n.lo)
	v.hi = u.hi.Add(n.hi)
	if u.lo.GreaterThan(v.lo) {
		v.hi = v.hi.Inc()
	}
	return v
}

func (u U256) Add64(n uint64) (v U256) {
	v.lo = u.lo.Add64(n)
	v.hi = u.hi
	if u.lo.GreaterThan(v.lo) {
		v.hi = v.hi.Inc()
	}
	return v
}

func (u U256) Sub(n U256) (v U256) {
	v.lo = u.lo.Sub(n.lo)
	v.hi = u.hi.Sub(n.hi)
	if u.lo.LessThan(v.lo) {
		v.hi = v.hi.Dec()
	}
	return v
}

func (u U256) Sub64(n uint64) (v U256) {
	v.lo = u.lo.Sub64(n)
	v.hi = u.hi
	if u.lo.LessThan(v.lo) {
		v.hi = v.hi.Dec()
	}
	return v
}

// Neg returns the two's complement negation of u, which is the value that
// added to u yields zero. Neg of the zero value is zero.
func (u U256) Neg() U256 {
	return zeroU256.Sub(u)
}

func (u U256) Mul(n U256) (v U256) {
	v.hi, v.lo = mul128to256(u.lo, n.lo)
	v.hi = v.hi.Add(u.hi.Mul(n.lo))
	v.hi = v.hi.Add(u.lo.Mul(n.hi))
	return v
}

func (u U256) Mul64(n uint64) (v U256) {
	v.hi, v.lo = mul128to256(u.lo, U128From64(n))
	v.hi = v.hi.Add(u.hi.Mul64(n))
	return v
}

func (u U256) Cmp(n U256) int {
	if c := u.hi.Cmp(n.hi); c != 0 {
		return c
	}
	return u.lo.Cmp(n.lo)
}

func (u U256) Cmp64(n uint64) int {
	if !u.hi.IsZero() {
		return 1
	}
	return u.lo.Cmp64(n)
}

func (u U256) Equal(n U256) bool { return u == n }

func (u U256) Equal64(n uint64) bool { return u.hi.IsZero() && u.lo.Equal64(n) }

func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }

func (u U256) And(n U256) U256 {
	u.hi = u.hi.And(n.hi)
	u.lo = u.lo.And(n.lo)
	return u
}

func (u U256) AndNot(n U256) U256 {
	u.hi = u.hi.AndNot(n.hi)
	u.lo = u.lo.AndNot(n.lo)
	return u
}

func (u U256) Or(n U256) U256 {
	u.hi = u.hi.Or(n.hi)
	u.lo = u.lo.Or(n.lo)
	return u
}

func (u U256) Xor(n U256) U256 {
	u.hi = u.hi.Xor(n.hi)
	u.lo = u.lo.Xor(n.lo)
	return u
}

func (u U256) Not() U256 {
	u.hi = u.hi.Not()
	u.lo = u.lo.Not()
	return u
}

func (u U256) Lsh(n uint) (v U256) {
	if n == 0 {
		return u
	} else if n >= 256 {
		return v
	} else if n >= 128 {
		v.hi = u.lo.Lsh(n - 128)
		return v
	}
	v.hi = u.hi.Lsh(n).Or(u.lo.Rsh(128 - n))
	v.lo = u.lo.Lsh(n)
	return v
}

func (u U256) Rsh(n uint) (v U256) {
	if n == 0 {
		return u
	} else if n >= 256 {
		return v
	} else if n >= 128 {
		v.lo = u.hi.Rsh(n - 128)
		return v
	}
	v.lo = u.lo.Rsh(n).Or(u.hi.Lsh(128 - n))
	v.hi = u.hi.Rsh(n)
	return v
}

func (u U256) LeadingZeros() uint {
	if u.hi.IsZero() {
		return u.lo.LeadingZeros() + 128
	}
	return u.hi.LeadingZeros()
}

func (u U256) TrailingZeros() uint {
	if u.lo.IsZero() {
		return u.hi.TrailingZeros() + 128
	}
	return u.lo.TrailingZeros()
}

// BitLen returns the length of the absolute value of u in bits. The bit
// length of 0 is 0.
func (u U256) BitLen() int {
	return 256 - int(u.LeadingZeros())
}

// Bit returns the value of the i'th bit of u, counting from the least
// significant bit. Bits beyond the width of the type read as 0. Bit panics
// if i is negative.
func (u U256) Bit(i int) uint {
	if i < 0 {
		panic("wide: negative bit index")
	} else if i >= 256 {
		return 0
	} else if i >= 128 {
		return u.hi.Bit(i - 128)
	}
	return u.lo.Bit(i)
}

// SetBit returns a U256 with the i'th bit set to b (0 or 1). SetBit panics
// if i is outside the range [0,255] or if b is not 0 or 1.
func (u U256) SetBit(i int, b uint) (out U256) {
	if i < 0 || i >= 256 {
		panic("wide: bit index out of range")
	}
	out = u
	if i >= 128 {
		out.hi = u.hi.SetBit(i-128, b)
	} else {
		out.lo = u.lo.SetBit(i, b)
	}
	return out
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u U256) Quo(by U256) (q U256) {
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
// U256 does not support big.Int.DivMod()-style Euclidean division.
func (u U256) QuoRem(by U256) (q, r U256) {
	if by.IsZero() {
		panic("wide: division by zero")
	}

	if u.hi.IsZero() && by.hi.IsZero() {
		q.lo, r.lo = u.lo.QuoRem(by.lo)
		return q, r
	}

	byLeading0 := by.LeadingZeros()
	if byLeading0 == 255 {
		return u, r
	}

	byTrailing0 := by.TrailingZeros()
	if (byLeading0 + byTrailing0) == 255 {
		q = u.Rsh(byTrailing0)
		by = by.Dec()
		r = by.And(u)
		return
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		q.lo.lo = 1 // dividend and divisor are the same
		return q, r
	}

	uLeading0 := u.LeadingZeros()
	return quorem256bin(u, by, uLeading0, byLeading0)
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (u U256) Rem(by U256) (r U256) {
	_, r = u.QuoRem(by)
	return r
}

// quorem256bin is restoring binary long division: the divisor is shifted up
// until its highest set bit lines up with the dividend's, then walked back
// down one bit at a time, subtracting wherever it still fits.
func quorem256bin(u, by U256, uLeading0, byLeading0 uint) (q, r U256) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		q = q.Lsh(1)

		if u.Cmp(by) >= 0 {
			u = u.Sub(by)
			q.lo.lo |= 1
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	r = u
	return q, r
}

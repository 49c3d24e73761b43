package wide

import "math/bits"

// mul128to256 returns the full 256-bit product of x and y as an upper and a
// lower limb. The product is assembled from the four 64x64 quarter products.
// The top word cannot overflow: the product of two 128-bit values always
// fits in 256 bits.
func mul128to256(x, y U128) (hi, lo U128) {
	p0h, p0l := bits.Mul64(x.lo, y.lo)
	p1h, p1l := bits.Mul64(x.lo, y.hi)
	p2h, p2l := bits.Mul64(x.hi, y.lo)
	p3h, p3l := bits.Mul64(x.hi, y.hi)

	var c1, c2, c3, c4 uint64
	lo.lo = p0l
	lo.hi, c1 = bits.Add64(p0h, p1l, 0)
	lo.hi, c2 = bits.Add64(lo.hi, p2l, 0)
	hi.lo, c3 = bits.Add64(p1h, p2h, c1)
	hi.lo, c4 = bits.Add64(hi.lo, p3l, c2)
	hi.hi = p3h + c3 + c4

	return hi, lo
}

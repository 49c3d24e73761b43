package wide

// RandSource is the entropy source for RandU128 and RandU256.
// math/rand.Rand satisfies it.
type RandSource interface {
	Uint64() uint64
}

// DifferenceU128 subtracts the smaller of a and b from the larger.
func DifferenceU128(a, b U128) U128 {
	if a.GreaterThan(b) {
		return a.Sub(b)
	} else if a.LessThan(b) {
		return b.Sub(a)
	}
	return U128{}
}

func LargerU128(a, b U128) U128 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU128(a, b U128) U128 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceU256 subtracts the smaller of a and b from the larger.
func DifferenceU256(a, b U256) U256 {
	if a.GreaterThan(b) {
		return a.Sub(b)
	} else if a.LessThan(b) {
		return b.Sub(a)
	}
	return U256{}
}

func LargerU256(a, b U256) U256 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU256(a, b U256) U256 {
	if b.LessThan(a) {
		return b
	}
	return a
}

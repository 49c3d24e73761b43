package wide

import (
	"math/big"
)

const maxUint64 = 1<<64 - 1

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}
	MaxU256 = U256{hi: MaxU128, lo: MaxU128}

	zeroU128 U128
	zeroU256 U256

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64  = new(big.Int).SetUint64(maxUint64)
	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	maxBigU256, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)

	// wrapBigU128 is 1 << 128, used to simulate over/underflow:
	wrapBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)

	// wrapBigU256 is 1 << 256, used to simulate over/underflow:
	wrapBigU256, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639936", 10)
)

/*
Package wide provides a fixed-width 256-bit unsigned integer type, U256,
assembled from two opaque 128-bit halves, along with U128, the half-width
limb type it is built from.

U256 and U128 are value types; all operations return new values and wrap
modulo 2^256 and 2^128 respectively, exactly like Go's built-in unsigned
integers.

Simple example:

	v := MaxU256.Add64(1)
	fmt.Println(v.IsZero())
	// Output: true

U256 can be created from a variety of sources:

	U256FromRaw(hi, lo U128) U256
	U256FromRaw64(w3, w2, w1, w0 uint64) U256
	U256From128(v U128) U256
	U256From64(v uint64) U256
	U256From32(v uint32) U256
	U256From16(v uint16) U256
	U256From8(v uint8) U256
	U256FromBool(v bool) U256
	U256FromI64(v int64) U256
	U256FromString(s string, base int) (out U256, err error)
	U256FromBigInt(v *big.Int) (out U256, inRange bool)
	U256FromBigEndian(b []byte) U256

Division or modulus by zero panics, the same as for Go's native integer
types. String construction reports ErrInvalidDigit for characters that are
not valid digits in the requested base; every other operation is total and
wraps silently.

U256 and U128 support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
*/
package wide

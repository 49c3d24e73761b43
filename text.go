package wide

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDigit is reported, possibly wrapped, when a string passed to
// U256FromString or U128FromString contains a character that is not a valid
// digit in the requested base. Use errors.Is to test for it.
var ErrInvalidDigit = errors.New("wide: invalid digit")

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// U256FromString creates a U256 from a string of digits in the given base,
// which must be in the range 2 to 36 inclusive. Digits beyond 9 are the
// letters 'a' to 'z' in either case. There is no sign, prefix or separator
// handling; every character must be a digit of the base or the parse fails
// with ErrInvalidDigit.
//
// Values wider than 256 bits wrap: the result is the value of the digit
// string modulo 2^256.
func U256FromString(s string, base int) (out U256, err error) {
	if base < 2 || base > 36 {
		return out, fmt.Errorf("wide: invalid base %d", base)
	}
	if len(s) == 0 {
		return out, fmt.Errorf("%w: empty string", ErrInvalidDigit)
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'z':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'Z':
			d = uint64(c-'A') + 10
		default:
			d = 36
		}
		if d >= uint64(base) {
			return U256{}, fmt.Errorf("%w %q in base %d string %q", ErrInvalidDigit, c, base, s)
		}

		out = out.Mul64(uint64(base)).Add64(d)
	}

	return out, nil
}

// MustU256FromString is a U256FromString that panics on a bad input, for use
// with inputs that are known ahead of time to be valid.
func MustU256FromString(s string, base int) U256 {
	v, err := U256FromString(s, base)
	if err != nil {
		panic(err)
	}
	return v
}

// U128FromString creates a U128 from a string of digits in the given base,
// which must be in the range 2 to 36 inclusive. Values wider than 128 bits
// wrap: the result is the value of the digit string modulo 2^128.
func U128FromString(s string, base int) (out U128, err error) {
	v, err := U256FromString(s, base)
	if err != nil {
		return out, err
	}
	return v.lo, nil
}

// MustU128FromString is a U128FromString that panics on a bad input, for use
// with inputs that are known ahead of time to be valid.
func MustU128FromString(s string, base int) U128 {
	v, err := U128FromString(s, base)
	if err != nil {
		panic(err)
	}
	return v
}

// Text returns the representation of u in the given base, which must be in
// the range 2 to 36 inclusive. Digit values 10 to 35 are the lowercase
// letters 'a' to 'z'. The zero value yields "0" in every base.
func (u U256) Text(base int) string {
	if base < 2 || base > 36 {
		panic("wide: invalid base " + strconv.Itoa(base))
	}
	if u.IsUint64() {
		return strconv.FormatUint(u.lo.lo, base)
	}

	// 256 digits covers the longest possible output, which is base 2:
	var buf [256]byte
	i := len(buf)
	by := U256From64(uint64(base))
	for !u.IsZero() {
		var r U256
		u, r = u.QuoRem(by)
		i--
		buf[i] = digits[r.lo.lo]
	}
	return string(buf[i:])
}

// TextPad is Text zero-padded on the left to at least width digits. Values
// that already have width or more digits are returned whole; TextPad never
// truncates.
func (u U256) TextPad(base, width int) string {
	s := u.Text(base)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

func (u U256) String() string {
	return u.Text(10)
}

func (u U256) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	u.AsBigInt().Format(s, c)
}

// Text returns the representation of u in the given base, which must be in
// the range 2 to 36 inclusive.
func (u U128) Text(base int) string {
	return U256From128(u).Text(base)
}

// TextPad is Text zero-padded on the left to at least width digits.
func (u U128) TextPad(base, width int) string {
	return U256From128(u).TextPad(base, width)
}

func (u U128) String() string {
	return u.Text(10)
}

func (u U128) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	u.AsBigInt().Format(s, c)
}

func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, err := U256FromString(string(bts), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) >= 2 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("wide: u256 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := U256FromString(string(bts), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := U128FromString(string(bts), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) >= 2 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("wide: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := U128FromString(string(bts), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

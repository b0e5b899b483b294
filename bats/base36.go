package bats

import "fmt"

// RefWidth is the fixed width of order and execution reference fields.
const RefWidth = 12

const base36Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ParseBase36 decodes a fixed-width base-36 reference field (digits then
// upper-case letters, most significant character first) into a 64-bit id.
func ParseBase36(field string) (uint64, error) {
	var v uint64
	for i := 0; i < len(field); i++ {
		c := field[i]

		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'A' && c <= 'Z':
			d = uint64(c-'A') + 10
		default:
			return 0, fmt.Errorf("%w: %q at position %d", ErrBadReferenceField, c, i)
		}

		v = v*36 + d
	}
	return v, nil
}

// FormatBase36 re-encodes a 64-bit id as a zero-padded 12-character
// base-36 reference field.
func FormatBase36(v uint64) string {
	var buf [RefWidth]byte
	for i := RefWidth - 1; i >= 0; i-- {
		buf[i] = base36Digits[v%36]
		v /= 36
	}
	return string(buf[:])
}

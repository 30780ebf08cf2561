package ringmap

import (
	"errors"
	"fmt"
)

const (
	// MaxDivisor is the largest divisor accepted by [Mod], [Quo] and [QuoRem].
	// It keeps the divisor within 32 bits, half the width of the accumulator.
	MaxDivisor = 1<<31 - 1
)

var (
	// ErrInvalidInput is returned when a numeral is malformed or a divisor
	// or capacity is out of range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBufferTooSmall is returned when a quotient does not fit into the
	// capacity given to [Quo].
	ErrBufferTooSmall = errors.New("buffer too small")
	// ErrInvariant is returned when a computed value falls outside of its
	// guaranteed range.
	ErrInvariant = errors.New("internal invariant violation")
)

// IsNumeral returns true if s is a non-negative decimal integer
// without sign, separators or leading zeros.
// The only numeral that starts with '0' is "0" itself.
//
// IsNumeral accepts exactly the numerals accepted by [Mod], [Quo], [QuoRem]
// and [Locate].
func IsNumeral(s string) bool {
	return checkNumeral(s) == nil
}

// checkNumeral returns an error wrapping [ErrInvalidInput] if s is not
// a numeral.
// The error does not include s, which can be arbitrarily long.
func checkNumeral(s string) error {
	if len(s) == 0 {
		return fmt.Errorf("empty numeral: %w", ErrInvalidInput)
	}
	for pos := 0; pos < len(s); pos++ {
		if s[pos] < '0' || s[pos] > '9' {
			return fmt.Errorf("invalid character %q at position %v: %w", s[pos], pos, ErrInvalidInput)
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return fmt.Errorf("leading zero in numeral of %v digits: %w", len(s), ErrInvalidInput)
	}
	return nil
}

func checkDivisor(divisor int) error {
	if divisor < 1 || divisor > MaxDivisor {
		return fmt.Errorf("divisor %v is out of range [1, %v]: %w", divisor, MaxDivisor, ErrInvalidInput)
	}
	return nil
}

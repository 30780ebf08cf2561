package ringmap

import "fmt"

// acc is the accumulator of a left-to-right digit scan.
// Between steps it is smaller than the divisor, so during a step it never
// exceeds 10 * [MaxDivisor] + 9.
type acc uint64

// fsa (Fused Shift and Addition) calculates x * 10 + d.
func (x acc) fsa(d byte) acc {
	return x*10 + acc(d)
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
func (x acc) quoRem(y acc) (q, r acc) {
	q = x / y
	r = x - q*y
	return q, r
}

// Mod returns the remainder of num divided by divisor.
// The result is in range [0, divisor).
//
// Mod returns an error wrapping [ErrInvalidInput] if:
//   - num is not a numeral, see [IsNumeral];
//   - divisor is less than 1 or greater than [MaxDivisor].
func Mod(num string, divisor int) (int, error) {
	if err := checkNumeral(num); err != nil {
		return 0, err
	}
	if err := checkDivisor(divisor); err != nil {
		return 0, err
	}
	return mod(num, acc(divisor)), nil
}

// mod assumes that num is a numeral and y is a valid divisor.
func mod(num string, y acc) int {
	var r acc
	for i := 0; i < len(num); i++ {
		r = r.fsa(num[i]-'0') % y
	}
	return int(r)
}

// Quo returns the truncated quotient ⌊num / divisor⌋ as a numeral.
// The quotient never has more digits than num and has no leading zeros,
// it is "0" if num is less than divisor.
//
// The capacity bounds the storage of the result: it must be greater than
// the number of digits in the quotient by at least one, which accounts for
// a terminator slot.
// A capacity of len(num) + 1 is always sufficient, and the smallest useful
// capacity is 2.
//
// Quo returns an error wrapping:
//   - [ErrInvalidInput] if num is not a numeral, divisor is less than 1 or
//     greater than [MaxDivisor], or capacity is negative;
//   - [ErrBufferTooSmall] if the quotient does not fit into capacity;
//   - [ErrInvariant] if the computation produced an impossible quotient.
//
// On error the returned quotient is always empty.
func Quo(num string, divisor, capacity int) (string, error) {
	if err := checkNumeral(num); err != nil {
		return "", err
	}
	if err := checkDivisor(divisor); err != nil {
		return "", err
	}
	if capacity < 0 {
		return "", fmt.Errorf("capacity %v is negative: %w", capacity, ErrInvalidInput)
	}
	q, _, err := quoRem(num, acc(divisor))
	if err != nil {
		return "", err
	}
	if len(q)+1 > capacity {
		return "", fmt.Errorf("quotient of %v digit(s) requires capacity %v, but capacity is %v: %w", len(q), len(q)+1, capacity, ErrBufferTooSmall)
	}
	return string(q), nil
}

// QuoRem returns the truncated quotient and the remainder of num divided by
// divisor, such that num = q * divisor + r.
// It is equivalent to calling [Quo] with a capacity of len(num) + 1 and [Mod],
// but scans num only once.
//
// QuoRem returns an error wrapping:
//   - [ErrInvalidInput] if num is not a numeral or divisor is less than 1 or
//     greater than [MaxDivisor];
//   - [ErrInvariant] if the computation produced an impossible quotient.
func QuoRem(num string, divisor int) (q string, r int, err error) {
	if err = checkNumeral(num); err != nil {
		return "", 0, err
	}
	if err = checkDivisor(divisor); err != nil {
		return "", 0, err
	}
	b, r, err := quoRem(num, acc(divisor))
	if err != nil {
		return "", 0, err
	}
	return string(b), r, nil
}

// quoRem performs long division of num by y.
// It assumes that num is a numeral and y is a valid divisor.
// Digits of the quotient are emitted starting from the first non-zero one.
func quoRem(num string, y acc) (q []byte, r int, err error) {
	q = make([]byte, 0, len(num))
	var s acc
	for pos := 0; pos < len(num); pos++ {
		var d acc
		d, s = s.fsa(num[pos] - '0').quoRem(y)
		if d > 9 {
			return nil, 0, fmt.Errorf("quotient digit %v at position %v: %w", d, pos, ErrInvariant)
		}
		if d == 0 && len(q) == 0 {
			continue
		}
		q = append(q, byte(d)+'0')
	}
	if len(q) == 0 {
		q = append(q, '0')
	}
	if len(q) > len(num) {
		return nil, 0, fmt.Errorf("quotient has %v digit(s), but dividend has only %v: %w", len(q), len(num), ErrInvariant)
	}
	return q, int(s), nil
}

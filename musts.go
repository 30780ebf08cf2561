package ringmap

import "fmt"

// MustMod is like [Mod] but panics if computing error.
func MustMod(num string, divisor int) int {
	r, err := Mod(num, divisor)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%q, %v) failed: %v", num, divisor, err))
	}
	return r
}

// MustQuo is like [QuoRem] but returns only the quotient and panics if
// computing error.
func MustQuo(num string, divisor int) string {
	q, _, err := QuoRem(num, divisor)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%q, %v) failed: %v", num, divisor, err))
	}
	return q
}

// MustLocate is like [Locate] but panics if computing error.
// It simplifies safe initialization of global variables holding positions.
func MustLocate(num string) Polar {
	p, err := Locate(num)
	if err != nil {
		panic(fmt.Sprintf("MustLocate(%q) failed: %v", num, err))
	}
	return p
}

// MustMap is like [Map] but panics if computing error.
func MustMap(num string) Point {
	p, err := Map(num)
	if err != nil {
		panic(fmt.Sprintf("MustMap(%q) failed: %v", num, err))
	}
	return p
}

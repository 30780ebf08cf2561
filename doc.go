/*
Package ringmap implements exact arithmetic on non-negative integers of
unbounded magnitude written as decimal numerals, and uses it to map such
numerals onto a bounded polar grid.
It is designed for deriving stable, platform-independent 2-D points from
values that do not fit into machine integers, such as hashes or identifiers.

# Numerals

A numeral is a string of decimal digits without a sign, separators or
superfluous leading zeros:

	digit   ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
	nonzero ::= '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
	numeral ::= '0' | nonzero { digit }

See [IsNumeral].

# Arithmetic

The package provides the following operations with a small divisor:

  - [Mod] computes the remainder of a numeral divided by a divisor.
  - [Quo] computes the truncated quotient as a numeral.
  - [QuoRem] computes both in a single pass.

Each operation processes the digits from the most significant one and keeps
only an accumulator smaller than the divisor between steps.
The accumulator is a uint64 and the divisor is limited to [MaxDivisor],
so the operations never overflow and never convert the numeral to a
machine integer.
They run in time proportional to the number of digits.

[Quo] takes a capacity that bounds the storage of the result.
The capacity counts the digits of the quotient plus one terminator slot,
so a quotient of n digits requires a capacity of at least n+1.

# Mapping

[Locate] maps a numeral onto a grid of [Sectors] angular sectors of
[SectorDegrees] degrees each and [Rings] concentric rings:

 1. The sector (theta index) is the numeral modulo 40.
 2. The gross radius is the numeral divided by 40, kept as a numeral.
 3. The ring index is the gross radius modulo 77.
 4. The effective radius is the ring index plus 1, thus in range [1, 77].

[Map] converts the result to a [Point] using a fixed table of sines and
cosines, so only the small effective radius is ever multiplied by a
floating-point value.

# Errors

All functions except Must* helpers are panic-free and pure.
Errors wrap one of the following values and can be checked with [errors.Is]:

  - [ErrInvalidInput] if a numeral is malformed or a divisor is out of range.
  - [ErrBufferTooSmall] if a quotient does not fit into the given capacity.
  - [ErrInvariant] if a computed index falls outside of its range.
    This indicates a defect in the package and should be treated as fatal.

Functions never return partial results together with an error.
*/
package ringmap

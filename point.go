package ringmap

import (
	"fmt"
	"strconv"
)

const (
	Sectors       = 40    // number of angular sectors, the modulus of the theta index
	SectorDegrees = 9     // width of a sector in degrees
	Rings         = 77    // number of rings, the modulus of the ring index
	MaxRadius     = Rings // maximum effective radius
)

// Polar is a position of a numeral on the grid of sectors and rings.
// It is the intermediate result of [Locate].
type Polar struct {
	Theta int    // sector index in range [0, Sectors)
	Gross string // gross radius, the numeral divided by Sectors
	Ring  int    // ring index in range [0, Rings)
}

// Radius returns the effective radius, which is the ring index plus one.
// The result is in range [1, MaxRadius].
func (p Polar) Radius() int {
	return p.Ring + 1
}

// Degrees returns the angle of the sector in degrees.
func (p Polar) Degrees() int {
	return p.Theta * SectorDegrees
}

// Point returns the Cartesian coordinates of p.
// If the sector index of p is out of range, Point returns the origin.
func (p Polar) Point() Point {
	sin, cos, ok := SinCos(p.Theta)
	if !ok {
		return Point{}
	}
	r := float64(p.Radius())
	return Point{X: r * cos, Y: r * sin}
}

// Point is a point on a plane.
// The zero value is the origin.
type Point struct {
	X, Y float64
}

// String method implements the [fmt.Stringer] interface and returns
// coordinates with 8 digits after the decimal point, for example:
//
//	(1.72077917, 10.86457174)
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', 8, 64) + ", " + strconv.FormatFloat(p.Y, 'f', 8, 64) + ")"
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Point.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Locate maps num onto the grid of sectors and rings:
//
//	Theta = num mod 40
//	Gross = ⌊num / 40⌋
//	Ring  = Gross mod 77
//
// The gross radius is never converted to a machine number, so Locate is
// exact for numerals of any length.
//
// Locate returns an error wrapping:
//   - [ErrInvalidInput] if num is not a numeral;
//   - [ErrInvariant] if a computed index is out of range.
func Locate(num string) (Polar, error) {
	theta, err := Mod(num, Sectors)
	if err != nil {
		return Polar{}, err
	}
	if theta < 0 || theta >= Sectors {
		return Polar{}, fmt.Errorf("theta index %v is out of range [0, %v): %w", theta, Sectors, ErrInvariant)
	}
	gross, err := Quo(num, Sectors, len(num)+1)
	if err != nil {
		return Polar{}, err
	}
	ring, err := Mod(gross, Rings)
	if err != nil {
		return Polar{}, err
	}
	if ring < 0 || ring >= Rings {
		return Polar{}, fmt.Errorf("ring index %v is out of range [0, %v): %w", ring, Rings, ErrInvariant)
	}
	return Polar{Theta: theta, Gross: gross, Ring: ring}, nil
}

// Map returns the Cartesian point of num:
//
//	X = Radius * cos(Theta * 9°)
//	Y = Radius * sin(Theta * 9°)
//
// where Theta and Radius are computed by [Locate], and sines and cosines are
// taken from a fixed table, see [SinCos].
// Map is deterministic: the same numeral always produces the same point.
//
// Map returns the same errors as [Locate].
func Map(num string) (Point, error) {
	p, err := Locate(num)
	if err != nil {
		return Point{}, err
	}
	return p.Point(), nil
}

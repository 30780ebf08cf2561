package ringmap

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestLocate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num   string
			want  Polar
			angle int
		}{
			{"0", Polar{Theta: 0, Gross: "0", Ring: 0}, 0},
			{"1", Polar{Theta: 1, Gross: "0", Ring: 0}, 9},
			{"39", Polar{Theta: 39, Gross: "0", Ring: 0}, 351},
			{"40", Polar{Theta: 0, Gross: "1", Ring: 1}, 0},
			{"123", Polar{Theta: 3, Gross: "3", Ring: 3}, 27},
			{"3080", Polar{Theta: 0, Gross: "77", Ring: 0}, 0},
			{"3081", Polar{Theta: 1, Gross: "77", Ring: 0}, 9},
			{"123456789", Polar{Theta: 29, Gross: "3086419", Ring: 28}, 261},
			{"921083649", Polar{Theta: 9, Gross: "23027091", Ring: 10}, 81},
		}
		for _, tt := range tests {
			got, err := Locate(tt.num)
			if err != nil {
				t.Errorf("Locate(%q) failed: %v", tt.num, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Locate(%q) = %+v, want %+v", tt.num, got, tt.want)
			}
			if got.Degrees() != tt.angle {
				t.Errorf("Locate(%q).Degrees() = %v, want %v", tt.num, got.Degrees(), tt.angle)
			}
			if got.Radius() != tt.want.Ring+1 {
				t.Errorf("Locate(%q).Radius() = %v, want %v", tt.num, got.Radius(), tt.want.Ring+1)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "12a3", "0123", "-1"}
		for _, num := range tests {
			got, err := Locate(num)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Locate(%q) failed with %v, want %v", num, err, ErrInvalidInput)
			}
			if got != (Polar{}) {
				t.Errorf("Locate(%q) = %+v, want zero value on error", num, got)
			}
		}
	})

	t.Run("range", func(t *testing.T) {
		tests := []string{
			strings.Repeat("9", 500),
			strings.Repeat("7", 1001),
			"1" + strings.Repeat("0", 2000),
		}
		for _, num := range tests {
			got, err := Locate(num)
			if err != nil {
				t.Errorf("Locate(%v digits) failed: %v", len(num), err)
				continue
			}
			if got.Theta < 0 || got.Theta >= Sectors {
				t.Errorf("Locate(%v digits).Theta = %v, out of range", len(num), got.Theta)
			}
			if r := got.Radius(); r < 1 || r > MaxRadius {
				t.Errorf("Locate(%v digits).Radius() = %v, out of range", len(num), r)
			}
			wantGross, wantTheta := bintQuoRem(num, Sectors)
			if got.Gross != wantGross || got.Theta != wantTheta {
				t.Errorf("Locate(%v digits) = (%v, %v digits), want (%v, %v digits)", len(num), got.Theta, len(got.Gross), wantTheta, len(wantGross))
			}
			if _, wantRing := bintQuoRem(wantGross, Rings); got.Ring != wantRing {
				t.Errorf("Locate(%v digits).Ring = %v, want %v", len(num), got.Ring, wantRing)
			}
		}
	})
}

func TestMap(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num  string
			want Point
		}{
			{"0", Point{1, 0}},
			{"10", Point{0, 1}},
			{"20", Point{-1, 0}},
			{"30", Point{0, -1}},
			{"41", Point{1.97537668, 0.31286894}},
			{"921083649", Point{1.7208, 10.8646}},
			{"123456789", Point{-4.5366, -28.6430}},
		}
		for _, tt := range tests {
			got, err := Map(tt.num)
			if err != nil {
				t.Errorf("Map(%q) failed: %v", tt.num, err)
				continue
			}
			if math.Abs(got.X-tt.want.X) > 1e-4 || math.Abs(got.Y-tt.want.Y) > 1e-4 {
				t.Errorf("Map(%q) = %v, want %v", tt.num, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "12a3", "00"}
		for _, num := range tests {
			got, err := Map(num)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Map(%q) failed with %v, want %v", num, err, ErrInvalidInput)
			}
			if got != (Point{}) {
				t.Errorf("Map(%q) = %v, want origin on error", num, got)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		tests := []string{"0", "921083649", strings.Repeat("31415926535", 40)}
		for _, num := range tests {
			p := MustMap(num)
			q := MustMap(num)
			if math.Float64bits(p.X) != math.Float64bits(q.X) || math.Float64bits(p.Y) != math.Float64bits(q.Y) {
				t.Errorf("Map(%q) returned %v and then %v", num, p, q)
			}
		}
	})
}

func TestPolar_Point(t *testing.T) {
	p := Polar{Theta: 9, Gross: "23027091", Ring: 10}
	got := p.Point().String()
	want := "(1.72077917, 10.86457174)"
	if got != want {
		t.Errorf("%+v.Point() = %v, want %v", p, got, want)
	}

	p = Polar{Theta: Sectors, Ring: 3}
	if got := p.Point(); got != (Point{}) {
		t.Errorf("%+v.Point() = %v, want origin", p, got)
	}
}

func TestPoint_MarshalText(t *testing.T) {
	p := Point{X: -4.53659963, Y: -28.64296273}
	got, err := p.MarshalText()
	if err != nil {
		t.Fatalf("%v.MarshalText() failed: %v", p, err)
	}
	want := "(-4.53659963, -28.64296273)"
	if string(got) != want {
		t.Errorf("%v.MarshalText() = %q, want %q", p, got, want)
	}
}

func TestSinCos(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		for theta := 0; theta < Sectors; theta++ {
			sin, cos, ok := SinCos(theta)
			if !ok {
				t.Errorf("SinCos(%v) failed", theta)
				continue
			}
			rad := float64(theta*SectorDegrees) * math.Pi / 180
			if math.Abs(sin-math.Sin(rad)) > 1e-6 {
				t.Errorf("SinCos(%v) sin = %v, want %v", theta, sin, math.Sin(rad))
			}
			if math.Abs(cos-math.Cos(rad)) > 1e-6 {
				t.Errorf("SinCos(%v) cos = %v, want %v", theta, cos, math.Cos(rad))
			}
		}
	})

	t.Run("literal", func(t *testing.T) {
		sin, cos, ok := SinCos(9)
		if !ok || sin != 0.98768834 || cos != 0.15643447 {
			t.Errorf("SinCos(9) = (%v, %v, %v), want (0.98768834, 0.15643447, true)", sin, cos, ok)
		}
	})

	t.Run("range", func(t *testing.T) {
		for _, theta := range []int{-1, Sectors, Sectors + 1, math.MaxInt} {
			if _, _, ok := SinCos(theta); ok {
				t.Errorf("SinCos(%v) did not fail", theta)
			}
		}
	})
}

func TestMustLocate(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustLocate(\"\") did not panic")
			}
		}()
		MustLocate("")
	})
}

func TestMustMap(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustMap(\"1x\") did not panic")
			}
		}()
		MustMap("1x")
	})
}

func FuzzLocate(f *testing.F) {
	for _, c := range corpus {
		f.Add(c.num)
	}

	f.Fuzz(
		func(t *testing.T, num string) {
			got, err := Locate(num)
			if err != nil {
				if IsNumeral(num) {
					t.Errorf("Locate(%q) failed: %v", num, err)
				}
				t.Skip()
				return
			}
			gross, theta := bintQuoRem(num, Sectors)
			_, ring := bintQuoRem(gross, Rings)
			want := Polar{Theta: theta, Gross: gross, Ring: ring}
			if got != want {
				t.Errorf("Locate(%q) = %+v, want %+v", num, got, want)
			}
		},
	)
}

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestRun(t *testing.T) {
	t.Run("describe", func(t *testing.T) {
		var out bytes.Buffer
		err := run(config{}, []string{"921083649"}, strings.NewReader(""), &out, zaptest.NewLogger(t))
		if err != nil {
			t.Fatalf("run() failed: %v", err)
		}
		want := "numeral:  921083649\n" +
			"theta:    9 (81 degrees)\n" +
			"gross:    23027091\n" +
			"ring:     10 (radius 11)\n" +
			"cos, sin: 0.15643447, 0.98768834\n" +
			"x, y:     1.72077917, 10.86457174\n\n"
		if got := out.String(); got != want {
			t.Errorf("run() printed\n%v\nwant\n%v", got, want)
		}
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		err := run(config{JSON: true}, nil, strings.NewReader("123\n921083649\n"), &out, zaptest.NewLogger(t))
		if err != nil {
			t.Fatalf("run() failed: %v", err)
		}
		dec := json.NewDecoder(&out)
		var got []record
		for dec.More() {
			var r record
			if err := dec.Decode(&r); err != nil {
				t.Fatalf("Decode() failed: %v", err)
			}
			got = append(got, r)
		}
		if len(got) != 2 {
			t.Fatalf("run() printed %v record(s), want 2", len(got))
		}
		want := record{Numeral: "921083649", Theta: 9, Degrees: 81, Gross: "23027091", Ring: 10, Radius: 11}
		r := got[1]
		r.X, r.Y = 0, 0
		if r != want {
			t.Errorf("run() printed %+v, want %+v", r, want)
		}
		if got[0].Theta != 3 || got[0].Radius != 4 {
			t.Errorf("run() printed %+v for \"123\"", got[0])
		}
	})

	t.Run("rejected", func(t *testing.T) {
		var out bytes.Buffer
		err := run(config{}, []string{"12a3", "0", "007"}, strings.NewReader(""), &out, zaptest.NewLogger(t))
		if !errors.Is(err, errRejected) {
			t.Errorf("run() failed with %v, want %v", err, errRejected)
		}
		if !strings.Contains(out.String(), "numeral:  0\n") {
			t.Errorf("run() did not describe the valid numeral, printed\n%v", out.String())
		}
		if strings.Contains(out.String(), "12a3") {
			t.Errorf("run() described an invalid numeral, printed\n%v", out.String())
		}
	})

	t.Run("png", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "plot.png")
		cfg := config{PNG: name, Size: 128, Labels: true, JSON: true}
		var out bytes.Buffer
		if err := run(cfg, []string{"1", "2", "3"}, strings.NewReader(""), &out, zaptest.NewLogger(t)); err != nil {
			t.Fatalf("run() failed: %v", err)
		}
		f, err := os.Open(name)
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", name, err)
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			t.Fatalf("png.Decode() failed: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
			t.Errorf("plot is %vx%v, want 128x128", b.Dx(), b.Dy())
		}
	})
}

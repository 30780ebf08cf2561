// Command ringmap maps numerals onto the ring grid and prints where they land.
//
// Usage:
//
//	ringmap [flags] [numeral ...]
//
// Without arguments numerals are read from standard input, one per line.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/govalues/ringmap"
	"github.com/govalues/ringmap/internal/source"
	"github.com/govalues/ringmap/plot"

	"go.uber.org/zap"
)

type config struct {
	JSON    bool   // print one JSON object per numeral
	PNG     string // write a plot to this file
	Size    int    // plot size in pixels
	Labels  bool   // label dots in the plot
	Verbose bool   // debug logging
}

var errRejected = errors.New("some numerals were rejected")

func main() {
	var cfg config
	flag.BoolVar(&cfg.JSON, "json", false, "Print one JSON object per numeral.")
	flag.StringVar(&cfg.PNG, "png", "", "Write a plot of all numerals to `file`.")
	flag.IntVar(&cfg.Size, "size", plot.DefaultOptions().Size, "Plot width and height in pixels.")
	flag.BoolVar(&cfg.Labels, "labels", false, "Write numerals next to their dots in the plot.")
	flag.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging.")
	flag.Parse()

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	plot.SetLogger(logger)

	err = run(cfg, flag.Args(), os.Stdin, os.Stdout, logger)
	if err != nil && !errors.Is(err, errRejected) {
		logger.Error("ringmap failed", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// record is the JSON form of a mapped numeral.
type record struct {
	Numeral string  `json:"numeral"`
	Theta   int     `json:"theta"`
	Degrees int     `json:"degrees"`
	Gross   string  `json:"gross"`
	Ring    int     `json:"ring"`
	Radius  int     `json:"radius"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

func run(cfg config, args []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	var p *plot.Plot
	if cfg.PNG != "" {
		p = plot.New(plot.Options{Size: cfg.Size, Grid: true, Labels: cfg.Labels})
	}
	enc := json.NewEncoder(stdout)

	rejected := 0
	err := source.Each(args, stdin, func(num string) error {
		pol, err := ringmap.Locate(num)
		if err != nil {
			if !errors.Is(err, ringmap.ErrInvalidInput) {
				return err
			}
			rejected++
			logger.Warn("Numeral rejected",
				zap.Int("digits", len(num)),
				zap.Error(err),
			)
			return nil
		}
		if p != nil {
			if _, err := p.Add(num); err != nil {
				return err
			}
		}
		if cfg.JSON {
			pt := pol.Point()
			return enc.Encode(record{
				Numeral: num,
				Theta:   pol.Theta,
				Degrees: pol.Degrees(),
				Gross:   pol.Gross,
				Ring:    pol.Ring,
				Radius:  pol.Radius(),
				X:       pt.X,
				Y:       pt.Y,
			})
		}
		return describe(stdout, num, pol)
	})
	if err != nil {
		return err
	}

	if p != nil {
		if err := writePlot(cfg.PNG, p); err != nil {
			return err
		}
		logger.Info("Plot written",
			zap.String("file", cfg.PNG),
			zap.Int("numerals", p.Len()),
		)
	}

	if rejected > 0 {
		return fmt.Errorf("%v numeral(s): %w", rejected, errRejected)
	}
	return nil
}

// describe prints how num is mapped, step by step.
func describe(w io.Writer, num string, pol ringmap.Polar) error {
	sin, cos, _ := ringmap.SinCos(pol.Theta)
	pt := pol.Point()
	_, err := fmt.Fprintf(w, "numeral:  %v\n"+
		"theta:    %v (%v degrees)\n"+
		"gross:    %v\n"+
		"ring:     %v (radius %v)\n"+
		"cos, sin: %.8f, %.8f\n"+
		"x, y:     %.8f, %.8f\n\n",
		num,
		pol.Theta, pol.Degrees(),
		pol.Gross,
		pol.Ring, pol.Radius(),
		cos, sin,
		pt.X, pt.Y,
	)
	return err
}

func writePlot(name string, p *plot.Plot) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return p.WritePNG(f)
}

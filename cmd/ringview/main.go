// Command ringview plots numerals on the ring grid and shows the result in a
// desktop window. Esc closes the window.
//
// Usage:
//
//	ringview [flags] [numeral ...]
//
// Without arguments numerals are read from standard input, one per line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/govalues/ringmap"
	"github.com/govalues/ringmap/internal/source"
	"github.com/govalues/ringmap/plot"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type config struct {
	Size    int  // window width and height in pixels
	Labels  bool // label dots
	Verbose bool // debug logging
}

func main() {
	var cfg config
	flag.IntVar(&cfg.Size, "size", plot.DefaultOptions().Size, "Window width and height in pixels.")
	flag.BoolVar(&cfg.Labels, "labels", false, "Write numerals next to their dots.")
	flag.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging.")
	flag.Parse()

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	plot.SetLogger(logger)

	p, err := load(cfg, flag.Args(), os.Stdin, logger)
	if err == nil {
		err = show(p)
	}
	if err != nil {
		logger.Error("ringview failed", zap.Error(err))
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

// load plots every valid numeral. Invalid numerals are logged and skipped.
func load(cfg config, args []string, stdin io.Reader, logger *zap.Logger) (*plot.Plot, error) {
	p := plot.New(plot.Options{Size: cfg.Size, Grid: true, Labels: cfg.Labels})
	err := source.Each(args, stdin, func(num string) error {
		_, err := p.Add(num)
		if errors.Is(err, ringmap.ErrInvalidInput) {
			logger.Warn("Numeral rejected",
				zap.Int("digits", len(num)),
				zap.Error(err),
			)
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Plot ready", zap.Int("numerals", p.Len()))
	return p, nil
}

// show blocks until the window is closed.
func show(p *plot.Plot) error {
	img := p.Image()
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	v := &viewer{img: ebiten.NewImageFromImage(img), width: w, height: h}
	ebiten.SetWindowTitle(fmt.Sprintf("ringview (%v numerals)", p.Len()))
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(30)
	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// viewer implements ebiten.Game over a fixed image.
type viewer struct {
	img           *ebiten.Image
	width, height int
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

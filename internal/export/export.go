// Package export renders chord diagrams to PNG.
package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/iburimskiy/circle-numbers/internal/circle"
	"github.com/iburimskiy/circle-numbers/internal/config"
)

const captionSize = 14.0

type Options struct {
	Width   int
	Height  int
	Palette string
	Caption bool
}

// FileName is the default export name for p.
func FileName(p circle.Params) string {
	return fmt.Sprintf("circle-%dx%d.png", p.Multiplier, p.Modulus)
}

// Render draws p onto a fresh context.
func Render(p circle.Params, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("export size %dx%d", opts.Width, opts.Height)
	}
	if p.Modulus < 1 {
		return nil, fmt.Errorf("export modulus %d", p.Modulus)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(config.CanvasColor)
	dc.Clear()

	cs := circle.Project(p.Multiplier, p.Modulus, float64(opts.Width), float64(opts.Height))
	cs.Draw(&surface{dc: dc, palette: opts.Palette, modulus: p.Modulus})

	if opts.Caption {
		face, err := captionFace()
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(color.White)
		dc.DrawStringAnchored(fmt.Sprintf("%d × %d", p.Multiplier, p.Modulus), 8, float64(opts.Height)-8, 0, 0)
	}
	return dc, nil
}

// WritePNG encodes the rendered diagram to w.
func WritePNG(w io.Writer, p circle.Params, opts Options) error {
	dc, err := Render(p, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the rendered diagram to path.
func SavePNG(path string, p circle.Params, opts Options) error {
	dc, err := Render(p, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func captionFace() (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

type surface struct {
	dc      *gg.Context
	palette string
	modulus int
}

func (s *surface) StrokeCircle(c circle.Point, r float64) {
	s.dc.SetColor(config.ChordColor)
	s.dc.SetLineWidth(config.CircleStrokeWidth)
	s.dc.DrawCircle(c.X, c.Y, r)
	s.dc.Stroke()
}

func (s *surface) StrokeLine(from, to circle.Point, label int) {
	s.dc.SetColor(config.ChordColorAt(s.palette, label, s.modulus))
	s.dc.SetLineWidth(config.ChordStrokeWidth)
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	s.dc.Stroke()
}

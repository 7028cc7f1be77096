package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/circle-numbers/internal/circle"
	"github.com/iburimskiy/circle-numbers/internal/config"
	"github.com/iburimskiy/circle-numbers/internal/ui"
)

// surface strokes onto an ebiten image, offset to the canvas origin.
type surface struct {
	dst     *ebiten.Image
	origin  image.Point
	palette string
	modulus int
}

func (s *surface) StrokeCircle(c circle.Point, r float64) {
	vector.StrokeCircle(s.dst,
		float32(c.X)+float32(s.origin.X), float32(c.Y)+float32(s.origin.Y),
		float32(r), config.CircleStrokeWidth, config.ChordColor, true)
}

func (s *surface) StrokeLine(from, to circle.Point, label int) {
	ox, oy := float32(s.origin.X), float32(s.origin.Y)
	vector.StrokeLine(s.dst,
		float32(from.X)+ox, float32(from.Y)+oy,
		float32(to.X)+ox, float32(to.Y)+oy,
		config.ChordStrokeWidth, config.ChordColorAt(s.palette, label, s.modulus), true)
}

func drawCanvas(screen *ebiten.Image, r image.Rectangle, cs circle.ChordSet, palette string, modulus int) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.CanvasColor, false)
	sub := screen.SubImage(r).(*ebiten.Image)
	cs.Draw(&surface{dst: sub, origin: r.Min, palette: palette, modulus: modulus})
}

// drawHeader paints the vertical gradient behind the parameter controls.
func drawHeader(screen *ebiten.Image, r image.Rectangle) {
	top, bottom := config.HeaderColorTop, config.HeaderColorBelow
	h := r.Dy()
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 255,
		}
		fy := float32(r.Min.Y+y) + 0.5
		vector.StrokeLine(screen, float32(r.Min.X), fy, float32(r.Max.X), fy, 1, c, false)
	}
}

func drawButton(screen *ebiten.Image, b ui.Button, hovered, pressed bool) {
	var bg color.Color
	switch {
	case !b.Enabled:
		bg = config.ButtonDisabledColor
	case pressed:
		bg = config.ButtonPressedColor
	case hovered:
		bg = config.ButtonHoverColor
	default:
		bg = config.ButtonColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, config.ButtonBorderColor, false)

	textX := b.Rect.Min.X + (b.Rect.Dx()-ui.TextWidth(b.Label))/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-ui.LineHeight)/2
	ebitenutil.DebugPrintAt(screen, b.Label, textX, textY)
}

func drawLabel(screen *ebiten.Image, l ui.Label) {
	w := ui.TextWidth(l.Text)
	vector.DrawFilledRect(screen, float32(l.At.X-2), float32(l.At.Y), float32(w+4), ui.LineHeight, config.ButtonBorderColor, false)
	ebitenutil.DebugPrintAt(screen, l.Text, l.At.X, l.At.Y)
}

func drawStatus(screen *ebiten.Image, msg string, footer image.Rectangle) {
	y := footer.Max.Y + 2
	if y+ui.LineHeight > screen.Bounds().Dy() {
		y = footer.Min.Y - ui.LineHeight
	}
	ebitenutil.DebugPrintAt(screen, msg, 12, y)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

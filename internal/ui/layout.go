// Package ui lays out the controls and canvas for each display mode.
package ui

import (
	"fmt"
	"image"

	"github.com/iburimskiy/circle-numbers/internal/circle"
	"github.com/iburimskiy/circle-numbers/internal/config"
)

// Glyph metrics of the debug font used for labels.
const (
	CharWidth  = 6
	LineHeight = 16
)

type Button struct {
	Label   string
	Rect    image.Rectangle
	Enabled bool
	Action  Action
}

type Label struct {
	Text string
	At   image.Point
}

// Layout is one frame's arrangement of the window.
type Layout struct {
	Header  image.Rectangle
	Canvas  image.Rectangle
	Footer  image.Rectangle
	Buttons []Button
	Labels  []Label
}

// ButtonAt returns the index of the enabled button under (x, y), or -1.
func (l *Layout) ButtonAt(x, y int) int {
	p := image.Pt(x, y)
	for i, b := range l.Buttons {
		if b.Enabled && p.In(b.Rect) {
			return i
		}
	}
	return -1
}

// Build arranges a width x height window for snap.
func Build(snap circle.Snapshot, width, height int) Layout {
	var l Layout

	top := 0
	fraction := config.FullScreenFraction
	if snap.Mode == circle.ModeParameterBar {
		l.Header = image.Rect(0, config.HeaderTopPadding, width, config.HeaderHeight)
		l.buildHeader(snap.Params, width)
		top = config.HeaderHeight
		fraction = config.ParameterBarFraction
	}

	canvasHeight := int(float64(height-top) * fraction)
	l.Canvas = image.Rect(0, top, width, top+canvasHeight)
	l.Footer = image.Rect(0, l.Canvas.Max.Y, width, l.Canvas.Max.Y+config.FooterHeight)
	l.buildFooter(snap)
	return l
}

func (l *Layout) buildHeader(p circle.Params, width int) {
	cell := config.ButtonWidth + 2*config.ButtonPadding
	groupWidth := len(circle.Steps) * cell
	xs := spaceEvenly(width, []int{groupWidth, groupWidth})

	groups := []struct {
		title string
		field circle.Field
	}{
		{fmt.Sprintf("Multiplier: %d", p.Multiplier), circle.FieldMultiplier},
		{fmt.Sprintf("Modulus: %d", p.Modulus), circle.FieldModulus},
	}

	y := l.Header.Min.Y + config.ButtonPadding
	rowHeight := config.ButtonHeight + 2*config.ButtonPadding
	for gi, g := range groups {
		x0 := xs[gi]
		l.Labels = append(l.Labels, Label{
			Text: g.title,
			At:   image.Pt(x0+(groupWidth-TextWidth(g.title))/2, y),
		})

		for row, kind := range []Kind{KindIncrement, KindDecrement} {
			sign := "+"
			if kind == KindDecrement {
				sign = "-"
			}
			by := y + LineHeight + config.ButtonPadding + row*rowHeight + config.ButtonPadding
			for i, step := range circle.Steps {
				bx := x0 + i*cell + config.ButtonPadding
				l.Buttons = append(l.Buttons, Button{
					Label:   fmt.Sprintf("%s%d", sign, step),
					Rect:    image.Rect(bx, by, bx+config.ButtonWidth, by+config.ButtonHeight),
					Enabled: true,
					Action:  Action{Kind: kind, Field: g.field, Amount: step},
				})
			}
		}
	}
}

func (l *Layout) buildFooter(snap circle.Snapshot) {
	middle := Button{Label: "Generate Random Circle", Action: Action{Kind: KindRandomize}}
	if snap.Mode != circle.ModeParameterBar {
		middle = Button{Label: "Show Circle Parameters", Action: Action{Kind: KindShowParameters}}
	}

	buttons := []Button{
		{Label: "<", Action: Action{Kind: KindRetreat}, Enabled: snap.Mode != circle.ModeParameterBar},
		middle,
		{Label: ">", Action: Action{Kind: KindAdvance}},
	}
	widths := []int{config.PageButtonWidth, config.RandomButtonWidth, config.PageButtonWidth}

	caption := snap.SlideLabel()
	if caption != "" {
		widths = append(widths, TextWidth(caption))
	}

	xs := spaceEvenly(l.Footer.Dx(), widths)
	y := l.Footer.Min.Y + config.FooterButtonTop
	for i, b := range buttons {
		if b.Action.Kind != KindRetreat {
			b.Enabled = true
		}
		b.Rect = image.Rect(xs[i], y, xs[i]+widths[i], y+config.ButtonHeight)
		l.Buttons = append(l.Buttons, b)
	}
	if caption != "" {
		l.Labels = append(l.Labels, Label{Text: caption, At: image.Pt(xs[3], l.Footer.Min.Y+config.CircleLabelTop)})
	}
}

// spaceEvenly returns the left edge of each item so the gaps before,
// between and after them are equal.
func spaceEvenly(total int, widths []int) []int {
	used := 0
	for _, w := range widths {
		used += w
	}
	gap := max((total-used)/(len(widths)+1), 0)

	xs := make([]int, len(widths))
	x := gap
	for i, w := range widths {
		xs[i] = x
		x += w + gap
	}
	return xs
}

// TextWidth is the rendered width of s in the debug font.
func TextWidth(s string) int {
	return len([]rune(s)) * CharWidth
}

package circle

import (
	"fmt"
	"math"
)

const (
	// Margin is the inset between the canvas edge and the circle.
	Margin = 24

	// StartAngle puts label 0 at the top of the circle.
	StartAngle = 3 * math.Pi / 2
)

type Point struct {
	X, Y float64
}

// Chord joins the point for Label to the point for Target.
type Chord struct {
	Label, Target int
	From, To      Point
}

// ChordSet is everything needed to draw one diagram.
type ChordSet struct {
	Center Point
	Radius float64
	Chords []Chord
}

// Project lays out a diagram for the given parameters on a width x height
// canvas. Labels run 1..modulus inclusive, so label modulus lands on the
// same point as residue 0. It panics if modulus < 1.
func Project(multiplier, modulus int, width, height float64) ChordSet {
	if modulus < 1 {
		panic(fmt.Sprintf("circle: project with modulus %d", modulus))
	}

	cs := ChordSet{
		Center: Point{X: width / 2, Y: height / 2},
		Radius: height/2 - Margin,
		Chords: make([]Chord, 0, modulus),
	}
	segment := 2 * math.Pi / float64(modulus)

	for k := 1; k <= modulus; k++ {
		target := k * multiplier % modulus
		cs.Chords = append(cs.Chords, Chord{
			Label:  k,
			Target: target,
			From:   cs.pointAt(StartAngle + segment*float64(k)),
			To:     cs.pointAt(StartAngle + segment*float64(target)),
		})
	}
	return cs
}

func (cs ChordSet) pointAt(angle float64) Point {
	return Point{
		X: cs.Center.X + cs.Radius*math.Cos(angle),
		Y: cs.Center.Y + cs.Radius*math.Sin(angle),
	}
}

// Surface is a 2D target that can stroke circles and line segments.
type Surface interface {
	StrokeCircle(center Point, radius float64)
	StrokeLine(from, to Point, label int)
}

// Draw strokes the outline and every chord onto s.
func (cs ChordSet) Draw(s Surface) {
	s.StrokeCircle(cs.Center, cs.Radius)
	for _, c := range cs.Chords {
		s.StrokeLine(c.From, c.To, c.Label)
	}
}

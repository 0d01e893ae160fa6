package easing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a control point in normalized [0,1]² space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is a cubic easing curve from (0,0) to (1,1) shaped by two control
// points. The curve editor owns it; the compiler only reads a snapshot.
type Curve struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// Linear is the curve the editor starts with.
var Linear = Curve{P1: Point{X: 0, Y: 0}, P2: Point{X: 1, Y: 1}}

// New builds a curve with both control points clamped to [0,1].
func New(p1, p2 Point) Curve {
	return Curve{P1: p1, P2: p2}.Clamped()
}

// Clamped returns a copy with every coordinate clamped to [0,1].
func (c Curve) Clamped() Curve {
	return Curve{
		P1: Point{X: clamp01(c.P1.X), Y: clamp01(c.P1.Y)},
		P2: Point{X: clamp01(c.P2.X), Y: clamp01(c.P2.Y)},
	}
}

// Encode renders the curve as the parameter string appended to interpolated
// motion values: "0|0,<X>,<Y>,0" with X = round(p1.x) and Y = round(p2.y).
//
// Coordinates are normalized, so X and Y are nearly always 0 or 1. The
// consumer's real scale for these slots is unknown; keep the literal form.
func (c Curve) Encode() string {
	c = c.Clamped()
	return fmt.Sprintf("0|0,%d,%d,0", int(math.RoundToEven(c.P1.X)), int(math.RoundToEven(c.P2.Y)))
}

// Parse reads "x1,y1,x2,y2" as produced by the command line.
func Parse(s string) (Curve, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Curve{}, fmt.Errorf("easing curve needs 4 comma separated values, got %d", len(parts))
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Curve{}, fmt.Errorf("easing curve value %q: %w", p, err)
		}
		v[i] = f
	}

	return New(Point{X: v[0], Y: v[1]}, Point{X: v[2], Y: v[3]}), nil
}

// String is the inverse of Parse.
func (c Curve) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", c.P1.X, c.P1.Y, c.P2.X, c.P2.Y)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

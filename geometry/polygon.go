package geometry

import (
	"fmt"
	"iter"
	"math"
)

// Polygon is a regular polygon, immutable after construction: a center,
// a number of sides, and a circumradius.
type Polygon struct {
	center Vector2D
	sides  int
	radius float64
}

// NewPolygon validates and builds a polygon. A polygon needs at least 3
// sides and a positive radius.
func NewPolygon(center Vector2D, sides int, radius float64) (*Polygon, error) {
	if sides < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 sides, got %d", sides)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("polygon radius must be positive, got %g", radius)
	}
	return &Polygon{center: center, sides: sides, radius: radius}, nil
}

// Center returns the polygon's center
func (p *Polygon) Center() Vector2D { return p.center }

// Sides returns the number of sides
func (p *Polygon) Sides() int { return p.sides }

// Radius returns the circumradius
func (p *Polygon) Radius() float64 { return p.radius }

// vertex computes the k-th vertex on the circumcircle
func (p *Polygon) vertex(k int) Vector2D {
	angle := 2 * math.Pi * float64(k) / float64(p.sides)
	return Vector2D{
		X: p.center.X + p.radius*math.Cos(angle),
		Y: p.center.Y + p.radius*math.Sin(angle),
	}
}

// Points returns a fresh cursor over the polygon's vertices. Every call
// starts a new, independent iteration; concurrent cursors over the same
// polygon never share state.
func (p *Polygon) Points() *PointsIterator {
	return &PointsIterator{polygon: p}
}

// PointsIterator produces a polygon's vertices one at a time. It is
// single-pass: after `sides` productions it only reports exhaustion.
type PointsIterator struct {
	polygon *Polygon
	cursor  int
}

// Next produces the next vertex, reporting false once exhausted
func (it *PointsIterator) Next() (Vector2D, bool) {
	if it.cursor >= it.polygon.sides {
		return Vector2D{}, false
	}
	point := it.polygon.vertex(it.cursor)
	it.cursor++
	return point, true
}

// Vertices returns the same vertex sequence as Points as a range-over
// function. The two forms are interchangeable: same points, same
// length, same independence between iterations.
func (p *Polygon) Vertices() iter.Seq[Vector2D] {
	return func(yield func(Vector2D) bool) {
		for k := 0; k < p.sides; k++ {
			if !yield(p.vertex(k)) {
				return
			}
		}
	}
}

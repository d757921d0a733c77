// Package core provides the value types shared by the snapping code and its
// callers. It has no external dependencies so the geometry stays pure and
// testable.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is an integer position in screen or document space.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is one grid cell: its anchor corner and its size.
type Rect struct {
	X, Y int // Anchor corner
	W, H int // Cell width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Origin returns the anchor corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// IsEmpty reports whether the rectangle has no area.
// A grid built from an empty rect snaps nothing.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Offset returns the rectangle moved by d.
func (r Rect) Offset(d Point) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// String formats the rectangle as "x,y,w,h", the form ParseRect accepts.
func (r Rect) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.W, r.H)
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (Point, error) {
	v, err := parseInts(s, 2)
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return Point{X: v[0], Y: v[1]}, nil
}

// ParseRect parses "x,y,w,h".
func ParseRect(s string) (Rect, error) {
	v, err := parseInts(s, 4)
	if err != nil {
		return Rect{}, fmt.Errorf("invalid rect %q: %w", s, err)
	}
	return Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
}

func parseInts(s string, n int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d comma-separated integers, got %d", n, len(fields))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// FloorDiv divides a by b rounding toward negative infinity.
// It returns the quotient and a remainder in [0, b) for b > 0.
func FloorDiv(a, b int) (q, r int) {
	q, r = a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

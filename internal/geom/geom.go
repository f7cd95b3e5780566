package geom

import (
	"errors"
	"math"
)

// VirtualWidth is the fixed width of the virtual coordinate space.
// The height follows the display aspect ratio.
const VirtualWidth = 100.0

var ErrInvalidRatio = errors.New("display ratio must be positive")

// Vec2 is a point or direction in virtual coordinates (y grows downward).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }

// FromAngle returns the unit vector for an angle in degrees, measured
// counter-clockwise from +x. Because screen y points down, 90° is straight up.
func FromAngle(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: math.Cos(rad), Y: -math.Sin(rad)}
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports strict overlap: boxes that only touch on an edge do not collide.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Space is the resolution-independent rectangle [0, W] x [0, H] that all
// entity positions live in.
type Space struct {
	W, H float64
}

// NewSpace derives the virtual space from a height/width display ratio.
func NewSpace(displayRatio float64) (Space, error) {
	if displayRatio <= 0 || math.IsNaN(displayRatio) || math.IsInf(displayRatio, 0) {
		return Space{}, ErrInvalidRatio
	}
	return Space{W: VirtualWidth, H: VirtualWidth * displayRatio}, nil
}

func (s Space) IsZero() bool { return s.W == 0 && s.H == 0 }

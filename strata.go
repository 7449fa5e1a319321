package strata

import "math"

// Vec2 is a 2D vector used for positions, offsets, deltas, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// OverlapArea returns the area of the intersection of r and other,
// or 0 when they do not overlap.
func (r Rect) OverlapArea(other Rect) float64 {
	w := math.Min(r.X+r.Width, other.X+other.Width) - math.Max(r.X, other.X)
	h := math.Min(r.Y+r.Height, other.Y+other.Height) - math.Max(r.Y, other.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Area returns Width * Height, treating negative dimensions as zero.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
	ModSpace                          // Space bar, treated as a pan modifier
)

// ResizeHandle identifies which of the eight edge/corner handles a resize
// gesture was started from.
type ResizeHandle uint8

const (
	HandleN  ResizeHandle = iota // top edge
	HandleNE                     // top-right corner
	HandleE                      // right edge
	HandleSE                     // bottom-right corner
	HandleS                      // bottom edge
	HandleSW                     // bottom-left corner
	HandleW                      // left edge
	HandleNW                     // top-left corner
)

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// isFinite reports whether v is neither NaN nor an infinity. Gesture inputs
// are dropped when any component fails this check.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package strata

import "math"

// Obstruction describes how badly a focused box is covered by foreground
// boxes, and the camera shift (if any) that relieves it.
type Obstruction struct {
	// Percent is the fraction of the focused box's screen area covered by
	// boxes rendered in front of it, in [0, 1].
	Percent float64
	// Obstructed is true when Percent exceeds the configured threshold.
	Obstructed bool
	// ShiftX, ShiftY is the proposed camera-offset nudge. Valid only when
	// HasShift is true.
	ShiftX, ShiftY float64
	HasShift       bool
}

// avoidDirections are the 8 candidate shift directions: cardinals and
// diagonals, unit length.
var avoidDirections = [8]Vec2{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-math.Sqrt2 / 2, -math.Sqrt2 / 2}, {math.Sqrt2 / 2, -math.Sqrt2 / 2},
	{-math.Sqrt2 / 2, math.Sqrt2 / 2}, {math.Sqrt2 / 2, math.Sqrt2 / 2},
}

// obscurationAt computes the fraction of the focused box's screen area
// covered by the given foreground boxes, with the camera at (zoom, offX,
// offY). Overlap areas sum pairwise and cap at 100%; degenerate focused
// rects report zero.
func (c *Config) obscurationAt(focused Box, foreground []Box, zoom, offX, offY float64) float64 {
	fr := c.BoxScreenRect(focused, zoom, offX, offY)
	area := fr.Area()
	if area <= 0 {
		return 0
	}
	var covered float64
	for _, b := range foreground {
		covered += fr.OverlapArea(c.BoxScreenRect(b, zoom, offX, offY))
	}
	return math.Min(1.0, covered/area)
}

// ResolveObstruction measures how much of the focused box is hidden behind
// boxes on strictly greater depth layers and, when the obstructed threshold
// is crossed, probes the 8 candidate camera shifts for the one that uncovers
// it best. A shift is proposed only when it cuts obscuration by the
// configured relative improvement and keeps the focused box at least
// partially inside the viewport.
func (c *Config) ResolveObstruction(focused Box, all []Box, zoom, offX, offY, viewportW, viewportH float64) Obstruction {
	if viewportW <= 0 || viewportH <= 0 {
		return Obstruction{}
	}

	foreground := make([]Box, 0, len(all))
	for _, b := range all {
		if b.Z > focused.Z && b.ID != focused.ID {
			foreground = append(foreground, b)
		}
	}

	base := c.obscurationAt(focused, foreground, zoom, offX, offY)
	result := Obstruction{
		Percent:    base,
		Obstructed: base > c.ObstructionThreshold,
	}
	if !result.Obstructed {
		return result
	}

	screen := Rect{Width: viewportW, Height: viewportH}
	best := base
	for _, dir := range avoidDirections {
		sx := dir.X * c.AvoidProbeDistance
		sy := dir.Y * c.AvoidProbeDistance

		shifted := c.BoxScreenRect(focused, zoom, offX+sx, offY+sy)
		if !shifted.Intersects(screen) {
			continue
		}
		after := c.obscurationAt(focused, foreground, zoom, offX+sx, offY+sy)
		if after < best {
			best = after
			result.ShiftX, result.ShiftY = sx, sy
		}
	}

	// Propose the shift only when it is a real improvement, not a sidestep
	// into a similar pile of boxes.
	if base > 0 && (base-best)/base >= c.AvoidMinImprovement {
		result.HasShift = true
	} else {
		result.ShiftX, result.ShiftY = 0, 0
	}
	return result
}

// refreshObstruction re-evaluates occlusion of the selected box against the
// camera target and, when a relieving shift exists, eases the target over by
// it. Runs after geometry changes (drag or resize release), selection, and
// view changes. Skipped for degenerate viewports and missing boxes.
func (e *Engine) refreshObstruction() {
	if e.viewportW <= 0 || e.viewportH <= 0 || e.focus.SelectedID == "" {
		return
	}
	focused, ok := e.store.Box(e.focus.SelectedID)
	if !ok {
		e.focus.clearBox(e.focus.SelectedID)
		return
	}

	ob := e.cfg.ResolveObstruction(
		focused, e.store.Boxes(),
		e.vp.TargetZoom, e.vp.TargetOffsetX, e.vp.TargetOffsetY,
		e.viewportW, e.viewportH,
	)
	if !ob.HasShift {
		return
	}
	e.vp.SetTarget(
		e.vp.TargetZoom,
		e.vp.TargetOffsetX+ob.ShiftX,
		e.vp.TargetOffsetY+ob.ShiftY,
		e.cfg.ZoomToBoxDuration,
	)
}

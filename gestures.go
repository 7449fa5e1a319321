package strata

import "math"

// gestureKind identifies the active exclusive gesture. Pan, drag, and resize
// never run concurrently: whichever claims the pointer first owns the camera
// or the box until release.
type gestureKind uint8

const (
	gestureNone   gestureKind = iota
	gesturePan    // camera pan (middle button, left+modifier, touch)
	gestureDrag   // box drag
	gestureResize // box resize from one of 8 handles
)

func (g gestureKind) String() string {
	switch g {
	case gesturePan:
		return "pan"
	case gestureDrag:
		return "drag"
	case gestureResize:
		return "resize"
	default:
		return "none"
	}
}

// velocitySample is one pointer delta in the rolling release-velocity window.
type velocitySample struct {
	t      float64
	dx, dy float64
}

// pushVelocitySample appends a sample and prunes everything older than the
// window.
func pushVelocitySample(samples []velocitySample, t, dx, dy, window float64) []velocitySample {
	samples = append(samples, velocitySample{t: t, dx: dx, dy: dy})
	cut := 0
	for cut < len(samples) && samples[cut].t < t-window {
		cut++
	}
	return samples[cut:]
}

// releaseVelocity sums the deltas still inside the window and converts them
// to pixels per second. Returns zeros when the window holds no motion.
func releaseVelocity(samples []velocitySample, now, window float64) (vx, vy float64) {
	var sumX, sumY float64
	n := 0
	for _, s := range samples {
		if s.t >= now-window {
			sumX += s.dx
			sumY += s.dy
			n++
		}
	}
	if n == 0 || window <= 0 {
		return 0, 0
	}
	return sumX / window, sumY / window
}

// wheelSample is one wheel event magnitude in the zoom-burst window.
type wheelSample struct {
	t   float64
	mag float64
}

// wheelBurstFactor returns the velocity-adaptive multiplier for zoom-per-
// event: a time-windowed sum of recent wheel magnitudes raises the factor up
// to the configured cap, so fast flicks zoom further per notch.
func wheelBurstFactor(samples []wheelSample, now float64, cfg *Config) float64 {
	var sum float64
	for _, s := range samples {
		if s.t >= now-cfg.WheelBurstWindow {
			sum += s.mag
		}
	}
	return math.Min(cfg.WheelBurstMax, 1.0+sum*cfg.WheelBurstGain)
}

// resizeBox applies a resize from the given handle to the box geometry
// captured at gesture start, moving by (wdx, wdy) world units. The opposite
// edge stays fixed: the minimum-size floor clamps position and size
// together.
func resizeBox(start Box, handle ResizeHandle, wdx, wdy, minW, minH float64) Box {
	b := start
	right := start.X + start.Width
	bottom := start.Y + start.Height

	// Horizontal component.
	switch handle {
	case HandleE, HandleNE, HandleSE:
		b.Width = math.Max(minW, start.Width+wdx)
	case HandleW, HandleNW, HandleSW:
		b.X = math.Min(start.X+wdx, right-minW)
		b.Width = right - b.X
	}

	// Vertical component.
	switch handle {
	case HandleS, HandleSE, HandleSW:
		b.Height = math.Max(minH, start.Height+wdy)
	case HandleN, HandleNE, HandleNW:
		b.Y = math.Min(start.Y+wdy, bottom-minH)
		b.Height = bottom - b.Y
	}

	return b
}

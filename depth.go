package strata

import "math"

// The depth model maps a layer's integer z-index to everything that varies
// with depth: the zoom at which the layer is in focus, the intrinsic scale
// that keeps it near the focal reference scale at that zoom, the parallax
// speed multiplier, and a blur value that doubles as the click-through test.
// Depth is a pure function of z — two boxes on the same layer always look
// and behave identically.

// FocusZoom returns the global zoom level at which layer z renders at its
// reference scale. The reference plane z = 0 is in focus at zoom 1. Farther
// back (more negative z) needs more zoom; for z < 0 the raw exponential
// competes with a linear floor so every background layer demands at least
// offset + |z|*slope.
func (c *Config) FocusZoom(z int) float64 {
	raw := math.Pow(c.FocusZoomBase, float64(z))
	if z >= 0 {
		return raw
	}
	floor := c.FocusZoomFloorOffset + math.Abs(float64(z))*c.FocusZoomFloorSlope
	return math.Max(floor, raw)
}

// IntrinsicScale returns the per-layer rendering scale that, combined with
// the global zoom, keeps the layer's effective scale near the focal-plane
// reference when the layer is in focus. Clamped to [0.05, 10].
func (c *Config) IntrinsicScale(z int) float64 {
	return clamp(c.FocalPlaneScale/c.FocusZoom(z), 0.05, 10.0)
}

// ParallaxFactor returns the multiplier applied to camera-offset motion for
// layer z. Exactly 1 at z = 0. Background layers follow a diminishing-returns
// decay floored so deep layers still track at least ParallaxFloor of camera
// motion; foreground layers speed up linearly.
func (c *Config) ParallaxFactor(z int) float64 {
	switch {
	case z == 0:
		return 1.0
	case z < 0:
		return math.Max(c.ParallaxFloor, math.Pow(c.ParallaxDecay, math.Abs(float64(z))))
	default:
		return 1.0 + c.ParallaxForegroundSlope*float64(z)
	}
}

// BlurFor returns the depth-of-field blur (in pixels) for layer z at the
// given zoom. When a box is focused the field is shallower (out-of-focus
// layers blur faster) than when exploring.
func (c *Config) BlurFor(z int, zoom float64, focused bool) float64 {
	effectiveScale := zoom * c.IntrinsicScale(z)
	focusDelta := math.Abs(c.FocalPlaneScale - effectiveScale)

	sharpness, maxBlur := c.BlurSharpnessExploring, c.BlurMaxExploring
	if focused {
		sharpness, maxBlur = c.BlurSharpnessFocused, c.BlurMaxFocused
	}
	return math.Min(maxBlur, focusDelta*sharpness)
}

// Clickable reports whether a box on layer z accepts pointer input at the
// given zoom. Layers at or behind the focal plane are always clickable.
// Foreground layers are clickable only while visually sharp — the same blur
// used for rendering gates interaction, so a box that looks out of focus
// lets clicks pass through to whatever is beneath it.
func (c *Config) Clickable(z int, zoom float64, focused bool) bool {
	if z <= 0 {
		return true
	}
	return c.BlurFor(z, zoom, focused) <= c.ClickBlurThreshold
}

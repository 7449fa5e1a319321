package strata

import "testing"

func TestFocusZoomReferencePlane(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FocusZoom(0); got != 1.0 {
		t.Errorf("FocusZoom(0) = %v, want 1.0", got)
	}
}

func TestFocusZoomMonotonic(t *testing.T) {
	// Farther back always needs at least as much zoom.
	cfg := DefaultConfig()
	prev := cfg.FocusZoom(2)
	for z := 1; z >= -15; z-- {
		got := cfg.FocusZoom(z)
		if got < prev {
			t.Errorf("FocusZoom(%d) = %v < FocusZoom(%d) = %v", z, got, z+1, prev)
		}
		prev = got
	}
}

func TestFocusZoomBackgroundFloor(t *testing.T) {
	cfg := DefaultConfig()
	for z := -1; z >= -10; z-- {
		floor := cfg.FocusZoomFloorOffset + float64(-z)*cfg.FocusZoomFloorSlope
		if got := cfg.FocusZoom(z); got < floor {
			t.Errorf("FocusZoom(%d) = %v, below floor %v", z, got, floor)
		}
	}
}

func TestIntrinsicScale(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.IntrinsicScale(0); !approxEqual(got, 1.0, epsilon) {
		t.Errorf("IntrinsicScale(0) = %v, want 1.0", got)
	}
	// Intrinsic scale compensates: in-focus effective scale sits at the
	// focal reference.
	for _, z := range []int{-5, -1, 1, 3} {
		eff := cfg.FocusZoom(z) * cfg.IntrinsicScale(z)
		if !approxEqual(eff, cfg.FocalPlaneScale, 1e-9) {
			t.Errorf("z=%d: effective scale at focus = %v, want %v", z, eff, cfg.FocalPlaneScale)
		}
	}
	// Clamp floor for absurd depths.
	if got := cfg.IntrinsicScale(-200); got < 0.05 || got > 10 {
		t.Errorf("IntrinsicScale(-200) = %v, outside [0.05, 10]", got)
	}
}

func TestParallaxFactor(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ParallaxFactor(0); got != 1.0 {
		t.Errorf("ParallaxFactor(0) = %v, want exactly 1.0", got)
	}
	for z := -1; z >= -20; z-- {
		got := cfg.ParallaxFactor(z)
		if got < 0.5 || got >= 1.0 {
			t.Errorf("ParallaxFactor(%d) = %v, want in [0.5, 1.0)", z, got)
		}
	}
	for z := 1; z <= 5; z++ {
		if got := cfg.ParallaxFactor(z); got <= 1.0 {
			t.Errorf("ParallaxFactor(%d) = %v, want > 1.0", z, got)
		}
	}
	// Deep layers bottom out at the floor rather than freezing.
	if got := cfg.ParallaxFactor(-50); got != cfg.ParallaxFloor {
		t.Errorf("ParallaxFactor(-50) = %v, want floor %v", got, cfg.ParallaxFloor)
	}
}

func TestClickableBackgroundAlways(t *testing.T) {
	cfg := DefaultConfig()
	for _, z := range []int{0, -1, -5, -10} {
		for _, zoom := range []float64{0.1, 1, 5} {
			if !cfg.Clickable(z, zoom, false) || !cfg.Clickable(z, zoom, true) {
				t.Errorf("z=%d zoom=%v: background layer not clickable", z, zoom)
			}
		}
	}
}

func TestClickableForegroundCoupledToBlur(t *testing.T) {
	cfg := DefaultConfig()

	// At its own focus zoom a foreground layer is sharp, hence clickable.
	z := 1
	atFocus := cfg.FocusZoom(z)
	if !cfg.Clickable(z, atFocus, false) {
		t.Errorf("z=%d at focus zoom %v: want clickable", z, atFocus)
	}
	if blur := cfg.BlurFor(z, atFocus, false); !approxEqual(blur, 0, epsilon) {
		t.Errorf("z=%d at focus zoom: blur = %v, want 0", z, blur)
	}

	// Far from focus it blurs past the threshold and clicks pass through.
	if cfg.Clickable(z, cfg.MaxZoom, false) {
		t.Errorf("z=%d at max zoom: want click-through", z)
	}
}

func TestBlurShallowerWhenFocused(t *testing.T) {
	// The same defocus blurs harder while a box is focused.
	cfg := DefaultConfig()
	zoom := 2.5
	exploring := cfg.BlurFor(1, zoom, false)
	focused := cfg.BlurFor(1, zoom, true)
	if focused <= exploring {
		t.Errorf("blur focused = %v, exploring = %v; want focused > exploring", focused, exploring)
	}
}

func TestBlurCapped(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.BlurFor(8, cfg.MaxZoom, false); got > cfg.BlurMaxExploring {
		t.Errorf("exploring blur = %v, exceeds cap %v", got, cfg.BlurMaxExploring)
	}
	if got := cfg.BlurFor(8, cfg.MaxZoom, true); got > cfg.BlurMaxFocused {
		t.Errorf("focused blur = %v, exceeds cap %v", got, cfg.BlurMaxFocused)
	}
}

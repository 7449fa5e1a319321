package strata

import (
	"math"
	"testing"
)

const frameDt = 1.0 / 60.0

func testViewport() (*Viewport, *Config) {
	cfg := DefaultConfig()
	return newViewport(&cfg), &cfg
}

func TestViewportDefaults(t *testing.T) {
	v, _ := testViewport()
	if v.Zoom != 1.0 || v.OffsetX != 0 || v.OffsetY != 0 {
		t.Errorf("defaults = (%v,%v,%v), want (1,0,0)", v.Zoom, v.OffsetX, v.OffsetY)
	}
	if !v.Idle() {
		t.Error("new viewport should be idle")
	}
}

func TestSetTargetSnapsAtZeroDuration(t *testing.T) {
	v, _ := testViewport()
	v.SetTarget(2, 100, -50, 0)
	if v.Zoom != 2 || v.OffsetX != 100 || v.OffsetY != -50 {
		t.Errorf("after snap = (%v,%v,%v), want (2,100,-50)", v.Zoom, v.OffsetX, v.OffsetY)
	}
	if !v.Idle() {
		t.Error("snap should leave viewport idle")
	}
}

func TestSetTargetEasedConverges(t *testing.T) {
	v, _ := testViewport()
	v.SetTarget(2, 400, 200, 0.45)
	if v.Idle() {
		t.Fatal("viewport should be animating")
	}

	frames := 0
	for v.Animating() {
		v.step(frameDt)
		frames++
		if frames > 60 {
			t.Fatal("eased animation did not converge within 60 frames")
		}
	}
	if v.Zoom != 2 || v.OffsetX != 400 || v.OffsetY != 200 {
		t.Errorf("converged = (%v,%v,%v), want exactly (2,400,200)", v.Zoom, v.OffsetX, v.OffsetY)
	}
}

func TestSetTargetClampsZoom(t *testing.T) {
	v, cfg := testViewport()
	v.SetTarget(100, 0, 0, 0)
	if v.Zoom != cfg.MaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", v.Zoom, cfg.MaxZoom)
	}
	v.SetTarget(0.0001, 0, 0, 0)
	if v.Zoom != cfg.MinZoom {
		t.Errorf("zoom = %v, want clamped to %v", v.Zoom, cfg.MinZoom)
	}
}

func TestSetTargetIgnoresNonFinite(t *testing.T) {
	v, _ := testViewport()
	v.SetTarget(math.NaN(), 100, 100, 0)
	v.SetTarget(2, math.Inf(1), 0, 0)
	if v.Zoom != 1 || v.OffsetX != 0 || v.OffsetY != 0 {
		t.Errorf("non-finite target applied: (%v,%v,%v)", v.Zoom, v.OffsetX, v.OffsetY)
	}
}

func TestNudgeTargetConvergesWithoutOvershoot(t *testing.T) {
	v, _ := testViewport()
	v.NudgeTarget(2, 300, 0)

	prev := v.Zoom
	frames := 0
	for v.Animating() {
		v.step(frameDt)
		frames++
		if v.Zoom > 2+epsilon {
			t.Fatalf("zoom overshot target: %v", v.Zoom)
		}
		if v.Zoom < prev-epsilon {
			t.Fatalf("zoom moved away from target: %v -> %v", prev, v.Zoom)
		}
		prev = v.Zoom
		if frames > 300 {
			t.Fatal("convergence did not finish within 300 frames")
		}
	}
	if v.Zoom != 2 || v.OffsetX != 300 {
		t.Errorf("converged = (%v,%v), want (2,300)", v.Zoom, v.OffsetX)
	}
}

func TestNudgeTargetDoesNotRestartEasing(t *testing.T) {
	// Rapid repeated nudges must keep converging rather than resetting a
	// duration-based animation each event.
	v, _ := testViewport()
	for i := 0; i < 10; i++ {
		v.NudgeTarget(v.TargetZoom*1.1, 0, 0)
		v.step(frameDt)
	}
	if v.Zoom <= 1.0 {
		t.Errorf("zoom = %v, want progress toward nudged target despite rapid input", v.Zoom)
	}
}

func TestMomentumDecaysStrictlyAndStops(t *testing.T) {
	v, cfg := testViewport()
	v.StartMomentum(1200, -900)
	if v.Idle() {
		t.Fatal("momentum should start animating")
	}

	prevSpeed := math.Hypot(1200, -900)
	frames := 0
	for v.Animating() {
		v.step(frameDt)
		speed := math.Hypot(v.velX, v.velY)
		if speed >= prevSpeed {
			t.Fatalf("frame %d: speed %v did not strictly decrease from %v", frames, speed, prevSpeed)
		}
		prevSpeed = speed
		frames++
		if frames > 400 {
			t.Fatal("momentum did not stop within 400 frames")
		}
	}
	if v.OffsetX <= 0 || v.OffsetY >= 0 {
		t.Errorf("momentum moved offsets the wrong way: (%v,%v)", v.OffsetX, v.OffsetY)
	}
	if speed := math.Hypot(v.velX, v.velY); speed != 0 {
		t.Errorf("residual velocity after stop: %v", speed)
	}
	_ = cfg
}

func TestMomentumBelowThresholdIgnored(t *testing.T) {
	v, cfg := testViewport()
	v.StartMomentum(cfg.MomentumMinSpeed/2, 0)
	if !v.Idle() {
		t.Error("sub-threshold momentum should not start")
	}
}

func TestCancelAnimationFreezesCamera(t *testing.T) {
	v, _ := testViewport()
	v.SetTarget(3, 500, 500, 1.0)
	v.step(frameDt)
	zoom, offX := v.Zoom, v.OffsetX

	v.CancelAnimation()
	if !v.Idle() {
		t.Error("cancel should idle the scheduler")
	}
	if v.TargetZoom != zoom || v.TargetOffsetX != offX {
		t.Errorf("cancel should pin target to current, got target (%v,%v) current (%v,%v)",
			v.TargetZoom, v.TargetOffsetX, zoom, offX)
	}
	v.step(frameDt)
	if v.Zoom != zoom {
		t.Error("camera moved after cancel")
	}
}

func TestPanWritesCurrentAndTarget(t *testing.T) {
	v, _ := testViewport()
	v.Pan(30, -20)
	if v.OffsetX != 30 || v.OffsetY != -20 {
		t.Errorf("offsets = (%v,%v), want (30,-20)", v.OffsetX, v.OffsetY)
	}
	if v.TargetOffsetX != 30 || v.TargetOffsetY != -20 {
		t.Errorf("targets = (%v,%v), want (30,-20)", v.TargetOffsetX, v.TargetOffsetY)
	}
	v.Pan(math.NaN(), 5)
	if v.OffsetX != 30 || v.OffsetY != -20 {
		t.Error("non-finite pan delta applied")
	}
}

func TestViewportReset(t *testing.T) {
	v, _ := testViewport()
	v.SetTarget(4, 999, 999, 2)
	v.step(frameDt)
	v.Reset()
	if v.Zoom != 1 || v.OffsetX != 0 || v.OffsetY != 0 || !v.Idle() {
		t.Errorf("reset left state (%v,%v,%v, idle=%v)", v.Zoom, v.OffsetX, v.OffsetY, v.Idle())
	}
}

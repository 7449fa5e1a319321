package strata

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// viewportMode is the animation scheduler state.
type viewportMode uint8

const (
	modeIdle     viewportMode = iota // current == target, nothing scheduled
	modeEased                        // fixed-duration tween toward target
	modeConverge                     // exponential convergence toward target
	modeMomentum                     // decaying residual pan velocity
)

// scrollAnim holds the active eased tweens for zoom and both offsets.
type scrollAnim struct {
	tweenZoom *gween.Tween
	tweenX    *gween.Tween
	tweenY    *gween.Tween
	doneZoom  bool
	doneX     bool
	doneY     bool
}

// Viewport is the single shared camera record: current and target zoom and
// offset, plus the per-frame scheduler that converges current values toward
// targets. Exactly one gesture handler writes it at a time (pan, drag, and
// resize are mutually exclusive); there is no locking because the engine is
// single-threaded.
type Viewport struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64

	TargetZoom    float64
	TargetOffsetX float64
	TargetOffsetY float64

	// AnimationDuration is the length in seconds of the current (or most
	// recent) eased animation.
	AnimationDuration float64

	mode  viewportMode
	tween *scrollAnim

	// Momentum velocity in screen pixels per second.
	velX, velY float64

	cfg *Config
}

// newViewport creates a viewport at the default camera position: zoom 1,
// offsets 0, idle.
func newViewport(cfg *Config) *Viewport {
	return &Viewport{
		Zoom:       1.0,
		TargetZoom: 1.0,
		cfg:        cfg,
	}
}

// Reset snaps the viewport back to its initial state and cancels any
// animation or momentum.
func (v *Viewport) Reset() {
	v.Zoom, v.OffsetX, v.OffsetY = 1.0, 0, 0
	v.TargetZoom, v.TargetOffsetX, v.TargetOffsetY = 1.0, 0, 0
	v.AnimationDuration = 0
	v.mode = modeIdle
	v.tween = nil
	v.velX, v.velY = 0, 0
}

// Idle reports whether the scheduler has converged and nothing is scheduled.
func (v *Viewport) Idle() bool {
	return v.mode == modeIdle
}

// Animating reports whether a tween, convergence, or momentum is in flight.
func (v *Viewport) Animating() bool {
	return v.mode != modeIdle
}

// SetTarget starts a fixed-duration eased animation toward the given camera
// target (cubic ease-out). A non-positive duration snaps immediately.
// Non-finite inputs are ignored. Cancels any in-flight momentum or
// convergence.
func (v *Viewport) SetTarget(zoom, offX, offY, duration float64) {
	if !isFinite(zoom) || !isFinite(offX) || !isFinite(offY) {
		return
	}
	zoom = clamp(zoom, v.cfg.MinZoom, v.cfg.MaxZoom)

	v.velX, v.velY = 0, 0
	v.TargetZoom = zoom
	v.TargetOffsetX = offX
	v.TargetOffsetY = offY
	v.AnimationDuration = math.Max(0, duration)

	if duration <= 0 {
		v.snapToTarget()
		return
	}

	v.mode = modeEased
	d := float32(duration)
	v.tween = &scrollAnim{
		tweenZoom: gween.New(float32(v.Zoom), float32(zoom), d, ease.OutCubic),
		tweenX:    gween.New(float32(v.OffsetX), float32(offX), d, ease.OutCubic),
		tweenY:    gween.New(float32(v.OffsetY), float32(offY), d, ease.OutCubic),
	}
}

// NudgeTarget moves the camera target and lets the scheduler converge
// exponentially instead of restarting a duration-based animation. Repeated
// rapid nudges (wheel zoom) therefore stay smooth. Cancels momentum and any
// eased animation in flight.
func (v *Viewport) NudgeTarget(zoom, offX, offY float64) {
	if !isFinite(zoom) || !isFinite(offX) || !isFinite(offY) {
		return
	}
	v.velX, v.velY = 0, 0
	v.tween = nil
	v.TargetZoom = clamp(zoom, v.cfg.MinZoom, v.cfg.MaxZoom)
	v.TargetOffsetX = offX
	v.TargetOffsetY = offY
	v.mode = modeConverge
}

// Pan applies an immediate offset delta to both current and target values.
// Used by the pan gesture while the pointer is down.
func (v *Viewport) Pan(dx, dy float64) {
	if !isFinite(dx) || !isFinite(dy) {
		return
	}
	v.OffsetX += dx
	v.OffsetY += dy
	v.TargetOffsetX = v.OffsetX
	v.TargetOffsetY = v.OffsetY
}

// StartMomentum hands residual pan velocity (pixels per second) to the
// scheduler. Velocity below the stop threshold is discarded.
func (v *Viewport) StartMomentum(vx, vy float64) {
	if !isFinite(vx) || !isFinite(vy) {
		return
	}
	if math.Hypot(vx, vy) < v.cfg.MomentumMinSpeed {
		return
	}
	v.tween = nil
	v.velX, v.velY = vx, vy
	v.mode = modeMomentum
}

// CancelAnimation stops any in-flight tween, convergence, or momentum and
// freezes the camera where it is. A new gesture calls this to take ownership
// of the target.
func (v *Viewport) CancelAnimation() {
	v.tween = nil
	v.velX, v.velY = 0, 0
	v.TargetZoom = v.Zoom
	v.TargetOffsetX = v.OffsetX
	v.TargetOffsetY = v.OffsetY
	v.mode = modeIdle
}

// snapToTarget jumps current values to the target and idles the scheduler.
func (v *Viewport) snapToTarget() {
	v.Zoom = v.TargetZoom
	v.OffsetX = v.TargetOffsetX
	v.OffsetY = v.TargetOffsetY
	v.tween = nil
	v.mode = modeIdle
}

// step advances the scheduler by dt seconds. Returns true while animating.
// Long-running motion never blocks: each frame does one increment and the
// scheduler self-terminates on convergence.
func (v *Viewport) step(dt float64) bool {
	switch v.mode {
	case modeIdle:
		return false

	case modeEased:
		t := v.tween
		if t == nil {
			v.snapToTarget()
			return false
		}
		fdt := float32(dt)
		if !t.doneZoom {
			val, done := t.tweenZoom.Update(fdt)
			v.Zoom = clamp(float64(val), v.cfg.MinZoom, v.cfg.MaxZoom)
			t.doneZoom = done
		}
		if !t.doneX {
			val, done := t.tweenX.Update(fdt)
			v.OffsetX = float64(val)
			t.doneX = done
		}
		if !t.doneY {
			val, done := t.tweenY.Update(fdt)
			v.OffsetY = float64(val)
			t.doneY = done
		}
		if t.doneZoom && t.doneX && t.doneY {
			v.snapToTarget()
			return false
		}
		return true

	case modeConverge:
		f := v.cfg.ConvergeFactor
		v.Zoom += (v.TargetZoom - v.Zoom) * f
		v.OffsetX += (v.TargetOffsetX - v.OffsetX) * f
		v.OffsetY += (v.TargetOffsetY - v.OffsetY) * f
		if math.Abs(v.TargetZoom-v.Zoom) < v.cfg.ConvergeEpsilon &&
			math.Abs(v.TargetOffsetX-v.OffsetX) < v.cfg.ConvergeEpsilon &&
			math.Abs(v.TargetOffsetY-v.OffsetY) < v.cfg.ConvergeEpsilon {
			v.snapToTarget()
			return false
		}
		return true

	case modeMomentum:
		v.OffsetX += v.velX * dt
		v.OffsetY += v.velY * dt
		v.TargetOffsetX = v.OffsetX
		v.TargetOffsetY = v.OffsetY
		v.velX *= v.cfg.MomentumDamping
		v.velY *= v.cfg.MomentumDamping
		if math.Hypot(v.velX, v.velY) < v.cfg.MomentumMinSpeed {
			v.velX, v.velY = 0, 0
			v.mode = modeIdle
			return false
		}
		return true
	}
	return false
}

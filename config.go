package strata

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every tuning parameter of the engine. The depth-model curves
// and the obstruction-avoidance thresholds are empirically tuned rather than
// derived, so all of them are exposed here instead of being buried as
// constants. Zero values are not meaningful — start from [DefaultConfig].
type Config struct {
	// MinZoom and MaxZoom bound the camera zoom. Every zoom write in the
	// engine clamps to this range.
	MinZoom float64 `envconfig:"MIN_ZOOM"`
	MaxZoom float64 `envconfig:"MAX_ZOOM"`

	// MinBoxWidth and MinBoxHeight are hard floors enforced during resize.
	MinBoxWidth  float64 `envconfig:"MIN_BOX_WIDTH"`
	MinBoxHeight float64 `envconfig:"MIN_BOX_HEIGHT"`

	// FocusZoomBase is the base of the focus-zoom exponential, in (0, 1).
	// More-negative z needs higher zoom to reach focus.
	FocusZoomBase float64 `envconfig:"FOCUS_ZOOM_BASE"`
	// FocusZoomFloorOffset and FocusZoomFloorSlope define the linear floor
	// focusZoom competes with for z < 0: offset + |z|*slope.
	FocusZoomFloorOffset float64 `envconfig:"FOCUS_ZOOM_FLOOR_OFFSET"`
	FocusZoomFloorSlope  float64 `envconfig:"FOCUS_ZOOM_FLOOR_SLOPE"`
	// FocalPlaneScale is the reference effective scale a layer renders at
	// when it is in perfect focus.
	FocalPlaneScale float64 `envconfig:"FOCAL_PLANE_SCALE"`

	// ParallaxDecay is the per-layer decay of background parallax, in (0, 1).
	ParallaxDecay float64 `envconfig:"PARALLAX_DECAY"`
	// ParallaxFloor is the minimum parallax factor for deep background
	// layers, so they always track at least this share of camera motion.
	ParallaxFloor float64 `envconfig:"PARALLAX_FLOOR"`
	// ParallaxForegroundSlope is the linear parallax increase per positive z.
	ParallaxForegroundSlope float64 `envconfig:"PARALLAX_FOREGROUND_SLOPE"`

	// Depth-of-field blur. The focused pair gives a shallower field than the
	// exploring pair, and ClickBlurThreshold is the blur above which a
	// foreground box stops being clickable.
	BlurSharpnessFocused   float64 `envconfig:"BLUR_SHARPNESS_FOCUSED"`
	BlurMaxFocused         float64 `envconfig:"BLUR_MAX_FOCUSED"`
	BlurSharpnessExploring float64 `envconfig:"BLUR_SHARPNESS_EXPLORING"`
	BlurMaxExploring       float64 `envconfig:"BLUR_MAX_EXPLORING"`
	ClickBlurThreshold     float64 `envconfig:"CLICK_BLUR_THRESHOLD"`

	// MomentumDamping is the per-frame multiplicative decay of pan momentum,
	// and MomentumMinSpeed the speed (px/s) below which momentum stops.
	MomentumDamping  float64 `envconfig:"MOMENTUM_DAMPING"`
	MomentumMinSpeed float64 `envconfig:"MOMENTUM_MIN_SPEED"`
	// VelocityWindow is the rolling window (seconds) of pointer deltas used
	// to derive release velocity.
	VelocityWindow float64 `envconfig:"VELOCITY_WINDOW"`

	// ConvergeFactor is the per-frame exponential convergence factor used for
	// gesture-driven target nudges (wheel zoom), in (0, 1].
	ConvergeFactor float64 `envconfig:"CONVERGE_FACTOR"`
	// ConvergeEpsilon is the tolerance below which current and target are
	// considered converged and the scheduler returns to idle.
	ConvergeEpsilon float64 `envconfig:"CONVERGE_EPSILON"`

	// WheelZoomStep is the per-wheel-notch zoom factor exponent base.
	WheelZoomStep float64 `envconfig:"WHEEL_ZOOM_STEP"`
	// WheelBurstWindow (seconds) and WheelBurstMax control the
	// velocity-adaptive zoom factor: fast bursts of wheel events multiply
	// the step up to WheelBurstMax.
	WheelBurstWindow float64 `envconfig:"WHEEL_BURST_WINDOW"`
	WheelBurstGain   float64 `envconfig:"WHEEL_BURST_GAIN"`
	WheelBurstMax    float64 `envconfig:"WHEEL_BURST_MAX"`
	// MinZoomDelta drops zoom changes too small to matter, avoiding
	// redundant target writes.
	MinZoomDelta float64 `envconfig:"MIN_ZOOM_DELTA"`
	// WheelPanScale converts plain (unmodified) wheel deltas to pan pixels.
	WheelPanScale float64 `envconfig:"WHEEL_PAN_SCALE"`

	// ClickWindow is the single/double click disambiguation window (seconds).
	ClickWindow float64 `envconfig:"CLICK_WINDOW"`
	// DragDeadZone is the movement in pixels before a press becomes a drag.
	DragDeadZone float64 `envconfig:"DRAG_DEAD_ZONE"`

	// Obstruction avoidance. A focused box is obstructed above
	// ObstructionThreshold of its screen area; a camera shift of
	// AvoidProbeDistance pixels is proposed only when it cuts obscuration by
	// at least AvoidMinImprovement relative to the unshifted case.
	ObstructionThreshold float64 `envconfig:"OBSTRUCTION_THRESHOLD"`
	AvoidProbeDistance   float64 `envconfig:"AVOID_PROBE_DISTANCE"`
	AvoidMinImprovement  float64 `envconfig:"AVOID_MIN_IMPROVEMENT"`

	// ZoomToBoxDuration is the eased animation length (seconds) used by
	// ZoomToBox and obstruction-avoidance nudges.
	ZoomToBoxDuration float64 `envconfig:"ZOOM_TO_BOX_DURATION"`
}

// DefaultConfig returns the tuning the engine ships with.
func DefaultConfig() Config {
	return Config{
		MinZoom:      0.1,
		MaxZoom:      5.0,
		MinBoxWidth:  100,
		MinBoxHeight: 80,

		FocusZoomBase:        0.8,
		FocusZoomFloorOffset: 1.0,
		FocusZoomFloorSlope:  0.35,
		FocalPlaneScale:      1.0,

		ParallaxDecay:           0.84,
		ParallaxFloor:           0.5,
		ParallaxForegroundSlope: 0.15,

		BlurSharpnessFocused:   8.0,
		BlurMaxFocused:         12.0,
		BlurSharpnessExploring: 4.0,
		BlurMaxExploring:       8.0,
		ClickBlurThreshold:     2.0,

		MomentumDamping:  0.95,
		MomentumMinSpeed: 5.0,
		VelocityWindow:   0.1,

		ConvergeFactor:  0.25,
		ConvergeEpsilon: 0.001,

		WheelZoomStep:    1.1,
		WheelBurstWindow: 0.12,
		WheelBurstGain:   0.15,
		WheelBurstMax:    3.0,
		MinZoomDelta:     1e-4,
		WheelPanScale:    24.0,

		ClickWindow:  0.3,
		DragDeadZone: 4.0,

		ObstructionThreshold: 0.15,
		AvoidProbeDistance:   100,
		AvoidMinImprovement:  0.30,

		ZoomToBoxDuration: 0.45,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by STRATA_* environment
// variables (STRATA_MAX_ZOOM, STRATA_MOMENTUM_DAMPING, ...).
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process("strata", &cfg); err != nil {
		return cfg, fmt.Errorf("strata: reading config from environment: %w", err)
	}
	return cfg, nil
}

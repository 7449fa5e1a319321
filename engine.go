package strata

// Engine is the single shared context object for one canvas: the camera
// record, focus state, gesture state, and a reference to the external box
// collection. Every gesture handler mutates state through it, which keeps the
// whole engine testable by construction — tests build an Engine around an
// in-memory store and drive it with injected input and Step.
//
// All methods must be called from one goroutine. The engine is cooperative:
// one Update (or Step) per display frame advances everything that is in
// flight.
type Engine struct {
	cfg   Config
	store BoxStore
	vp    *Viewport
	focus FocusState

	viewportW float64
	viewportH float64

	// now is the engine clock in seconds, advanced by Step. Click timers and
	// velocity windows read it, so tests control time exactly.
	now float64

	// Active pointer/gesture state. One pointer, one exclusive gesture.
	gesture        gestureKind
	pointerDown    bool
	button         MouseButton
	mods           KeyModifiers
	startX, startY float64
	lastX, lastY   float64
	moved          bool
	clickEligible  bool
	pressBoxID     string

	// Pan: deltas batch up and apply at most once per frame.
	pendingPanX, pendingPanY float64
	velSamples               []velocitySample

	// Box drag.
	dragBoxID string
	dragStart Box

	// Box resize.
	resizeBoxID  string
	resizeHandle ResizeHandle
	resizeStart  Box

	// Wheel zoom burst tracking.
	wheelSamples []wheelSample

	click clickTimer

	// Touch bookkeeping for the device-input path.
	touchActive bool

	injectQueue []syntheticPointerEvent
	runner      *ScriptRunner

	// OnBoxClick fires when a single click on a box is resolved (after the
	// double-click window elapses). The engine has already selected the box.
	OnBoxClick func(ClickInfo)
	// OnBoxDoubleClick fires on a double click on a box. The engine has
	// already toggled the box's fullscreen state.
	OnBoxDoubleClick func(ClickInfo)
	// OnCanvasClick fires when a single click lands on empty canvas. The
	// engine has already cleared the selection.
	OnCanvasClick func(ClickInfo)
	// OnBoxMoved fires when a box drag completes, with the final geometry.
	OnBoxMoved func(Box)
	// OnBoxResized fires when a box resize completes, with the final geometry.
	OnBoxResized func(Box)

	debug    bool
	disposed bool
}

// NewEngine creates an engine over the given box collection.
func NewEngine(store BoxStore, cfg Config) *Engine {
	e := &Engine{
		cfg:   cfg,
		store: store,
	}
	e.vp = newViewport(&e.cfg)
	return e
}

// --- Read accessors ---

// Zoom returns the current camera zoom.
func (e *Engine) Zoom() float64 { return e.vp.Zoom }

// OffsetX returns the current camera X offset in screen pixels.
func (e *Engine) OffsetX() float64 { return e.vp.OffsetX }

// OffsetY returns the current camera Y offset in screen pixels.
func (e *Engine) OffsetY() float64 { return e.vp.OffsetY }

// Camera returns a snapshot of the full viewport record, including targets.
func (e *Engine) Camera() Viewport {
	vp := *e.vp
	vp.tween = nil
	vp.cfg = nil
	return vp
}

// Config returns the engine's tuning parameters.
func (e *Engine) Config() *Config { return &e.cfg }

// Focus returns the current focus state.
func (e *Engine) Focus() FocusState { return e.focus }

// BoxScreenRect projects a box through the current camera, accounting for
// its depth layer. Rendering hosts use this to place panels.
func (e *Engine) BoxScreenRect(b Box) Rect {
	return e.cfg.BoxScreenRect(b, e.vp.Zoom, e.vp.OffsetX, e.vp.OffsetY)
}

// BoxBlur returns the depth-of-field blur for a box through the current
// camera and focus state.
func (e *Engine) BoxBlur(b Box) float64 {
	return e.cfg.BlurFor(b.Z, e.vp.Zoom, e.focus.Focused())
}

// --- Frame stepping ---

// Step advances the engine clock by dt seconds without polling input
// devices: it consumes one injected pointer event, applies the batched pan
// delta, steps the camera scheduler, and fires any elapsed click timer.
// Hosts running under Ebitengine call [Engine.Update] instead.
func (e *Engine) Step(dt float64) {
	if e.disposed || dt < 0 || !isFinite(dt) {
		return
	}
	e.now += dt

	if e.runner != nil {
		e.runner.step(e)
	}
	e.consumeInjected()

	// Pan deltas accumulated since the last frame apply exactly once here,
	// so a burst of move events costs one camera write.
	if e.pendingPanX != 0 || e.pendingPanY != 0 {
		e.vp.Pan(e.pendingPanX, e.pendingPanY)
		e.pendingPanX, e.pendingPanY = 0, 0
	}

	e.vp.step(dt)

	if info, ok := e.click.step(e.now); ok {
		e.resolveSingleClick(info)
	}

	if e.debug {
		e.debugLog()
	}
}

// Dispose tears the engine down: the active gesture ends (same cleanup path
// as a normal release, without synthesizing a click) and any pending click
// timer is cancelled so no stale callback can fire. Further calls are no-ops.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.ReleaseGesture()
	e.click.cancel()
	e.disposed = true
}

// Reset returns camera and focus state to engine-start defaults.
func (e *Engine) Reset() {
	e.ReleaseGesture()
	e.click.cancel()
	e.vp.Reset()
	e.focus = FocusState{}
}

// SetDebug enables per-frame diagnostics on stderr.
func (e *Engine) SetDebug(enabled bool) { e.debug = enabled }

// --- Focus and camera operations ---

// SelectBox focuses the given box: it becomes the selection, the camera
// animates to center and focus it, and obstruction by foreground boxes is
// resolved against the new camera target. Unknown ids are a no-op.
func (e *Engine) SelectBox(id string, viewportW, viewportH float64) {
	if _, ok := e.store.Box(id); !ok {
		return
	}
	e.focus.SelectedID = id
	e.ZoomToBox(id, viewportW, viewportH)
	e.refreshObstruction()
}

// Deselect clears the selection and leaves the camera where it is.
func (e *Engine) Deselect() {
	e.focus.SelectedID = ""
	e.focus.FullscreenID = ""
}

// ZoomToBox animates the camera so the box is centered and rendered at its
// layer's focus zoom. Unknown ids and degenerate viewports are no-ops.
func (e *Engine) ZoomToBox(id string, viewportW, viewportH float64) {
	b, ok := e.store.Box(id)
	if !ok || viewportW <= 0 || viewportH <= 0 {
		return
	}
	e.viewportW, e.viewportH = viewportW, viewportH

	zoom := clamp(e.cfg.FocusZoom(b.Z), e.cfg.MinZoom, e.cfg.MaxZoom)
	scale := zoom * e.cfg.IntrinsicScale(b.Z)
	par := e.cfg.ParallaxFactor(b.Z)

	cx, cy := b.Center()
	offX := (viewportW/2 - cx*scale) / par
	offY := (viewportH/2 - cy*scale) / par

	e.vp.SetTarget(zoom, offX, offY, e.cfg.ZoomToBoxDuration)
}

// SetFullscreen marks a box as fullscreen, or clears the state when id is
// empty. Fullscreen and dragging are mutually exclusive; a fullscreen box
// ignores drag gestures.
func (e *Engine) SetFullscreen(id string) {
	if id != "" {
		if _, ok := e.store.Box(id); !ok {
			return
		}
		e.focus.DraggingID = ""
	}
	e.focus.FullscreenID = id
}

// SetDragging marks a box as being dragged (suspending per-frame parallax
// recomputation for it on the render side), or clears the state when id is
// empty.
func (e *Engine) SetDragging(id string) {
	if id != "" {
		if _, ok := e.store.Box(id); !ok {
			return
		}
		e.focus.FullscreenID = ""
	}
	e.focus.DraggingID = id
}

// OnViewChange records the new viewport dimensions after a layout or camera
// change and re-resolves obstruction of the focused box. Zero-sized
// viewports skip the refresh entirely.
func (e *Engine) OnViewChange(viewportW, viewportH float64) {
	e.viewportW, e.viewportH = viewportW, viewportH
	if viewportW <= 0 || viewportH <= 0 {
		return
	}
	e.refreshObstruction()
}

// --- Click resolution ---

// resolveSingleClick applies single-click semantics once the double-click
// window has elapsed: clicking a box selects it, clicking empty canvas
// clears the selection.
func (e *Engine) resolveSingleClick(info ClickInfo) {
	if e.disposed {
		return
	}
	if info.Box.ID != "" {
		e.SelectBox(info.Box.ID, e.viewportW, e.viewportH)
		if e.OnBoxClick != nil {
			e.OnBoxClick(info)
		}
		return
	}
	e.Deselect()
	if e.OnCanvasClick != nil {
		e.OnCanvasClick(info)
	}
}

// resolveDoubleClick toggles fullscreen on the clicked box.
func (e *Engine) resolveDoubleClick(info ClickInfo) {
	if info.Box.ID == "" {
		return
	}
	if e.focus.FullscreenID == info.Box.ID {
		e.SetFullscreen("")
	} else {
		e.SetFullscreen(info.Box.ID)
	}
	if e.OnBoxDoubleClick != nil {
		e.OnBoxDoubleClick(info)
	}
}

// --- Hit testing ---

// HitTest returns the topmost clickable box at the given screen point.
// Boxes whose depth blur exceeds the click threshold are skipped, so clicks
// pass through out-of-focus foreground panels.
func (e *Engine) HitTest(sx, sy float64) (Box, bool) {
	focused := e.focus.Focused()
	var best Box
	found := false
	for _, b := range e.store.Boxes() {
		if found && b.Z < best.Z {
			continue
		}
		if !e.cfg.Clickable(b.Z, e.vp.Zoom, focused) {
			continue
		}
		if e.BoxScreenRect(b).Contains(sx, sy) {
			// Later boxes at the same z render on top and win ties.
			if !found || b.Z >= best.Z {
				best = b
				found = true
			}
		}
	}
	return best, found
}

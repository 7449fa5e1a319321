package strata

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Update polls the real input devices and advances the engine by one frame.
// Call once per Ebitengine tick. When synthetic events are queued (see
// inject.go) device input is skipped for the frame so injected sequences
// replay deterministically.
func (e *Engine) Update() {
	if e.disposed {
		return
	}
	if len(e.injectQueue) == 0 {
		e.readDeviceInput()
	}
	e.Step(1.0 / float64(ebiten.TPS()))
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		mods |= ModSpace
	}
	return mods
}

// readDeviceInput polls mouse, wheel, and touch state and feeds the pointer
// state machine. A single touch pans, matching the gesture rules for mouse
// input.
func (e *Engine) readDeviceInput() {
	mods := readModifiers()

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		e.touchActive = true
		e.ProcessPointer(float64(tx), float64(ty), true, MouseButtonLeft, mods, true)
		return
	}
	if e.touchActive {
		e.touchActive = false
		e.ProcessPointer(e.lastX, e.lastY, false, MouseButtonLeft, mods, true)
		return
	}

	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	var pressed bool
	button := MouseButtonLeft
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case middle:
			button = MouseButtonMiddle
		case right:
			button = MouseButtonRight
		}
	}
	if e.pointerDown {
		// Keep the button captured at press time for the whole interaction.
		button = e.button
	}
	e.ProcessPointer(sx, sy, pressed, button, mods, false)

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		e.HandleWheel(sx, sy, wx, wy, mods)
	}
}

// ProcessPointer runs the pointer state machine for one sample. Hosts with
// their own event plumbing (and the injection queue) call this directly;
// [Engine.Update] calls it with polled device state.
func (e *Engine) ProcessPointer(sx, sy float64, pressed bool, button MouseButton, mods KeyModifiers, touch bool) {
	if e.disposed || !isFinite(sx) || !isFinite(sy) {
		return
	}
	switch {
	case pressed && !e.pointerDown:
		e.beginPress(sx, sy, button, mods, touch)
	case pressed && e.pointerDown:
		e.movePointer(sx, sy)
	case !pressed && e.pointerDown:
		e.endPress(sx, sy)
	}
	e.lastX, e.lastY = sx, sy
}

// beginPress claims the pointer. A new press always cancels in-flight
// momentum or animation and takes ownership of the camera target.
func (e *Engine) beginPress(sx, sy float64, button MouseButton, mods KeyModifiers, touch bool) {
	e.vp.CancelAnimation()

	e.pointerDown = true
	e.button = button
	e.mods = mods
	e.startX, e.startY = sx, sy
	e.moved = false
	e.pressBoxID = ""
	e.clickEligible = false
	e.velSamples = e.velSamples[:0]

	panModifier := mods&(ModCtrl|ModSpace) != 0
	switch {
	case button == MouseButtonMiddle,
		button == MouseButtonLeft && panModifier,
		touch:
		e.gesture = gesturePan
		e.clickEligible = touch
	case button == MouseButtonLeft:
		e.gesture = gestureNone
		e.clickEligible = true
		if b, ok := e.HitTest(sx, sy); ok {
			e.pressBoxID = b.ID
		}
	default:
		e.gesture = gestureNone
	}
}

// movePointer routes motion to the active gesture. The first move past the
// dead zone promotes an armed press on a box into a drag.
func (e *Engine) movePointer(sx, sy float64) {
	dx, dy := sx-e.lastX, sy-e.lastY
	if !isFinite(dx) || !isFinite(dy) || (dx == 0 && dy == 0) {
		return
	}

	if !e.moved && math.Hypot(sx-e.startX, sy-e.startY) > e.cfg.DragDeadZone {
		e.moved = true
		if e.gesture == gestureNone && e.pressBoxID != "" && e.pressBoxID != e.focus.FullscreenID {
			e.startDrag(e.pressBoxID)
		}
	}

	switch e.gesture {
	case gesturePan:
		e.pendingPanX += dx
		e.pendingPanY += dy
		e.velSamples = pushVelocitySample(e.velSamples, e.now, dx, dy, e.cfg.VelocityWindow)

	case gestureDrag:
		if _, ok := e.store.Box(e.dragBoxID); !ok {
			// Box deleted mid-drag: end the gesture, keep the pointer.
			e.focus.clearBox(e.dragBoxID)
			e.gesture = gestureNone
			return
		}
		// Screen delta converts to world delta by dividing by current zoom.
		x := e.dragStart.X + (sx-e.startX)/e.vp.Zoom
		y := e.dragStart.Y + (sy-e.startY)/e.vp.Zoom
		e.store.UpdateBox(e.dragBoxID, BoxPatch{X: &x, Y: &y})

	case gestureResize:
		if _, ok := e.store.Box(e.resizeBoxID); !ok {
			e.gesture = gestureNone
			return
		}
		wdx := (sx - e.startX) / e.vp.Zoom
		wdy := (sy - e.startY) / e.vp.Zoom
		r := resizeBox(e.resizeStart, e.resizeHandle, wdx, wdy, e.cfg.MinBoxWidth, e.cfg.MinBoxHeight)
		e.store.UpdateBox(e.resizeBoxID, BoxPatch{X: &r.X, Y: &r.Y, Width: &r.Width, Height: &r.Height})
	}
}

// endPress completes the active gesture: pan hands its residual velocity to
// momentum, drag and resize trigger an occlusion refresh (geometry changed),
// and an unmoved eligible press becomes a click.
func (e *Engine) endPress(sx, sy float64) {
	// The release position is the last sample of the gesture.
	if e.moved {
		e.movePointer(sx, sy)
	}

	switch e.gesture {
	case gesturePan:
		if e.moved {
			vx, vy := releaseVelocity(e.velSamples, e.now, e.cfg.VelocityWindow)
			e.vp.StartMomentum(vx, vy)
		}

	case gestureDrag:
		e.focus.DraggingID = ""
		if b, ok := e.store.Box(e.dragBoxID); ok {
			if e.OnBoxMoved != nil {
				e.OnBoxMoved(b)
			}
		}
		e.refreshObstruction()

	case gestureResize:
		if b, ok := e.store.Box(e.resizeBoxID); ok {
			if e.OnBoxResized != nil {
				e.OnBoxResized(b)
			}
		}
		e.refreshObstruction()
	}

	if !e.moved && e.clickEligible {
		e.feedClick(sx, sy)
	}

	e.pointerDown = false
	e.gesture = gestureNone
	e.pressBoxID = ""
	e.dragBoxID = ""
	e.resizeBoxID = ""
	e.moved = false
	e.clickEligible = false
}

// feedClick routes one completed click through the single/double timer.
func (e *Engine) feedClick(sx, sy float64) {
	info := ClickInfo{ScreenX: sx, ScreenY: sy, Modifiers: e.mods}
	info.WorldX, info.WorldY = ScreenToWorld(sx, sy, e.vp.Zoom, e.vp.OffsetX, e.vp.OffsetY)
	if e.pressBoxID != "" {
		if b, ok := e.store.Box(e.pressBoxID); ok {
			info.Box = b
		}
	}
	if double, ok := e.click.click(e.now, e.cfg.ClickWindow, info); ok {
		e.resolveDoubleClick(double)
	}
}

// startDrag begins dragging a box after the dead zone is passed.
func (e *Engine) startDrag(id string) {
	b, ok := e.store.Box(id)
	if !ok {
		return
	}
	e.gesture = gestureDrag
	e.dragBoxID = id
	e.dragStart = b
	e.focus.FullscreenID = ""
	e.focus.DraggingID = id
}

// BeginBoxDrag starts a drag gesture for hosts that hit-test their own drag
// handles. (sx, sy) is the press position; subsequent pointer samples move
// the box until release. Fullscreen boxes ignore drags; unknown ids no-op.
func (e *Engine) BeginBoxDrag(id string, sx, sy float64) {
	if e.disposed || id == e.focus.FullscreenID {
		return
	}
	b, ok := e.store.Box(id)
	if !ok {
		return
	}
	e.vp.CancelAnimation()
	e.pointerDown = true
	e.button = MouseButtonLeft
	e.startX, e.startY = sx, sy
	e.lastX, e.lastY = sx, sy
	e.moved = true
	e.clickEligible = false
	e.gesture = gestureDrag
	e.dragBoxID = id
	e.dragStart = b
	e.focus.FullscreenID = ""
	e.focus.DraggingID = id
}

// BeginBoxResize starts a resize gesture from the given handle, for hosts
// that hit-test their own resize handles. Unknown ids no-op.
func (e *Engine) BeginBoxResize(id string, handle ResizeHandle, sx, sy float64) {
	if e.disposed {
		return
	}
	b, ok := e.store.Box(id)
	if !ok {
		return
	}
	e.vp.CancelAnimation()
	e.pointerDown = true
	e.button = MouseButtonLeft
	e.startX, e.startY = sx, sy
	e.lastX, e.lastY = sx, sy
	e.moved = true
	e.clickEligible = false
	e.gesture = gestureResize
	e.resizeBoxID = id
	e.resizeHandle = handle
	e.resizeStart = b
}

// ReleaseGesture ends the active gesture through the normal release path
// without synthesizing a click. Pointer-capture loss, window blur, and
// teardown all funnel here, so cleanup is identical to a real release.
func (e *Engine) ReleaseGesture() {
	if !e.pointerDown {
		return
	}
	e.clickEligible = false
	e.endPress(e.lastX, e.lastY)
}

// HandleWheel processes one wheel/trackpad event at screen position
// (sx, sy). With the zoom modifier held it zooms around the cursor: the
// world point under the cursor before the change stays under the cursor
// after. Without the modifier it pans. Deltas and positions must be finite;
// zoom changes below the negligible-delta threshold are dropped.
func (e *Engine) HandleWheel(sx, sy, wheelX, wheelY float64, mods KeyModifiers) {
	if e.disposed || !isFinite(sx) || !isFinite(sy) || !isFinite(wheelX) || !isFinite(wheelY) {
		return
	}

	if mods&ModCtrl == 0 {
		// Plain wheel pans.
		e.vp.NudgeTarget(
			e.vp.TargetZoom,
			e.vp.TargetOffsetX+wheelX*e.cfg.WheelPanScale,
			e.vp.TargetOffsetY+wheelY*e.cfg.WheelPanScale,
		)
		return
	}

	if wheelY == 0 {
		return
	}
	e.wheelSamples = append(e.wheelSamples, wheelSample{t: e.now, mag: math.Abs(wheelY)})
	cut := 0
	for cut < len(e.wheelSamples) && e.wheelSamples[cut].t < e.now-e.cfg.WheelBurstWindow {
		cut++
	}
	e.wheelSamples = e.wheelSamples[cut:]

	adapt := wheelBurstFactor(e.wheelSamples, e.now, &e.cfg)
	factor := math.Pow(e.cfg.WheelZoomStep, wheelY*adapt)

	oldZoom := e.vp.TargetZoom
	newZoom := clamp(oldZoom*factor, e.cfg.MinZoom, e.cfg.MaxZoom)
	if math.Abs(newZoom-oldZoom) < e.cfg.MinZoomDelta {
		return
	}

	// Anchor the world point under the cursor: compute it against the
	// current target, then recompute the offset so the same point maps back
	// to the cursor at the new zoom.
	wx, wy := ScreenToWorld(sx, sy, oldZoom, e.vp.TargetOffsetX, e.vp.TargetOffsetY)
	offX := sx - wx*newZoom
	offY := sy - wy*newZoom

	e.vp.NudgeTarget(newZoom, offX, offY)
}

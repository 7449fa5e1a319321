package strata

// syntheticPointerEvent is a single queued input event. Screen coordinates
// are used, exactly like real device input, so injected sequences exercise
// the same conversion and gesture paths.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	mods    KeyModifiers

	wheel          bool
	wheelX, wheelY float64
}

// InjectPress queues a pointer press at the given screen coordinates.
// Events are consumed one per frame by Step, in order.
func (e *Engine) InjectPress(x, y float64, button MouseButton, mods KeyModifiers) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: button, mods: mods,
	})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag or pan.
func (e *Engine) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (e *Engine) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (e *Engine) InjectClick(x, y float64) {
	e.InjectPress(x, y, MouseButtonLeft, 0)
	e.InjectRelease(x, y)
}

// InjectWheel queues a wheel event at the given screen coordinates. Pass
// ModCtrl in mods for zoom-around-cursor, none for wheel panning.
func (e *Engine) InjectWheel(x, y, wheelX, wheelY float64, mods KeyModifiers) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{
		x: x, y: y, wheel: true, wheelX: wheelX, wheelY: wheelY, mods: mods,
	})
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (e *Engine) InjectDrag(fromX, fromY, toX, toY float64, frames int, button MouseButton, mods KeyModifiers) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPress(fromX, fromY, button, mods)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(toX, toY)
}

// consumeInjected pops one queued event and feeds it through the same
// pointer/wheel paths as device input.
func (e *Engine) consumeInjected() {
	if len(e.injectQueue) == 0 {
		return
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	if evt.wheel {
		e.HandleWheel(evt.x, evt.y, evt.wheelX, evt.wheelY, evt.mods)
		return
	}
	e.ProcessPointer(evt.x, evt.y, evt.pressed, evt.button, evt.mods, false)
}

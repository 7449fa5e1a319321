package strata

// ClickInfo describes a resolved click for callback consumers.
type ClickInfo struct {
	// Box is the clicked box; zero-valued (empty ID) for canvas clicks.
	Box Box
	// ScreenX, ScreenY is the pointer position of the click.
	ScreenX, ScreenY float64
	// WorldX, WorldY is the pointer position on the focal reference plane.
	WorldX, WorldY float64
	Modifiers      KeyModifiers
}

// clickTimer is the two-state single/double click disambiguator. A click
// arms the timer; a second click inside the window fires "double" and the
// "single" interpretation is cancelled. If the window elapses first,
// "single" fires from step. The engine clock drives it, so there is no
// goroutine to race with and cancel is just disarming.
type clickTimer struct {
	armed    bool
	deadline float64
	info     ClickInfo
}

// click feeds one click event at engine time now. Returns (info, true) when
// this click completes a double click; the caller fires the double callback.
func (t *clickTimer) click(now, window float64, info ClickInfo) (ClickInfo, bool) {
	if t.armed && now <= t.deadline && t.info.Box.ID == info.Box.ID {
		t.armed = false
		return info, true
	}
	t.armed = true
	t.deadline = now + window
	t.info = info
	return ClickInfo{}, false
}

// step fires the pending single click once the window has elapsed.
// Returns (info, true) exactly once per armed click.
func (t *clickTimer) step(now float64) (ClickInfo, bool) {
	if t.armed && now >= t.deadline {
		t.armed = false
		return t.info, true
	}
	return ClickInfo{}, false
}

// cancel disarms the timer without firing. Teardown mid-window must never
// invoke a stale callback.
func (t *clickTimer) cancel() {
	t.armed = false
}
